// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plonkverifier

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/plonkforge/turboplonk/field"
)

// Evaluations holds the 16 field evaluations carried by a Proof (§3),
// field order matching _examples/original_source/src/proof_system/proof.rs.
type Evaluations struct {
	AEval, BEval, CEval, DEval field.Element
	ANext, BNext, DNext        field.Element
	SSigma1, SSigma2, SSigma3  field.Element
	QArith                     field.Element
	QC                         field.Element
	QL                         field.Element
	QR                         field.Element
	PermEval                   field.Element
	RPolyEval                  field.Element
}

// Proof is the verifier-side view of a PLONK proof: commitments to the
// four wire polynomials, the permutation polynomial, the four
// quotient-split commitments, two opening-proof commitments, and the 16
// evaluations (§3).
type Proof struct {
	AComm, BComm, CComm, DComm bls12381.G1Affine
	ZComm                      bls12381.G1Affine
	TLowComm, TMidComm, THighComm, T4Comm bls12381.G1Affine
	WZComm, WZWComm            bls12381.G1Affine
	Evaluations                Evaluations
}
