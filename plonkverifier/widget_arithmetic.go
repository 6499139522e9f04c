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

// arithmeticContribution computes the (scalars, points) pair for
//
//	(a*b*q_m + a*q_l + b*q_r + c*q_o + d*q_4 + q_c) * q_arith
//
// against the committed selector polynomials, following
// original_source/src/proof_system/widget/arithmetic/proverkey.rs'
// compute_linearization verbatim.
func arithmeticContribution(vk VerifierKey, e Evaluations) widgetContribution {
	ab := mul(e.AEval, e.BEval)

	return widgetContribution{
		scalars: []field.Element{
			mul(ab, e.QArith),
			mul(e.AEval, e.QArith),
			mul(e.BEval, e.QArith),
			mul(e.CEval, e.QArith),
			mul(e.DEval, e.QArith),
			e.QArith,
		},
		points: []bls12381.G1Affine{
			vk.Arithmetic.QM,
			vk.Arithmetic.QL,
			vk.Arithmetic.QR,
			vk.Arithmetic.QO,
			vk.Arithmetic.Q4,
			vk.Arithmetic.QC,
		},
	}
}
