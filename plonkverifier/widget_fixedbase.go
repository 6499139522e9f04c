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

// fixedBaseContribution checks the WNAF accumulator recurrence that
// gadget/fixedbase.go's MulGenerator lays down: the scalar accumulator
// advances by a signed digit in {-1,0,1} each row, and the point
// accumulator advances by that digit times the row's baked-in (x_beta,
// y_beta) constants — carried in this row's
// q_l/q_r/q_c evaluations rather than as separate widget commitments,
// since fixed-base rows reuse the global arithmetic selector columns to
// hold per-row constants instead of a witness value.
func fixedBaseContribution(vk VerifierKey, fixedBaseSep field.Element, e Evaluations) widgetContribution {
	two := field.From(2)

	// entry = scalar_next - 2*scalar; valid iff entry*(entry^2-1) == 0.
	entry := sub(e.DNext, mul(two, e.DEval))
	entryCheck := mul(entry, sub(mul(entry, entry), field.One()))

	xBeta, yBeta := e.QL, e.QR

	identityX := sub(e.ANext, add(e.AEval, mul(entry, xBeta)))
	identityY := sub(e.BNext, add(e.BEval, mul(entry, yBeta)))

	k2 := mul(fixedBaseSep, fixedBaseSep)
	k3 := mul(k2, fixedBaseSep)

	total := add(add(mul(entryCheck, fixedBaseSep), mul(identityX, k2)), mul(identityY, k3))

	return widgetContribution{
		scalars: []field.Element{total},
		points:  []bls12381.G1Affine{vk.FixedBase.QFixedGroupAdd},
	}
}
