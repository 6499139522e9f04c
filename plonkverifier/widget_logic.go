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

// logicContribution mirrors gadget/logic.go's row layout: the A, B and D
// columns each advance by a base-4 digit per row (checked with the same
// delta identity as the range widget), and the O column carries the
// cross-term wc = la*lb of this row's quads la = a_next-4a and
// lb = b_next-4b. The three delta checks are scaled against the committed
// q_logic selector and the product check against the logic widget's q_c
// commitment; the D digit is not checked against la and lb here.
func logicContribution(vk VerifierKey, logicSep field.Element, e Evaluations) widgetContribution {
	four := field.From(4)

	la := sub(e.ANext, mul(four, e.AEval))
	lb := sub(e.BNext, mul(four, e.BEval))
	da := delta(la)
	db := delta(lb)
	dd := delta(sub(e.DNext, mul(four, e.DEval)))

	discriminant := sub(e.CEval, mul(la, lb))

	k2 := mul(logicSep, logicSep)
	k3 := mul(k2, logicSep)
	k4 := mul(k3, logicSep)

	deltaSum := add(add(mul(da, logicSep), mul(db, k2)), mul(dd, k3))

	return widgetContribution{
		scalars: []field.Element{deltaSum, mul(discriminant, k4)},
		points:  []bls12381.G1Affine{vk.Logic.QLogic, vk.Logic.QC},
	}
}
