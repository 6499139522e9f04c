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

// rangeContribution checks that each of the four quads packed into a row
// (gadget/range.go's d,o,b,a column order) is a base-4 digit of its
// neighbour, via the delta identity of §4.4's "Δ_col" note, separated by
// increasing powers of the range separation challenge so the four checks
// combine into a single scalar against the one committed selector
// polynomial q_range.
func rangeContribution(vk VerifierKey, rangeSep field.Element, e Evaluations) widgetContribution {
	four := field.From(4)

	b1 := delta(sub(e.CEval, mul(four, e.DEval)))
	b2 := delta(sub(e.BEval, mul(four, e.CEval)))
	b3 := delta(sub(e.AEval, mul(four, e.BEval)))
	b4 := delta(sub(e.DNext, mul(four, e.AEval)))

	k2 := mul(rangeSep, rangeSep)
	k3 := mul(k2, rangeSep)
	k4 := mul(k3, rangeSep)

	total := add(add(mul(b1, rangeSep), mul(b2, k2)), add(mul(b3, k3), mul(b4, k4)))

	return widgetContribution{
		scalars: []field.Element{total},
		points:  []bls12381.G1Affine{vk.Range.QRange},
	}
}
