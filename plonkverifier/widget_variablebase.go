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

	"github.com/plonkforge/turboplonk/curve"
	"github.com/plonkforge/turboplonk/field"
)

// variableBaseContribution checks the complete twisted-Edwards addition
// law that gadget/variablebase.go's AddPoint lays down over a current row
// (x1,y1,x2,y2) = (a,b,c,d) and a next row (x3,y3) = (a_next,b_next):
//
//	x3*(1 + d*x1*x2*y1*y2) = x1*y2 + y1*x2
//	y3*(1 - d*x1*x2*y1*y2) = y1*y2 - a*x1*x2
func variableBaseContribution(vk VerifierKey, varBaseSep field.Element, e Evaluations) widgetContribution {
	params := curve.Params()

	x1, y1, x2, y2 := e.AEval, e.BEval, e.CEval, e.DEval
	x3, y3 := e.ANext, e.BNext

	product := mul(mul(x1, x2), mul(y1, y2))
	dProduct := mul(params.D, product)
	aX1X2 := mul(params.A, mul(x1, x2))

	c1 := sub(mul(x3, add(field.One(), dProduct)), add(mul(x1, y2), mul(y1, x2)))
	c2 := sub(mul(y3, sub(field.One(), dProduct)), sub(mul(y1, y2), aX1X2))

	total := add(mul(c1, varBaseSep), mul(c2, mul(varBaseSep, varBaseSep)))

	return widgetContribution{
		scalars: []field.Element{total},
		points:  []bls12381.G1Affine{vk.VariableBase.QVariableGroupAdd},
	}
}
