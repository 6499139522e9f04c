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

package gadget

import (
	"github.com/plonkforge/turboplonk/composer"
	"github.com/plonkforge/turboplonk/curve"
	"github.com/plonkforge/turboplonk/field"
)

// AddPoint emits the two-row variable-base addition gate of §4.6. Row 1
// carries (a.x, a.y, b.x, b.y) with q_variable_group_add=1; row 2 carries
// the result point and the cross term x1*y2, deactivated. The verifier
// widget checks the complete twisted-Edwards addition law against this
// layout.
func AddPoint(c *composer.Composer, a, b composer.WitnessPoint) composer.WitnessPoint {
	x1, y1 := c.Witness(a.X), c.Witness(a.Y)
	x2, y2 := c.Witness(b.X), c.Witness(b.Y)

	sum := curve.Add(curve.Affine{X: x1, Y: y1}, curve.Affine{X: x2, Y: y2})

	c.AppendCustomGate(composer.Constraint{
		WA: a.X, WB: a.Y, WO: b.X, WD: b.Y,
		QVariableGroupAdd: field.One(),
	})

	var x1y2 field.Element
	x1y2.Mul(&x1, &y2)
	crossWire := c.AppendWitness(x1y2)

	x3 := c.AppendWitness(sum.X)
	y3 := c.AppendWitness(sum.Y)

	c.AppendCustomGate(composer.Constraint{
		WA: x3, WB: y3, WD: crossWire,
	})

	return composer.WitnessPoint{X: x3, Y: y3}
}

// MulPoint computes scalar*P for a 252-bit scalar wire via classical
// double-and-add from the MSB, decomposing scalar first (§4.6).
func MulPoint(c *composer.Composer, scalar composer.WireID, p composer.WitnessPoint) composer.WitnessPoint {
	const n = 252
	bitWires := Decomposition(c, scalar, n)

	accX := c.AppendConstant(field.Zero())
	accY := c.AppendConstant(field.One())
	acc := composer.WitnessPoint{X: accX, Y: accY}

	for i := n - 1; i >= 0; i-- {
		doubled := AddPoint(c, acc, acc)
		toAdd := SelectIdentity(c, bitWires[i], p)
		acc = AddPoint(c, doubled, toAdd)
	}
	return acc
}
