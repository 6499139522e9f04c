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
	"github.com/plonkforge/turboplonk/field"
)

// Select returns a if bit else b, for a boolean wire bit, computed as
// bit*a + (1-bit)*b over three gates (§4.7): a multiplication, a second
// multiplication folded into an affine term, and a final addition.
func Select(c *composer.Composer, bit, a, b composer.WireID) composer.WireID {
	one := field.One()
	var negOne field.Element
	negOne.Sub(&field.Element{}, &one)

	ba := c.GateMul(composer.Constraint{WA: bit, WB: a, QM: one})
	// b*(1-bit) = -bit*b + b
	bNotBit := c.GateAdd(composer.Constraint{WA: bit, WB: b, QM: negOne, QR: one})
	return c.GateAdd(composer.Constraint{WA: ba, WB: bNotBit, QL: one, QR: one})
}

// SelectZero returns bit*v, one multiplication gate.
func SelectZero(c *composer.Composer, bit, v composer.WireID) composer.WireID {
	one := field.One()
	return c.GateMul(composer.Constraint{WA: bit, WB: v, QM: one})
}

// SelectOne returns 1 - bit + bit*v, one custom gate.
func SelectOne(c *composer.Composer, bit, v composer.WireID) composer.WireID {
	one := field.One()
	var negOne field.Element
	negOne.Sub(&field.Element{}, &one)
	return c.GateAdd(composer.Constraint{WA: bit, WB: v, QM: one, QL: negOne, QC: one})
}

// SelectIdentity returns (select_zero(bit, p.x), select_one(bit, p.y)),
// i.e. p if bit else the identity point.
func SelectIdentity(c *composer.Composer, bit composer.WireID, p composer.WitnessPoint) composer.WitnessPoint {
	return composer.WitnessPoint{
		X: SelectZero(c, bit, p.X),
		Y: SelectOne(c, bit, p.Y),
	}
}

// SelectPoint is Select applied pointwise to a and b.
func SelectPoint(c *composer.Composer, bit composer.WireID, a, b composer.WitnessPoint) composer.WitnessPoint {
	return composer.WitnessPoint{
		X: Select(c, bit, a.X, b.X),
		Y: Select(c, bit, a.Y, b.Y),
	}
}
