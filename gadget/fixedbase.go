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

// MulGenerator computes scalar*G for the compile-time base point g via
// windowed (width-2) NAF over 256 bits (§4.5). It binds the first row to
// the identity/zero-scalar state with three constant assertions, emits one
// q_fixed_group_add=1 gate per active bit carrying the running
// accumulator, and a final inert row, asserting the terminal scalar
// accumulator equals the scalar wire.
//
// HAZARD (carried from the source, §9 open question 1): this gadget does
// not range-constrain scalar to 252 bits. An adversarial prover can supply
// an aliased scalar and still satisfy the constraint. Callers that need
// the stronger guarantee should call Range(c, scalar, 252) before MulGenerator.
func MulGenerator(c *composer.Composer, scalar composer.WireID, g curve.Affine) (composer.WitnessPoint, error) {
	sv := c.Witness(scalar)
	digits, err := curve.WNAFWindow2(sv)
	if err != nil {
		return composer.WitnessPoint{}, err
	}
	table := curve.PowersOfTwoTable(g)

	accX := c.AppendConstant(field.Zero())
	accY := c.AppendConstant(field.One())
	accScalar := c.AppendConstant(field.Zero())

	accPoint := curve.Identity()
	var accScalarVal field.Element

	rowX, rowY, rowScalar := accX, accY, accScalar

	for i := len(digits) - 1; i >= 0; i-- {
		entry := digits[i]
		base := table[len(table)-1-i] // 2^i * G, matching the reversed table

		var entryF field.Element
		one := field.One()
		switch entry {
		case 1:
			entryF = one
		case -1:
			entryF.Sub(&field.Element{}, &one)
		}

		var scaled curve.Affine
		switch entry {
		case 0:
			scaled = curve.Identity()
		case 1:
			scaled = base
		case -1:
			scaled = curve.Affine{X: negField(base.X), Y: base.Y}
		}
		accPoint = curve.Add(accPoint, scaled)

		two := field.From(2)
		accScalarVal.Mul(&accScalarVal, &two)
		accScalarVal.Add(&accScalarVal, &entryF)

		xBeta, yBeta := base.X, base.Y
		var xyBeta field.Element
		xyBeta.Mul(&xBeta, &yBeta)

		nextX := c.AppendWitness(accPoint.X)
		nextY := c.AppendWitness(accPoint.Y)
		nextScalar := c.AppendWitness(accScalarVal)
		xyAlpha := c.AppendWitness(xyAlphaValue(c.Witness(rowX), c.Witness(rowY)))

		c.AppendCustomGate(composer.Constraint{
			WA: rowX, WB: rowY, WO: xyAlpha, WD: rowScalar,
			QL: xBeta, QR: yBeta, QC: xyBeta,
			QFixedGroupAdd: field.One(),
		})

		rowX, rowY, rowScalar = nextX, nextY, nextScalar
	}

	// Final inert row recording the terminal accumulator; all selectors
	// zero, no q_arith (§9 open question 2).
	c.AppendCustomGate(composer.Constraint{WA: rowX, WB: rowY, WD: rowScalar})

	c.AssertEqual(rowScalar, scalar)

	return composer.WitnessPoint{X: rowX, Y: rowY}, nil
}

func negField(v field.Element) field.Element {
	var out field.Element
	out.Sub(&field.Element{}, &v)
	return out
}

// xyAlphaValue mirrors the x*y cross-term witness the fixed-base widget
// expects alongside the running accumulator point.
func xyAlphaValue(x, y field.Element) field.Element {
	var out field.Element
	out.Mul(&x, &y)
	return out
}
