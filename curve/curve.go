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

// Package curve binds the abstract twisted-Edwards curve C of the
// specification to the embedded curve gnark-crypto defines over the
// BLS12-381 scalar field.
package curve

import (
	tedwards "github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"

	"github.com/plonkforge/turboplonk/field"
)

// Affine is a point in affine twisted-Edwards coordinates.
type Affine = tedwards.PointAffine

// Params returns the twisted-Edwards curve parameters (a, d and base point)
// for the embedded curve used by the fixed-base and variable-base gadgets.
func Params() tedwards.CurveParams {
	return tedwards.GetEdwardsCurve()
}

// Identity returns the twisted-Edwards identity point (0, 1).
func Identity() Affine {
	var p Affine
	p.X.SetZero()
	p.Y.SetOne()
	return p
}

// Generator returns the curve's base point, used as the fixed base G in
// component_mul_generator.
func Generator() Affine {
	params := Params()
	var p Affine
	p.X.Set(&params.Base.X)
	p.Y.Set(&params.Base.Y)
	return p
}

// Add returns a+b using the complete twisted-Edwards addition law:
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 - a*x1*x2) / (1 - d*x1*x2*y1*y2)
func Add(a, b Affine) Affine {
	params := Params()
	var x1y2, y1x2, x1x2, y1y2, dx1x2y1y2 field.Element
	x1y2.Mul(&a.X, &b.Y)
	y1x2.Mul(&a.Y, &b.X)
	x1x2.Mul(&a.X, &b.X)
	y1y2.Mul(&a.Y, &b.Y)
	dx1x2y1y2.Mul(&params.D, &x1x2)
	dx1x2y1y2.Mul(&dx1x2y1y2, &y1y2)

	var num3, den3 field.Element
	num3.Add(&x1y2, &y1x2)
	den3.SetOne()
	den3.Add(&den3, &dx1x2y1y2)
	den3.Inverse(&den3)

	var x3 field.Element
	x3.Mul(&num3, &den3)

	var aX1X2, num4, den4 field.Element
	aX1X2.Mul(&params.A, &x1x2)
	num4.Sub(&y1y2, &aX1X2)
	den4.SetOne()
	den4.Sub(&den4, &dx1x2y1y2)
	den4.Inverse(&den4)

	var y3 field.Element
	y3.Mul(&num4, &den4)

	return Affine{X: x3, Y: y3}
}

// Double returns a+a.
func Double(a Affine) Affine {
	return Add(a, a)
}

// ScalarMul returns k*P via LSB-first double-and-add over Add and Double,
// used only to cross-check in-circuit gadgets in tests
// (never by the composer itself, which emits gates instead).
func ScalarMul(p Affine, k field.Element) Affine {
	acc := Identity()
	bits := field.ToBits(k)
	base := p
	for i := 0; i < field.NumBits; i++ {
		if bits[i] {
			acc = Add(acc, base)
		}
		base = Double(base)
	}
	return acc
}
