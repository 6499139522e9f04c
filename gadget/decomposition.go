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

// Decomposition allocates n boolean wires b_0..b_{n-1} (little-endian, b_0
// is the LSB) for w, asserts each is boolean, accumulates
// acc += 2^i * b_i via GateAdd, and finally asserts acc == w. Returns the
// bit wires. Panics (CircuitMisuse) if n is 0 or greater than 256, per §4.7
// and §7.
func Decomposition(c *composer.Composer, w composer.WireID, n int) []composer.WireID {
	if n <= 0 || n > field.NumBits {
		panic("gadget: decomposition requires 0 < n <= 256")
	}
	bits := field.ToBits(c.Witness(w))

	bitWires := make([]composer.WireID, n)
	acc := composer.ZERO
	one := field.One()
	for i := 0; i < n; i++ {
		var bv field.Element
		if bits[i] {
			bv = one
		}
		bi := c.AppendWitness(bv)
		Boolean(c, bi)
		bitWires[i] = bi

		// acc' = 1*acc + 2^i*bi; for i=0, acc=ZERO so this reduces to bi.
		acc = c.GateAdd(composer.Constraint{
			WA: acc, WD: bi,
			QL: one, QD: field.PowOf2(i),
		})
	}
	c.AssertEqual(acc, w)
	return bitWires
}
