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

// quad returns the value of bits [2i, 2i+1] (MSB-first numbering, quad 0 is
// the topmost) of the num_bits-wide prefix of v's canonical bits.
func quad(bitsLSB [field.NumBits]bool, numBits, i int) uint8 {
	hi := numBits - 2*i - 1
	lo := numBits - 2*i - 2
	var v uint8
	if bitsLSB[hi] {
		v |= 2
	}
	if bitsLSB[lo] {
		v |= 1
	}
	return v
}

// Logic computes (a op b) & mask(num_bits), op being AND (isXor=false) or
// XOR (isXor=true), over the width-4 quad-accumulator layout of §4.3.
//
// num_bits is clamped to 256 and must be even; an odd num_bits panics
// (CircuitMisuse, §4.3, §7). num_bits=0 emits only the inert padding row
// and returns a freshly allocated wire holding zero (S4 in §8).
func Logic(c *composer.Composer, a, b composer.WireID, numBits int, isXor bool) composer.WireID {
	if numBits > field.NumBits {
		numBits = field.NumBits
	}
	if numBits%2 != 0 {
		panic("gadget: logic requires an even num_bits")
	}
	numQuads := numBits / 2

	qLogic := field.One()
	if !isXor {
		var negOne field.Element
		negOne.Sub(&field.Element{}, &qLogic)
		qLogic = negOne
	}

	av, bv := c.Witness(a), c.Witness(b)
	abits := field.ToBits(av)
	bbits := field.ToBits(bv)

	var A, B, D field.Element
	aWire := c.AppendWitness(A)
	bWire := c.AppendWitness(B)
	dWire := c.AppendWitness(D)

	if numQuads == 0 {
		// Only the inert padding row: (0,0,0,0), widget deactivated.
		zeroWC := c.AppendWitness(field.Zero())
		c.AppendCustomGate(composer.Constraint{
			WA: aWire, WB: bWire, WO: zeroWC, WD: dWire,
		})
		return dWire
	}

	four := field.From(4)
	rowA, rowB, rowD := aWire, bWire, dWire

	for i := 0; i < numQuads; i++ {
		la := quad(abits, numBits, i)
		lb := quad(bbits, numBits, i)
		var ld uint8
		if isXor {
			ld = la ^ lb
		} else {
			ld = la & lb
		}

		wc := c.AppendWitness(field.From(uint64(la) * uint64(lb)))

		laF, lbF, ldF := field.From(uint64(la)), field.From(uint64(lb)), field.From(uint64(ld))
		A.Mul(&A, &four)
		A.Add(&A, &laF)
		B.Mul(&B, &four)
		B.Add(&B, &lbF)
		D.Mul(&D, &four)
		D.Add(&D, &ldF)

		nextA := c.AppendWitness(A)
		nextB := c.AppendWitness(B)
		nextD := c.AppendWitness(D)

		c.AppendCustomGate(composer.Constraint{
			WA: rowA, WB: rowB, WO: wc, WD: rowD,
			QLogic: qLogic,
		})

		rowA, rowB, rowD = nextA, nextB, nextD
	}

	// Final inert padding row: holds the terminal accumulators with the
	// widget deactivated, per §4.3.
	zeroWC := c.AppendWitness(field.Zero())
	c.AppendCustomGate(composer.Constraint{
		WA: rowA, WB: rowB, WO: zeroWC, WD: rowD,
	})

	return rowD
}

// LogicAnd is Logic with isXor=false.
func LogicAnd(c *composer.Composer, a, b composer.WireID, numBits int) composer.WireID {
	return Logic(c, a, b, numBits, false)
}

// LogicXor is Logic with isXor=true.
func LogicXor(c *composer.Composer, a, b composer.WireID, numBits int) composer.WireID {
	return Logic(c, a, b, numBits, true)
}
