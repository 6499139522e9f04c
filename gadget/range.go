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

// Range constrains witness to fit in num_bits by emitting ceil(num_bits/8)
// width-4 rows of base-4 accumulators, four quads per row packed across
// columns d, o, b, a in that order of assignment so consecutive quads
// straddle adjacent rows, followed by a final inert row holding the true
// terminal accumulator with the widget deactivated (§4.4). The gate count
// depends only on num_bits, never on the witness value, satisfying the
// circuit-description-stability property (§8 property 5). Panics
// (CircuitMisuse) if num_bits is odd, per §7.
func Range(c *composer.Composer, witness composer.WireID, numBits int) {
	if numBits%2 != 0 {
		panic("gadget: range requires an even num_bits")
	}
	if numBits < 0 {
		numBits = 0
	}

	numRows := (numBits + 7) / 8
	totalQuadSlots := numRows * 4
	neededQuads := (numBits + 1) / 2 // == numBits/2 since numBits is even
	// One quad beyond the active rows' totalQuadSlots always lands in the
	// final inert row's accumulator rather than in any active row, so pad
	// counts the leading zero quads among totalQuadSlots+1 available slots.
	pad := totalQuadSlots - neededQuads + 1

	bits := field.ToBits(c.Witness(witness))
	// quads[k], k=0 is the most-significant quad of the needed value; the
	// first `pad` entries are the leading zero padding quads. Index
	// totalQuadSlots, the last one, is the least-significant quad, which is
	// consumed by the final row rather than by any active row.
	quads := make([]uint8, totalQuadSlots+1)
	for k := 0; k < neededQuads; k++ {
		hi := numBits - 2*k - 1
		lo := numBits - 2*k - 2
		var v uint8
		if bits[hi] {
			v |= 2
		}
		if bits[lo] {
			v |= 1
		}
		quads[pad+k] = v
	}

	qRange := field.One()
	four := field.From(4)

	var acc field.Element

	for row := 0; row < numRows; row++ {
		var colD, colO, colB, colA composer.WireID
		for slot := 0; slot < 4; slot++ {
			q := quads[row*4+slot]
			qF := field.From(uint64(q))
			acc.Mul(&acc, &four)
			acc.Add(&acc, &qF)
			w := c.AppendWitness(acc)
			switch slot {
			case 0:
				colD = w
			case 1:
				colO = w
			case 2:
				colB = w
			case 3:
				colA = w
			}
		}
		c.AppendCustomGate(composer.Constraint{
			WA: colA, WB: colB, WO: colO, WD: colD,
			QRange: qRange,
		})
	}

	// Final inert row: consumes the last quad into its w_d so the last
	// active row's d_next transition check closes against the true
	// terminal accumulator, per gadget/logic.go and gadget/fixedbase.go's
	// same final-row treatment. Widget deactivated (q_range left at 0).
	qF := field.From(uint64(quads[totalQuadSlots]))
	acc.Mul(&acc, &four)
	acc.Add(&acc, &qF)
	final := c.AppendWitness(acc)
	c.AppendCustomGate(composer.Constraint{WD: final})

	c.AssertEqual(final, witness)
}
