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

package curve

import (
	"fmt"
	"math/big"

	"github.com/plonkforge/turboplonk/field"
)

// ErrUnsupportedWNAFDigit is returned when a scalar's width-2 NAF
// decomposition produces a digit outside {-1, 0, 1}. With the recoding
// algorithm used here this is unreachable for any canonical field element,
// but the check is kept explicit per the component contract (§4.5,
// §7 UnsupportedWNAFDigit) rather than relied upon implicitly.
var ErrUnsupportedWNAFDigit = fmt.Errorf("curve: wnaf digit outside {-1,0,1}")

// WNAFWindow2 recodes k into field.NumBits+1 signed digits in {-1, 0, 1},
// LSB-first, such that k = sum(digits[i] * 2^i). This is the width-2
// windowed non-adjacent form used by the fixed-base scalar multiplication
// gadget.
func WNAFWindow2(k field.Element) ([]int8, error) {
	var bi big.Int
	k.BigInt(&bi)

	digits := make([]int8, field.NumBits+1)
	rem := new(big.Int).Set(&bi)
	two := big.NewInt(2)
	four := big.NewInt(4)

	for i := 0; i < len(digits); i++ {
		if rem.Bit(0) == 1 {
			mod4 := new(big.Int).Mod(rem, four).Int64()
			var d int64
			switch mod4 {
			case 1:
				d = 1
			case 3:
				d = -1
			default:
				return nil, fmt.Errorf("%w: mod4=%d at bit %d", ErrUnsupportedWNAFDigit, mod4, i)
			}
			digits[i] = int8(d)
			rem.Sub(rem, big.NewInt(d))
		}
		rem.Div(rem, two)
	}
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: residual scalar bits beyond %d", ErrUnsupportedWNAFDigit, field.NumBits)
	}
	for _, d := range digits {
		if d != -1 && d != 0 && d != 1 {
			return nil, ErrUnsupportedWNAFDigit
		}
	}
	return digits, nil
}

// PowersOfTwoTable precomputes 2^i * G for i = 0..field.NumBits (inclusive),
// reversed so index 0 holds the highest power — matching the "precomputes
// 2^i*G ... and reverses" ordering in the specification's fixed-base
// gadget description, which processes bits from the table's front.
func PowersOfTwoTable(g Affine) []Affine {
	table := make([]Affine, field.NumBits+1)
	acc := g
	for i := 0; i <= field.NumBits; i++ {
		table[i] = acc
		acc = Double(acc)
	}
	for i, j := 0, len(table)-1; i < j; i, j = i+1, j-1 {
		table[i], table[j] = table[j], table[i]
	}
	return table
}
