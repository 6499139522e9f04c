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
	"math/big"

	"github.com/plonkforge/turboplonk/field"
)

// The widget files below read like small algebraic scripts; these
// one-line helpers keep them that way instead of drowning every
// expression in three-line gnark-crypto call sequences.

func add(a, b field.Element) field.Element {
	var out field.Element
	out.Add(&a, &b)
	return out
}

func sub(a, b field.Element) field.Element {
	var out field.Element
	out.Sub(&a, &b)
	return out
}

func mul(a, b field.Element) field.Element {
	var out field.Element
	out.Mul(&a, &b)
	return out
}

func neg(a field.Element) field.Element {
	var out field.Element
	out.Neg(&a)
	return out
}

// delta returns f*(f-1)*(f-2)*(f-3), the quad-digit range check used by
// both the range and logic widgets: it vanishes iff f in {0,1,2,3}.
func delta(f field.Element) field.Element {
	one := field.One()
	two := field.From(2)
	three := field.From(3)
	return mul(mul(sub(f, one), sub(f, two)), mul(f, sub(f, three)))
}

// fieldToBigInt converts a field element to its big.Int representative,
// for use as a scalar in gnark-crypto's ScalarMultiplication calls.
func fieldToBigInt(e field.Element) *big.Int {
	var bi big.Int
	e.BigInt(&bi)
	return &bi
}
