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

// Package field binds the abstract scalar field F of the specification to
// the BLS12-381 scalar field exposed by gnark-crypto. Every other package in
// this module imports Element rather than fr.Element directly so the curve
// binding stays in one place.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Element is the scalar field used for witnesses, selectors and challenges.
type Element = fr.Element

// NumBits is the bit length of the canonical representation produced by
// ToBits.
const NumBits = 256

// Zero returns the additive identity.
func Zero() Element {
	var z Element
	return z
}

// One returns the multiplicative identity.
func One() Element {
	var o Element
	o.SetOne()
	return o
}

// From builds a field element from a small integer, mirroring the
// specification's `from(u64)`.
func From(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// FromBytesLE decodes a little-endian canonical 32-byte encoding, per the
// specification's `from_bytes`. It rejects non-canonical encodings (values
// greater than or equal to the field modulus).
func FromBytesLE(b []byte) (Element, error) {
	var e Element
	if len(b) != 32 {
		return e, fmt.Errorf("field: from_bytes: want 32 bytes, got %d", len(b))
	}
	var be [32]byte
	for i := range b {
		be[31-i] = b[i]
	}
	if err := e.SetBytesCanonical(be[:]); err != nil {
		return e, fmt.Errorf("field: from_bytes: %w", err)
	}
	return e, nil
}

// BytesLE encodes e as a little-endian canonical 32-byte array.
func BytesLE(e Element) [32]byte {
	be := e.Bytes()
	var le [32]byte
	for i := range be {
		le[31-i] = be[i]
	}
	return le
}

// ToBits returns the NumBits LSB-first bits of e's canonical representative.
func ToBits(e Element) [NumBits]bool {
	var bi big.Int
	e.BigInt(&bi)
	var bits [NumBits]bool
	for i := 0; i < NumBits; i++ {
		bits[i] = bi.Bit(i) == 1
	}
	return bits
}

// PowOf2 returns 2^k as a field element, for 0 <= k < NumBits.
func PowOf2(k int) Element {
	var e Element
	e.SetOne()
	if k <= 0 {
		return e
	}
	var two Element
	two.SetUint64(2)
	e.Exp(two, big.NewInt(int64(k)))
	return e
}
