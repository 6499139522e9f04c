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

// Package domain wraps gnark-crypto's evaluation domain, exposing just the
// pieces the verifier's barycentric evaluation needs (§4.8, §6
// EvaluationDomain).
package domain

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/plonkforge/turboplonk/field"
)

// MaxLogSize bounds the supported domain size, matching §6's
// "fails if n > 2^MAX_LOG" contract. gnark-crypto's bls12-381 fr has a
// two-adicity of 32; we cap well below that for a library meant to run
// without a huge precomputed root table.
const MaxLogSize = 24

// Domain is the evaluation domain over which the composer's witness
// polynomials are interpolated.
type Domain struct {
	inner      *fft.Domain
	size       uint64
	sizeInv    field.Element
	genInv     field.Element
	gen        field.Element
	cosetShift field.Element
}

// New builds a domain of size n, rounding up to the next power of two, per
// EvaluationDomain's constructor contract.
func New(n uint64) (*Domain, error) {
	if n == 0 {
		n = 1
	}
	inner := fft.NewDomain(n)
	if logSize := bits.Len64(inner.Cardinality - 1); logSize > MaxLogSize {
		return nil, fmt.Errorf("domain: padded size 2^%d exceeds max log size %d: %w", logSize, MaxLogSize, ErrDomainTooLarge)
	}

	d := &Domain{
		inner:      inner,
		size:       inner.Cardinality,
		sizeInv:    inner.CardinalityInv,
		gen:        inner.Generator,
		genInv:     inner.GeneratorInv,
		cosetShift: inner.FrMultiplicativeGen,
	}
	return d, nil
}

// ErrDomainTooLarge is returned by New when the requested size exceeds
// MaxLogSize.
var ErrDomainTooLarge = fmt.Errorf("domain: requested size too large")

// Size returns n, the (padded) domain cardinality.
func (d *Domain) Size() uint64 { return d.size }

// SizeInv returns n^-1.
func (d *Domain) SizeInv() field.Element { return d.sizeInv }

// Generator returns ω, the primitive n-th root of unity.
func (d *Domain) Generator() field.Element { return d.gen }

// GeneratorInv returns ω^-1.
func (d *Domain) GeneratorInv() field.Element { return d.genInv }

// CosetShift returns the coset generator used to separate the four
// permutation columns (composer/permutation.go's k1; k2, k3 are its
// square and cube).
func (d *Domain) CosetShift() field.Element { return d.cosetShift }

// Element returns ω^i.
func (d *Domain) Element(i uint64) field.Element {
	var e field.Element
	e.Exp(d.gen, new(big.Int).SetUint64(i%d.size))
	return e
}
