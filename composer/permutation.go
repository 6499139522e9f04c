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

package composer

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/iop"

	"github.com/plonkforge/turboplonk/field"
)

// Placement records a single (gate, column) position a wire occupies.
type Placement struct {
	Gate   int
	Column Column
}

// PermutationBuilder accumulates, for every WireID, the ordered list of
// positions it occupies across the constraint table. Unlike the teacher's
// width-3 gnark permutation (which derives positions implicitly from the
// SparseR1CS iterator), this builder is an explicit arena keyed by WireID
// because the composer exposes WireIDs to callers directly (§4.2).
type PermutationBuilder struct {
	positions map[WireID][]Placement
}

// NewPermutationBuilder returns an empty builder.
func NewPermutationBuilder() *PermutationBuilder {
	return &PermutationBuilder{positions: make(map[WireID][]Placement)}
}

// RegisterWire ensures w has an entry in the builder, even with zero
// placements (used when a wire is allocated but not yet used in a gate).
func (p *PermutationBuilder) RegisterWire(w WireID) {
	if _, ok := p.positions[w]; !ok {
		p.positions[w] = nil
	}
}

// AddWitnessesToMap records that wa, wb, wo, wd sit at gate in columns
// a, b, o, d respectively.
func (p *PermutationBuilder) AddWitnessesToMap(wa, wb, wo, wd WireID, gate int) {
	p.positions[wa] = append(p.positions[wa], Placement{Gate: gate, Column: ColA})
	p.positions[wb] = append(p.positions[wb], Placement{Gate: gate, Column: ColB})
	p.positions[wo] = append(p.positions[wo], Placement{Gate: gate, Column: ColO})
	p.positions[wd] = append(p.positions[wd], Placement{Gate: gate, Column: ColD})
}

// Positions returns the recorded placements for w, in insertion order.
func (p *PermutationBuilder) Positions(w WireID) []Placement {
	return p.positions[w]
}

// BuildSigmas produces the four sigma polynomials (in Lagrange form over a
// domain of size n) that rotate each wire's recorded positions in cyclic
// order, one slot per column, following the same "act on <g> || u<g> ||
// u^2<g> || u^3<g>" construction the teacher's width-3 permutation uses
// (backend/plonk/bls12-377/setup.go computePermutationPolynomials),
// generalized from 3 to 4 columns for the width-4 gate.
func (p *PermutationBuilder) BuildSigmas(n uint64, dom *fft.Domain) [4]*iop.Polynomial {
	// support[c*n+i] = coset_c * omega^i, for c in {0,1,2,3}
	support := make([]field.Element, 4*n)
	support[0].SetOne()
	var cosetShift field.Element
	cosetShift.Set(&dom.FrMultiplicativeGen)
	shifts := [4]field.Element{field.One(), cosetShift, field.Element{}, field.Element{}}
	shifts[2].Square(&cosetShift)
	shifts[3].Mul(&shifts[2], &cosetShift)
	for c := 0; c < 4; c++ {
		support[uint64(c)*n] = shifts[c]
		for i := uint64(1); i < n; i++ {
			support[uint64(c)*n+i].Mul(&support[uint64(c)*n+i-1], &dom.Generator)
		}
	}

	// support[column*n + gate] is the value each position would hold if
	// the permutation were the identity.
	colOf := func(col Column) int {
		switch col {
		case ColA:
			return 0
		case ColB:
			return 1
		case ColO:
			return 2
		default:
			return 3
		}
	}

	// Positions are flat indices c*n+i; next[c*n+i] is the permutation
	// value to place there, starting from the identity.
	next := make([]field.Element, 4*n)
	copy(next, support)

	for _, placements := range p.positions {
		if len(placements) == 0 {
			continue
		}
		// rotate placements cyclically: position k points to position k+1,
		// the last wraps to the first.
		flat := make([]int, len(placements))
		for k, pl := range placements {
			flat[k] = colOf(pl.Column)*int(n) + pl.Gate
		}
		for k := range flat {
			from := flat[k]
			to := flat[(k+1)%len(flat)]
			next[from] = support[to]
		}
	}

	lagReg := iop.Form{Basis: iop.Lagrange, Layout: iop.Regular}
	var sigmas [4]*iop.Polynomial
	for c := 0; c < 4; c++ {
		seg := make([]fr.Element, n)
		copy(seg, next[uint64(c)*n:uint64(c+1)*n])
		sigmas[c] = iop.NewPolynomial(&seg, lagReg)
	}
	return sigmas
}
