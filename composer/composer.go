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

// Package composer implements the turbo-PLONK circuit builder: an
// append-only witness table, width-4 constraint emission, and the
// permutation bookkeeping that backs the copy-constraint argument (spec
// §3, §4.1, §4.2).
package composer

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/plonkforge/turboplonk/field"
)

// Composer is the single-threaded, stateful circuit builder. It owns the
// witness table exclusively; WireIDs handed out by a Composer are only
// valid against that same instance (§5).
type Composer struct {
	witness      []field.Element
	constraints  []Constraint
	instance     map[int]field.Element
	perm         *PermutationBuilder
	publicWires  *bitset.BitSet
	log          zerolog.Logger
	frozen       bool
}

// Option configures a new Composer.
type Option func(*Composer)

// WithLogger attaches a structured logger; the zero value is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(c *Composer) { c.log = l }
}

// New creates a Composer and seeds it per §3's lifecycle: ZERO and ONE are
// hard-wired at indices 0 and 1 and asserted equal to the constants 0 and
// 1, then two dummy gates are appended, so four gates sit at indices 0-3
// and the quotient polynomial is never identically zero and the
// permutation is not the identity (§3).
func New(opts ...Option) *Composer {
	c := &Composer{
		instance:    make(map[int]field.Element),
		perm:        NewPermutationBuilder(),
		publicWires: bitset.New(0),
		log:         zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.seedZeroAndOne()
	c.seedDummyGates()
	return c
}

func (c *Composer) seedZeroAndOne() {
	zero := c.AppendWitness(field.Zero())
	one := c.AppendWitness(field.One())
	if zero != ZERO || one != ONE {
		panic("composer: ZERO/ONE must be the first two allocated wires")
	}
	c.AssertEqualConstant(ZERO, field.Zero(), nil)
	c.AssertEqualConstant(ONE, field.One(), nil)
}

// seedDummyGates lays down two arithmetic gates over the ONE wire whose
// q_m, q_l, q_r, q_o and q_c selectors are all nonzero and which the ONE
// wire satisfies, reproducing the original composer's blinding
// rows (SPEC_FULL.md §E.1): without them the low-degree coefficients of
// the quotient polynomial and of the permutation argument could vanish for
// trivial circuits.
func (c *Composer) seedDummyGates() {
	one := field.One()
	negOne := field.Zero()
	negOne.Sub(&negOne, &one)
	two := field.From(2)
	var negTwo field.Element
	negTwo.Neg(&two)

	c.AppendGate(Constraint{
		WA: ONE, WB: ONE, WO: ONE, WD: ONE,
		QM: one, QL: one, QR: one, QO: negOne, QC: negTwo,
	})
	c.AppendGate(Constraint{
		WA: ONE, WB: ONE, WO: ONE, WD: ONE,
		QM: negOne, QL: negOne, QR: negOne, QO: one, QC: two,
	})
}

func (c *Composer) mustNotBeFrozen() {
	if c.frozen {
		panic("composer: mutated after Freeze")
	}
}

// Freeze stops further mutation. Preprocessing consumes a Composer exactly
// once (§3 Lifecycle); calling any mutating method afterwards panics.
func (c *Composer) Freeze() { c.frozen = true }

// NumWires returns the size of the witness table.
func (c *Composer) NumWires() int { return len(c.witness) }

// NumGates returns m = |constraints|, the unpadded gate count.
func (c *Composer) NumGates() int { return len(c.constraints) }

// Witness returns the value of wire w. Panics if w is out of range, since
// that indicates a programmer error, not a runtime condition.
func (c *Composer) Witness(w WireID) field.Element {
	return c.witness[w]
}

// Constraints returns the constraint table built so far.
func (c *Composer) Constraints() []Constraint { return c.constraints }

// Instance returns the sparse public-input register, gate index -> value.
func (c *Composer) Instance() map[int]field.Element { return c.instance }

// Permutation returns the permutation builder backing the copy constraints.
func (c *Composer) Permutation() *PermutationBuilder { return c.perm }

// IsPublicWire reports whether w was allocated by AppendPublic or
// AppendPublicPoint, i.e. whether the verifier supplies its value at
// verification time rather than the prover binding it into the witness
// alone.
func (c *Composer) IsPublicWire(w WireID) bool {
	return c.publicWires.Test(uint(w))
}

// AppendWitness pushes v onto the witness table and registers a new wire in
// the permutation builder. O(1), emits no gate.
func (c *Composer) AppendWitness(v field.Element) WireID {
	c.mustNotBeFrozen()
	id := WireID(len(c.witness))
	c.witness = append(c.witness, v)
	c.perm.RegisterWire(id)
	return id
}

// AppendCustomGate appends c to the constraint table. If c.PublicInput is
// set, it is registered in the instance map at the new gate index. The
// permutation builder is told that c's four wires sit at this gate.
func (c *Composer) AppendCustomGate(cst Constraint) int {
	c.mustNotBeFrozen()
	idx := len(c.constraints)
	c.constraints = append(c.constraints, cst)
	if cst.PublicInput != nil {
		c.instance[idx] = *cst.PublicInput
	}
	c.perm.AddWitnessesToMap(cst.WA, cst.WB, cst.WO, cst.WD, idx)
	return idx
}

// AppendGate is AppendCustomGate with QArith forced to 1 — the shorthand
// for a plain arithmetic row.
func (c *Composer) AppendGate(cst Constraint) int {
	cst.QArith = field.One()
	return c.AppendCustomGate(cst)
}

// AppendConstant allocates a wire holding k and asserts wire == k.
func (c *Composer) AppendConstant(k field.Element) WireID {
	w := c.AppendWitness(k)
	c.AssertEqualConstant(w, k, nil)
	return w
}

// AppendPublic allocates a wire holding v and asserts wire == 0 with the
// public input set to -v, so the verifier supplies v at proving time. The
// row's own q_c stays zero; -v is carried only in the public-input
// register, matching original_source/src/lib.rs's
// assert_equal_constant(witness, 0, Some(-public)) — the verifier's own
// PI(ζ) term is what folds -v into the linearization identity, so baking
// it into q_c as well would double-count it.
func (c *Composer) AppendPublic(v field.Element) WireID {
	w := c.AppendWitness(v)
	var negV field.Element
	negV.Sub(&field.Element{}, &v)
	one := field.One()
	c.AppendGate(Constraint{
		WA: w,
		QL: one,
		QC: field.Zero(),
	}.WithPublicInput(negV))
	c.publicWires.Set(uint(w))
	return w
}

// AppendPoint allocates wires for an affine point (x, y) with no assertion.
func (c *Composer) AppendPoint(x, y field.Element) WitnessPoint {
	return WitnessPoint{X: c.AppendWitness(x), Y: c.AppendWitness(y)}
}

// AppendConstantPoint allocates and asserts a constant point.
func (c *Composer) AppendConstantPoint(x, y field.Element) WitnessPoint {
	return WitnessPoint{X: c.AppendConstant(x), Y: c.AppendConstant(y)}
}

// AppendPublicPoint allocates a public point, registering two public
// inputs (x and y), per §4.1.
func (c *Composer) AppendPublicPoint(x, y field.Element) WitnessPoint {
	return WitnessPoint{X: c.AppendPublic(x), Y: c.AppendPublic(y)}
}

// AssertEqual emits q_l=1, q_r=-1, w_a=a, w_b=b, constraining a == b.
func (c *Composer) AssertEqual(a, b WireID) {
	one := field.One()
	var negOne field.Element
	negOne.Sub(&field.Element{}, &one)
	c.AppendGate(Constraint{WA: a, WB: b, QL: one, QR: negOne})
}

// AssertEqualConstant emits q_l=1, q_c=-k, w_a=a, constraining a == k, with
// an optional public input.
func (c *Composer) AssertEqualConstant(a WireID, k field.Element, pi *field.Element) {
	one := field.One()
	var negK field.Element
	negK.Sub(&field.Element{}, &k)
	cst := Constraint{WA: a, QL: one, QC: negK}
	if pi != nil {
		cst = cst.WithPublicInput(*pi)
	}
	c.AppendGate(cst)
}

// AppendEvaluatedOutput solves a Constraint with q_o = -1 (or any nonzero
// q_o) for the output wire's value
//
//	o = q_m*a*b + q_l*a + q_r*b + q_d*d + q_c + pi
//
// divided by -q_o, and allocates it. It panics if q_o is zero, per §4.1 and
// the CircuitMisuse contract of §7.
func (c *Composer) AppendEvaluatedOutput(s Constraint) WireID {
	if s.QO.IsZero() {
		panic("composer: append_evaluated_output called with q_o = 0")
	}
	a, b, d := c.witness[s.WA], c.witness[s.WB], c.witness[s.WD]

	var eval, t field.Element
	t.Mul(&s.QM, &a)
	t.Mul(&t, &b)
	eval.Add(&eval, &t)
	t.Mul(&s.QL, &a)
	eval.Add(&eval, &t)
	t.Mul(&s.QR, &b)
	eval.Add(&eval, &t)
	t.Mul(&s.QD, &d)
	eval.Add(&eval, &t)
	eval.Add(&eval, &s.QC)
	if s.PublicInput != nil {
		eval.Add(&eval, s.PublicInput)
	}

	var qoInv field.Element
	qoInv.Inverse(&s.QO)
	var out field.Element
	out.Neg(&eval)
	out.Mul(&out, &qoInv)
	return c.AppendWitness(out)
}

// GateAdd sets q_o = -1, solves for and allocates the output wire, and
// emits the completed gate. s.QO is ignored and overwritten.
func (c *Composer) GateAdd(s Constraint) WireID {
	one := field.One()
	var negOne field.Element
	negOne.Sub(&field.Element{}, &one)
	s.QO = negOne
	out := c.AppendEvaluatedOutput(s)
	s.WO = out
	c.AppendGate(s)
	return out
}

// GateMul is GateAdd for a purely multiplicative row (q_m set, q_l=q_r=0
// typically left to the caller).
func (c *Composer) GateMul(s Constraint) WireID {
	return c.GateAdd(s)
}
