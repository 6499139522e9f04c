package composer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/composer"
	"github.com/plonkforge/turboplonk/field"
)

func TestNewSeedsZeroAndOne(t *testing.T) {
	c := composer.New()
	require.True(t, c.Witness(composer.ZERO).IsZero())
	require.True(t, c.Witness(composer.ONE).IsOne())
	require.Equal(t, 2, c.NumWires())
	require.Equal(t, 4, c.NumGates()) // 2 constant asserts + 2 dummy gates
}

func TestAppendWitnessGrowsTable(t *testing.T) {
	c := composer.New()
	w := c.AppendWitness(field.From(42))
	require.Equal(t, field.From(42), c.Witness(w))
	require.Equal(t, 3, c.NumWires())
}

func TestAssertEqualSatisfied(t *testing.T) {
	c := composer.New()
	a := c.AppendWitness(field.From(7))
	b := c.AppendWitness(field.From(7))
	require.NotPanics(t, func() { c.AssertEqual(a, b) })
}

func TestAppendPublicRegistersInstance(t *testing.T) {
	c := composer.New()
	v := field.From(99)
	w := c.AppendPublic(v)
	require.Equal(t, v, c.Witness(w))

	found := false
	for _, instV := range c.Instance() {
		var neg field.Element
		neg.Sub(&field.Element{}, &instV)
		if neg.Equal(&v) {
			found = true
		}
	}
	require.True(t, found, "public input register should hold -v at some gate")
}

func TestGateAddSolvesOutput(t *testing.T) {
	c := composer.New()
	a := c.AppendWitness(field.From(3))
	b := c.AppendWitness(field.From(4))
	one := field.One()
	sum := c.GateAdd(composer.Constraint{WA: a, WB: b, QL: one, QR: one})
	require.Equal(t, field.From(7), c.Witness(sum))
}

func TestGateMulSolvesOutput(t *testing.T) {
	c := composer.New()
	a := c.AppendWitness(field.From(3))
	b := c.AppendWitness(field.From(4))
	one := field.One()
	prod := c.GateMul(composer.Constraint{WA: a, WB: b, QM: one})
	require.Equal(t, field.From(12), c.Witness(prod))
}

func TestAppendEvaluatedOutputPanicsOnZeroQO(t *testing.T) {
	c := composer.New()
	a := c.AppendWitness(field.From(1))
	require.Panics(t, func() {
		c.AppendEvaluatedOutput(composer.Constraint{WA: a})
	})
}

func TestFreezeBlocksMutation(t *testing.T) {
	c := composer.New()
	c.Freeze()
	require.Panics(t, func() { c.AppendWitness(field.One()) })
}

func TestIsPublicWireTracksAppendPublic(t *testing.T) {
	c := composer.New()
	priv := c.AppendWitness(field.From(5))
	pub := c.AppendPublic(field.From(9))

	require.False(t, c.IsPublicWire(priv))
	require.True(t, c.IsPublicWire(pub))
}

func TestPermutationEveryWireHasPlacement(t *testing.T) {
	c := composer.New()
	a := c.AppendWitness(field.From(1))
	b := c.AppendWitness(field.From(2))
	c.AssertEqual(a, b)

	require.NotEmpty(t, c.Permutation().Positions(composer.ZERO))
	require.NotEmpty(t, c.Permutation().Positions(composer.ONE))
	require.NotEmpty(t, c.Permutation().Positions(a))
}
