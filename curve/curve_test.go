package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/curve"
	"github.com/plonkforge/turboplonk/field"
)

func TestIdentityIsNeutral(t *testing.T) {
	g := curve.Generator()
	id := curve.Identity()

	sum := curve.Add(g, id)
	require.True(t, sum.X.Equal(&g.X))
	require.True(t, sum.Y.Equal(&g.Y))
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := curve.Generator()
	doubled := curve.Double(g)
	added := curve.Add(g, g)
	require.True(t, doubled.X.Equal(&added.X))
	require.True(t, doubled.Y.Equal(&added.Y))
}

func TestScalarMulSmallScalars(t *testing.T) {
	g := curve.Generator()
	zero := curve.ScalarMul(g, field.Zero())
	id := curve.Identity()
	require.True(t, zero.X.Equal(&id.X))
	require.True(t, zero.Y.Equal(&id.Y))

	one := curve.ScalarMul(g, field.One())
	require.True(t, one.X.Equal(&g.X))
	require.True(t, one.Y.Equal(&g.Y))

	two := curve.ScalarMul(g, field.From(2))
	doubled := curve.Double(g)
	require.True(t, two.X.Equal(&doubled.X))
	require.True(t, two.Y.Equal(&doubled.Y))
}

func TestWNAFWindow2Digits(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 255, 65535} {
		digits, err := curve.WNAFWindow2(field.From(v))
		require.NoError(t, err)
		for _, d := range digits {
			require.Contains(t, []int8{-1, 0, 1}, d)
		}
	}
}

func TestPowersOfTwoTableLength(t *testing.T) {
	table := curve.PowersOfTwoTable(curve.Generator())
	require.Len(t, table, field.NumBits+1)
}
