package plonkverifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/domain"
	"github.com/plonkforge/turboplonk/field"
)

func TestDeltaVanishesOnQuadDigits(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3} {
		d := delta(field.From(v))
		require.True(t, d.IsZero())
	}
}

func TestDeltaNonzeroOutsideQuadDigits(t *testing.T) {
	d := delta(field.From(4))
	require.False(t, d.IsZero())
}

func TestFieldPow(t *testing.T) {
	got := fieldPow(field.From(2), 10)
	want := field.From(1024)
	require.True(t, got.Equal(&want))

	one := fieldPow(field.From(7), 0)
	require.True(t, one.IsOne())
}

func TestEvaluatePublicInputAllZeroIsZero(t *testing.T) {
	dom, err := domain.New(8)
	require.NoError(t, err)

	zeta := field.From(5)
	zhZeta := sub(fieldPow(zeta, dom.Size()), field.One())
	out, err := evaluatePublicInput(dom, map[uint64]field.Element{}, zeta, zhZeta, 1)
	require.NoError(t, err)
	require.True(t, out.IsZero())
}

// TestEvaluatePublicInputMatchesLagrangeBasis checks the barycentric
// implementation against the textbook closed form for a single nonzero
// term: PI(zeta) = value * L_idx(zeta), L_idx(zeta) = (omega^idx/n) *
// (zeta^n-1)/(zeta-omega^idx).
func TestEvaluatePublicInputMatchesLagrangeBasis(t *testing.T) {
	dom, err := domain.New(8)
	require.NoError(t, err)

	idx := uint64(3)
	zeta := field.From(99) // not a root of unity of this domain
	v := field.From(77)

	n := dom.Size()
	one := field.One()
	zetaN := fieldPow(zeta, n)
	var zhZeta field.Element
	zhZeta.Sub(&zetaN, &one)

	omegaI := dom.Element(idx)
	var diff, denom, frac, want field.Element
	diff.Sub(&zeta, &omegaI)
	nF := field.From(n)
	denom.Mul(&diff, &nF)
	var denomInv field.Element
	denomInv.Inverse(&denom)
	frac.Mul(&zhZeta, &denomInv)
	frac.Mul(&frac, &omegaI)
	want.Mul(&frac, &v)

	out, err := evaluatePublicInput(dom, map[uint64]field.Element{idx: v}, zeta, zhZeta, 2)
	require.NoError(t, err)
	require.True(t, out.Equal(&want))
}

func TestWidgetContributionMerge(t *testing.T) {
	a := widgetContribution{scalars: []field.Element{field.From(1)}}
	b := widgetContribution{scalars: []field.Element{field.From(2)}}
	m := a.merge(b)
	require.Len(t, m.scalars, 2)
}
