package plonkverifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/field"
)

func TestArithmeticContributionScalars(t *testing.T) {
	e := Evaluations{
		AEval: field.From(2), BEval: field.From(3), CEval: field.From(5), DEval: field.From(7),
		QArith: field.From(9),
	}
	var vk VerifierKey

	c := arithmeticContribution(vk, e)
	require.Len(t, c.scalars, 6)
	require.Len(t, c.points, 6)

	wantAB := field.From(2 * 3 * 9)
	require.True(t, c.scalars[0].Equal(&wantAB))
	wantA := field.From(2 * 9)
	require.True(t, c.scalars[1].Equal(&wantA))
	wantQC := e.QArith
	require.True(t, c.scalars[5].Equal(&wantQC))
}

func TestRangeContributionZeroWhenQuadsAreValid(t *testing.T) {
	// d=0, c=1 (c - 4*d = 1, a valid digit), b=2 (b-4c = 2-4=-2, invalid) —
	// pick all-consistent small digits so every delta term vanishes.
	e := Evaluations{
		DEval: field.From(0),
		CEval: field.From(1), // c - 4*d = 1
		BEval: field.From(4), // b - 4*c = 0
		AEval: field.From(16), // a - 4*b = 0
		DNext: field.From(65), // d_next - 4*a = 1
	}
	var vk VerifierKey
	c := rangeContribution(vk, field.From(7), e)
	require.Len(t, c.scalars, 1)
	require.True(t, c.scalars[0].IsZero())
}

func TestRangeContributionNonzeroOnInvalidDigit(t *testing.T) {
	e := Evaluations{
		DEval: field.From(0),
		CEval: field.From(9), // c - 4*d = 9, not in {0,1,2,3}
	}
	var vk VerifierKey
	c := rangeContribution(vk, field.From(7), e)
	require.False(t, c.scalars[0].IsZero())
}

func TestLogicContributionZeroWhenConsistent(t *testing.T) {
	e := Evaluations{
		AEval: field.From(2), ANext: field.From(4*2 + 1),
		BEval: field.From(3), BNext: field.From(4*3 + 2),
		DEval: field.From(0), DNext: field.From(0),
		CEval: field.From(1 * 2), // matches la*lb = (a_next-4a)*(b_next-4b) exactly
	}
	var vk VerifierKey
	c := logicContribution(vk, field.From(5), e)
	require.True(t, c.scalars[0].IsZero())
	require.True(t, c.scalars[1].IsZero())
}

func TestFixedBaseContributionZeroForValidDigit(t *testing.T) {
	// entry = d_next - 2*d = 1 (a valid {-1,0,1} digit).
	e := Evaluations{
		DEval: field.From(0), DNext: field.From(1),
		QL: field.From(11), QR: field.From(13), // x_beta, y_beta
		AEval: field.From(2), ANext: field.From(13),  // a_next = a + entry*x_beta
		BEval: field.From(3), BNext: field.From(16), // b_next = b + entry*y_beta
	}
	var vk VerifierKey
	c := fixedBaseContribution(vk, field.From(5), e)
	require.True(t, c.scalars[0].IsZero())
}
