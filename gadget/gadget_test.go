package gadget_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/composer"
	"github.com/plonkforge/turboplonk/curve"
	"github.com/plonkforge/turboplonk/field"
	"github.com/plonkforge/turboplonk/gadget"
)

func TestBooleanAccepts0And1(t *testing.T) {
	c := composer.New()
	zero := c.AppendWitness(field.Zero())
	one := c.AppendWitness(field.One())
	require.NotPanics(t, func() { gadget.Boolean(c, zero) })
	require.NotPanics(t, func() { gadget.Boolean(c, one) })
}

// TestDecompositionRoundtrip is property 6: for N <= 254, sum(2^i*b_i) == x.
func TestDecompositionRoundtrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("decomposition reconstructs the witness", prop.ForAll(
		func(v uint64) bool {
			c := composer.New()
			w := c.AppendWitness(field.From(v))
			bits := gadget.Decomposition(c, w, 64)

			acc := field.Zero()
			for i, bw := range bits {
				bv := c.Witness(bw)
				if bv.IsZero() {
					continue
				}
				p := field.PowOf2(i)
				acc.Add(&acc, &p)
			}
			want := field.From(v)
			return acc.Equal(&want)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestDecompositionExactValue(t *testing.T) {
	c := composer.New()
	w := c.AppendWitness(field.From(0b1011))
	bits := gadget.Decomposition(c, w, 8)
	require.Len(t, bits, 8)
	require.True(t, c.Witness(bits[0]).IsOne())  // bit 0
	require.True(t, c.Witness(bits[1]).IsOne())  // bit 1
	require.True(t, c.Witness(bits[2]).IsZero()) // bit 2
	require.True(t, c.Witness(bits[3]).IsOne())  // bit 3
}

func TestDecompositionPanicsOnBadN(t *testing.T) {
	c := composer.New()
	w := c.AppendWitness(field.Zero())
	require.Panics(t, func() { gadget.Decomposition(c, w, 0) })
	require.Panics(t, func() { gadget.Decomposition(c, w, 300) })
}

// TestLogicCorrectness is property 7: the emitted output wire matches the
// plain bitwise operation, masked to num_bits.
func TestLogicCorrectness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	properties.Property("logic AND/XOR match masked bitwise ops", prop.ForAll(
		func(a, b uint32, isXor bool) bool {
			c := composer.New()
			wa := c.AppendWitness(field.From(uint64(a)))
			wb := c.AppendWitness(field.From(uint64(b)))
			out := gadget.Logic(c, wa, wb, 32, isXor)

			var want uint64
			if isXor {
				want = uint64(a ^ b)
			} else {
				want = uint64(a & b)
			}
			wantF := field.From(want)
			got := c.Witness(out)
			return got.Equal(&wantF)
		},
		gen.UInt32(),
		gen.UInt32(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestLogicZeroBitsEmitsOnlyPaddingRow(t *testing.T) {
	c := composer.New()
	wa := c.AppendWitness(field.From(5))
	wb := c.AppendWitness(field.From(9))
	before := c.NumGates()
	out := gadget.Logic(c, wa, wb, 0, false)
	require.Equal(t, before+1, c.NumGates())
	require.True(t, c.Witness(out).IsZero())
}

func TestLogicPanicsOnOddBits(t *testing.T) {
	c := composer.New()
	wa := c.AppendWitness(field.Zero())
	wb := c.AppendWitness(field.Zero())
	require.Panics(t, func() { gadget.Logic(c, wa, wb, 55, false) })
}

// TestRangeGateCountStable is property 5: gate count depends only on
// num_bits, not the witness value.
func TestRangeGateCountStable(t *testing.T) {
	for _, numBits := range []int{8, 16, 32, 64} {
		c1 := composer.New()
		w1 := c1.AppendWitness(field.Zero())
		before1 := c1.NumGates()
		gadget.Range(c1, w1, numBits)
		count1 := c1.NumGates() - before1

		c2 := composer.New()
		w2 := c2.AppendWitness(field.From(^uint64(0) >> 1))
		before2 := c2.NumGates()
		gadget.Range(c2, w2, numBits)
		count2 := c2.NumGates() - before2

		require.Equal(t, count1, count2)
	}
}

func TestRangePanicsOnOddBits(t *testing.T) {
	c := composer.New()
	w := c.AppendWitness(field.Zero())
	require.Panics(t, func() { gadget.Range(c, w, 7) })
}

// TestSelection is property 8.
func TestSelection(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("select(bit,a,b) == bit ? a : b", prop.ForAll(
		func(bit bool, a, b uint64) bool {
			c := composer.New()
			var bitWire composer.WireID
			if bit {
				bitWire = c.AppendWitness(field.One())
			} else {
				bitWire = c.AppendWitness(field.Zero())
			}
			wa := c.AppendWitness(field.From(a))
			wb := c.AppendWitness(field.From(b))
			out := gadget.Select(c, bitWire, wa, wb)

			want := b
			if bit {
				want = a
			}
			wantF := field.From(want)
			got := c.Witness(out)
			return got.Equal(&wantF)
		},
		gen.Bool(),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestPointAddition is property 9.
func TestPointAddition(t *testing.T) {
	c := composer.New()
	g := curve.Generator()
	p := composer.WitnessPoint{X: c.AppendConstant(g.X), Y: c.AppendConstant(g.Y)}

	sum := gadget.AddPoint(c, p, p)
	want := curve.Add(g, g)

	gotX := c.Witness(sum.X)
	gotY := c.Witness(sum.Y)
	require.True(t, gotX.Equal(&want.X))
	require.True(t, gotY.Equal(&want.Y))
}

func TestFixedBaseMulMatchesCurveScalarMul(t *testing.T) {
	c := composer.New()
	g := curve.Generator()
	scalar := field.From(12345)
	w := c.AppendWitness(scalar)

	point, err := gadget.MulGenerator(c, w, g)
	require.NoError(t, err)

	want := curve.ScalarMul(g, scalar)
	gotX := c.Witness(point.X)
	gotY := c.Witness(point.Y)
	require.True(t, gotX.Equal(&want.X))
	require.True(t, gotY.Equal(&want.Y))
}
