package field_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/field"
)

func TestZeroOne(t *testing.T) {
	require.True(t, field.Zero().IsZero())
	one := field.One()
	require.False(t, one.IsZero())
	require.Equal(t, "1", one.String())
}

func TestBytesRoundtrip(t *testing.T) {
	v := field.From(123456789)
	b := field.BytesLE(v)
	got, err := field.FromBytesLE(b[:])
	require.NoError(t, err)
	require.True(t, v.Equal(&got))
}

func TestFromBytesLERejectsWrongLength(t *testing.T) {
	_, err := field.FromBytesLE([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestPowOf2(t *testing.T) {
	require.True(t, field.PowOf2(0).IsOne())
	two := field.From(2)
	got := field.PowOf2(1)
	require.True(t, got.Equal(&two))

	eight := field.From(8)
	got3 := field.PowOf2(3)
	require.True(t, got3.Equal(&eight))
}

// TestToBitsRoundtrip is property 6's field-level building block: every
// bit wire ToBits produces reconstructs the original value via sum(2^i*b_i).
func TestToBitsRoundtrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("to_bits reconstructs via sum of powers of two", prop.ForAll(
		func(v uint64) bool {
			e := field.From(v)
			bits := field.ToBits(e)
			acc := field.Zero()
			for i := 0; i < 64; i++ {
				if !bits[i] {
					continue
				}
				p := field.PowOf2(i)
				acc.Add(&acc, &p)
			}
			return acc.Equal(&e)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
