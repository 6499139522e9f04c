package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/domain"
	"github.com/plonkforge/turboplonk/field"
)

func TestNewRoundsUpToPowerOfTwo(t *testing.T) {
	d, err := domain.New(5)
	require.NoError(t, err)
	require.Equal(t, uint64(8), d.Size())
}

func TestGeneratorIsPrimitiveRoot(t *testing.T) {
	d, err := domain.New(8)
	require.NoError(t, err)

	var got field.Element
	gen := d.Generator()
	got.Exp(gen, new(big.Int).SetUint64(d.Size()))
	one := field.One()
	require.True(t, got.Equal(&one))
	half := d.Element(d.Size() / 2)
	require.False(t, half.Equal(&one))
}

func TestGeneratorInvIsInverse(t *testing.T) {
	d, err := domain.New(16)
	require.NoError(t, err)

	gen := d.Generator()
	genInv := d.GeneratorInv()
	var prod field.Element
	prod.Mul(&gen, &genInv)
	require.True(t, prod.IsOne())
}

func TestSizeInvIsInverse(t *testing.T) {
	d, err := domain.New(16)
	require.NoError(t, err)

	n := field.From(d.Size())
	var prod field.Element
	sizeInv := d.SizeInv()
	prod.Mul(&n, &sizeInv)
	require.True(t, prod.IsOne())
}

func TestTooLargeRejected(t *testing.T) {
	_, err := domain.New(uint64(1) << (domain.MaxLogSize + 1))
	require.ErrorIs(t, err, domain.ErrDomainTooLarge)
}

