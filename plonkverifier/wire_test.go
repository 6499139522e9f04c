package plonkverifier_test

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/field"
	"github.com/plonkforge/turboplonk/plonkverifier"
)

func sampleProof() *plonkverifier.Proof {
	_, _, g1, _ := bls12381.Generators()

	mk := func(k uint64) bls12381.G1Affine {
		var aff bls12381.G1Affine
		aff.ScalarMultiplication(&g1, new(big.Int).SetUint64(k))
		return aff
	}

	return &plonkverifier.Proof{
		AComm: mk(1), BComm: mk(2), CComm: mk(3), DComm: mk(4),
		ZComm: mk(5),
		TLowComm: mk(6), TMidComm: mk(7), THighComm: mk(8), T4Comm: mk(9),
		WZComm: mk(10), WZWComm: mk(11),
		Evaluations: plonkverifier.Evaluations{
			AEval: field.From(101), BEval: field.From(102), CEval: field.From(103), DEval: field.From(104),
			ANext: field.From(105), BNext: field.From(106), DNext: field.From(107),
			SSigma1: field.From(108), SSigma2: field.From(109), SSigma3: field.From(110),
			QArith: field.From(111), QC: field.From(112), QL: field.From(113), QR: field.From(114),
			PermEval: field.From(115), RPolyEval: field.From(116),
		},
	}
}

func TestProofWireRoundtrip(t *testing.T) {
	p := sampleProof()
	b := p.Bytes()
	require.Len(t, b, plonkverifier.WireSize)

	got, err := plonkverifier.ProofFromBytes(b)
	require.NoError(t, err)
	require.True(t, cmp.Equal(*p, *got, cmp.Comparer(func(a, b field.Element) bool { return a.Equal(&b) })))
}

func TestProofFromBytesRejectsWrongLength(t *testing.T) {
	_, err := plonkverifier.ProofFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestProofCBORRoundtrip(t *testing.T) {
	p := sampleProof()
	b, err := p.MarshalCBOR()
	require.NoError(t, err)

	var got plonkverifier.Proof
	require.NoError(t, got.UnmarshalCBOR(b))

	require.True(t, cmp.Equal(*p, got, cmp.Comparer(func(a, b field.Element) bool { return a.Equal(&b) })))
}
