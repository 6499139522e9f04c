package plonkverifier

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"

	"github.com/plonkforge/turboplonk/field"
)

// fixedChallengeTranscript returns a constant challenge scalar regardless
// of label, enough to exercise flatten's folding arithmetic.
type fixedChallengeTranscript struct {
	challenge field.Element
}

func (fixedChallengeTranscript) AppendScalar(string, field.Element)         {}
func (fixedChallengeTranscript) AppendCommitment(string, bls12381.G1Affine) {}
func (fixedChallengeTranscript) CircuitDomainSep(uint64)                    {}
func (f fixedChallengeTranscript) ChallengeScalar(string) field.Element     { return f.challenge }

func TestAggregateProofFlatten(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	mk := func(k uint64) bls12381.G1Affine {
		var aff bls12381.G1Affine
		aff.ScalarMultiplication(&g1, new(big.Int).SetUint64(k))
		return aff
	}

	a := AggregateProof{
		Witness: mk(99),
		parts: []aggregatePart{
			{eval: field.From(5), commitment: mk(1)},
			{eval: field.From(7), commitment: mk(2)},
		},
	}

	v := field.From(3)
	flat, err := a.flatten(fixedChallengeTranscript{challenge: v})
	require.NoError(t, err)

	wantEval := add(field.From(5), mul(v, field.From(7)))
	require.True(t, flat.Eval.Equal(&wantEval))

	p1, p2 := mk(1), mk(2)
	var vMk2 bls12381.G1Affine
	vMk2.ScalarMultiplication(&p2, fieldToBigInt(v))
	var wantComm bls12381.G1Affine
	wantComm.Add(&p1, &vMk2)

	wantCommBytes := wantComm.Bytes()
	gotCommBytes := flat.Commitment.Bytes()
	require.Equal(t, wantCommBytes[:], gotCommBytes[:])

	wantWitnessBytes := a.Witness.Bytes()
	gotWitnessBytes := flat.Witness.Bytes()
	require.Equal(t, wantWitnessBytes[:], gotWitnessBytes[:])
}
