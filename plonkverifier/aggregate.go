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

package plonkverifier

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/plonkforge/turboplonk/field"
	"github.com/plonkforge/turboplonk/internal/kzgshim"
)

// aggregatePart is one (evaluation, commitment) pair folded into an
// AggregateProof (§4.9).
type aggregatePart struct {
	eval       field.Element
	commitment bls12381.G1Affine
}

// AggregateProof bundles an opening witness with the ordered parts it
// opens, mirroring the original source's AggregateProof/flatten pair
// (proof_system/proof.rs, §4.9).
type AggregateProof struct {
	Witness bls12381.G1Affine
	parts   []aggregatePart
}

// flatten draws a single challenge v (label "aggregate_challenge") and
// combines the aggregate's parts into one flattened evaluation and one
// flattened commitment, via increasing powers of v.
func (a AggregateProof) flatten(t Transcript) (kzgshim.FlatAggregate, error) {
	v := t.ChallengeScalar("aggregate_challenge")

	combinedEval := field.Zero()
	scalars := make([]field.Element, len(a.parts))
	points := make([]bls12381.G1Affine, len(a.parts))

	power := field.One()
	for i, p := range a.parts {
		scalars[i] = power
		points[i] = p.commitment
		combinedEval = add(combinedEval, mul(power, p.eval))
		power = mul(power, v)
	}

	var acc bls12381.G1Jac
	if _, err := acc.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return kzgshim.FlatAggregate{}, err
	}
	var combinedCommitment bls12381.G1Affine
	combinedCommitment.FromJacobian(&acc)

	return kzgshim.FlatAggregate{
		Eval:       combinedEval,
		Commitment: combinedCommitment,
		Witness:    a.Witness,
	}, nil
}
