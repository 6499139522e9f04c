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
)

// challenges bundles the Fiat-Shamir-derived scalars the widgets need,
// threaded through computeLinearizationCommitment instead of passed
// positionally (§4.8 step 8: "widgets are invoked in the stated order").
type challenges struct {
	alpha, beta, gamma           field.Element
	rangeSep, logicSep           field.Element
	fixedBaseSep, varBaseSep     field.Element
	zeta, l1                     field.Element
	cosetK1, cosetK2, cosetK3    field.Element
}

// computeLinearizationCommitment accumulates every widget's
// (scalars, points) contribution, in the order arithmetic, range, logic,
// fixed-base, variable-base, permutation (§4.8 step 8), and folds them
// into a single multi-scalar multiplication.
func computeLinearizationCommitment(vk VerifierKey, zComm bls12381.G1Affine, ch challenges, e Evaluations) (bls12381.G1Affine, error) {
	contribution := arithmeticContribution(vk, e)
	contribution = contribution.merge(rangeContribution(vk, ch.rangeSep, e))
	contribution = contribution.merge(logicContribution(vk, ch.logicSep, e))
	contribution = contribution.merge(fixedBaseContribution(vk, ch.fixedBaseSep, e))
	contribution = contribution.merge(variableBaseContribution(vk, ch.varBaseSep, e))
	contribution = contribution.merge(permutationContribution(
		vk, zComm, ch.cosetK1, ch.cosetK2, ch.cosetK3,
		ch.alpha, ch.beta, ch.gamma, ch.zeta, ch.l1, e,
	))

	var acc bls12381.G1Jac
	if _, err := acc.MultiExp(contribution.points, contribution.scalars, ecc.MultiExpConfig{}); err != nil {
		return bls12381.G1Affine{}, err
	}
	var out bls12381.G1Affine
	out.FromJacobian(&acc)
	return out, nil
}
