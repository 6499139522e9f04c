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
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/plonkforge/turboplonk/field"
)

// permutationContribution computes the copy-constraint widget's two
// terms: one scaled by the committed permutation polynomial z (supplied
// by the proof, not the verifier key — it is witness-dependent), and one
// scaled by the fourth sigma commitment (§9 open question 3: this module
// uses the genuine fourth sigma commitment, not a copy of the first).
//
//	term_z  = alpha * prod_i(w_i + beta*k_i*zeta + gamma) + alpha^2 * L1(zeta)
//	term_s4 = -alpha * beta * perm_eval * prod_i(w_i + beta*sigma_i + gamma)   (i = 1..3)
func permutationContribution(
	vk VerifierKey,
	zComm bls12381.G1Affine,
	k1, k2, k3 field.Element,
	alpha, beta, gamma, zeta, l1 field.Element,
	e Evaluations,
) widgetContribution {
	betaZeta := mul(beta, zeta)

	idA := add(add(e.AEval, betaZeta), gamma)
	idB := add(add(e.BEval, mul(betaZeta, k1)), gamma)
	idO := add(add(e.CEval, mul(betaZeta, k2)), gamma)
	idD := add(add(e.DEval, mul(betaZeta, k3)), gamma)

	prodIdentity := mul(mul(idA, idB), mul(idO, idD))

	alphaSq := mul(alpha, alpha)
	zScalar := add(mul(prodIdentity, alpha), mul(l1, alphaSq))

	sigA := add(add(e.AEval, mul(beta, e.SSigma1)), gamma)
	sigB := add(add(e.BEval, mul(beta, e.SSigma2)), gamma)
	sigO := add(add(e.CEval, mul(beta, e.SSigma3)), gamma)

	prodSigma := mul(mul(sigA, sigB), sigO)
	s4Scalar := neg(mul(mul(prodSigma, e.PermEval), mul(alpha, beta)))

	return widgetContribution{
		scalars: []field.Element{zScalar, s4Scalar},
		points:  []bls12381.G1Affine{zComm, vk.Permutation.S4},
	}
}
