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
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/plonkforge/turboplonk/domain"
	"github.com/plonkforge/turboplonk/field"
	"github.com/plonkforge/turboplonk/internal/kzgshim"
)

// Verify runs the full proof-verification pipeline of §4.8: it replays
// every Fiat-Shamir challenge against t in the exact order the prover
// must have used, recomputes the quotient, linearization and
// public-input evaluations, and dispatches a single aggregated KZG batch
// check. pubInputs is the sparse gate-index -> value map the composer's
// Instance() produces.
func Verify(vk VerifierKey, t Transcript, ok kzgshim.OpeningKey, proof *Proof, pubInputs map[uint64]field.Element, opts ...Option) error {
	cfg := newVerifyConfig(opts...)

	dom, err := domain.New(vk.N)
	if err != nil {
		return fmt.Errorf("plonkverifier: %w", err)
	}
	cfg.log.Debug().Uint64("n", dom.Size()).Msg("domain built")

	t.CircuitDomainSep(dom.Size())

	t.AppendCommitment("a_w", proof.AComm)
	t.AppendCommitment("b_w", proof.BComm)
	t.AppendCommitment("c_w", proof.CComm)
	t.AppendCommitment("d_w", proof.DComm)

	beta := t.ChallengeScalar("beta")
	t.AppendScalar("beta", beta)
	gamma := t.ChallengeScalar("gamma")

	t.AppendCommitment("z", proof.ZComm)

	alpha := t.ChallengeScalar("alpha")
	rangeSep := t.ChallengeScalar("range_sep")
	logicSep := t.ChallengeScalar("logic_sep")
	fixedBaseSep := t.ChallengeScalar("fixed_base_sep")
	varBaseSep := t.ChallengeScalar("var_base_sep")

	t.AppendCommitment("t_low", proof.TLowComm)
	t.AppendCommitment("t_mid", proof.TMidComm)
	t.AppendCommitment("t_high", proof.THighComm)
	t.AppendCommitment("t_4", proof.T4Comm)

	zeta := t.ChallengeScalar("z_challenge")

	n := dom.Size()
	zetaN := fieldPow(zeta, n)
	zhZeta := sub(zetaN, field.One())

	var l1 field.Element
	{
		nF := field.From(n)
		denom := mul(nF, sub(zeta, field.One()))
		var denomInv field.Element
		denomInv.Inverse(&denom)
		l1 = mul(zhZeta, denomInv)
	}

	piZeta, err := evaluatePublicInput(dom, pubInputs, zeta, zhZeta, cfg.parallelism)
	if err != nil {
		return fmt.Errorf("plonkverifier: %w", err)
	}

	e := proof.Evaluations

	// t_eval = Z_H(zeta)^-1 * (r_eval + PI(zeta) - perm*alpha - L1(zeta)*alpha^2)
	idA := add(add(e.AEval, mul(beta, e.SSigma1)), gamma)
	idB := add(add(e.BEval, mul(beta, e.SSigma2)), gamma)
	idO := add(add(e.CEval, mul(beta, e.SSigma3)), gamma)
	idD := add(e.DEval, gamma)
	permTerm := mul(mul(mul(mul(idA, idB), mul(idO, idD)), e.PermEval), alpha)

	alphaSq := mul(alpha, alpha)
	l1Alpha2 := mul(l1, alphaSq)

	numerator := sub(sub(add(e.RPolyEval, piZeta), permTerm), l1Alpha2)
	var zhInv field.Element
	zhInv.Inverse(&zhZeta)
	tEval := mul(zhInv, numerator)

	// T = t_low + zeta^n*t_mid + zeta^{2n}*t_high + zeta^{3n}*t_4
	zeta2N := mul(zetaN, zetaN)
	zeta3N := mul(zeta2N, zetaN)

	var tMidScaled, tHighScaled, t4Scaled bls12381.G1Affine
	tMidScaled.ScalarMultiplication(&proof.TMidComm, fieldToBigInt(zetaN))
	tHighScaled.ScalarMultiplication(&proof.THighComm, fieldToBigInt(zeta2N))
	t4Scaled.ScalarMultiplication(&proof.T4Comm, fieldToBigInt(zeta3N))

	var tComm bls12381.G1Affine
	tComm.Add(&proof.TLowComm, &tMidScaled)
	tComm.Add(&tComm, &tHighScaled)
	tComm.Add(&tComm, &t4Scaled)

	t.AppendScalar("a_eval", e.AEval)
	t.AppendScalar("b_eval", e.BEval)
	t.AppendScalar("c_eval", e.CEval)
	t.AppendScalar("d_eval", e.DEval)
	t.AppendScalar("a_next_eval", e.ANext)
	t.AppendScalar("b_next_eval", e.BNext)
	t.AppendScalar("d_next_eval", e.DNext)
	t.AppendScalar("sigma1_eval", e.SSigma1)
	t.AppendScalar("sigma2_eval", e.SSigma2)
	t.AppendScalar("sigma3_eval", e.SSigma3)
	t.AppendScalar("q_arith_eval", e.QArith)
	t.AppendScalar("q_c_eval", e.QC)
	t.AppendScalar("q_l_eval", e.QL)
	t.AppendScalar("q_r_eval", e.QR)
	t.AppendScalar("perm_eval", e.PermEval)
	t.AppendScalar("t_eval", tEval)
	t.AppendScalar("r_eval", e.RPolyEval)

	cosetK1 := dom.CosetShift()
	cosetK2 := mul(cosetK1, cosetK1)
	cosetK3 := mul(cosetK2, cosetK1)

	ch := challenges{
		alpha: alpha, beta: beta, gamma: gamma,
		rangeSep: rangeSep, logicSep: logicSep,
		fixedBaseSep: fixedBaseSep, varBaseSep: varBaseSep,
		zeta: zeta, l1: l1,
		cosetK1: cosetK1, cosetK2: cosetK2, cosetK3: cosetK3,
	}
	rComm, err := computeLinearizationCommitment(vk, proof.ZComm, ch, e)
	if err != nil {
		return fmt.Errorf("plonkverifier: %w", err)
	}

	aggregateA := AggregateProof{
		Witness: proof.WZComm,
		parts: []aggregatePart{
			{eval: tEval, commitment: tComm},
			{eval: e.RPolyEval, commitment: rComm},
			{eval: e.AEval, commitment: proof.AComm},
			{eval: e.BEval, commitment: proof.BComm},
			{eval: e.CEval, commitment: proof.CComm},
			{eval: e.DEval, commitment: proof.DComm},
			{eval: e.SSigma1, commitment: vk.Permutation.S1},
			{eval: e.SSigma2, commitment: vk.Permutation.S2},
			{eval: e.SSigma3, commitment: vk.Permutation.S3},
		},
	}
	aggregateB := AggregateProof{
		Witness: proof.WZWComm,
		parts: []aggregatePart{
			{eval: e.PermEval, commitment: proof.ZComm},
			{eval: e.ANext, commitment: proof.AComm},
			{eval: e.BNext, commitment: proof.BComm},
			{eval: e.DNext, commitment: proof.DComm},
		},
	}

	flatA, err := aggregateA.flatten(t)
	if err != nil {
		return fmt.Errorf("plonkverifier: %w", err)
	}
	flatB, err := aggregateB.flatten(t)
	if err != nil {
		return fmt.Errorf("plonkverifier: %w", err)
	}

	t.AppendCommitment("w_z", proof.WZComm)
	t.AppendCommitment("w_z_w", proof.WZWComm)

	u := t.ChallengeScalar("batch_check_u")

	zetaOmega := mul(zeta, dom.Generator())

	if err := ok.BatchCheck([2]field.Element{zeta, zetaOmega}, [2]kzgshim.FlatAggregate{flatA, flatB}, u); err != nil {
		return fmt.Errorf("plonkverifier: %w", err)
	}
	return nil
}

// fieldPow returns base^exp via square-and-multiply over a uint64
// exponent (the evaluation domain size is always well within uint64
// range, so this avoids a big.Int round trip for the hot zeta^n term).
func fieldPow(base field.Element, exp uint64) field.Element {
	result := field.One()
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = mul(result, b)
		}
		b = mul(b, b)
		exp >>= 1
	}
	return result
}
