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

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// ArithmeticCommitments bundles the arithmetic widget's selector
// commitments (§3 VerifierKey).
type ArithmeticCommitments struct {
	QM, QL, QR, QO, QC, Q4, QArith bls12381.G1Affine
}

// RangeCommitments bundles the range widget's selector commitment.
type RangeCommitments struct {
	QRange bls12381.G1Affine
}

// LogicCommitments bundles the logic widget's selector commitments.
type LogicCommitments struct {
	QLogic, QC bls12381.G1Affine
}

// FixedBaseCommitments bundles the fixed-base widget's selector commitment.
type FixedBaseCommitments struct {
	QFixedGroupAdd bls12381.G1Affine
}

// VariableBaseCommitments bundles the variable-base widget's selector
// commitment.
type VariableBaseCommitments struct {
	QVariableGroupAdd bls12381.G1Affine
}

// PermutationCommitments bundles the four sigma commitments.
type PermutationCommitments struct {
	S1, S2, S3, S4 bls12381.G1Affine
}

// VerifierKey holds everything the verifier needs besides the proof and
// the public inputs (§3).
type VerifierKey struct {
	N uint64 // circuit size, pre-padding

	Arithmetic  ArithmeticCommitments
	Range       RangeCommitments
	Logic       LogicCommitments
	FixedBase   FixedBaseCommitments
	VariableBase VariableBaseCommitments
	Permutation PermutationCommitments
}
