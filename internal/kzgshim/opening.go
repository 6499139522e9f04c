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

// Package kzgshim is the boundary adapter to the external KZG10
// collaborator (§4.9, §6 OpeningKey): it turns the aggregated-opening
// pairing equation into a concrete call against gnark-crypto's BLS12-381
// pairing, using the same SRS type the teacher's
// backend/plonk/bls12-377/setup.go commits against (kzg.VerifyingKey).
package kzgshim

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/kzg"

	"github.com/plonkforge/turboplonk/field"
)

// FlatAggregate is a flattened aggregate KZG opening: a single combined
// evaluation and commitment at one challenge point, plus its opening
// witness commitment (§4.9 flatten).
type FlatAggregate struct {
	Eval       field.Element
	Commitment bls12381.G1Affine
	Witness    bls12381.G1Affine
}

// OpeningKey wraps gnark-crypto's KZG verifying key and implements the
// two-point aggregate batch check of §4.9:
//
//	e(W1 + u*W2, [tau]_2) = e(sum(e*[1]_1) - C_agg + p1*W1 + u*p2*W2, [1]_2)
//
// with u a batching scalar supplied by the caller (plonkverifier.Verify
// draws it from the transcript after the opening witnesses are appended).
type OpeningKey struct {
	VK kzg.VerifyingKey
}

// ErrInvalidProof is returned when the pairing check fails.
var ErrInvalidProof = fmt.Errorf("kzgshim: invalid proof")

// BatchCheck verifies two flattened aggregates at two points in a single
// pairing check, per §4.9.
func (ok OpeningKey) BatchCheck(points [2]field.Element, proofs [2]FlatAggregate, u field.Element) error {
	var lhs, rhs bls12381.G1Affine

	// lhs = W1 + u*W2
	var uW2 bls12381.G1Affine
	uW2.ScalarMultiplication(&proofs[1].Witness, fieldToBigInt(u))
	lhs.Add(&proofs[0].Witness, &uW2)

	// rhs = sum(e*[1]_1) - C_agg + p1*W1 + u*p2*W2
	var e1, e2 bls12381.G1Affine
	e1.ScalarMultiplication(&ok.VK.G1, fieldToBigInt(proofs[0].Eval))
	e2.ScalarMultiplication(&ok.VK.G1, fieldToBigInt(proofs[1].Eval))

	var p1W1, up2W2 bls12381.G1Affine
	p1W1.ScalarMultiplication(&proofs[0].Witness, fieldToBigInt(points[0]))
	var up2 field.Element
	up2.Mul(&u, &points[1])
	up2W2.ScalarMultiplication(&proofs[1].Witness, fieldToBigInt(up2))

	var negC1, negC2 bls12381.G1Affine
	negC1.Neg(&proofs[0].Commitment)
	var uC2 bls12381.G1Affine
	uC2.ScalarMultiplication(&proofs[1].Commitment, fieldToBigInt(u))
	negC2.Neg(&uC2)

	rhs.Add(&e1, &e2)
	rhs.Add(&rhs, &negC1)
	rhs.Add(&rhs, &negC2)
	rhs.Add(&rhs, &p1W1)
	rhs.Add(&rhs, &up2W2)

	// e(lhs, [tau]_2) == e(rhs, [1]_2)  <=>  e(lhs,[tau]_2) * e(-rhs,[1]_2) == 1
	var negRHS bls12381.G1Affine
	negRHS.Neg(&rhs)

	ok1, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{lhs, negRHS},
		[]bls12381.G2Affine{ok.VK.G2[1], ok.VK.G2[0]},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProof, err)
	}
	if !ok1 {
		return ErrInvalidProof
	}
	return nil
}

func fieldToBigInt(e field.Element) *big.Int {
	var bi big.Int
	e.BigInt(&bi)
	return &bi
}
