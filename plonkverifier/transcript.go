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

// Package plonkverifier implements the proof-verification pipeline of the
// specification: given a VerifierKey, a Fiat-Shamir Transcript, an
// OpeningKey and public inputs, it replays every challenge, recomputes the
// quotient/linearization/public-input evaluations, and dispatches a batch
// KZG check (§4.8).
package plonkverifier

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/plonkforge/turboplonk/field"
)

// Transcript is the external Merlin-style duplex-hash collaborator (§6).
// Implementations must make challenge derivation deterministic given an
// identical sequence of appends.
type Transcript interface {
	AppendScalar(label string, v field.Element)
	AppendCommitment(label string, c bls12381.G1Affine)
	ChallengeScalar(label string) field.Element
	CircuitDomainSep(n uint64)
}
