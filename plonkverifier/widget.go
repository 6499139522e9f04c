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

// widgetContribution is the (scalars, points) pair a single widget adds to
// the linearization MSM, mirroring the original source's widget trait
// shape (compute_linearization_commitment) — SPEC_FULL.md §E.3.
type widgetContribution struct {
	scalars []field.Element
	points  []bls12381.G1Affine
}

// merge concatenates two contributions; order does not matter since an
// MSM is a sum.
func (w widgetContribution) merge(other widgetContribution) widgetContribution {
	return widgetContribution{
		scalars: append(append([]field.Element{}, w.scalars...), other.scalars...),
		points:  append(append([]bls12381.G1Affine{}, w.points...), other.points...),
	}
}
