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

package composer

// WireID is a dense index into the composer's witness table. It is a weak
// reference: valid only against the Composer that issued it, and only for
// that Composer's lifetime.
type WireID uint32

// ZERO and ONE are the hard-wired constant wires seeded by New.
const (
	ZERO WireID = 0
	ONE  WireID = 1
)

// WitnessPoint is a pair of wire references to the x and y coordinates of an
// affine point; it allocates nothing by itself.
type WitnessPoint struct {
	X, Y WireID
}

// Identity is the WitnessPoint referring to the hard-wired (ZERO, ONE) wires,
// i.e. the twisted-Edwards identity element (0, 1).
var Identity = WitnessPoint{X: ZERO, Y: ONE}
