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

// Package gadget implements the composer-level circuit gadgets of the
// specification: range decomposition, logic (AND/XOR), bit decomposition,
// boolean constraints, conditional selection, fixed-base scalar
// multiplication, and variable-base curve addition/multiplication.
package gadget

import (
	"github.com/plonkforge/turboplonk/composer"
	"github.com/plonkforge/turboplonk/field"
)

// Boolean emits q_m=1, q_o=-1, w_a=w_b=w_o=a, enforcing a^2 - a = 0 (§4.7).
func Boolean(c *composer.Composer, a composer.WireID) {
	one := field.One()
	var negOne field.Element
	negOne.Sub(&field.Element{}, &one)
	c.AppendGate(composer.Constraint{
		WA: a, WB: a, WO: a,
		QM: one, QO: negOne,
	})
}
