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

import "github.com/plonkforge/turboplonk/field"

// Column identifies one of the four wire columns of a width-4 PLONK row.
type Column int

const (
	ColA Column = iota
	ColB
	ColO
	ColD
)

// Constraint is one width-4 PLONK row: four wire references, the arithmetic
// selectors, the per-gadget activation selectors, and an optional public
// input. Zero-valued selectors and ZERO-valued wires are the default, so a
// Constraint built with only the fields it needs set behaves correctly.
type Constraint struct {
	WA, WB, WO, WD WireID

	QM, QL, QR, QO, QD, QC field.Element

	QArith           field.Element
	QRange           field.Element
	QLogic           field.Element // +1 selects XOR, -1 selects AND, 0 inactive
	QFixedGroupAdd   field.Element
	QVariableGroupAdd field.Element

	PublicInput *field.Element
}

// WithPublicInput returns a copy of c with its public input set to v.
func (c Constraint) WithPublicInput(v field.Element) Constraint {
	c.PublicInput = &v
	return c
}
