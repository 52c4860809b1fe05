// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cnf

import (
	"github.com/consensys/go-lgroup/pkg/term"
)

// FreshChar is the character reserved for variables introduced during the
// normal form constructions.  A lower-case 'v' in a formula always parses as
// a join, but an upper-case 'V' parses as the inverse of a 'v' literal, so a
// formula which uses 'V' names the same generators as introduced variables.
const FreshChar = 'v'

// Counter allocates fresh variable ids for one formula.  A single counter
// must be shared across every normal form construction of the formula,
// otherwise distinct fresh variables could collide, which would be unsound.
type Counter struct {
	next uint
}

// NewCounter constructs a counter whose first allocated id is 1.
func NewCounter() *Counter {
	return &Counter{1}
}

// Fresh allocates the next fresh variable.
func (p *Counter) Fresh() term.Literal {
	id := p.next
	p.next++
	//
	return term.NewLiteral(FreshChar, id, false)
}

// Peek returns the next id without allocating it.
func (p *Counter) Peek() uint {
	return p.next
}

// Skip marks the next n ids as allocated.
func (p *Counter) Skip(n uint) {
	p.next += n
}
