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
package truncated

import (
	"github.com/consensys/go-lgroup/pkg/term"
)

// Group is the ball of radius three around the identity in the Cayley graph
// of the free group over a given generating set.  It arises as the closure of
// the generators themselves, since the subgroup they generate is the whole
// group.
type Group struct {
	generators []term.Literal
	elements   []term.ShortWord
}

// NewGroup constructs the ball of radius three for a given generating set.
func NewGroup(generators []term.Literal) *Group {
	seed := make([]term.ShortWord, 0, 2*len(generators))
	//
	for _, g := range generators {
		seed = append(seed, term.NewShortWord(g))
		seed = append(seed, term.NewShortWord(g.Inverse()))
	}
	//
	sub := NewSubgroup(seed, generators, false, false)
	//
	return &Group{sub.Generators(), sub.Elements()}
}

// Generators returns the generators (closed under inversion) in sorted order.
func (p *Group) Generators() []term.Literal {
	return p.generators
}

// Elements returns every element of the ball (including the identity) in
// sorted order.
func (p *Group) Elements() []term.ShortWord {
	return p.elements
}

// ElementsExceptIdentity returns every element of the ball other than the
// identity, in sorted order.
func (p *Group) ElementsExceptIdentity() []term.ShortWord {
	elements := make([]term.ShortWord, 0, len(p.elements))
	//
	for _, x := range p.elements {
		if !x.IsIdentity() {
			elements = append(elements, x)
		}
	}
	//
	return elements
}
