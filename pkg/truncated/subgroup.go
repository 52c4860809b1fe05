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
	"slices"

	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/consensys/go-lgroup/pkg/util/collection/set"
)

// Subgroup is an indexed set of short words over an ambient generating set,
// closed under multiplication within the ball of radius three: whenever x and
// y are members and their free product has length at most three, the product
// is a member too.  The prefix and suffix indices accelerate closure by
// narrowing candidate partners to those whose product can cancel enough to
// stay inside the ball.
//
// The member set itself is hashed, since for formulas with many generators
// (fresh variables included) the ball holds tens of thousands of words and
// membership tests dominate.  Closure never iterates over it; the index sets
// it does iterate over are sorted, which keeps the closure deterministic.
type Subgroup struct {
	// Generators of the ambient group, closed under inversion.
	generators []term.Literal
	// Every member.
	elements map[term.ShortWord]struct{}
	// Members of length one.  Iterated as unconditional partners.
	lengthOne *set.AnySortedSet[term.ShortWord]
	// Members of length two.  Iterated as partners of short elements.
	lengthTwo *set.AnySortedSet[term.ShortWord]
	// Members of length three.  Only ever consulted through the prefix and
	// suffix indices, hence hashed.
	lengthThree map[term.ShortWord]struct{}
	// Members beginning with a given literal.
	startsWithSingle map[term.Literal]*set.AnySortedSet[term.ShortWord]
	// Members ending with a given literal.
	endsWithSingle map[term.Literal]*set.AnySortedSet[term.ShortWord]
	// Members beginning with a given pair of literals (length two or more).
	startsWithPair map[[2]term.Literal]*set.AnySortedSet[term.ShortWord]
	// Members ending with a given pair of literals (length two or more).
	endsWithPair map[[2]term.Literal]*set.AnySortedSet[term.ShortWord]
	// Stop closure as soon as the identity becomes a member.
	breakOnIdentity bool
}

// NewSubgroup constructs a subgroup from a seed set over the given
// generators.  Unless the seed is known to be closed already, the closure is
// computed immediately.  When breakOnIdentity is set, closure (including any
// closure triggered by a later Insert) halts as soon as the identity appears;
// callers use this to short-circuit once the subgroup is the whole group.
func NewSubgroup(seed []term.ShortWord, generators []term.Literal, closedAlready bool, breakOnIdentity bool) *Subgroup {
	p := &Subgroup{
		elements:         make(map[term.ShortWord]struct{}),
		lengthOne:        set.NewAnySortedSet[term.ShortWord](),
		lengthTwo:        set.NewAnySortedSet[term.ShortWord](),
		lengthThree:      make(map[term.ShortWord]struct{}),
		startsWithSingle: make(map[term.Literal]*set.AnySortedSet[term.ShortWord]),
		endsWithSingle:   make(map[term.Literal]*set.AnySortedSet[term.ShortWord]),
		startsWithPair:   make(map[[2]term.Literal]*set.AnySortedSet[term.ShortWord]),
		endsWithPair:     make(map[[2]term.Literal]*set.AnySortedSet[term.ShortWord]),
		breakOnIdentity:  breakOnIdentity,
	}
	// Close generators under inversion.
	gens := set.NewAnySortedSet[term.Literal]()
	//
	for _, g := range generators {
		gens.Insert(g)
		gens.Insert(g.Inverse())
	}
	//
	p.generators = gens.ToArray()
	//
	worklist := make([]term.ShortWord, 0, len(seed))
	//
	for _, x := range seed {
		if !p.Contains(x) {
			p.add(x)
			worklist = append(worklist, x)
		}
	}
	//
	if !closedAlready {
		p.close(worklist, nil)
	}
	//
	return p
}

// Generators returns the generators of the ambient group (closed under
// inversion) in sorted order.
func (p *Subgroup) Generators() []term.Literal {
	return p.generators
}

// Elements returns every member of this subgroup in sorted order.
func (p *Subgroup) Elements() []term.ShortWord {
	elements := make([]term.ShortWord, 0, len(p.elements))
	//
	for x := range p.elements {
		elements = append(elements, x)
	}
	//
	slices.SortFunc(elements, func(a, b term.ShortWord) int {
		return a.Cmp(b)
	})
	//
	return elements
}

// Size returns the number of members.
func (p *Subgroup) Size() int {
	return len(p.elements)
}

// Contains checks whether a given short word is a member.
func (p *Subgroup) Contains(x term.ShortWord) bool {
	_, ok := p.elements[x]
	return ok
}

// ContainsIdentity checks whether the identity is a member.
func (p *Subgroup) ContainsIdentity() bool {
	return p.Contains(term.IdentityShortWord())
}

// Insert adds a short word and restores the closure invariant, returning
// every member added as a consequence (including the word itself).  The
// returned slice allows a caller to roll the insertion back via Remove.
func (p *Subgroup) Insert(x term.ShortWord) []term.ShortWord {
	if p.Contains(x) {
		return nil
	}
	//
	p.add(x)
	//
	added := []term.ShortWord{x}
	p.close([]term.ShortWord{x}, &added)
	//
	return added
}

// Remove removes the given members again, unwinding a previous Insert.
func (p *Subgroup) Remove(xs []term.ShortWord) {
	for _, x := range xs {
		if p.Contains(x) {
			delete(p.elements, x)
			p.unindex(x)
		}
	}
}

// add records a new member in the element set and every applicable index.
func (p *Subgroup) add(x term.ShortWord) {
	p.elements[x] = struct{}{}
	//
	literals := x.Literals()
	n := len(literals)
	//
	switch n {
	case 0:
		// The identity is not indexed.
		return
	case 1:
		p.lengthOne.Insert(x)
	case 2:
		p.lengthTwo.Insert(x)
	case 3:
		p.lengthThree[x] = struct{}{}
	}
	//
	singleIndex(p.startsWithSingle, literals[0]).Insert(x)
	singleIndex(p.endsWithSingle, literals[n-1]).Insert(x)
	//
	if n >= 2 {
		pairIndex(p.startsWithPair, literals[0], literals[1]).Insert(x)
		pairIndex(p.endsWithPair, literals[n-2], literals[n-1]).Insert(x)
	}
}

// unindex removes a member from every applicable index.
func (p *Subgroup) unindex(x term.ShortWord) {
	literals := x.Literals()
	n := len(literals)
	//
	switch n {
	case 0:
		return
	case 1:
		p.lengthOne.Remove(x)
	case 2:
		p.lengthTwo.Remove(x)
	case 3:
		delete(p.lengthThree, x)
	}
	//
	singleIndex(p.startsWithSingle, literals[0]).Remove(x)
	singleIndex(p.endsWithSingle, literals[n-1]).Remove(x)
	//
	if n >= 2 {
		pairIndex(p.startsWithPair, literals[0], literals[1]).Remove(x)
		pairIndex(p.endsWithPair, literals[n-2], literals[n-1]).Remove(x)
	}
}

// singleIndex returns the index entry for a literal, creating it on demand.
func singleIndex(index map[term.Literal]*set.AnySortedSet[term.ShortWord],
	key term.Literal) *set.AnySortedSet[term.ShortWord] {
	entry, ok := index[key]
	//
	if !ok {
		entry = set.NewAnySortedSet[term.ShortWord]()
		index[key] = entry
	}
	//
	return entry
}

// pairIndex is the analogue of singleIndex for the pair indices.
func pairIndex(index map[[2]term.Literal]*set.AnySortedSet[term.ShortWord],
	first term.Literal, second term.Literal) *set.AnySortedSet[term.ShortWord] {
	key := [2]term.Literal{first, second}
	entry, ok := index[key]
	//
	if !ok {
		entry = set.NewAnySortedSet[term.ShortWord]()
		index[key] = entry
	}
	//
	return entry
}

// close restores the closure invariant.  The worklist holds members whose
// products with the rest of the subgroup have not been examined yet; each
// newly discovered member joins the worklist in turn.  New members are
// appended to *added when a record is requested.
func (p *Subgroup) close(worklist []term.ShortWord, added *[]term.ShortWord) {
	for len(worklist) > 0 {
		x := worklist[0]
		worklist = worklist[1:]
		//
		for _, w := range p.products(x) {
			if p.Contains(w) {
				continue
			}
			//
			p.add(w)
			worklist = append(worklist, w)
			//
			if added != nil {
				*added = append(*added, w)
			}
			//
			if p.breakOnIdentity && w.IsIdentity() {
				return
			}
		}
	}
}

// products returns every product of x with a current member (in either
// order) which stays within the ball of radius three.  Candidate partners
// are narrowed by the indices; the final length guard makes any
// over-approximation of the candidate sets harmless.
func (p *Subgroup) products(x term.ShortWord) []term.ShortWord {
	var out []term.ShortWord
	//
	try := func(a term.ShortWord, b term.ShortWord) {
		if w, ok := shortProduct(a, b); ok {
			out = append(out, w)
		}
	}
	//
	literals := x.Literals()
	//
	switch len(literals) {
	case 0:
		// The identity generates nothing new.
	case 1:
		a := literals[0]
		// Partners of length one or two keep the product short
		// unconditionally.
		for _, y := range p.lengthOne.ToArray() {
			try(x, y)
			try(y, x)
		}
		//
		for _, y := range p.lengthTwo.ToArray() {
			try(x, y)
			try(y, x)
		}
		// Longer partners require cancellation at the seam.
		for _, y := range singleIndex(p.startsWithSingle, a.Inverse()).ToArray() {
			try(x, y)
		}
		//
		for _, y := range singleIndex(p.endsWithSingle, a.Inverse()).ToArray() {
			try(y, x)
		}
	case 2:
		a, b := literals[0], literals[1]
		//
		for _, y := range p.lengthOne.ToArray() {
			try(x, y)
			try(y, x)
		}
		// A single cancellation suffices for partners of length two or
		// three.
		for _, y := range singleIndex(p.startsWithSingle, b.Inverse()).ToArray() {
			try(x, y)
		}
		//
		for _, y := range singleIndex(p.endsWithSingle, a.Inverse()).ToArray() {
			try(y, x)
		}
	case 3:
		a, b, c := literals[0], literals[1], literals[2]
		// Length-one partners must cancel against the adjacent end.
		for _, y := range p.lengthOne.ToArray() {
			first := y.Literals()[0]
			//
			if first == c.Inverse() {
				try(x, y)
			}
			//
			if first == a.Inverse() {
				try(y, x)
			}
		}
		// Length-two partners need one cancellation.
		for _, y := range singleIndex(p.startsWithSingle, c.Inverse()).ToArray() {
			if y.Len() == 2 {
				try(x, y)
			}
		}
		//
		for _, y := range singleIndex(p.endsWithSingle, a.Inverse()).ToArray() {
			if y.Len() == 2 {
				try(y, x)
			}
		}
		// Length-three partners need two.
		for _, y := range pairIndex(p.startsWithPair, c.Inverse(), b.Inverse()).ToArray() {
			try(x, y)
		}
		//
		for _, y := range pairIndex(p.endsWithPair, b.Inverse(), a.Inverse()).ToArray() {
			try(y, x)
		}
	default:
		panic(term.ErrShortWordShape)
	}
	//
	return out
}

// shortProduct multiplies two short words in the free group, reporting
// whether the result still fits inside the ball of radius three.
func shortProduct(a term.ShortWord, b term.ShortWord) (term.ShortWord, bool) {
	w := a.Word().Mul(b.Word())
	//
	if w.Len() > 3 {
		return term.ShortWord{}, false
	}
	//
	return term.ShortWordOf(w), true
}
