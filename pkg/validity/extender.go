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
package validity

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/consensys/go-lgroup/pkg/truncated"
	"github.com/consensys/go-lgroup/pkg/util/collection/set"
	log "github.com/sirupsen/logrus"
)

// extendsToRightOrder determines whether a set of short words can be
// extended to the positive cone of a right order on the ambient free group,
// restricted to the ball of radius three.  The search closes the set into a
// truncated subgroup and then branches on each element of the complement,
// adding either it or its inverse, until the subgroup covers the ball (the
// cone exists) or every branch produces the identity (it does not).
func extendsToRightOrder(elements []term.ShortWord) bool {
	literals := set.NewAnySortedSet[term.Literal]()
	//
	for _, x := range elements {
		if x.IsIdentity() {
			// Nothing containing the identity extends.
			return false
		}
		//
		for _, l := range x.Literals() {
			literals.Insert(l)
		}
	}
	//
	ambient := truncated.NewGroup(literals.ToArray())
	universe := ambient.ElementsExceptIdentity()
	sub := truncated.NewSubgroup(elements, literals.ToArray(), false, true)
	//
	log.Debugf("truncated subgroup has %d elements", sub.Size())
	// Index the universe, then mark everything not yet decided.
	index := make(map[term.ShortWord]uint, len(universe))
	//
	for i, u := range universe {
		index[u] = uint(i)
	}
	//
	complement := bitset.New(uint(len(universe)))
	//
	for i, u := range universe {
		if !sub.Contains(u) && !sub.Contains(u.Inverse()) {
			complement.Set(uint(i))
		}
	}
	//
	search := &extender{universe, index, complement, sub}
	//
	return search.extend(1)
}

// extender carries the state of one right-order search.  The complement
// bitset tracks which universe elements are in neither the subgroup nor its
// inverse; it is mutated in place on descent and restored on backtracking,
// which keeps allocation bounded regardless of depth.
type extender struct {
	// Ball of radius three without the identity, sorted shortest first.
	universe []term.ShortWord
	// Position of each universe element in the sorted order.
	index map[term.ShortWord]uint
	// Universe elements in neither the subgroup nor its inverse.
	complement *bitset.BitSet
	// Candidate positive cone under construction.
	sub *truncated.Subgroup
}

func (p *extender) extend(depth int) bool {
	if p.sub.ContainsIdentity() {
		log.Debugf("depth %d: subgroup contains the identity", depth)
		return false
	}
	// Sorting the universe shortest-first makes this the shortest-element
	// branch heuristic.
	next, ok := p.complement.NextSet(0)
	//
	if !ok {
		// Everything in the ball lies in the subgroup or its inverse, so the
		// subgroup is a positive cone on the ball.
		log.Debugf("depth %d: subgroup covers the ball", depth)
		return true
	}
	//
	chosen := p.universe[next]
	//
	for _, candidate := range []term.ShortWord{chosen, chosen.Inverse()} {
		log.Debugf("depth %d: adding %s", depth, candidate)
		//
		added := p.sub.Insert(candidate)
		cleared := p.clearDecided(added)
		//
		if p.extend(depth + 1) {
			return true
		}
		// Roll the branch back.
		p.sub.Remove(added)
		//
		for _, i := range cleared {
			p.complement.Set(i)
		}
	}
	//
	log.Debugf("depth %d: neither %s nor its inverse extends", depth, chosen)
	//
	return false
}

// clearDecided drops newly decided elements (and their inverses) from the
// complement, returning the cleared positions for rollback.
func (p *extender) clearDecided(added []term.ShortWord) []uint {
	cleared := make([]uint, 0, 2*len(added))
	//
	for _, a := range added {
		for _, x := range []term.ShortWord{a, a.Inverse()} {
			if i, ok := p.index[x]; ok && p.complement.Test(i) {
				p.complement.Clear(i)
				cleared = append(cleared, i)
			}
		}
	}
	//
	return cleared
}
