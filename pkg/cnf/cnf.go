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
	"strings"

	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/consensys/go-lgroup/pkg/util/collection/set"
)

// errNotCNF is reported if the transform produces a tree which is not a meet
// of joins of atoms.  This indicates a bug in the transform itself.
var errNotCNF = term.NewStructuralError("cnf construction failed")

// Meetand is one conjunct of a CNF: a join of free-group words.
type Meetand struct {
	joinands *set.AnySortedSet[term.Word]
}

// NewMeetand constructs a meetand from a given collection of joinands.
func NewMeetand(joinands ...term.Word) Meetand {
	return Meetand{set.NewAnySortedSet(joinands...)}
}

// Joinands returns the joinands of this meetand in sorted order.
func (p Meetand) Joinands() []term.Word {
	return p.joinands.ToArray()
}

// Cmp implementation for the Comparable interface.
func (p Meetand) Cmp(other Meetand) int {
	return compareWordSlices(p.joinands.ToArray(), other.joinands.ToArray())
}

// String prints the meetand in the form "(x v y)".
func (p Meetand) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, w := range p.joinands.ToArray() {
		if i != 0 {
			builder.WriteString(" v ")
		}

		builder.WriteString(w.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// CNF is a meet of joins of free-group words.  An empty meetand collection
// represents the vacuous truth "e <= e" and prints as "(())".
type CNF struct {
	meetands *set.AnySortedSet[Meetand]
}

// NewCNF transforms a term into conjunctive normal form.  Fresh variables
// introduced by the product-over-join rewrite are drawn from the given
// counter.
func NewCNF(t term.Term, fresh *Counter) (*CNF, error) {
	reduced, err := term.Reduce(t)
	//
	if err != nil {
		return nil, err
	}
	//
	cnfTerm, err := toCNF(reduced, fresh)
	//
	if err != nil {
		return nil, err
	}
	//
	return destructure(cnfTerm)
}

// NewCNFOf constructs a CNF directly from a given collection of meetands.
func NewCNFOf(meetands ...Meetand) *CNF {
	return &CNF{set.NewAnySortedSet(meetands...)}
}

// Meetands returns the meetands of this CNF in sorted order.
func (p *CNF) Meetands() []Meetand {
	return p.meetands.ToArray()
}

// String prints the CNF in the form "(w v z) ^ (x v y)", or "(())" when
// there are no meetands.
func (p *CNF) String() string {
	if p.meetands.Len() == 0 {
		return "(())"
	}
	//
	var builder strings.Builder
	//
	for i, m := range p.meetands.ToArray() {
		if i != 0 {
			builder.WriteString(" ^ ")
		}

		builder.WriteString(m.String())
	}
	//
	return builder.String()
}

// destructure converts a term in CNF shape into the set-of-sets form.  A bare
// meet yields the outer set, a bare join a single meetand, and a bare atom a
// singleton meetand.
func destructure(t term.Term) (*CNF, error) {
	meetands := set.NewAnySortedSet[Meetand]()
	//
	switch t := t.(type) {
	case *term.Meet:
		for _, x := range t.Args.ToArray() {
			switch x := x.(type) {
			case *term.Join:
				meetand, err := meetandOfJoin(x)
				//
				if err != nil {
					return nil, err
				}
				//
				meetands.Insert(meetand)
			case *term.Atom:
				meetands.Insert(NewMeetand(x.Word))
			default:
				return nil, errNotCNF
			}
		}
	case *term.Join:
		meetand, err := meetandOfJoin(t)
		//
		if err != nil {
			return nil, err
		}
		//
		meetands.Insert(meetand)
	case *term.Atom:
		meetands.Insert(NewMeetand(t.Word))
	default:
		return nil, errNotCNF
	}
	//
	return &CNF{meetands}, nil
}

func meetandOfJoin(join *term.Join) (Meetand, error) {
	joinands := make([]term.Word, 0, join.Args.Len())
	//
	for _, y := range join.Args.ToArray() {
		atom, ok := y.(*term.Atom)
		//
		if !ok {
			return Meetand{}, errNotCNF
		}
		//
		joinands = append(joinands, atom.Word)
	}
	//
	return NewMeetand(joinands...), nil
}

func compareWordSlices(xs []term.Word, ys []term.Word) int {
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if c := xs[i].Cmp(ys[i]); c != 0 {
			return c
		}
	}
	//
	switch {
	case len(xs) < len(ys):
		return -1
	case len(xs) > len(ys):
		return 1
	}
	//
	return 0
}
