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

// ShortMeetand is one conjunct of a 3-CNF: a join of short words.
type ShortMeetand struct {
	joinands *set.AnySortedSet[term.ShortWord]
}

// NewShortMeetand constructs a short meetand from a given collection of
// joinands.
func NewShortMeetand(joinands ...term.ShortWord) ShortMeetand {
	return ShortMeetand{set.NewAnySortedSet(joinands...)}
}

// Joinands returns the joinands of this meetand in sorted order.
func (p ShortMeetand) Joinands() []term.ShortWord {
	return p.joinands.ToArray()
}

// Cmp implementation for the Comparable interface.
func (p ShortMeetand) Cmp(other ShortMeetand) int {
	xs, ys := p.joinands.ToArray(), other.joinands.ToArray()
	//
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

// String prints the meetand in the form "(x v y)".
func (p ShortMeetand) String() string {
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

// ThreeCNF is a meet of joins of short words, obtained from a CNF by
// splitting long joinands.  The result is not provably equal to the source
// term; what the construction guarantees is that "e <= source" holds in
// every lattice-ordered group exactly when "e <= result" does.
type ThreeCNF struct {
	meetands *set.AnySortedSet[ShortMeetand]
}

// NewThreeCNF transforms a term into a 3-CNF.  The counter supplies fresh
// variables to both the underlying CNF transform and the joinand splitting,
// and must be shared across the whole formula.
func NewThreeCNF(t term.Term, fresh *Counter) (*ThreeCNF, error) {
	normal, err := NewCNF(t, fresh)
	//
	if err != nil {
		return nil, err
	}
	//
	meetands := set.NewAnySortedSet[ShortMeetand]()
	//
	for _, meetand := range normal.Meetands() {
		words := meetand.Joinands()
		//
		switch {
		case len(words) == 0:
			return nil, term.NewStructuralError("empty meetand")
		case len(words) == 1 && words[0].IsIdentity():
			// Kept as the identity short word, which makes any later
			// extension attempt fail immediately.
			meetands.Insert(NewShortMeetand(term.IdentityShortWord()))
			continue
		case len(words) == 1:
			// A single non-identity word always extends to a right order, so
			// it contributes no constraint (and could not be split anyway).
			continue
		}
		//
		joinands := set.NewAnySortedSet[term.ShortWord]()
		//
		for _, w := range words {
			for _, s := range split(w, fresh) {
				joinands.Insert(s)
			}
		}
		//
		meetands.Insert(ShortMeetand{joinands})
	}
	//
	return &ThreeCNF{meetands}, nil
}

// Meetands returns the meetands of this 3-CNF in sorted order.
func (p *ThreeCNF) Meetands() []ShortMeetand {
	return p.meetands.ToArray()
}

// String prints the 3-CNF in the same form as a CNF, with "(())" for the
// vacuous truth.
func (p *ThreeCNF) String() string {
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

// split cuts a long word into short words, one fresh variable per cut.  The
// underlying identity is that, in any lattice-ordered group, "e <= R v s.t"
// is valid exactly when "e <= R v s.x v X.t" is, for a fresh variable x.
func split(w term.Word, fresh *Counter) []term.ShortWord {
	if w.Len() <= 3 {
		return []term.ShortWord{term.ShortWordOf(w)}
	}
	//
	k := fresh.Peek()
	head := term.NewShortWord(w[0], w[1], term.NewLiteral(FreshChar, k, false))
	// The remainder picks up the inverse marker variable.
	rest := make(term.Word, 0, w.Len()-1)
	rest = append(rest, term.NewLiteral(FreshChar, k, true))
	rest = append(rest, w[2:]...)
	//
	fresh.Skip(uint(w.Len() - 2))
	//
	return append([]term.ShortWord{head}, split(rest, fresh)...)
}
