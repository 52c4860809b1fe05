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
package term

import (
	"strings"

	"github.com/consensys/go-lgroup/pkg/util/collection/set"
)

// Term is an element of the term algebra of lattice-ordered groups.  A term
// is either an Atom (a free-group word), a Meet or Join over an unordered
// (idempotent) collection of terms, or a Prod over an ordered sequence of
// terms.  Meets and joins hold their operands in sorted sets keyed by the
// total order on terms, which deduplicates them and canonicalises the tree
// for equality checks.
type Term interface {
	// Cmp returns < 0 if this term is less than other, 0 if they are equal,
	// and > 0 otherwise.  The order is by kind (Atom < Meet < Join < Prod)
	// and then structural.
	Cmp(other Term) int
	// Inverse returns the group inverse of this term.  Meets and joins
	// exchange under inversion (De Morgan); products invert in reverse order.
	Inverse() Term
	// String returns a textual rendering of this term for debug output.
	String() string
}

const (
	atomKind = iota
	meetKind
	joinKind
	prodKind
)

// ============================================================================
// Atom
// ============================================================================

// Atom wraps a free-group word as a term.
type Atom struct {
	Word Word
}

// NewAtom constructs an atom from a given (reduced) word.
func NewAtom(word Word) *Atom {
	return &Atom{word}
}

// IdentityAtom returns the atom wrapping the empty word.
func IdentityAtom() *Atom {
	return &Atom{Identity()}
}

// Cmp implementation for the Term interface.
func (p *Atom) Cmp(other Term) int {
	if o, ok := other.(*Atom); ok {
		return p.Word.Cmp(o.Word)
	}
	//
	return atomKind - kindOf(other)
}

// Inverse implementation for the Term interface.
func (p *Atom) Inverse() Term {
	return NewAtom(p.Word.Inverse())
}

func (p *Atom) String() string {
	return p.Word.String()
}

// ============================================================================
// Meet
// ============================================================================

// Meet is the greatest lower bound of its operands.
type Meet struct {
	Args *set.AnySortedSet[Term]
}

// NewMeet constructs the meet of zero or more terms.  Note that a meet with
// zero operands is invalid, and will be reported during reduction.
func NewMeet(args ...Term) *Meet {
	return &Meet{set.NewAnySortedSet(args...)}
}

// Cmp implementation for the Term interface.
func (p *Meet) Cmp(other Term) int {
	if o, ok := other.(*Meet); ok {
		return compareTermSlices(p.Args.ToArray(), o.Args.ToArray())
	}
	//
	return meetKind - kindOf(other)
}

// Inverse implementation for the Term interface.
func (p *Meet) Inverse() Term {
	return NewJoin(invertedTerms(p.Args.ToArray())...)
}

func (p *Meet) String() string {
	return stringOfTerms(p.Args.ToArray(), "^")
}

// ============================================================================
// Join
// ============================================================================

// Join is the least upper bound of its operands.
type Join struct {
	Args *set.AnySortedSet[Term]
}

// NewJoin constructs the join of zero or more terms.  Note that a join with
// zero operands is invalid, and will be reported during reduction.
func NewJoin(args ...Term) *Join {
	return &Join{set.NewAnySortedSet(args...)}
}

// Cmp implementation for the Term interface.
func (p *Join) Cmp(other Term) int {
	if o, ok := other.(*Join); ok {
		return compareTermSlices(p.Args.ToArray(), o.Args.ToArray())
	}
	//
	return joinKind - kindOf(other)
}

// Inverse implementation for the Term interface.
func (p *Join) Inverse() Term {
	return NewMeet(invertedTerms(p.Args.ToArray())...)
}

func (p *Join) String() string {
	return stringOfTerms(p.Args.ToArray(), "v")
}

// ============================================================================
// Prod
// ============================================================================

// Prod is the (non-commutative) product of an ordered sequence of terms.
type Prod struct {
	Args []Term
}

// NewProd constructs the product of zero or more terms.  A product of zero
// terms reduces to the identity atom.
func NewProd(args ...Term) *Prod {
	return &Prod{args}
}

// Cmp implementation for the Term interface.
func (p *Prod) Cmp(other Term) int {
	if o, ok := other.(*Prod); ok {
		return compareTermSlices(p.Args, o.Args)
	}
	//
	return prodKind - kindOf(other)
}

// Inverse implementation for the Term interface.
func (p *Prod) Inverse() Term {
	n := len(p.Args)
	args := make([]Term, n)
	//
	for i, x := range p.Args {
		args[n-1-i] = x.Inverse()
	}
	//
	return NewProd(args...)
}

func (p *Prod) String() string {
	return stringOfTerms(p.Args, "*")
}

// ============================================================================
// Helpers
// ============================================================================

// Mul multiplies two terms.  The product of two atoms is again an atom;
// otherwise the result is a reduced binary product.
func Mul(lhs Term, rhs Term) (Term, error) {
	if x, ok := lhs.(*Atom); ok {
		if y, ok := rhs.(*Atom); ok {
			return NewAtom(x.Word.Mul(y.Word)), nil
		}
	}
	//
	return Reduce(NewProd(lhs, rhs))
}

func kindOf(t Term) int {
	switch t.(type) {
	case *Atom:
		return atomKind
	case *Meet:
		return meetKind
	case *Join:
		return joinKind
	case *Prod:
		return prodKind
	}
	//
	panic("unreachable")
}

func compareTermSlices(xs []Term, ys []Term) int {
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

func invertedTerms(xs []Term) []Term {
	inverses := make([]Term, len(xs))
	//
	for i, x := range xs {
		inverses[i] = x.Inverse()
	}
	//
	return inverses
}

func stringOfTerms(xs []Term, delimiter string) string {
	if len(xs) == 0 {
		return "empty '" + delimiter + "'"
	}
	//
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, x := range xs {
		if i != 0 {
			builder.WriteString(" ")
			builder.WriteString(delimiter)
			builder.WriteString(" ")
		}

		builder.WriteString(x.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
