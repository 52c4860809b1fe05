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
	"slices"

	"github.com/consensys/go-lgroup/pkg/term"
)

// toCNF rewrites a reduced term into a meet of joins of atoms.  Meets
// recurse; joins distribute any meet operand through the join; products are
// rewritten around their first non-atom factor.  For a join factor the
// rewrite introduces two fresh variables, except in the small case where the
// surrounding factors are single one-literal atoms and direct distribution
// does not grow the term.  The fresh-variable rewrite weakens the term, but
// preserves validity of "e <= t" with the fresh variables universally
// quantified.
func toCNF(t term.Term, fresh *Counter) (term.Term, error) {
	switch t := t.(type) {
	case *term.Atom:
		return t, nil
	case *term.Meet:
		return meetToCNF(t, fresh)
	case *term.Join:
		return joinToCNF(t, fresh)
	case *term.Prod:
		return prodToCNF(t, fresh)
	}
	//
	panic("unreachable")
}

func meetToCNF(t *term.Meet, fresh *Counter) (term.Term, error) {
	meetands := make([]term.Term, 0, t.Args.Len())
	//
	for _, x := range t.Args.ToArray() {
		c, err := toCNF(x, fresh)
		//
		if err != nil {
			return nil, err
		}
		//
		meetands = append(meetands, c)
	}
	//
	return term.Reduce(term.NewMeet(meetands...))
}

func joinToCNF(t *term.Join, fresh *Counter) (term.Term, error) {
	xs := t.Args.ToArray()
	// Distribute the first meet operand (if any) through the join.
	for i, x := range xs {
		meet, ok := x.(*term.Meet)
		//
		if !ok {
			continue
		}
		//
		rest := make([]term.Term, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		//
		meetands := make([]term.Term, 0, meet.Args.Len())
		//
		for _, y := range meet.Args.ToArray() {
			joinands := append(slices.Clone(rest), y)
			//
			inner, err := term.Reduce(term.NewJoin(joinands...))
			if err != nil {
				return nil, err
			}
			//
			c, err := toCNF(inner, fresh)
			if err != nil {
				return nil, err
			}
			//
			meetands = append(meetands, c)
		}
		//
		return term.Reduce(term.NewMeet(meetands...))
	}
	// No meet operand; recurse into the joinands.
	joinands := make([]term.Term, 0, len(xs))
	//
	for _, x := range xs {
		c, err := toCNF(x, fresh)
		//
		if err != nil {
			return nil, err
		}
		//
		joinands = append(joinands, c)
	}
	//
	reduced, err := term.Reduce(term.NewJoin(joinands...))
	//
	if err != nil {
		return nil, err
	}
	// A joinand which was a product may have expanded into a meet, in which
	// case another distribution round is required.
	if join, ok := reduced.(*term.Join); ok && containsMeet(join.Args.ToArray()) {
		return toCNF(reduced, fresh)
	}
	//
	return reduced, nil
}

func prodToCNF(t *term.Prod, fresh *Counter) (term.Term, error) {
	xs := t.Args
	// Locate the first non-atom factor.
	for i, x := range xs {
		switch f := x.(type) {
		case *term.Atom:
			continue
		case *term.Join:
			return prodJoinToCNF(xs[:i], f, xs[i+1:], fresh)
		case *term.Meet:
			return prodMeetToCNF(xs[:i], f, xs[i+1:], fresh)
		default:
			// An inner product cannot survive reduction.
			return nil, term.NewStructuralError("unreduced product factor")
		}
	}
	// All factors are atoms, so the product reduces to a single atom.
	return term.Reduce(t)
}

// prodMeetToCNF distributes a product over the meet factor:
// L . Meet(ms) . R becomes Meet(L . m . R for m in ms).
func prodMeetToCNF(left []term.Term, meet *term.Meet, right []term.Term, fresh *Counter) (term.Term, error) {
	meetands := make([]term.Term, 0, meet.Args.Len())
	//
	for _, m := range meet.Args.ToArray() {
		factors := make([]term.Term, 0, len(left)+len(right)+1)
		factors = append(factors, left...)
		factors = append(factors, m)
		factors = append(factors, right...)
		//
		inner, err := term.Reduce(term.NewProd(factors...))
		if err != nil {
			return nil, err
		}
		//
		c, err := toCNF(inner, fresh)
		if err != nil {
			return nil, err
		}
		//
		meetands = append(meetands, c)
	}
	//
	reduced, err := term.Reduce(term.NewMeet(meetands...))
	//
	if err != nil {
		return nil, err
	}
	//
	return toCNF(reduced, fresh)
}

// prodJoinToCNF rewrites a product around the join factor.  When the left and
// right contexts are single one-literal atoms, the join distributes directly:
// a . Join(js) . b becomes Join(a . j . b for j in js).  Otherwise two fresh
// variables x and y are introduced and
//
//	L . Join(js) . R  becomes  Join(L . x, X . j . y for j in js, Y . R)
//
// which preserves validity of the enclosing inequation.
func prodJoinToCNF(left []term.Term, join *term.Join, right []term.Term, fresh *Counter) (term.Term, error) {
	var joinands []term.Term
	//
	if isSingleLiteralAtom(left) && isSingleLiteralAtom(right) {
		for _, j := range join.Args.ToArray() {
			inner, err := term.Reduce(term.NewProd(left[0], j, right[0]))
			if err != nil {
				return nil, err
			}
			//
			c, err := toCNF(inner, fresh)
			if err != nil {
				return nil, err
			}
			//
			joinands = append(joinands, c)
		}
	} else {
		x := fresh.Fresh()
		y := fresh.Fresh()
		// L . x
		lx := append(slices.Clone(left), term.NewAtom(term.NewWord(x)))
		// Y . R
		yr := append([]term.Term{term.NewAtom(term.NewWord(y.Inverse()))}, right...)
		//
		for _, factors := range [][]term.Term{lx, yr} {
			inner, err := term.Reduce(term.NewProd(factors...))
			if err != nil {
				return nil, err
			}
			//
			c, err := toCNF(inner, fresh)
			if err != nil {
				return nil, err
			}
			//
			joinands = append(joinands, c)
		}
		// X . j . y
		for _, j := range join.Args.ToArray() {
			inner, err := term.Reduce(term.NewProd(
				term.NewAtom(term.NewWord(x.Inverse())), j, term.NewAtom(term.NewWord(y))))
			if err != nil {
				return nil, err
			}
			//
			c, err := toCNF(inner, fresh)
			if err != nil {
				return nil, err
			}
			//
			joinands = append(joinands, c)
		}
	}
	//
	reduced, err := term.Reduce(term.NewJoin(joinands...))
	//
	if err != nil {
		return nil, err
	}
	//
	return toCNF(reduced, fresh)
}

func isSingleLiteralAtom(xs []term.Term) bool {
	if len(xs) != 1 {
		return false
	}
	//
	atom, ok := xs[0].(*term.Atom)
	//
	return ok && atom.Word.Len() == 1
}

func containsMeet(xs []term.Term) bool {
	for _, x := range xs {
		if _, ok := x.(*term.Meet); ok {
			return true
		}
	}
	//
	return false
}
