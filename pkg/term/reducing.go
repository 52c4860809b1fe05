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
	"github.com/consensys/go-lgroup/pkg/util/collection/set"
)

// Reduce normalizes a term by applying the reduction rules to a fixpoint:
// nested meets (resp. joins, products) are flattened into their parent;
// singleton meets and joins collapse to their sole operand; an empty product
// collapses to the identity atom; adjacent atom factors of a product fuse by
// free-group multiplication.  Reduction is idempotent.  Meets and joins with
// zero operands are reported as structural errors.
func Reduce(t Term) (Term, error) {
	switch t := t.(type) {
	case *Atom:
		return t, nil
	case *Meet:
		return meetReduced(t.Args.ToArray())
	case *Join:
		return joinReduced(t.Args.ToArray())
	case *Prod:
		return prodReduced(t.Args)
	}
	//
	panic("unreachable")
}

// meetReduced recursively absorbs inner meets, then collapses singletons.
// Duplicate operands coalesce before the singleton check, so a meet of two
// copies of the same term collapses to that term.
func meetReduced(xs []Term) (Term, error) {
	flattened, err := flattenInto(xs, nil, meetKind)
	//
	if err != nil {
		return nil, err
	}
	//
	meetands := set.NewAnySortedSet(flattened...)
	//
	switch meetands.Len() {
	case 0:
		return nil, ErrEmptyMeet
	case 1:
		return meetands.ToArray()[0], nil
	}
	//
	return &Meet{meetands}, nil
}

// joinReduced recursively absorbs inner joins, then collapses singletons.
func joinReduced(xs []Term) (Term, error) {
	flattened, err := flattenInto(xs, nil, joinKind)
	//
	if err != nil {
		return nil, err
	}
	//
	joinands := set.NewAnySortedSet(flattened...)
	//
	switch joinands.Len() {
	case 0:
		return nil, ErrEmptyJoin
	case 1:
		return joinands.ToArray()[0], nil
	}
	//
	return &Join{joinands}, nil
}

// prodReduced recursively absorbs inner products, then fuses adjacent atom
// factors as free-group words.
func prodReduced(xs []Term) (Term, error) {
	factors, err := flattenInto(xs, nil, prodKind)
	//
	if err != nil {
		return nil, err
	}
	// Fuse adjacent atoms
	for i := 0; i+1 < len(factors); {
		left, lok := factors[i].(*Atom)
		right, rok := factors[i+1].(*Atom)
		//
		if lok && rok {
			factors[i] = NewAtom(left.Word.Mul(right.Word))
			factors = append(factors[:i+1], factors[i+2:]...)
		} else {
			i++
		}
	}
	//
	switch len(factors) {
	case 0:
		return IdentityAtom(), nil
	case 1:
		return factors[0], nil
	}
	//
	return NewProd(factors...), nil
}

// flattenInto reduces each term of xs and appends it to out, splicing in the
// operands of any term matching the enclosing kind.  Since the children are
// reduced first, a single splice per child suffices for a fixpoint.
func flattenInto(xs []Term, out []Term, kind int) ([]Term, error) {
	for _, x := range xs {
		reduced, err := Reduce(x)
		//
		if err != nil {
			return nil, err
		}
		//
		if kindOf(reduced) == kind {
			switch reduced := reduced.(type) {
			case *Meet:
				out = append(out, reduced.Args.ToArray()...)
			case *Join:
				out = append(out, reduced.Args.ToArray()...)
			case *Prod:
				out = append(out, reduced.Args...)
			}
		} else {
			out = append(out, reduced)
		}
	}
	//
	return out, nil
}
