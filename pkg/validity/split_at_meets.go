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
	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/consensys/go-lgroup/pkg/util/collection/set"
)

// splitAtMeets decomposes a term into meet-free pieces such that "e <= t"
// holds exactly when "e <= piece" holds for every piece.  Meets split
// directly; joins and products take all combinations of their operands'
// pieces.
func splitAtMeets(t term.Term) (*set.AnySortedSet[term.Term], error) {
	pieces := set.NewAnySortedSet[term.Term]()
	//
	switch t := t.(type) {
	case *term.Atom:
		pieces.Insert(t)
	case *term.Meet:
		for _, x := range t.Args.ToArray() {
			inner, err := splitAtMeets(x)
			//
			if err != nil {
				return nil, err
			}
			//
			pieces.InsertSorted(inner)
		}
	case *term.Join:
		return splitCombinations(t.Args.ToArray(), func(lhs term.Term, rhs term.Term) (term.Term, error) {
			return term.Reduce(term.NewJoin(lhs, rhs))
		})
	case *term.Prod:
		return splitCombinations(t.Args, term.Mul)
	}
	//
	return pieces, nil
}

// splitCombinations splits each operand and folds the piecewise combinations
// together using a given binary combiner.
func splitCombinations(xs []term.Term, combine func(term.Term, term.Term) (term.Term, error)) (*set.AnySortedSet[term.Term], error) {
	var result *set.AnySortedSet[term.Term]
	//
	for _, x := range xs {
		pieces, err := splitAtMeets(x)
		//
		if err != nil {
			return nil, err
		}
		//
		if result == nil {
			result = pieces
			continue
		}
		//
		combined := set.NewAnySortedSet[term.Term]()
		//
		for _, r := range result.ToArray() {
			for _, piece := range pieces.ToArray() {
				c, err := combine(r, piece)
				//
				if err != nil {
					return nil, err
				}
				//
				combined.Insert(c)
			}
		}
		//
		result = combined
	}
	//
	if result == nil {
		result = set.NewAnySortedSet[term.Term]()
	}
	//
	return result, nil
}
