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
	"github.com/consensys/go-lgroup/pkg/cnf"
	"github.com/consensys/go-lgroup/pkg/formula"
	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/consensys/go-lgroup/pkg/util/collection/set"
	log "github.com/sirupsen/logrus"
)

// IsValid reports whether a formula holds in every lattice-ordered group.
// An inequation "lhs <= rhs" is valid exactly when "e <= rhs . lhs'" is;
// an equation checks both directions.  Each direction is split into
// meet-free pieces, each piece is brought into 3-CNF, and the formula is
// valid exactly when no collected meetand extends to a right order on the
// ambient free group.  Structural errors indicate bugs and are propagated
// without a verdict.
func IsValid(f formula.Formula) (bool, error) {
	directions, err := Directions(f)
	//
	if err != nil {
		return false, err
	}
	//
	fresh := cnf.NewCounter()
	meetands := set.NewAnySortedSet[cnf.ShortMeetand]()
	//
	for _, t := range directions {
		pieces, err := splitAtMeets(t)
		//
		if err != nil {
			return false, err
		}
		//
		log.Debugf("split e <= %s into %d pieces", t, pieces.Len())
		//
		for _, piece := range pieces.ToArray() {
			threeCNF, err := cnf.NewThreeCNF(piece, fresh)
			//
			if err != nil {
				return false, err
			}
			//
			log.Debugf("three-normal form of %s is %s", piece, threeCNF)
			//
			if len(threeCNF.Meetands()) == 0 {
				// The piece is a meet of non-identity atoms, so nothing
				// forces it to be non-negative.
				log.Debugf("no constraint derivable from %s", piece)
				return false, nil
			}
			//
			for _, meetand := range threeCNF.Meetands() {
				meetands.Insert(meetand)
			}
		}
	}
	//
	if meetands.Len() == 0 {
		// No constraint was generated at all.
		return false, nil
	}
	//
	for _, meetand := range meetands.ToArray() {
		log.Debugf("checking whether %s extends to a right order", meetand)
		//
		if extendsToRightOrder(meetand.Joinands()) {
			log.Debugf("%s extends, hence the formula is not valid", meetand)
			return false, nil
		}
	}
	//
	return true, nil
}

// IsValidString parses a formula and reports whether it holds in every
// lattice-ordered group.  Parse errors are returned without a verdict.
func IsValidString(input string) (bool, error) {
	f, err := formula.Parse(input)
	//
	if err != nil {
		return false, err
	}
	//
	return IsValid(f)
}

// Directions returns the reduced terms t for which validity of "e <= t"
// decides the given formula: one for an inequation, both directions for an
// equation.
func Directions(f formula.Formula) ([]term.Term, error) {
	forward, err := inequationTerm(f.Lhs, f.Rhs)
	//
	if err != nil {
		return nil, err
	}
	//
	if f.Relation == formula.Inequation {
		return []term.Term{forward}, nil
	}
	//
	backward, err := inequationTerm(f.Rhs, f.Lhs)
	//
	if err != nil {
		return nil, err
	}
	//
	return []term.Term{forward, backward}, nil
}

// inequationTerm computes the reduced term t = rhs . lhs' such that
// "lhs <= rhs" is valid exactly when "e <= t" is.
func inequationTerm(lhs term.Term, rhs term.Term) (term.Term, error) {
	product, err := term.Mul(rhs, lhs.Inverse())
	//
	if err != nil {
		return nil, err
	}
	//
	return term.Reduce(product)
}
