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
package formula

import (
	"fmt"

	"github.com/consensys/go-lgroup/pkg/term"
)

// Relation distinguishes equations from inequations.
type Relation uint

const (
	// Equation relates its two sides by equality.
	Equation Relation = iota
	// Inequation relates its two sides by "less than or equal".
	Inequation
)

// Formula is a parsed equation or inequation between two terms.
type Formula struct {
	// Relation between the two sides.
	Relation Relation
	// Lhs is the left-hand side term.
	Lhs term.Term
	// Rhs is the right-hand side term.
	Rhs term.Term
}

// NewEquation constructs the formula "lhs = rhs".
func NewEquation(lhs term.Term, rhs term.Term) Formula {
	return Formula{Equation, lhs, rhs}
}

// NewInequation constructs the formula "lhs <= rhs".
func NewInequation(lhs term.Term, rhs term.Term) Formula {
	return Formula{Inequation, lhs, rhs}
}

// String prints the formula using the input grammar's relation symbols.
func (p Formula) String() string {
	symbol := "="
	//
	if p.Relation == Inequation {
		symbol = "<="
	}
	//
	return fmt.Sprintf("%s %s %s", p.Lhs.String(), symbol, p.Rhs.String())
}
