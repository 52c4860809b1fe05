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
	"testing"

	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/consensys/go-lgroup/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func atomOf(literals ...term.Literal) *term.Atom {
	return term.NewAtom(term.NewWord(literals...))
}

func parseOne(t *testing.T, input string) Formula {
	t.Helper()
	//
	f, err := Parse(input)
	//
	if err != nil {
		t.Fatalf("parsing %q failed: %s", input, err)
	}
	//
	return f
}

func Test_Parser_Inequation(t *testing.T) {
	x := term.Lit('x')
	//
	f := parseOne(t, "e <= x v X")
	assert.Equal(t, Inequation, f.Relation)
	checkTermsEqual(t, term.IdentityAtom(), f.Lhs)
	checkTermsEqual(t, term.NewJoin(atomOf(x), atomOf(x.Inverse())), f.Rhs)
}

func Test_Parser_Equation(t *testing.T) {
	x, y := term.Lit('x'), term.Lit('y')
	//
	f := parseOne(t, "xy = yx")
	assert.Equal(t, Equation, f.Relation)
	checkTermsEqual(t, atomOf(x, y), f.Lhs)
	checkTermsEqual(t, atomOf(y, x), f.Rhs)
}

func Test_Parser_Product(t *testing.T) {
	x, y, z, w := term.Lit('x'), term.Lit('y'), term.Lit('z'), term.Lit('w')
	//
	f := parseOne(t, "x(y v z)w = e")
	expected := term.NewProd(atomOf(x), term.NewJoin(atomOf(y), atomOf(z)), atomOf(w))
	checkTermsEqual(t, expected, f.Lhs)
}

func Test_Parser_Meet(t *testing.T) {
	x, y, z := term.Lit('x'), term.Lit('y'), term.Lit('z')
	//
	f := parseOne(t, "x ^ (y v z) = e")
	expected := term.NewMeet(atomOf(x), term.NewJoin(atomOf(y), atomOf(z)))
	checkTermsEqual(t, expected, f.Lhs)
}

func Test_Parser_Inverse(t *testing.T) {
	x, y := term.Lit('x'), term.Lit('y')
	// A leading '-' inverts the whole factor.
	f := parseOne(t, "-xy = e")
	checkTermsEqual(t, atomOf(x, y).Inverse(), f.Lhs)
	// De Morgan applies below the inverse.
	f = parseOne(t, "-(x v y) = e")
	expected := term.NewMeet(atomOf(x.Inverse()), atomOf(y.Inverse()))
	checkTermsEqual(t, expected, f.Lhs)
}

func Test_Parser_UppercaseAndIds(t *testing.T) {
	f := parseOne(t, "X31yz39 = e")
	expected := atomOf(
		term.NewLiteral('x', 31, true),
		term.NewLiteral('y', 0, false),
		term.NewLiteral('z', 39, false))
	//
	checkTermsEqual(t, expected, f.Lhs)
}

func Test_Parser_RedundantBrackets(t *testing.T) {
	x, y, z := term.Lit('x'), term.Lit('y'), term.Lit('z')
	//
	f := parseOne(t, "((x v (z v (x ^ y)))) = e")
	expected := term.NewJoin(
		atomOf(x),
		term.NewJoin(atomOf(z), term.NewMeet(atomOf(x), atomOf(y))))
	//
	checkTermsEqual(t, expected, f.Lhs)
}

func Test_Parser_Whitespace(t *testing.T) {
	lhs := parseOne(t, "x y ^  z = e").Lhs
	rhs := parseOne(t, "xy^z = e").Lhs
	//
	checkTermsEqual(t, lhs, rhs)
}

func Test_Parser_Errors(t *testing.T) {
	inputs := []string{
		"",            // no relation
		"x",           // no relation
		"x = ",        // empty rhs
		"= x",         // empty lhs
		"x <",         // incomplete relation
		"(x = y",      // unmatched bracket
		"x) = y",      // unmatched bracket
		"x ^^ y = e",  // empty meetand
		"3x = e",      // literal cannot start with a digit
		"x v = e",     // empty joinand
		"() = e",      // empty term
		"x = y v (z)(", // trailing bracket
	}
	//
	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected parsing %q to fail", input)
		}
	}
}

func Test_Parser_ErrorSpans(t *testing.T) {
	_, err := Parse("xy == yx")
	// The first '=' splits "xy" from "= yx", whose parse fails.  The error
	// spans "= yx" in the original text, whitespace included.
	assert.Error(t, err)
	//
	syntaxErr, ok := err.(*source.SyntaxError)
	//
	if !ok {
		t.Fatalf("expected a syntax error, got %v", err)
	}
	//
	span := syntaxErr.Span()
	assert.Equal(t, 4, span.Start())
	assert.Equal(t, 8, span.End())
}

func checkTermsEqual(t *testing.T, expected term.Term, actual term.Term) {
	t.Helper()
	//
	if expected.Cmp(actual) != 0 {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}
