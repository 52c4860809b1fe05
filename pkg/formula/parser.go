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
	"strconv"
	"unicode"

	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/consensys/go-lgroup/pkg/util/source"
)

// Parse parses a formula of the form "lhs = rhs" or "lhs <= rhs".  Literals
// are single letters optionally followed by an id, with upper case denoting
// inversion; juxtaposition is product; "^" is meet, "v" is join and a leading
// "-" inverts the following factor; "e" denotes the identity.  Whitespace is
// ignored throughout.  Errors are reported as syntax errors spanning the
// offending substring.
func Parse(input string) (Formula, error) {
	srcfile := source.NewSourceFile("formula", []byte(input))
	p := newParser(srcfile)
	//
	for i, c := range p.text {
		switch c {
		case '<':
			if i+1 >= len(p.text) || p.text[i+1] != '=' {
				return Formula{}, p.errorAt(i, i+1, "expected '<='")
			}
			//
			return p.parseFormula(Inequation, i, i+2)
		case '=':
			return p.parseFormula(Equation, i, i+1)
		}
	}
	//
	return Formula{}, p.errorAt(0, len(p.text), "expected '=' or '<='")
}

// parser holds the whitespace-stripped input alongside a mapping back to the
// original text, so that error spans refer to what the user actually wrote.
type parser struct {
	srcfile *source.File
	// Input runes with whitespace removed.
	text []rune
	// Original index of each retained rune.
	posmap []int
}

func newParser(srcfile *source.File) *parser {
	var (
		text   []rune
		posmap []int
	)
	//
	for i, c := range srcfile.Contents() {
		if !unicode.IsSpace(c) {
			text = append(text, c)
			posmap = append(posmap, i)
		}
	}
	//
	return &parser{srcfile, text, posmap}
}

func (p *parser) parseFormula(relation Relation, delim int, rhsStart int) (Formula, error) {
	lhs, err := p.parseTerm(0, delim)
	//
	if err != nil {
		return Formula{}, err
	}
	//
	rhs, err := p.parseTerm(rhsStart, len(p.text))
	//
	if err != nil {
		return Formula{}, err
	}
	//
	return Formula{relation, lhs, rhs}, nil
}

// parseTerm parses the half-open range [lo, hi) of the stripped input.
func (p *parser) parseTerm(lo int, hi int) (term.Term, *source.SyntaxError) {
	var err *source.SyntaxError
	//
	if lo, hi, err = p.stripBrackets(lo, hi); err != nil {
		return nil, err
	}
	//
	if lo >= hi {
		return nil, p.errorAt(lo, hi, "empty term")
	}
	//
	switch {
	case p.isAtom(lo, hi):
		return p.parseAtom(lo, hi)
	case p.isInverse(lo, hi):
		inner, err := p.parseTerm(lo+1, hi)
		//
		if err != nil {
			return nil, err
		}
		//
		return inner.Inverse(), nil
	case p.hasToplevel(lo, hi, '^'):
		return p.parseVariadic(lo, hi, '^')
	case p.hasToplevel(lo, hi, 'v'):
		return p.parseVariadic(lo, hi, 'v')
	}
	//
	return p.parseProduct(lo, hi)
}

// stripBrackets removes redundant outermost bracket pairs, reporting bracket
// mismatches as it goes.
func (p *parser) stripBrackets(lo int, hi int) (int, int, *source.SyntaxError) {
	for hi-lo >= 2 && p.text[lo] == '(' {
		depth := 0
		match := -1
		//
		for i := lo; i < hi; i++ {
			switch p.text[i] {
			case '(':
				depth++
			case ')':
				depth--
				//
				if depth < 0 {
					return 0, 0, p.errorAt(i, i+1, "unmatched ')'")
				}
			}
			//
			if depth == 0 && p.text[i] == ')' {
				match = i
				break
			}
		}
		//
		if match == -1 {
			return 0, 0, p.errorAt(lo, lo+1, "unmatched '('")
		} else if match != hi-1 {
			// Outermost brackets do not enclose the whole term.
			break
		}
		//
		lo, hi = lo+1, hi-1
	}
	//
	return lo, hi, nil
}

// isAtom checks whether the range consists solely of literal characters.  A
// bare 'v' always denotes a join, so it cannot appear in an atom.
func (p *parser) isAtom(lo int, hi int) bool {
	for i := lo; i < hi; i++ {
		c := p.text[i]
		//
		if c == 'v' || (!unicode.IsLetter(c) && !unicode.IsDigit(c)) {
			return false
		}
	}
	//
	return true
}

// isInverse checks for a leading '-' applying to the entire remainder.
func (p *parser) isInverse(lo int, hi int) bool {
	if p.text[lo] != '-' {
		return false
	}
	//
	depth := 0
	//
	for i := lo + 1; i < hi; i++ {
		switch p.text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case 'v', '^', '-':
			if depth == 0 {
				return false
			}
		}
	}
	//
	return true
}

// hasToplevel checks whether an operator occurs at bracket depth zero.
func (p *parser) hasToplevel(lo int, hi int, op rune) bool {
	depth := 0
	//
	for i := lo; i < hi; i++ {
		switch p.text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case op:
			if depth == 0 {
				return true
			}
		}
	}
	//
	return false
}

// parseVariadic parses a meet or join by splitting at depth-zero occurrences
// of the operator.
func (p *parser) parseVariadic(lo int, hi int, op rune) (term.Term, *source.SyntaxError) {
	var (
		operands []term.Term
		depth    int
		start    = lo
	)
	//
	parseOperand := func(from int, to int) *source.SyntaxError {
		operand, err := p.parseTerm(from, to)
		//
		if err != nil {
			return err
		}
		//
		operands = append(operands, operand)
		//
		return nil
	}
	//
	for i := lo; i < hi; i++ {
		switch p.text[i] {
		case '(':
			depth++
		case ')':
			depth--
			//
			if depth < 0 {
				return nil, p.errorAt(i, i+1, "unmatched ')'")
			}
		case op:
			if depth == 0 {
				if err := parseOperand(start, i); err != nil {
					return nil, err
				}
				//
				start = i + 1
			}
		}
	}
	//
	if err := parseOperand(start, hi); err != nil {
		return nil, err
	}
	//
	if op == '^' {
		return term.NewMeet(operands...), nil
	}
	//
	return term.NewJoin(operands...), nil
}

// parseProduct parses a juxtaposition of factors.  Factor boundaries fall at
// depth-zero brackets and at a '-' beginning a new (inverted) factor.
func (p *parser) parseProduct(lo int, hi int) (term.Term, *source.SyntaxError) {
	var (
		factors []term.Term
		depth   int
		start   = lo
	)
	//
	parseFactor := func(from int, to int) *source.SyntaxError {
		factor, err := p.parseTerm(from, to)
		//
		if err != nil {
			return err
		}
		//
		factors = append(factors, factor)
		//
		return nil
	}
	//
	for i := lo; i < hi; i++ {
		switch p.text[i] {
		case '(':
			if depth == 0 && i > start {
				if err := parseFactor(start, i); err != nil {
					return nil, err
				}
				//
				start = i
			}
			//
			depth++
		case ')':
			depth--
			//
			if depth < 0 {
				return nil, p.errorAt(i, i+1, "unmatched ')'")
			}
			//
			if depth == 0 {
				if err := parseFactor(start, i+1); err != nil {
					return nil, err
				}
				//
				start = i + 1
			}
		case '-':
			if depth == 0 && i > start {
				if err := parseFactor(start, i); err != nil {
					return nil, err
				}
				//
				start = i
			}
		}
	}
	//
	if depth != 0 {
		return nil, p.errorAt(hi-1, hi, "unmatched '('")
	}
	//
	if start < hi {
		if start == lo {
			// No factor boundary was found, so recursing would not make
			// progress.
			return nil, p.errorAt(lo, hi, "cannot parse term")
		}
		//
		if err := parseFactor(start, hi); err != nil {
			return nil, err
		}
	}
	//
	return term.NewProd(factors...), nil
}

// parseAtom parses a free-group word: "e" for the identity, otherwise one or
// more literals.
func (p *parser) parseAtom(lo int, hi int) (term.Term, *source.SyntaxError) {
	if hi-lo == 1 && p.text[lo] == 'e' {
		return term.IdentityAtom(), nil
	}
	//
	var literals []term.Literal
	//
	for i := lo; i < hi; {
		char := p.text[i]
		//
		if !unicode.IsLetter(char) {
			return nil, p.errorAt(i, i+1, "invalid literal "+strconv.Quote(string(char)))
		}
		//
		j := i + 1
		//
		for j < hi && unicode.IsDigit(p.text[j]) {
			j++
		}
		//
		var id uint
		//
		if j > i+1 {
			n, err := strconv.ParseUint(string(p.text[i+1:j]), 10, 64)
			//
			if err != nil {
				return nil, p.errorAt(i, j, "invalid literal "+strconv.Quote(string(p.text[i:j])))
			}
			//
			id = uint(n)
		}
		//
		literals = append(literals, term.NewLiteral(unicode.ToLower(char), id, unicode.IsUpper(char)))
		i = j
	}
	//
	return term.NewAtom(term.NewWord(literals...)), nil
}

// errorAt constructs a syntax error covering the given range of the stripped
// input, translated back to the original text.
func (p *parser) errorAt(lo int, hi int, msg string) *source.SyntaxError {
	n := len(p.srcfile.Contents())
	start, end := n, n
	//
	if lo < len(p.posmap) {
		start = p.posmap[lo]
	}
	//
	if hi-1 < len(p.posmap) && hi > lo {
		end = p.posmap[hi-1] + 1
	} else {
		end = start
	}
	//
	return p.srcfile.SyntaxError(source.NewSpan(start, end), msg)
}
