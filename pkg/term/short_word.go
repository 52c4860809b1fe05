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

	"github.com/consensys/go-lgroup/pkg/util"
)

// ShortWord is a freely reduced word of length at most three, stored as an
// ordered triple of optional literals.  A filled slot never follows an empty
// one.  Multiplication truncates to the leftmost three literals; see
// ShortWord.Mul for where that is sound.
type ShortWord struct {
	// Left is the first literal of the word, empty only for the identity.
	Left util.Option[Literal]
	// Mid is the second literal of the word.
	Mid util.Option[Literal]
	// Right is the third literal of the word.
	Right util.Option[Literal]
}

// NewShortWord constructs a short word from at most three literals.
func NewShortWord(literals ...Literal) ShortWord {
	switch len(literals) {
	case 0:
		return ShortWord{util.None[Literal](), util.None[Literal](), util.None[Literal]()}
	case 1:
		return ShortWord{util.Some(literals[0]), util.None[Literal](), util.None[Literal]()}
	case 2:
		return ShortWord{util.Some(literals[0]), util.Some(literals[1]), util.None[Literal]()}
	case 3:
		return ShortWord{util.Some(literals[0]), util.Some(literals[1]), util.Some(literals[2])}
	}
	//
	panic(ErrShortWordShape)
}

// ShortWordOf truncates a word, retaining only its leftmost three literals.
func ShortWordOf(word Word) ShortWord {
	if len(word) > 3 {
		word = word[:3]
	}
	//
	return NewShortWord(word...)
}

// IdentityShortWord returns the short word representing the group identity.
func IdentityShortWord() ShortWord {
	return NewShortWord()
}

// Len returns the number of literals in this short word.
func (p ShortWord) Len() int {
	switch {
	case p.Left.IsEmpty() && p.Mid.IsEmpty() && p.Right.IsEmpty():
		return 0
	case p.Mid.IsEmpty() && p.Right.IsEmpty():
		return 1
	case p.Left.HasValue() && p.Mid.HasValue() && p.Right.IsEmpty():
		return 2
	case p.Left.HasValue() && p.Mid.HasValue() && p.Right.HasValue():
		return 3
	}
	// Some slot follows an empty one.
	panic(ErrShortWordShape)
}

// IsIdentity checks whether this short word is the group identity.
func (p ShortWord) IsIdentity() bool {
	return p.Left.IsEmpty() && p.Mid.IsEmpty() && p.Right.IsEmpty()
}

// Literals returns the literals of this short word, in order.
func (p ShortWord) Literals() []Literal {
	literals := make([]Literal, 0, 3)
	//
	for _, slot := range []util.Option[Literal]{p.Left, p.Mid, p.Right} {
		if slot.HasValue() {
			literals = append(literals, slot.Unwrap())
		}
	}
	//
	return literals
}

// Word returns the underlying free-group word.
func (p ShortWord) Word() Word {
	return Word(p.Literals())
}

// Inverse returns the group inverse of this short word.
func (p ShortWord) Inverse() ShortWord {
	literals := p.Literals()
	//
	for i, j := 0, len(literals)-1; i < j; i, j = i+1, j-1 {
		literals[i], literals[j] = literals[j], literals[i]
	}
	//
	for i, l := range literals {
		literals[i] = l.Inverse()
	}
	//
	return NewShortWord(literals...)
}

// Mul multiplies two short words, truncating the result to three literals.
// Truncation is only meaningful at two call sites: the truncated subgroup
// guards every product so that truncation never actually drops a literal, and
// 3-CNF shortening truncates deliberately.
func (p ShortWord) Mul(other ShortWord) ShortWord {
	return ShortWordOf(p.Word().Mul(other.Word()))
}

// Cmp implementation for the Comparable interface.  Short words are ordered
// by length first, then lexicographically.  Length-first ordering is what
// makes "first element of the complement" a shortest-element heuristic in the
// right-order search.
func (p ShortWord) Cmp(other ShortWord) int {
	m, n := p.Len(), other.Len()
	//
	switch {
	case m < n:
		return -1
	case m > n:
		return 1
	}
	//
	return p.Word().Cmp(other.Word())
}

// String prints the concatenation of the literals, or "e" for the identity.
func (p ShortWord) String() string {
	if p.IsIdentity() {
		return "e"
	}
	//
	var builder strings.Builder
	//
	for _, l := range p.Literals() {
		builder.WriteString(l.String())
	}
	//
	return builder.String()
}
