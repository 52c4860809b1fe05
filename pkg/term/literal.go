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
	"strconv"
	"unicode"
)

// Literal is a single generator symbol, or the formal inverse of one.  The
// group identity is not a literal; it is represented by the empty Word.
type Literal struct {
	// Char is the (lower case) character naming the generator.
	Char rune
	// Id distinguishes generators sharing the same character.  An id of zero
	// is not printed.
	Id uint
	// Inverted indicates the formal inverse of the generator.
	Inverted bool
}

// NewLiteral constructs a literal from its three components.
func NewLiteral(char rune, id uint, inverted bool) Literal {
	return Literal{char, id, inverted}
}

// Lit constructs the default literal for a given character (id zero, not
// inverted).
func Lit(char rune) Literal {
	return Literal{char, 0, false}
}

// Inverse returns the formal inverse of this literal.
func (p Literal) Inverse() Literal {
	return Literal{p.Char, p.Id, !p.Inverted}
}

// Cmp implementation for the Comparable interface.  Literals are ordered
// lexicographically on (character, id, inversion).
func (p Literal) Cmp(other Literal) int {
	switch {
	case p.Char != other.Char:
		if p.Char < other.Char {
			return -1
		}

		return 1
	case p.Id != other.Id:
		if p.Id < other.Id {
			return -1
		}

		return 1
	case p.Inverted != other.Inverted:
		if other.Inverted {
			return -1
		}

		return 1
	}
	//
	return 0
}

// String prints the literal as its character (upper cased when inverted),
// followed by the id when nonzero.
func (p Literal) String() string {
	char := p.Char
	//
	if p.Inverted {
		char = unicode.ToUpper(char)
	}
	//
	str := string(char)
	//
	if p.Id != 0 {
		str += strconv.FormatUint(uint64(p.Id), 10)
	}
	//
	return str
}
