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
	"slices"
	"strings"
)

// Word is an element of a free group: a sequence of literals which is always
// kept freely reduced (no literal is ever adjacent to its own inverse).  The
// empty word is the group identity.
type Word []Literal

// NewWord constructs the freely reduced word representing a given sequence of
// literals.
func NewWord(literals ...Literal) Word {
	return freelyReduce(slices.Clone(literals))
}

// Identity returns the empty word.
func Identity() Word {
	return Word{}
}

// Len returns the number of literals in this word.
func (p Word) Len() int {
	return len(p)
}

// IsIdentity checks whether this word is the group identity.
func (p Word) IsIdentity() bool {
	return len(p) == 0
}

// Inverse returns the group inverse of this word, which is the reversed
// sequence of inverted literals.  The result is reduced whenever the receiver
// is.
func (p Word) Inverse() Word {
	result := make(Word, len(p))
	//
	for i, l := range p {
		result[len(p)-1-i] = l.Inverse()
	}
	//
	return result
}

// Mul multiplies two words in the free group.  Cancellation can cascade
// across the seam, hence the concatenation is reduced again.
func (p Word) Mul(other Word) Word {
	if len(p) == 0 {
		return other
	} else if len(other) == 0 {
		return p
	}
	//
	return freelyReduce(slices.Concat(p, other))
}

// Cmp implementation for the Comparable interface.  Words are ordered
// lexicographically on their literal sequences, with a proper prefix sorting
// before its extensions.
func (p Word) Cmp(other Word) int {
	for i := 0; i < len(p) && i < len(other); i++ {
		if c := p[i].Cmp(other[i]); c != 0 {
			return c
		}
	}
	//
	switch {
	case len(p) < len(other):
		return -1
	case len(p) > len(other):
		return 1
	}
	//
	return 0
}

// String prints the concatenation of the literals, or "e" for the identity.
func (p Word) String() string {
	if len(p) == 0 {
		return "e"
	}
	//
	var builder strings.Builder
	//
	for _, l := range p {
		builder.WriteString(l.String())
	}
	//
	return builder.String()
}

// freelyReduce removes adjacent inverse pairs using a linear sweep with a
// rewind cursor: after a removal the cursor steps back one position so that
// the newly adjacent pair is re-examined.  The input slice is consumed.
func freelyReduce(literals []Literal) Word {
	index := 0
	//
	for len(literals) > 0 && index < len(literals)-1 {
		if literals[index] == literals[index+1].Inverse() {
			literals = append(literals[:index], literals[index+2:]...)
			//
			if index > 0 {
				index--
			}
		} else {
			index++
		}
	}
	//
	return Word(literals)
}
