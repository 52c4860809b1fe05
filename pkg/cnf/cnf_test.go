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
	"testing"

	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/stretchr/testify/assert"
)

func atomOf(literals ...term.Literal) *term.Atom {
	return term.NewAtom(term.NewWord(literals...))
}

func Test_CNF_String(t *testing.T) {
	x, y, z, w := term.Lit('x'), term.Lit('y'), term.Lit('z'), term.Lit('w')
	//
	normal := NewCNFOf(
		NewMeetand(term.NewWord(x), term.NewWord(y)),
		NewMeetand(term.NewWord(z), term.NewWord(w)))
	//
	assert.Equal(t, "(w v z) ^ (x v y)", normal.String())
	assert.Equal(t, "(())", NewCNFOf().String())
}

func Test_CNF_Atom(t *testing.T) {
	x, y := term.Lit('x'), term.Lit('y')
	//
	normal, err := NewCNF(atomOf(x, y), NewCounter())
	//
	assert.NoError(t, err)
	assert.Equal(t, []Meetand{NewMeetand(term.NewWord(x, y))}, normal.Meetands())
}

func Test_CNF_DirectDistribution(t *testing.T) {
	x, y, z, w := term.Lit('x'), term.Lit('y'), term.Lit('z'), term.Lit('w')
	// x . (y v z) . w ==> xyw v xzw
	product := term.NewProd(atomOf(x), term.NewJoin(atomOf(y), atomOf(z)), atomOf(w))
	//
	normal, err := NewCNF(product, NewCounter())
	//
	assert.NoError(t, err)
	assert.Equal(t,
		[]Meetand{NewMeetand(term.NewWord(x, y, w), term.NewWord(x, z, w))},
		normal.Meetands())
}

func Test_CNF_MeetOverJoin(t *testing.T) {
	x, y, z := term.Lit('x'), term.Lit('y'), term.Lit('z')
	// (x ^ y) v z ==> (x v z) ^ (y v z)
	join := term.NewJoin(term.NewMeet(atomOf(x), atomOf(y)), atomOf(z))
	//
	normal, err := NewCNF(join, NewCounter())
	//
	assert.NoError(t, err)
	assert.Equal(t,
		[]Meetand{
			NewMeetand(term.NewWord(x), term.NewWord(z)),
			NewMeetand(term.NewWord(y), term.NewWord(z)),
		},
		normal.Meetands())
}

func Test_CNF_ProdOverMeet(t *testing.T) {
	x, y, z := term.Lit('x'), term.Lit('y'), term.Lit('z')
	// x . (y ^ z) ==> xy ^ xz
	product := term.NewProd(atomOf(x), term.NewMeet(atomOf(y), atomOf(z)))
	//
	normal, err := NewCNF(product, NewCounter())
	//
	assert.NoError(t, err)
	assert.Equal(t,
		[]Meetand{
			NewMeetand(term.NewWord(x, y)),
			NewMeetand(term.NewWord(x, z)),
		},
		normal.Meetands())
}

func Test_CNF_FreshVariables(t *testing.T) {
	x, y, z, w := term.Lit('x'), term.Lit('y'), term.Lit('z'), term.Lit('w')
	// A product of two joins cannot distribute directly, so fresh variables
	// must be drawn.
	product := term.NewProd(
		term.NewJoin(atomOf(x), atomOf(y)),
		term.NewJoin(atomOf(z), atomOf(w)))
	//
	fresh := NewCounter()
	normal, err := NewCNF(product, fresh)
	//
	assert.NoError(t, err)
	assert.True(t, fresh.Peek() > 1, "expected fresh variables to be allocated")
	assert.True(t, len(normal.Meetands()) >= 1)
}
