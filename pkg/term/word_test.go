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
	"testing"
)

func Test_Word_Reduce_01(t *testing.T) {
	x, y := Lit('x'), Lit('y')
	// x X y ==> y
	checkWordsEqual(t, NewWord(y), NewWord(x, x.Inverse(), y))
}

func Test_Word_Reduce_02(t *testing.T) {
	x, y, z := Lit('x'), Lit('y'), Lit('z')
	// x y z Z Y X ==> e
	word := NewWord(x, y, z, z.Inverse(), y.Inverse(), x.Inverse())
	//
	if !word.IsIdentity() {
		t.Errorf("expected identity, got %s", word)
	}
}

func Test_Word_Reduce_03(t *testing.T) {
	x, y, z := Lit('x'), Lit('y'), Lit('z')
	// Cancellation cascades across the seam: xyZ . zYx = xx
	lhs := NewWord(x, y, z.Inverse())
	rhs := NewWord(z, y.Inverse(), x)
	//
	checkWordsEqual(t, NewWord(x, x), lhs.Mul(rhs))
}

func Test_Word_Inverse(t *testing.T) {
	x, y, z := Lit('x'), Lit('y'), Lit('z')
	xyz := NewWord(x, y, z)
	//
	checkWordsEqual(t, NewWord(z.Inverse(), y.Inverse(), x.Inverse()), xyz.Inverse())
	// (w')' == w
	checkWordsEqual(t, xyz, xyz.Inverse().Inverse())
	// w . w' == e
	if !xyz.Mul(xyz.Inverse()).IsIdentity() {
		t.Errorf("expected identity from w . w'")
	}
	// w' . w == e
	if !xyz.Inverse().Mul(xyz).IsIdentity() {
		t.Errorf("expected identity from w' . w")
	}
}

func Test_Word_InverseOfProduct(t *testing.T) {
	x, y, z := Lit('x'), Lit('y'), Lit('z')
	u := NewWord(x, y)
	v := NewWord(z, x)
	// (u.v)' == v'.u'
	checkWordsEqual(t, v.Inverse().Mul(u.Inverse()), u.Mul(v).Inverse())
}

func Test_Word_Ordering(t *testing.T) {
	x, y := Lit('x'), Lit('y')
	//
	if Identity().Cmp(NewWord(x)) >= 0 {
		t.Errorf("expected e < x")
	}
	//
	if NewWord(x).Cmp(NewWord(x, y)) >= 0 {
		t.Errorf("expected x < xy")
	}
	//
	if NewWord(x).Cmp(NewWord(y)) >= 0 {
		t.Errorf("expected x < y")
	}
	//
	if NewWord(x, y).Cmp(NewWord(x, y)) != 0 {
		t.Errorf("expected xy == xy")
	}
}

func Test_Word_String(t *testing.T) {
	x, y, z := Lit('x'), Lit('y'), Lit('z')
	//
	if s := NewWord(x, y, z).String(); s != "xyz" {
		t.Errorf("expected \"xyz\", got %s", s)
	}
	//
	if s := Identity().String(); s != "e" {
		t.Errorf("expected \"e\", got %s", s)
	}
}

func Test_Literal_String(t *testing.T) {
	if s := Lit('x').String(); s != "x" {
		t.Errorf("expected \"x\", got %s", s)
	}
	//
	if s := Lit('x').Inverse().String(); s != "X" {
		t.Errorf("expected \"X\", got %s", s)
	}
	//
	if s := NewLiteral('x', 31, true).String(); s != "X31" {
		t.Errorf("expected \"X31\", got %s", s)
	}
}

func Test_Literal_Inverse(t *testing.T) {
	x := NewLiteral('x', 2, false)
	//
	if x.Inverse().Inverse() != x {
		t.Errorf("expected double inverse to be the identity map")
	}
	//
	if x.Inverse() == x {
		t.Errorf("expected inverse to differ from the literal")
	}
}

func checkWordsEqual(t *testing.T, expected Word, actual Word) {
	t.Helper()
	//
	if expected.Cmp(actual) != 0 {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}
