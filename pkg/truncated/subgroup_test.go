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
package truncated

import (
	"testing"

	"github.com/consensys/go-lgroup/pkg/term"
	"github.com/stretchr/testify/assert"
)

func Test_Subgroup_Closure_01(t *testing.T) {
	x, y, z := term.Lit('x'), term.Lit('y'), term.Lit('z')
	// {xY, yz} closes to {xY, yz, xz}
	seed := []term.ShortWord{
		term.NewShortWord(x, y.Inverse()),
		term.NewShortWord(y, z),
	}
	//
	sub := NewSubgroup(seed, []term.Literal{x, y, z}, false, false)
	//
	assert.Equal(t, []term.ShortWord{
		term.NewShortWord(x, y.Inverse()),
		term.NewShortWord(x, z),
		term.NewShortWord(y, z),
	}, sub.Elements())
}

func Test_Subgroup_Closure_02(t *testing.T) {
	x, y := term.Lit('x'), term.Lit('y')
	// The meetand of "e <= xx v xy v yX".
	seed := []term.ShortWord{
		term.NewShortWord(x, x),
		term.NewShortWord(x, y),
		term.NewShortWord(y, x.Inverse()),
	}
	//
	sub := NewSubgroup(seed, []term.Literal{x, y}, false, false)
	checkClosed(t, sub)
}

func Test_Subgroup_Closure_03(t *testing.T) {
	x, y, z := term.Lit('x'), term.Lit('y'), term.Lit('z')
	// Mixed lengths, forcing the pair indices into play.
	seed := []term.ShortWord{
		term.NewShortWord(x, y, z),
		term.NewShortWord(z.Inverse(), y.Inverse()),
		term.NewShortWord(y),
	}
	//
	sub := NewSubgroup(seed, []term.Literal{x, y, z}, false, false)
	checkClosed(t, sub)
}

func Test_Subgroup_Identity(t *testing.T) {
	x := term.Lit('x')
	// x . X == e
	seed := []term.ShortWord{
		term.NewShortWord(x),
		term.NewShortWord(x.Inverse()),
	}
	//
	sub := NewSubgroup(seed, []term.Literal{x}, false, false)
	assert.True(t, sub.ContainsIdentity())
	// Same again, stopping at the identity.
	sub = NewSubgroup(seed, []term.Literal{x}, false, true)
	assert.True(t, sub.ContainsIdentity())
}

func Test_Subgroup_InsertRollback(t *testing.T) {
	x, y := term.Lit('x'), term.Lit('y')
	//
	sub := NewSubgroup([]term.ShortWord{term.NewShortWord(x, y)}, []term.Literal{x, y}, false, false)
	snapshot := sub.Elements()
	//
	added := sub.Insert(term.NewShortWord(y))
	assert.True(t, sub.Contains(term.NewShortWord(y)))
	assert.True(t, len(added) >= 1)
	checkClosed(t, sub)
	//
	sub.Remove(added)
	assert.Equal(t, snapshot, sub.Elements())
}

func Test_Subgroup_InsertExisting(t *testing.T) {
	x, y := term.Lit('x'), term.Lit('y')
	//
	sub := NewSubgroup([]term.ShortWord{term.NewShortWord(x, y)}, []term.Literal{x, y}, false, false)
	// Inserting a member changes nothing.
	assert.Empty(t, sub.Insert(term.NewShortWord(x, y)))
}

// checkClosed verifies the closure property by brute force: every product of
// two members whose free product fits in the ball must itself be a member.
func checkClosed(t *testing.T, sub *Subgroup) {
	t.Helper()
	//
	elements := sub.Elements()
	//
	for _, x := range elements {
		for _, y := range elements {
			product := x.Word().Mul(y.Word())
			//
			if product.Len() <= 3 && !sub.Contains(term.ShortWordOf(product)) {
				t.Errorf("closure is missing %s . %s = %s", x, y, product)
			}
		}
	}
}
