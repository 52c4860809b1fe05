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

func Test_Group_OneGenerator(t *testing.T) {
	ball := NewGroup([]term.Literal{term.Lit('x')})
	// e, x, X, xx, XX, xxx, XXX
	assert.Equal(t, 7, len(ball.Elements()))
	assert.Equal(t, 6, len(ball.ElementsExceptIdentity()))
}

func Test_Group_TwoGenerators(t *testing.T) {
	ball := NewGroup([]term.Literal{term.Lit('x'), term.Lit('y')})
	// 1 + 4 + 4*3 + 4*3*3 freely reduced words of length at most three.
	assert.Equal(t, 53, len(ball.Elements()))
	assert.Equal(t, 52, len(ball.ElementsExceptIdentity()))
}

func Test_Group_ContainsIdentity(t *testing.T) {
	ball := NewGroup([]term.Literal{term.Lit('x'), term.Lit('y')})
	//
	found := false
	//
	for _, x := range ball.Elements() {
		if x.IsIdentity() {
			found = true
		}
	}
	//
	assert.True(t, found, "expected the ball to contain the identity")
}
