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
package validity

import (
	"testing"
)

func Test_Validity_Distributive(t *testing.T) {
	checkValid(t, "x ^ (y v z) = (x ^ y) v (x ^ z)")
}

func Test_Validity_MulDistributive(t *testing.T) {
	checkValid(t, "x(y v z)w = xyw v xzw")
	checkValid(t, "x(y ^ z)w = xyw ^ xzw")
}

func Test_Validity_DeMorgan(t *testing.T) {
	checkValid(t, "X ^ Y = -(x v y)")
	checkValid(t, "X v Y = -(x ^ y)")
}

func Test_Validity_MetcalfeExercise18(t *testing.T) {
	checkValid(t, "e <= x v X")
	checkValid(t, "xy ^ e <= x v y")
}

func Test_Validity_ColacitoExample136(t *testing.T) {
	checkValid(t, "e <= xx v yy v XY")
}

func Test_Validity_Prelinearity(t *testing.T) {
	checkValid(t, "(Xy ^ e) v (Yx ^ e) = e")
	checkValid(t, "(xY ^ e) v (yX ^ e) = e")
}

func Test_Validity_CyclicOrder(t *testing.T) {
	checkValid(t, "e <= xY v yZ v zX")
}

func Test_Validity_Trivial(t *testing.T) {
	checkValid(t, "e = e")
}

func Test_Validity_Commutativity(t *testing.T) {
	checkInvalid(t, "xy = yx")
}

func Test_Validity_ColacitoExample137(t *testing.T) {
	checkInvalid(t, "e <= xx v xy v yX")
}

func Test_Validity_RepresentableLGroups(t *testing.T) {
	checkInvalid(t, "e <= x v yXY")
}

func Test_Validity_WeaklyAbelian(t *testing.T) {
	checkInvalid(t, "(x ^ e)(x ^ e) <= Y(x ^ e)y")
}

func TestSlow_Validity_RepresentableLMonoids(t *testing.T) {
	checkInvalid(t, "xyz ^ rst <= xsz v ryt")
}

func Test_Validity_DegenerateLongAtom(t *testing.T) {
	// The single meetand is a long non-identity atom, hence dropped; with no
	// constraint derivable the formula is not forced.
	checkInvalid(t, "e <= xyzw")
}

func Test_Validity_ParseError(t *testing.T) {
	if _, err := IsValidString("x <= (y"); err == nil {
		t.Errorf("expected a parse error")
	}
	//
	if _, err := IsValidString("x"); err == nil {
		t.Errorf("expected a parse error")
	}
}

func checkValid(t *testing.T, input string) {
	t.Helper()
	//
	valid, err := IsValidString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error for %s: %s", input, err)
	}
	//
	if !valid {
		t.Errorf("expected %s to be valid", input)
	}
}

func checkInvalid(t *testing.T, input string) {
	t.Helper()
	//
	valid, err := IsValidString(input)
	//
	if err != nil {
		t.Fatalf("unexpected error for %s: %s", input, err)
	}
	//
	if valid {
		t.Errorf("expected %s to be invalid", input)
	}
}
