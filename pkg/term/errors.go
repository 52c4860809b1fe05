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

// StructuralError reports a violated invariant of the term representation.
// These indicate bugs rather than bad user input; the validity driver
// propagates them without attempting recovery.
type StructuralError struct {
	msg string
}

// NewStructuralError constructs a structural error with a given message.
func NewStructuralError(msg string) *StructuralError {
	return &StructuralError{msg}
}

// Error implementation for the error interface.
func (e *StructuralError) Error() string {
	return e.msg
}

var (
	// ErrEmptyMeet is reported when a meet with zero operands is encountered
	// during reduction.
	ErrEmptyMeet = &StructuralError{"empty meet"}
	// ErrEmptyJoin is reported when a join with zero operands is encountered
	// during reduction.
	ErrEmptyJoin = &StructuralError{"empty join"}
	// ErrShortWordShape is reported when a short word has a filled slot
	// following an empty one, or more than three literals.
	ErrShortWordShape = &StructuralError{"invalid short word shape"}
)
