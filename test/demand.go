// This file is part of Pitchsweep.
//
// Pitchsweep is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pitchsweep is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pitchsweep.  If not, see <https://www.gnu.org/licenses/>.

package test

import "testing"

// The Demand functions stop the test immediately. Use them when the rest of
// the test depends on the value, such as the board being created.

// DemandEquality stops the test if v and expectedValue differ.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%s%T: got '%v', demanded '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess stops the test if v is not a success value. See ExpectSuccess()
// for what counts as success.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v, tags...) {
		t.Fatalf("%s%T: success demanded (%v)", id(tags...), v, v)
	}
}

// DemandFailure stops the test if v is a success value.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		t.Fatalf("%s%T: failure demanded", id(tags...), v)
	}
}
