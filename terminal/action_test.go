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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/pitchsweep/terminal"
	"github.com/jetsetilly/pitchsweep/test"
)

func TestActionForKey(t *testing.T) {
	test.ExpectEquality(t, terminal.ActionForKey(' '), terminal.ActionPress)
	test.ExpectEquality(t, terminal.ActionForKey('\r'), terminal.ActionPress)
	test.ExpectEquality(t, terminal.ActionForKey('x'), terminal.ActionPress)
	test.ExpectEquality(t, terminal.ActionForKey('q'), terminal.ActionQuit)
	test.ExpectEquality(t, terminal.ActionForKey(0x03), terminal.ActionQuit)
	test.ExpectEquality(t, terminal.ActionForKey('s'), terminal.ActionStatus)
	test.ExpectEquality(t, terminal.ActionForKey(0x01), terminal.ActionNone)
	test.ExpectEquality(t, terminal.ActionQuit.String(), "quit")
}
