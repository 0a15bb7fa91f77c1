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

package terminal

// Action is the result of a key press.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionPress
	ActionStatus
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionStatus:
		return "status"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// ActionForKey returns the action for a key. Any key not otherwise mapped is
// treated as a press of the board's button.
func ActionForKey(k byte) Action {
	switch k {
	case 'q', 'Q', 0x03, 0x04, 0x1b:
		return ActionQuit
	case 's', 'S':
		return ActionStatus
	case '\r', '\n', ' ':
		return ActionPress
	}
	if k >= 0x20 && k < 0x7f {
		return ActionPress
	}
	return ActionNone
}

// Help is a summary of the key mapping.
const Help = "press SPACE when you hear the note. 's' shows statistics. 'q' quits"
