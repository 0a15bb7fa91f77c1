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

package govern

import "strings"

// Mode indicates how the program is using the board.
type Mode int

func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "Play"
	case ModeSimulate:
		return "Simulate"
	case ModeAnalyse:
		return "Analyse"
	}

	return ""
}

// List of defined modes.
const (
	ModeNone Mode = iota

	// the board follows the wall clock and the button is pressed by the user
	ModePlay

	// the board runs as quickly as possible from a virtual clock and the
	// button is pressed by a script
	ModeSimulate

	// no board is created. a recording of the board's output is examined
	ModeAnalyse
)

// ParseMode returns the Mode named by s. Case is ignored. ModeNone is returned
// if s does not name a mode.
func ParseMode(s string) Mode {
	for _, m := range []Mode{ModePlay, ModeSimulate, ModeAnalyse} {
		if strings.EqualFold(s, m.String()) {
			return m
		}
	}
	return ModeNone
}
