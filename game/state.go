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

package game

// State of the game.
type State int32

// List of valid State values.
const (
	Idle State = iota
	PlaySingleTone
	RunSweep
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case PlaySingleTone:
		return "PlaySingleTone"
	case RunSweep:
		return "RunSweep"
	}
	return "unknown state"
}
