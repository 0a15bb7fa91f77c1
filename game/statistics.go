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

import (
	"fmt"

	"github.com/jetsetilly/pitchsweep/notes"
)

// Result of a round that was ended by the player.
type Result struct {
	Frequency float64
	Delta     float64
	Note      notes.Note
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%.2fHz) %.2fHz off", r.Note, r.Frequency, r.Delta)
}

// Statistics for all rounds since the game was created.
type Statistics struct {
	// number of times the reference tone was played
	Rounds int

	// number of sweeps ended by the player and the number of sweeps that ran
	// to completion
	Stopped  int
	Timeouts int

	// failed attempts to start a round
	Errors int

	// the most recent result. nil if no sweep has been stopped by the player
	Last *Result

	// the smallest delta seen so far. only valid if Stopped is not zero
	Best float64
}

func (st Statistics) String() string {
	if st.Last == nil {
		return fmt.Sprintf("rounds: %d timeouts: %d", st.Rounds, st.Timeouts)
	}
	return fmt.Sprintf("rounds: %d timeouts: %d best: %.2fHz last: %s", st.Rounds, st.Timeouts, st.Best, st.Last)
}
