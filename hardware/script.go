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

package hardware

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/govern"
	"github.com/jetsetilly/pitchsweep/logger"
)

// DefaultHold is the length of a button press in a script if no hold time is
// specified.
const DefaultHold = 100 * time.Millisecond

// BadScript is returned by ParseScript().
const BadScript = "script: %v"

// Press is a single button press in a script.
type Press struct {
	// time of the press from the start of the script
	At time.Duration

	// how long the button is held down for
	Hold time.Duration
}

func (p Press) String() string {
	return fmt.Sprintf("%s:%s", p.At, p.Hold)
}

// Script is a list of button presses sorted by time.
type Script []Press

// ParseScript parses a comma separated list of presses. Each press is a
// duration optionally followed by a colon and the hold time. For example:
//
//	1s, 2.5s:50ms, 5s
func ParseScript(s string) (Script, error) {
	var scr Script

	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		p := Press{Hold: DefaultHold}

		at, hold, found := strings.Cut(f, ":")

		var err error
		p.At, err = time.ParseDuration(at)
		if err != nil {
			return nil, curated.Errorf(BadScript, err)
		}
		if found {
			p.Hold, err = time.ParseDuration(hold)
			if err != nil {
				return nil, curated.Errorf(BadScript, err)
			}
		}

		if p.At < 0 || p.Hold <= 0 {
			return nil, curated.Errorf(BadScript, fmt.Sprintf("invalid press (%s)", f))
		}

		scr = append(scr, p)
	}

	sort.SliceStable(scr, func(i, j int) bool {
		return scr[i].At < scr[j].At
	})

	return scr, nil
}

// End returns the time at which the last press in the script is released.
func (scr Script) End() time.Duration {
	var end time.Duration
	for _, p := range scr {
		end = max(end, p.At+p.Hold)
	}
	return end
}

// Simulate runs a virtual board for the duration, pressing the button as
// directed by the script. The times in the script are relative to the time of
// the board when Simulate() is called.
func (brd *Board) Simulate(scr Script, d time.Duration) error {
	if brd.Realtime() {
		return fmt.Errorf("board: Simulate() is not supported by realtime boards")
	}

	start := brd.Now()

	var next int
	var releaseAt time.Duration
	var held bool

	return brd.RunFor(d, func() (govern.State, error) {
		now := brd.Now() - start

		if held && now >= releaseAt {
			brd.Release()
			held = false
		}

		if next < len(scr) && now >= scr[next].At {
			logger.Logf(logger.Allow, "script", "press %s", scr[next])
			brd.Press()
			held = true
			releaseAt = scr[next].At + scr[next].Hold
			next++
		}

		return govern.Running, nil
	})
}
