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
	"time"

	"github.com/jetsetilly/pitchsweep/govern"
)

// PollInterval is the time between main loop iterations of a realtime board.
const PollInterval = time.Millisecond

// Step advances a virtual board by one sample period. The sample interrupt is
// raised if the clock is running and then the main loop is serviced. A
// realtime board is serviced but time is not advanced.
func (brd *Board) Step() {
	if brd.realtime == nil {
		brd.manual.Advance(1)
		brd.steps++
		brd.virtual.Advance(brd.sampleTime(brd.steps) - brd.virtual.Now())
	}
	brd.Service()
}

// the time at the end of the sample period. calculated from the number of
// steps so that rounding errors do not accumulate
func (brd *Board) sampleTime(steps int64) time.Duration {
	return time.Duration(steps * int64(time.Second) / int64(brd.sampleRate))
}

// Run sets the emulation running. A virtual board is run as quickly as
// possible, a realtime board services the main loop every PollInterval.
//
// The continueCheck function is called after every iteration and the loop ends
// when it returns govern.Ending.
func (brd *Board) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			brd.Step()
			if brd.realtime != nil {
				time.Sleep(PollInterval)
			}
		case govern.Paused:
			if brd.realtime != nil {
				time.Sleep(PollInterval)
			}
		default:
			return fmt.Errorf("board: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunFor runs a virtual board for the duration. It is equivalent to Run() with
// a continueCheck that ends when the board's time passes the duration.
func (brd *Board) RunFor(d time.Duration, continueCheck func() (govern.State, error)) error {
	if brd.realtime != nil {
		return fmt.Errorf("board: RunFor() is not supported by realtime boards")
	}

	end := brd.Now() + d

	return brd.Run(func() (govern.State, error) {
		if brd.Now() >= end {
			return govern.Ending, nil
		}
		if continueCheck != nil {
			return continueCheck()
		}
		return govern.Running, nil
	})
}
