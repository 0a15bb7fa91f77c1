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

package clock

import "time"

// Clock is the interface to the sample clock.
type Clock interface {
	Start()
	Stop()
	Running() bool
}

// Timebase returns the time since the board was powered on.
type Timebase interface {
	Now() time.Duration
}

// Wallclock is a Timebase that follows real time.
type Wallclock struct {
	start time.Time
}

// NewWallclock is the preferred method of initialisation for the Wallclock
// type.
func NewWallclock() *Wallclock {
	return &Wallclock{start: time.Now()}
}

// Now implements the Timebase interface.
func (w *Wallclock) Now() time.Duration {
	return time.Since(w.start)
}

// Virtual is a Timebase that only moves when advanced.
type Virtual struct {
	now time.Duration
}

// Now implements the Timebase interface.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// Advance moves the timebase forward.
func (v *Virtual) Advance(d time.Duration) {
	v.now += d
}
