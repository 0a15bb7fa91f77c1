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

package button

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/pitchsweep/logger"
)

// Pin is the input the button is connected to. Level() returns true if the
// input is high.
type Pin interface {
	Level() bool
}

// Debouncer turns the edges from an active-low input into activations.
type Debouncer struct {
	pin    Pin
	settle time.Duration

	// deadline of the pending debounce. zero if there is no debounce pending
	deadline atomic.Int64

	// number of edges that were absorbed by a pending debounce and the
	// number of activations that have been raised
	absorbed    atomic.Uint64
	activations atomic.Uint64
}

// NewDebouncer is the preferred method of initialisation for the Debouncer
// type.
func NewDebouncer(pin Pin, settle time.Duration) *Debouncer {
	return &Debouncer{
		pin:    pin,
		settle: settle,
	}
}

// Edge is called on the falling edge of the input. It is safe to call Edge()
// from a different goroutine to Poll().
func (d *Debouncer) Edge(now time.Duration) {
	dl := int64(now + d.settle)
	if dl <= 0 {
		dl = 1
	}
	if !d.deadline.CompareAndSwap(0, dl) {
		d.absorbed.Add(1)
	}
}

// Pending returns true if an edge has been seen and the input has not yet
// been sampled.
func (d *Debouncer) Pending() bool {
	return d.deadline.Load() != 0
}

// Poll samples the input if the settle time of a pending edge has passed.
// Returns true if the button has been pressed.
func (d *Debouncer) Poll(now time.Duration) bool {
	dl := d.deadline.Load()
	if dl == 0 || int64(now) < dl {
		return false
	}
	if !d.deadline.CompareAndSwap(dl, 0) {
		return false
	}

	// active-low
	if d.pin.Level() {
		logger.Log(logger.Allow, "button", "released before settling")
		return false
	}

	d.activations.Add(1)
	return true
}

// Activations returns the number of activations raised by Poll().
func (d *Debouncer) Activations() uint64 {
	return d.activations.Load()
}

// Absorbed returns the number of edges that arrived while a debounce was
// pending.
func (d *Debouncer) Absorbed() uint64 {
	return d.absorbed.Load()
}
