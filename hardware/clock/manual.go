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

// Manual is a sample clock that ticks only when Advance() is called.
type Manual struct {
	handler func()
	running bool

	// total number of ticks delivered to the handler
	Ticks uint64
}

// NewManual is the preferred method of initialisation for the Manual type.
func NewManual(handler func()) *Manual {
	return &Manual{handler: handler}
}

// SetHandler changes the function called on every tick.
func (c *Manual) SetHandler(handler func()) {
	c.handler = handler
}

// Start implements the Clock interface.
func (c *Manual) Start() {
	c.running = true
}

// Stop implements the Clock interface.
func (c *Manual) Stop() {
	c.running = false
}

// Running implements the Clock interface.
func (c *Manual) Running() bool {
	return c.running
}

// Advance the clock by n ticks. Ticks are only delivered if the clock is
// running. Returns the number of ticks delivered.
func (c *Manual) Advance(n int) int {
	var ct int
	for ; ct < n && c.running; ct++ {
		if c.handler != nil {
			c.handler()
		}
		c.Ticks++
	}
	return ct
}
