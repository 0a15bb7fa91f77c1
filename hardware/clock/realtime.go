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

import (
	"sync"
	"time"

	"github.com/jetsetilly/pitchsweep/logger"
)

// BatchRate is the number of batches per second delivered by the Realtime
// clock.
const BatchRate = 128

// Realtime is a sample clock that follows the wall clock. Ticks are delivered
// in batches from a separate goroutine. The average tick rate is exact but
// the spacing of individual ticks is not.
type Realtime struct {
	// the handler is only ever called in the critical section. Stop() and
	// Start() also claim the critical section
	crit    sync.Mutex
	handler func()
	rate    int
	running bool

	// time of the most recent batch and the number of ticks owed but not
	// yet delivered
	last  time.Time
	owing float64

	// total number of ticks delivered to the handler
	ticks uint64

	quit chan bool
	done chan bool
}

// NewRealtime creates and launches a new Realtime clock. The clock is not
// running until Start() is called. End() should be called when the clock is
// no longer needed.
func NewRealtime(rate int, handler func()) *Realtime {
	c := &Realtime{
		handler: handler,
		rate:    rate,
		quit:    make(chan bool),
		done:    make(chan bool),
	}

	go func() {
		defer close(c.done)

		tck := time.NewTicker(time.Second / BatchRate)
		defer tck.Stop()

		for {
			select {
			case <-c.quit:
				return
			case now := <-tck.C:
				c.batch(now)
			}
		}
	}()

	return c
}

func (c *Realtime) batch(now time.Time) {
	c.crit.Lock()
	defer c.crit.Unlock()

	if !c.running {
		return
	}

	c.owing += now.Sub(c.last).Seconds() * float64(c.rate)
	c.last = now

	// never try to catch up by more than a second. this will only happen if
	// the process has been suspended
	if c.owing > float64(c.rate) {
		logger.Logf(logger.Allow, "clock", "dropping %d ticks", int(c.owing)-c.rate)
		c.owing = float64(c.rate)
	}

	for c.owing >= 1 {
		c.handler()
		c.ticks++
		c.owing--
	}
}

// Start implements the Clock interface.
func (c *Realtime) Start() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.running = true
	c.last = time.Now()
	c.owing = 0
}

// Stop implements the Clock interface. The handler will not be called after
// Stop() has returned.
func (c *Realtime) Stop() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.running = false
}

// Running implements the Clock interface.
func (c *Realtime) Running() bool {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.running
}

// Ticks returns the number of ticks delivered so far.
func (c *Realtime) Ticks() uint64 {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.ticks
}

// End stops the clock goroutine. The clock cannot be restarted.
func (c *Realtime) End() {
	c.Stop()
	close(c.quit)
	<-c.done
}
