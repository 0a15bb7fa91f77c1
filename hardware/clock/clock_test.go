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

package clock_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/pitchsweep/hardware/clock"
	"github.com/jetsetilly/pitchsweep/test"
)

func TestManual(t *testing.T) {
	var ct int
	c := clock.NewManual(func() { ct++ })

	// not running
	test.ExpectEquality(t, c.Advance(10), 0)
	test.ExpectEquality(t, ct, 0)

	c.Start()
	test.ExpectEquality(t, c.Running(), true)
	test.ExpectEquality(t, c.Advance(10), 10)
	test.ExpectEquality(t, ct, 10)

	c.Stop()
	test.ExpectEquality(t, c.Advance(10), 0)
	test.ExpectEquality(t, ct, 10)
	test.ExpectEquality(t, c.Ticks, uint64(10))
}

func TestManualStopFromHandler(t *testing.T) {
	var c *clock.Manual
	var ct int
	c = clock.NewManual(func() {
		ct++
		if ct == 3 {
			c.Stop()
		}
	})
	c.Start()
	test.ExpectEquality(t, c.Advance(10), 3)
}

func TestRealtime(t *testing.T) {
	var ct atomic.Int64
	c := clock.NewRealtime(1000, func() { ct.Add(1) })
	defer c.End()

	c.Start()
	time.Sleep(200 * time.Millisecond)
	c.Stop()

	// no ticks are delivered once Stop() has returned
	stopped := ct.Load()
	time.Sleep(50 * time.Millisecond)
	test.ExpectEquality(t, ct.Load(), stopped)
	test.ExpectEquality(t, c.Ticks(), uint64(stopped))

	// roughly the right number of ticks. the tolerance is generous because
	// of scheduling jitter on busy test machines
	test.ExpectSuccess(t, stopped > 50)
	test.ExpectSuccess(t, stopped <= 1000)
}

func TestVirtual(t *testing.T) {
	var v clock.Virtual
	test.ExpectEquality(t, v.Now(), time.Duration(0))
	v.Advance(time.Second)
	v.Advance(time.Millisecond)
	test.ExpectEquality(t, v.Now(), time.Second+time.Millisecond)

	w := clock.NewWallclock()
	test.ExpectSuccess(t, w.Now() >= 0)
}
