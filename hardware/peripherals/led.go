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

package peripherals

import (
	"sync/atomic"

	"github.com/jetsetilly/pitchsweep/logger"
)

// LED is the status indicator. It is lit while a sweep is in progress.
type LED struct {
	active atomic.Bool
}

// SetActive lights or extinguishes the LED.
func (led *LED) SetActive(active bool) {
	if led.active.Swap(active) != active {
		if active {
			logger.Log(logger.Allow, "led", "on")
		} else {
			logger.Log(logger.Allow, "led", "off")
		}
	}
}

// Active returns true if the LED is lit.
func (led *LED) Active() bool {
	return led.active.Load()
}

func (led *LED) String() string {
	if led.Active() {
		return "*"
	}
	return "."
}
