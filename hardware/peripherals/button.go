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

import "sync/atomic"

// Button is a push button connected to an active-low input with a pull-up.
// The input is high until the button is pressed.
type Button struct {
	pressed atomic.Bool
}

// Press the button.
func (b *Button) Press() {
	b.pressed.Store(true)
}

// Release the button.
func (b *Button) Release() {
	b.pressed.Store(false)
}

// Pressed returns true if the button is being held down.
func (b *Button) Pressed() bool {
	return b.pressed.Load()
}

// Level returns the level of the input, which is low when pressed.
func (b *Button) Level() bool {
	return !b.pressed.Load()
}
