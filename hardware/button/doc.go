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

// Package button debounces the push button of the board.
//
// The button is wired active-low and raises an interrupt on the falling
// edge. Mechanical contacts chatter, so a single press produces a burst of
// edges. The Debouncer responds to the first edge by setting a deadline, the
// settle time in the future. Further edges before the deadline are absorbed.
// Once the deadline has passed, the next call to Poll() samples the input
// and reports an activation if the input is still asserted.
//
// The edge handler only records a deadline and never waits. This means that
// the sample interrupt is never delayed by a button press.
package button
