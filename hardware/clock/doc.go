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

// Package clock provides the sample clock and the timebase of the board.
//
// A sample clock calls its handler once per tick while it is running. The
// handler is the sample interrupt of the board and must return quickly.
//
// Two implementations are provided. The Manual clock is advanced explicitly
// and is used for simulation and for testing. The Realtime clock runs in its
// own goroutine and delivers ticks in batches, keeping pace with the wall
// clock. For both implementations, once Stop() has returned the handler will
// not be called again until Start() is called. Reconfiguration of anything
// used by the handler should therefore be bracketed by Stop() and Start().
//
// A Timebase is a monotonic source of time for the board. It is independent
// of the sample clock, which is not running when the board is idle.
package clock
