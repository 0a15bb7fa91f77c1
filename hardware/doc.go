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

// Package hardware is the base package for the board emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Board type is the root of the emulation and contains external references
// to all the peripherals of the board, the sample clock and the game that is
// run by the board's firmware.
//
// The board can be driven in two ways. A board created with NewBoard() follows
// a virtual clock and every call to Step() advances time by exactly one sample
// period. A board created with NewRealtimeBoard() follows the wall clock and
// the sample interrupt is delivered from a separate goroutine.
package hardware
