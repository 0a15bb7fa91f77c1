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

// Package game is the "guess the pitch" state machine. The player is played a
// reference tone for one second, after which the output sweeps upwards in
// frequency. The player presses the button when they think they hear the
// reference pitch and the result is reported on the serial channel.
//
// The game has three states:
//
//	Idle -> PlaySingleTone        on button activation
//	PlaySingleTone -> RunSweep    after one second of reference tone
//	RunSweep -> Idle              on button activation (result is reported)
//	RunSweep -> Idle              when the sweep completes (no report)
//
// The Tick() function is the sample interrupt and is the only part of the game
// that is called by the clock. Activate() and Poll() are called by the main
// loop. Every change to the phase accumulator made by the main loop happens
// while the clock is stopped.
package game
