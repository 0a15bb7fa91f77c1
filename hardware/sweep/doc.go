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

// Package sweep plans a linear frequency sweep for the phase accumulator.
//
// A sweep is realised with an initial frequency word and a constant ramp that
// is added to the word on every tick. Both values are computed once, when the
// sweep starts.
//
//	initial = round(M * start / rate * 2^16)
//	ramp    = round(M * (end - start) / (duration * rate^2) * 2^16)
//
// With these values the output frequency rises linearly from start and
// reaches end after duration seconds (duration*rate ticks).
package sweep
