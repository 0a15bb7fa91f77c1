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

// Package dds implements the phase accumulator at the heart of the direct
// digital synthesis engine.
//
// The frequency word is a Q16.16 fixed point value. On every tick the integer
// part of the word is added to the table index. The fractional part is not
// carried from one tick to the next, so the resolution of the output
// frequency is SampleRate/TableSize, no matter the precision of the word.
//
// When sweeping, the ramp is added to the word after the sample has been
// produced.
package dds
