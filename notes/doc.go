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

// Package notes converts between named pitches and frequencies using twelve
// tone equal temperament.
//
// The reference pitch is 440Hz and it is named A in octave 5. This is not
// scientific pitch notation, where 440Hz is A4, but it is the convention used
// throughout this board.
//
// Converting a frequency to the nearest note needs a rule for the octave. The
// RoundedOctave rule is the one the board reports with:
//
//	offset = round(12 * log2(f/440))
//	octave = round(4 + offset/12)
//
// which means that pitch classes A to D# are reported one octave lower than
// the octave they were created with. The FloorOctave rule is consistent with
// the octave 5 convention and round-trips with Frequency().
package notes
