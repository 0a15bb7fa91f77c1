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

// Package analysis finds the dominant frequency of recorded audio. It is used
// to check the output of the board, either from a recording made by the
// wavwriter package or from a recording of the real hardware.
//
// Recordings can be loaded from WAV or MP3 files. Only the first channel of a
// multi-channel recording is used.
package analysis
