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

// Package logger is the central log for the board. Entries are made up of a
// tag and a detail string. The tag is usually the name of the package or
// peripheral making the entry:
//
//	logger.Log(logger.Allow, "dac", "sink attached")
//
// Consecutive identical entries are folded into one entry with a repeat
// count. The log is capped and the oldest entries are dropped first.
//
// Whether an entry is made at all is decided by the Permission argument. The
// Allow value is a good default when an entry should always be made.
package logger
