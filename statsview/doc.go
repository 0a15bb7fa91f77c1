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

// Package statsview is an optional package that launches a web page showing
// runtime statistics of the program. Useful for checking that the realtime
// sample clock is not putting pressure on the garbage collector.
//
// The server is only included when the program is built with the statsview
// tag:
//
//	go build -tags statsview
//
// Without the tag Launch() does nothing and Available() returns false.
package statsview
