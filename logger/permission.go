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

package logger

// Permission is consulted before an entry is added to the log. A request made
// with a Permission that refuses is dropped without trace.
type Permission interface {
	AllowLogging() bool
}

type always bool

func (a always) AllowLogging() bool {
	return bool(a)
}

// Allow is the Permission for log entries that should always be recorded.
var Allow Permission = always(true)
