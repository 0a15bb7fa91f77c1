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

// Package prefs facilitates the storage of preferential values in the
// Pitchsweep system. It is intended to be used for values that the user can
// change but which should persist between invocations of the program.
//
// Values are typed (Bool, String, Int, Float) and are registered with a Disk
// instance under a key. Keys are conventionally dotted, for example:
//
//	notes.octaveRule
//	audio.enabled
//
// Values can be overridden for the duration of a program run with the command
// line stack. See PushCommandLineStack().
package prefs
