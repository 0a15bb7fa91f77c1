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

// Package resources contains functions to prepare paths for pitchsweep
// resources, such as the preferences file and recordings.
//
// JoinPath() returns the path to the resource. If a directory called
// .pitchsweep exists in the current working directory then that is used as
// the base path. Otherwise the base path is rooted in the user's
// configuration directory. On modern Linux systems this would be something
// like:
//
//	/home/user/.config/pitchsweep/
//
// During development it is more convenient to have the resource directory
// close to hand.
package resources
