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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(), but the
// pattern is kept so that the error can be identified later. Packages export
// their patterns as constants:
//
//	const UnknownNote = "notes: unknown note name (%s)"
//
//	err := curated.Errorf(UnknownNote, "H")
//	if curated.Is(err, UnknownNote) {
//		...
//	}
//
// The Has() function is similar to Is() but checks the whole chain of
// wrapped curated errors.
//
//	f := curated.Errorf("game: %v", err)
//	curated.Is(f, UnknownNote)  // false
//	curated.Has(f, UnknownNote) // true
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. This means that a package can wrap an error with its own
// prefix without worrying whether the wrapped error already has it.
//
//	"dac: dac: value out of range" becomes "dac: value out of range"
package curated
