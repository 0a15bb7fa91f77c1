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

package notes_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/notes"
	"github.com/jetsetilly/pitchsweep/test"
)

func TestReference(t *testing.T) {
	f, err := notes.Frequency("A", 5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f, 440.0)

	f, err = notes.Frequency("A", 6)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f, 880.0)

	f, err = notes.Frequency("F", 5)
	test.DemandSuccess(t, err)
	test.ExpectWithin(t, f, 698.456, 0.001)

	f, err = notes.Note{Name: "D", Octave: 5}.Frequency()
	test.DemandSuccess(t, err)
	test.ExpectWithin(t, f, 587.330, 0.001)
}

func TestUnknownNote(t *testing.T) {
	_, err := notes.Frequency("H", 5)
	test.ExpectSuccess(t, curated.Is(err, notes.UnknownNote))
	test.ExpectEquality(t, err.Error(), "notes: unknown note name (H)")

	// sharps must be given in the combined form
	_, err = notes.Frequency("A#", 5)
	test.ExpectFailure(t, err)

	_, err = notes.Index("")
	test.ExpectFailure(t, err)
}

func TestRoundTrip(t *testing.T) {
	m := notes.Mapper{Rule: notes.FloorOctave}

	for octave := 1; octave <= 9; octave++ {
		for _, name := range notes.Chromatic {
			f, err := notes.Frequency(name, octave)
			test.DemandSuccess(t, err)
			n := m.Nearest(f)
			test.ExpectEquality(t, n, notes.Note{Name: name, Octave: octave})
		}
	}
}

func TestRoundedOctave(t *testing.T) {
	// the rounded rule is exact for the upper half of the pitch classes and
	// one lower for the bottom half
	for octave := 1; octave <= 9; octave++ {
		for idx, name := range notes.Chromatic {
			f, err := notes.Frequency(name, octave)
			test.DemandSuccess(t, err)

			expected := notes.Note{Name: name, Octave: octave}
			if idx < 6 {
				expected.Octave--
			}
			test.ExpectEquality(t, notes.Nearest(f), expected)
		}
	}

	test.ExpectEquality(t, notes.Nearest(440), notes.Note{Name: "A", Octave: 4})
	test.ExpectEquality(t, notes.Nearest(698.46), notes.Note{Name: "F", Octave: 5})
}

func TestNearest(t *testing.T) {
	// quarter tone either side of F5 is still F5
	test.ExpectEquality(t, notes.Nearest(698.46*1.014).String(), "F5")
	test.ExpectEquality(t, notes.Nearest(698.46/1.014).String(), "F5")

	// frequencies below the reference wrap the chromatic index correctly
	test.ExpectEquality(t, notes.Nearest(100).Name, "G")
	test.ExpectEquality(t, notes.Nearest(3000).Name, "F#/Gb")

	test.ExpectEquality(t, notes.Offset(440), 0)
	test.ExpectEquality(t, notes.Offset(220), -12)
	test.ExpectEquality(t, notes.Offset(880), 12)
}

func TestNoNote(t *testing.T) {
	for _, f := range []float64{0, -100, math.Inf(1), math.NaN()} {
		n := notes.Nearest(f)
		test.ExpectEquality(t, n, notes.Note{}, f)
		test.ExpectEquality(t, n.Valid(), false, f)
		test.ExpectEquality(t, n.String(), "-", f)
	}

	n := notes.Mapper{Rule: notes.FloorOctave}.Nearest(0)
	test.ExpectEquality(t, n.Valid(), false)
	test.ExpectEquality(t, notes.Nearest(0.01).Valid(), true)
}

func TestOctaveRule(t *testing.T) {
	r, err := notes.ParseOctaveRule("floor")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, notes.FloorOctave)
	test.ExpectEquality(t, r.String(), "floor")

	r, err = notes.ParseOctaveRule(notes.RoundedOctave.String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, notes.RoundedOctave)

	_, err = notes.ParseOctaveRule("ceiling")
	test.ExpectSuccess(t, curated.Is(err, notes.UnknownOctaveRule))
}
