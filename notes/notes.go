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

package notes

import (
	"fmt"
	"math"

	"github.com/jetsetilly/pitchsweep/curated"
)

// UnknownNote is returned when a note name is not one of the chromatic labels.
const UnknownNote = "notes: unknown note name (%s)"

// ReferenceFrequency is the frequency of chromatic index zero in
// ReferenceOctave.
const ReferenceFrequency = 440.0

// ReferenceOctave is the octave containing ReferenceFrequency.
const ReferenceOctave = 5

// Chromatic is the list of note names. The position in the list is the
// chromatic index of the note.
var Chromatic = [12]string{
	"A", "A#/Bb", "B", "C", "C#/Db", "D",
	"D#/Eb", "E", "F", "F#/Gb", "G", "G#/Ab",
}

// Index returns the chromatic index of the named note.
func Index(name string) (int, error) {
	for i, n := range Chromatic {
		if n == name {
			return i, nil
		}
	}
	return -1, curated.Errorf(UnknownNote, name)
}

// Note is a pitch class and octave. The zero value is not a note.
type Note struct {
	Name   string
	Octave int
}

// Valid returns false for the zero value.
func (n Note) Valid() bool {
	return n.Name != ""
}

func (n Note) String() string {
	if !n.Valid() {
		return "-"
	}
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

// Frequency of the note.
func (n Note) Frequency() (float64, error) {
	return Frequency(n.Name, n.Octave)
}

// Frequency returns the frequency of the named note in the octave.
func Frequency(name string, octave int) (float64, error) {
	idx, err := Index(name)
	if err != nil {
		return 0, err
	}
	offset := (octave-ReferenceOctave)*12 + idx
	return ReferenceFrequency * math.Pow(2, float64(offset)/12), nil
}

// OctaveRule decides the octave of a note from its offset in semitones from
// the reference frequency.
type OctaveRule int

// List of valid OctaveRule values.
const (
	RoundedOctave OctaveRule = iota
	FloorOctave
)

func (r OctaveRule) String() string {
	switch r {
	case RoundedOctave:
		return "round"
	case FloorOctave:
		return "floor"
	}
	return "unknown"
}

// UnknownOctaveRule is returned by ParseOctaveRule().
const UnknownOctaveRule = "notes: unknown octave rule (%s)"

// ParseOctaveRule is the inverse of OctaveRule.String().
func ParseOctaveRule(s string) (OctaveRule, error) {
	switch s {
	case "round":
		return RoundedOctave, nil
	case "floor":
		return FloorOctave, nil
	}
	return RoundedOctave, curated.Errorf(UnknownOctaveRule, s)
}

func (r OctaveRule) octave(offset int) int {
	switch r {
	case FloorOctave:
		return ReferenceOctave + int(math.Floor(float64(offset)/12))
	default:
		return int(math.Round(4 + float64(offset)/12))
	}
}

// Mapper finds the nearest note to a frequency. The zero value uses the
// RoundedOctave rule.
type Mapper struct {
	Rule OctaveRule
}

// Offset returns the number of semitones, rounded to the nearest semitone,
// between the frequency and the reference frequency.
func Offset(frequency float64) int {
	return int(math.Round(12 * math.Log2(frequency/ReferenceFrequency)))
}

// Nearest returns the note closest to the frequency. There is no note for a
// frequency that is not positive and finite and the zero Note is returned.
func (m Mapper) Nearest(frequency float64) Note {
	if frequency <= 0 || math.IsInf(frequency, 1) || math.IsNaN(frequency) {
		return Note{}
	}
	offset := Offset(frequency)
	return Note{
		Name:   Chromatic[((offset%12)+12)%12],
		Octave: m.Rule.octave(offset),
	}
}

// Nearest uses the RoundedOctave rule to find the note closest to the
// frequency.
func Nearest(frequency float64) Note {
	return Mapper{}.Nearest(frequency)
}
