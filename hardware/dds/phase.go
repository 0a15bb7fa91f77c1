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

package dds

import (
	"fmt"
	"math"

	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/hardware/wavetable"
)

// FractionBits is the number of fractional bits in a frequency word.
const FractionBits = 16

// One is the frequency word with a step of exactly one table entry per tick.
const One = 1 << FractionBits

// Phase is the live state of the synthesizer.
type Phase struct {
	table wavetable.Table

	// index into the table of the most recent sample. always less than the
	// length of the table
	Index uint32

	// frequency word in Q16.16 format
	Word uint32

	// added to Word after every tick while sweeping. zero when not sweeping
	Ramp uint32
}

// NewPhase is the preferred method of initialisation for the Phase type. A nil
// table will use the board's cosine table.
func NewPhase(table wavetable.Table) *Phase {
	if table == nil {
		table = wavetable.Cosine
	}
	return &Phase{table: table}
}

func (ph *Phase) String() string {
	return fmt.Sprintf("index=%04d word=%#08x ramp=%#08x", ph.Index, ph.Word, ph.Ramp)
}

// Set the frequency word and ramp. The index is not changed, so the waveform
// continues from where it was.
func (ph *Phase) Set(word uint32, ramp uint32) {
	ph.Word = word
	ph.Ramp = ramp
}

// Step returns the integer part of the frequency word. This is the number of
// table entries the index advances by on the next tick.
func (ph *Phase) Step() uint32 {
	return ph.Word >> FractionBits
}

// Tick advances the index and returns the next sample, scaled for the DAC. The
// frequency word is advanced by the ramp if sweeping is true.
func (ph *Phase) Tick(sweeping bool) uint16 {
	ph.Index = (ph.Index + ph.Step()) & ph.table.Mask()

	// signed sample scaled to the resolution of the DAC and moved to half-scale
	v := uint16((ph.table[ph.Index] >> (16 - config.DACBits)) + config.DACMidpoint)

	if sweeping {
		ph.Word += ph.Ramp
	}

	return v
}

// Frequency returns the output frequency represented by the current frequency
// word.
func (ph *Phase) Frequency(sampleRate int) float64 {
	return FrequencyForWord(ph.Word, sampleRate, len(ph.table))
}

// WordForFrequency returns the frequency word, rounded to the nearest integer,
// that produces frequency at the given sample rate and table size.
func WordForFrequency(frequency float64, sampleRate int, tableSize int) uint32 {
	return uint32(math.Round(float64(tableSize) * frequency / float64(sampleRate) * One))
}

// FrequencyForWord is the inverse of WordForFrequency().
func FrequencyForWord(word uint32, sampleRate int, tableSize int) float64 {
	return float64(word) / One * (float64(sampleRate) / float64(tableSize))
}
