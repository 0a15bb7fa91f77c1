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

// Package wavetable contains the precomputed waveform used by the phase
// accumulator. The table holds exactly one period of a cosine.
package wavetable

import (
	"math"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/hardware/config"
)

// Amplitude is the peak value of the samples in the table.
const Amplitude = math.MaxInt16

// Table is one period of a waveform as signed 16bit samples. The length of
// the table is always a power of two.
type Table []int16

// BadSize is returned by NewCosine() when the requested size is not usable.
const BadSize = "wavetable: size must be a power of two (%d)"

// Cosine is the table used by the board.
var Cosine Table

func init() {
	var err error
	Cosine, err = NewCosine(config.TableSize)
	if err != nil {
		panic(err)
	}
}

// NewCosine creates a new table of size entries.
func NewCosine(size int) (Table, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, curated.Errorf(BadSize, size)
	}

	t := make(Table, size)
	for i := range t {
		t[i] = int16(math.Round(Amplitude * math.Cos(2*math.Pi*float64(i)/float64(size))))
	}

	return t, nil
}

// Mask returns the value used to wrap an index into the table.
func (t Table) Mask() uint32 {
	return uint32(len(t) - 1)
}
