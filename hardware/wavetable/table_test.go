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

package wavetable_test

import (
	"testing"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/hardware/wavetable"
	"github.com/jetsetilly/pitchsweep/test"
)

func TestCosine(t *testing.T) {
	tab := wavetable.Cosine
	test.ExpectEquality(t, len(tab), config.TableSize)
	test.ExpectEquality(t, tab.Mask(), uint32(config.TableSize-1))

	// peak, trough and zero crossings
	test.ExpectEquality(t, tab[0], int16(wavetable.Amplitude))
	test.ExpectEquality(t, tab[len(tab)/2], int16(-wavetable.Amplitude))
	test.ExpectEquality(t, tab[len(tab)/4], int16(0))
	test.ExpectEquality(t, tab[3*len(tab)/4], int16(0))

	// cosine is an even function. allowing for a rounding difference of one
	for i := 1; i < len(tab); i++ {
		d := int(tab[i]) - int(tab[len(tab)-i])
		test.DemandEquality(t, d >= -1 && d <= 1, true, i)
	}
}

func TestBadSize(t *testing.T) {
	_, err := wavetable.NewCosine(1000)
	test.ExpectSuccess(t, curated.Is(err, wavetable.BadSize))

	_, err = wavetable.NewCosine(0)
	test.ExpectSuccess(t, curated.Is(err, wavetable.BadSize))

	tab, err := wavetable.NewCosine(16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(tab), 16)
}
