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

package dds_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/hardware/dds"
	"github.com/jetsetilly/pitchsweep/hardware/wavetable"
	"github.com/jetsetilly/pitchsweep/test"
)

func TestIndexAdvance(t *testing.T) {
	ph := dds.NewPhase(nil)

	for range 1000 {
		index := rand.Uint32N(config.TableSize)
		step := rand.Uint32N(0x10000)

		ph.Index = index
		ph.Set(step<<dds.FractionBits|rand.Uint32N(dds.One), 0)
		ph.Tick(false)

		test.DemandEquality(t, ph.Index, (index+step)%config.TableSize)
		test.DemandEquality(t, ph.Index < config.TableSize, true)
	}
}

func TestFractionIsDiscarded(t *testing.T) {
	ph := dds.NewPhase(nil)

	// a step of 1.99 advances the index by one on every tick
	ph.Set(dds.One+dds.One-1, 0)
	for i := 1; i <= 10; i++ {
		ph.Tick(false)
		test.ExpectEquality(t, ph.Index, uint32(i))
	}

	// a word less than one never moves the index
	ph.Index = 0
	ph.Set(dds.One-1, 0)
	for range 100 {
		ph.Tick(false)
	}
	test.ExpectEquality(t, ph.Index, uint32(0))
}

func TestCycle(t *testing.T) {
	ph := dds.NewPhase(nil)

	for _, step := range []uint32{1, 2, 8, 64, 1024, 4096} {
		ph.Index = 17
		ph.Set(step<<dds.FractionBits, 0)
		for range config.TableSize / step {
			ph.Tick(false)
		}
		test.ExpectEquality(t, ph.Index, uint32(17), step)
	}
}

func TestSampleScaling(t *testing.T) {
	ph := dds.NewPhase(nil)

	// step of zero means the index stays at zero, which is the peak of the
	// cosine
	test.ExpectEquality(t, ph.Tick(false), uint16(1023))

	// half way through the table is the trough
	ph.Set((config.TableSize/2)<<dds.FractionBits, 0)
	test.ExpectEquality(t, ph.Tick(false), uint16(0))

	// quarter way is the zero crossing and therefore the DAC midpoint
	ph.Index = 0
	ph.Set((config.TableSize/4)<<dds.FractionBits, 0)
	test.ExpectEquality(t, ph.Tick(false), uint16(config.DACMidpoint))

	// all values are within the range of the DAC
	ph.Set(dds.WordForFrequency(1234.5, config.SampleRate, config.TableSize), 0)
	for range config.SampleRate {
		v := ph.Tick(false)
		test.DemandEquality(t, v < 1<<config.DACBits, true)
	}
}

func TestRamp(t *testing.T) {
	ph := dds.NewPhase(nil)
	ph.Set(dds.One, 3)

	// the step used for a tick is taken before the ramp is applied
	ph.Tick(true)
	test.ExpectEquality(t, ph.Index, uint32(1))
	test.ExpectEquality(t, ph.Word, uint32(dds.One+3))

	// no ramp when not sweeping
	ph.Tick(false)
	test.ExpectEquality(t, ph.Word, uint32(dds.One+3))
}

func TestWordConversion(t *testing.T) {
	// at the board's rate and table size one Hz is a step of one half
	test.ExpectEquality(t, dds.WordForFrequency(1, config.SampleRate, config.TableSize), uint32(dds.One/2))
	test.ExpectEquality(t, dds.WordForFrequency(100, config.SampleRate, config.TableSize), uint32(3276800))
	test.ExpectEquality(t, dds.FrequencyForWord(3276800, config.SampleRate, config.TableSize), 100.0)

	ph := dds.NewPhase(nil)
	ph.Set(dds.WordForFrequency(440, config.SampleRate, config.TableSize), 0)
	test.ExpectWithin(t, ph.Frequency(config.SampleRate), 440, 1.0/dds.One)
}

func TestSmallTable(t *testing.T) {
	tab, err := wavetable.NewCosine(8)
	test.DemandSuccess(t, err)

	ph := dds.NewPhase(tab)
	ph.Set(3<<dds.FractionBits, 0)
	for _, idx := range []uint32{3, 6, 1, 4, 7, 2, 5, 0} {
		ph.Tick(false)
		test.ExpectEquality(t, ph.Index, idx)
	}
}

func TestWrapWithLargeStep(t *testing.T) {
	tab, err := wavetable.NewCosine(16)
	test.DemandSuccess(t, err)

	ph := dds.NewPhase(tab)
	ph.Set(0xffff<<dds.FractionBits, 0)
	for _, idx := range []uint32{15, 14, 13} {
		ph.Tick(false)
		test.ExpectEquality(t, ph.Index, idx)
		test.ExpectEquality(t, ph.Index&^tab.Mask(), uint32(0))
	}
}
