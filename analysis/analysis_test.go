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

package analysis_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/pitchsweep/analysis"
	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/hardware/dds"
	"github.com/jetsetilly/pitchsweep/hardware/sweep"
	"github.com/jetsetilly/pitchsweep/test"
	"github.com/jetsetilly/pitchsweep/wavwriter"
)

func sine(freq float64, rate float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * freq * float64(i) / rate)
	}
	return s
}

func TestDominantFrequency(t *testing.T) {
	f, err := analysis.DominantFrequency(sine(1000, 16384, 4096), 16384)
	test.DemandSuccess(t, err)
	test.ExpectWithin(t, f, 1000, 1)

	f, err = analysis.DominantFrequency(sine(698.46, 16384, 8192), 16384)
	test.DemandSuccess(t, err)
	test.ExpectWithin(t, f, 698.46, 1)

	_, err = analysis.DominantFrequency(nil, 16384)
	test.ExpectSuccess(t, curated.Is(err, analysis.TooShort))
}

// record the output of the phase accumulator to a wav file and load it back
func record(t *testing.T, ticks int, sweeping bool, setup func(ph *dds.Phase)) analysis.Recording {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "rec.wav")
	aw, err := wavwriter.NewWavWriter(fn, config.SampleRate)
	test.DemandSuccess(t, err)

	ph := dds.NewPhase(nil)
	setup(ph)
	for range ticks {
		test.DemandSuccess(t, aw.SetAudio(ph.Tick(sweeping)))
	}
	test.DemandSuccess(t, aw.EndMixing())

	rec, err := analysis.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(rec.Data), ticks)
	test.ExpectEquality(t, rec.SampleRate, float64(config.SampleRate))

	return rec
}

func TestReferenceTone(t *testing.T) {
	rec := record(t, config.SampleRate, false, func(ph *dds.Phase) {
		ph.Set(dds.WordForFrequency(698.456, config.SampleRate, config.TableSize), 0)
	})
	test.ExpectWithin(t, rec.Duration(), 1.0, 0.001)

	pts, err := analysis.Track(rec, 4096)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(pts), 4)

	for _, p := range pts {
		test.ExpectWithin(t, p.Frequency, 698.46, 1.5, p)
	}

	_, rate := analysis.Fit(pts)
	test.ExpectWithin(t, rate, 0, 1)
}

func TestSweep(t *testing.T) {
	plan, err := sweep.NewPlan(sweep.DefaultParameters())
	test.DemandSuccess(t, err)

	rec := record(t, int(plan.Ticks()), true, func(ph *dds.Phase) {
		plan.Install(ph)
	})

	pts, err := analysis.Track(rec, 2048)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(pts), 24)

	start, rate := analysis.Fit(pts)
	test.ExpectApproximate(t, rate, (plan.End-plan.Start)/plan.Duration, 0.02)
	test.ExpectWithin(t, start, plan.Start, 20)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := analysis.Load("recording.ogg")
	test.ExpectSuccess(t, curated.Is(err, analysis.UnsupportedFormat))

	_, err = analysis.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}
