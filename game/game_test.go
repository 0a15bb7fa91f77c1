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

package game_test

import (
	"testing"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/game"
	"github.com/jetsetilly/pitchsweep/hardware/clock"
	"github.com/jetsetilly/pitchsweep/hardware/peripherals"
	"github.com/jetsetilly/pitchsweep/hardware/sweep"
	"github.com/jetsetilly/pitchsweep/notes"
	"github.com/jetsetilly/pitchsweep/test"
)

const prompt = "Press the button when you think you hear F5! The frequency is 698.46\n"

type sink struct {
	values []uint16
}

func (s *sink) SetValue(v uint16) {
	s.values = append(s.values, v)
}

type harness struct {
	clk    *clock.Manual
	sink   *sink
	led    *peripherals.LED
	report *test.CompareWriter
	game   *game.Game
}

func newHarness(t *testing.T, cfg game.Config) *harness {
	t.Helper()

	h := &harness{
		clk:    clock.NewManual(nil),
		sink:   &sink{},
		led:    &peripherals.LED{},
		report: &test.CompareWriter{},
	}

	var err error
	h.game, err = game.NewGame(cfg, h.clk, h.sink, h.led, h.report)
	test.DemandSuccess(t, err)
	h.clk.SetHandler(h.game.Tick)

	return h
}

func TestInitialState(t *testing.T) {
	h := newHarness(t, game.DefaultConfig())
	test.ExpectEquality(t, h.game.State(), game.Idle)
	test.ExpectEquality(t, h.clk.Running(), false)
	test.ExpectEquality(t, h.led.Active(), false)

	// polling while idle does nothing
	h.game.Poll()
	test.ExpectEquality(t, h.game.State(), game.Idle)
	test.ExpectEquality(t, h.report.String(), "")
}

func TestInvalidSweep(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Sweep.Duration = 0
	_, err := game.NewGame(cfg, clock.NewManual(nil), &sink{}, &peripherals.LED{}, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, sweep.InvalidParameters))
}

func TestScenario(t *testing.T) {
	h := newHarness(t, game.DefaultConfig())
	plan, err := sweep.NewPlan(sweep.DefaultParameters())
	test.DemandSuccess(t, err)

	h.game.Activate()
	test.ExpectEquality(t, h.game.State(), game.PlaySingleTone)
	test.ExpectEquality(t, h.clk.Running(), true)
	test.ExpectEquality(t, h.led.Active(), false)
	test.ExpectSuccess(t, h.report.Compare(prompt))

	f, err := notes.Frequency("F", 5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.game.ReferenceFrequency(), f)

	// one tick short of a second
	h.clk.Advance(16383)
	h.game.Poll()
	test.ExpectEquality(t, h.game.State(), game.PlaySingleTone)

	// the reference tone does not change frequency
	test.ExpectEquality(t, h.game.Phase().Ramp, uint32(0))

	h.clk.Advance(1)
	h.game.Poll()
	test.ExpectEquality(t, h.game.State(), game.RunSweep)
	test.ExpectEquality(t, h.game.Elapsed(), uint32(0))
	test.ExpectEquality(t, h.game.Phase().Word, plan.Initial)
	test.ExpectEquality(t, h.game.Phase().Ramp, plan.Ramp)
	test.ExpectEquality(t, h.clk.Running(), true)
	test.ExpectEquality(t, h.led.Active(), true)

	// every tick wrote a sample to the sink
	test.ExpectEquality(t, len(h.sink.values), 16384)

	// half way to 3000Hz. the frequency word after 16384 ticks gives exactly
	// 1066.5Hz
	h.clk.Advance(16384)
	h.game.Poll()
	test.ExpectEquality(t, h.game.State(), game.RunSweep)

	h.report.Clear()
	h.game.Activate()
	test.ExpectEquality(t, h.game.State(), game.Idle)
	test.ExpectEquality(t, h.clk.Running(), false)
	test.ExpectEquality(t, h.led.Active(), false)
	test.ExpectSuccess(t, h.report.Compare("You were 368.04 Hz off the target! The closest note you hit is C in octave 5, you hit 1066.50 Hz\n"))

	st := h.game.Statistics()
	test.ExpectEquality(t, st.Rounds, 1)
	test.ExpectEquality(t, st.Stopped, 1)
	test.ExpectEquality(t, st.Timeouts, 0)
	if st.Last == nil {
		t.Fatalf("expected a result")
	}
	test.ExpectEquality(t, st.Last.Note, notes.Note{Name: "C", Octave: 5})

	// clock is stopped so no more ticks are delivered
	test.ExpectEquality(t, h.clk.Advance(100), 0)
}

func TestImmediateStop(t *testing.T) {
	h := newHarness(t, game.DefaultConfig())
	h.game.Activate()
	h.clk.Advance(16384)
	h.game.Poll()
	test.DemandEquality(t, h.game.State(), game.RunSweep)

	h.report.Clear()
	h.game.Activate()
	test.ExpectSuccess(t, h.report.Compare("You were 598.46 Hz off the target! The closest note you hit is G in octave 2, you hit 100.00 Hz\n"))
}

func TestStopAtZeroFrequency(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Sweep.Start = 0
	h := newHarness(t, cfg)

	h.game.Activate()
	h.clk.Advance(16384)
	h.game.Poll()
	test.DemandEquality(t, h.game.State(), game.RunSweep)
	test.DemandEquality(t, h.game.Phase().Word, uint32(0))

	h.report.Clear()
	h.game.Activate()
	test.ExpectEquality(t, h.game.State(), game.Idle)
	test.ExpectSuccess(t, h.report.Compare("You were 698.46 Hz off the target! You hit 0.00 Hz, which is not a note\n"))

	st := h.game.Statistics()
	test.ExpectEquality(t, st.Stopped, 1)
	if st.Last == nil {
		t.Fatalf("expected a result")
	}
	test.ExpectEquality(t, st.Last.Note.Valid(), false)
}

func TestTimeout(t *testing.T) {
	h := newHarness(t, game.DefaultConfig())
	h.game.Activate()
	h.clk.Advance(16384)
	h.game.Poll()
	test.DemandEquality(t, h.game.State(), game.RunSweep)

	h.clk.Advance(3*16384 - 1)
	h.game.Poll()
	test.ExpectEquality(t, h.game.State(), game.RunSweep)

	h.clk.Advance(1)
	h.game.Poll()
	test.ExpectEquality(t, h.game.State(), game.Idle)
	test.ExpectEquality(t, h.clk.Running(), false)
	test.ExpectEquality(t, h.led.Active(), false)

	// only the prompt has been reported
	test.ExpectSuccess(t, h.report.Compare(prompt))

	st := h.game.Statistics()
	test.ExpectEquality(t, st.Timeouts, 1)
	test.ExpectEquality(t, st.Stopped, 0)
	test.ExpectEquality(t, st.Last == nil, true)
}

func TestActivateDuringReferenceTone(t *testing.T) {
	h := newHarness(t, game.DefaultConfig())
	h.game.Activate()
	h.clk.Advance(100)

	h.game.Activate()
	test.ExpectEquality(t, h.game.State(), game.PlaySingleTone)
	test.ExpectEquality(t, h.game.Elapsed(), uint32(100))
	test.ExpectSuccess(t, h.report.Compare(prompt))
	test.ExpectEquality(t, h.game.Statistics().Rounds, 1)
}

func TestUnknownReferenceNote(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.ReferenceNote = "H"
	h := newHarness(t, cfg)

	h.game.Activate()
	test.ExpectEquality(t, h.game.State(), game.Idle)
	test.ExpectEquality(t, h.clk.Running(), false)
	test.ExpectSuccess(t, h.report.Compare("Error: notes: unknown note name (H)\n"))
	test.ExpectEquality(t, h.game.Statistics().Errors, 1)
}

func TestSecondRound(t *testing.T) {
	h := newHarness(t, game.DefaultConfig())
	h.game.Activate()
	h.clk.Advance(16384)
	h.game.Poll()
	h.game.Activate()
	test.DemandEquality(t, h.game.State(), game.Idle)

	h.report.Clear()
	h.game.Activate()
	test.ExpectEquality(t, h.game.State(), game.PlaySingleTone)
	test.ExpectEquality(t, h.game.Elapsed(), uint32(0))
	test.ExpectSuccess(t, h.report.Compare(prompt))
	test.ExpectEquality(t, h.game.Statistics().Rounds, 2)
}

func TestFloorOctaveRule(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Mapper.Rule = notes.FloorOctave
	h := newHarness(t, cfg)

	h.game.Activate()
	h.clk.Advance(16384)
	h.game.Poll()
	h.clk.Advance(16384)
	h.report.Clear()
	h.game.Activate()

	// 1066.5Hz is 15 semitones above A5. the floor rule places it in octave 6
	test.ExpectSuccess(t, h.report.Compare("You were 368.04 Hz off the target! The closest note you hit is C in octave 6, you hit 1066.50 Hz\n"))
}
