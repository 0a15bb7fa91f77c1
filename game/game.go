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

package game

import (
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/hardware/dds"
	"github.com/jetsetilly/pitchsweep/hardware/sweep"
	"github.com/jetsetilly/pitchsweep/hardware/wavetable"
	"github.com/jetsetilly/pitchsweep/logger"
	"github.com/jetsetilly/pitchsweep/notes"
)

// Clock is the sample clock that calls Tick().
type Clock interface {
	Start()
	Stop()
}

// Sink receives the output of the phase accumulator on every tick.
type Sink interface {
	SetValue(v uint16)
}

// Indicator is lit while a sweep is in progress.
type Indicator interface {
	SetActive(active bool)
}

// Game is the game state machine.
type Game struct {
	cfg  Config
	plan sweep.Plan

	clock     Clock
	sink      Sink
	indicator Indicator
	report    io.Writer

	// only written by Tick() while the clock is running and by the main loop
	// while the clock is stopped
	phase *dds.Phase

	// written by the main loop, read by Tick()
	state atomic.Int32

	// written by Tick(), read and reset by the main loop. the counter is reset
	// only while the clock is stopped
	elapsed atomic.Uint32

	// frequency of the reference pitch for the current round
	referenceFrequency float64

	crit  sync.Mutex
	stats Statistics
}

// NewGame is the preferred method of initialisation for the Game type. The
// game starts in the Idle state with the clock stopped.
func NewGame(cfg Config, clk Clock, sink Sink, indicator Indicator, report io.Writer) (*Game, error) {
	plan, err := sweep.NewPlan(cfg.Sweep)
	if err != nil {
		return nil, curated.Errorf("game: %v", err)
	}

	table, err := wavetable.NewCosine(cfg.TableSize)
	if err != nil {
		return nil, curated.Errorf("game: %v", err)
	}

	if report == nil {
		report = io.Discard
	}

	g := &Game{
		cfg:       cfg,
		plan:      plan,
		clock:     clk,
		sink:      sink,
		indicator: indicator,
		report:    report,
		phase:     dds.NewPhase(table),
	}

	g.clock.Stop()
	g.indicator.SetActive(false)
	logger.Logf(logger.Allow, "game", "sweep %s", plan)

	return g, nil
}

func (g *Game) String() string {
	return fmt.Sprintf("%s elapsed=%d", g.State(), g.elapsed.Load())
}

// Tick is called by the sample clock.
func (g *Game) Tick() {
	g.sink.SetValue(g.phase.Tick(State(g.state.Load()) == RunSweep))
	g.elapsed.Add(1)
}

// State returns the current state of the game.
func (g *Game) State() State {
	return State(g.state.Load())
}

// Elapsed returns the number of ticks since the current state was entered.
func (g *Game) Elapsed() uint32 {
	return g.elapsed.Load()
}

// ReferenceFrequency returns the frequency of the pitch the player is looking
// for in the current round.
func (g *Game) ReferenceFrequency() float64 {
	return g.referenceFrequency
}

// Plan returns the sweep used by the game.
func (g *Game) Plan() sweep.Plan {
	return g.plan
}

// Phase returns a summary of the phase accumulator. It should only be called
// when the clock is stopped.
func (g *Game) Phase() dds.Phase {
	return *g.phase
}

// Statistics returns a copy of the game statistics.
func (g *Game) Statistics() Statistics {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.stats
}

// reconfigure stops the clock, calls the mutate function and then starts the
// clock again if start is true.
func (g *Game) reconfigure(mutate func(), start bool) {
	g.clock.Stop()
	mutate()
	if start {
		g.clock.Start()
	}
}

func (g *Game) setState(s State) {
	prev := g.State()
	g.state.Store(int32(s))
	logger.Logf(logger.Allow, "game", "%s -> %s", prev, s)
}

// Activate is called when the button has been pressed. Activations are
// ignored in the PlaySingleTone state.
func (g *Game) Activate() {
	switch g.State() {
	case Idle:
		g.startRound()
	case PlaySingleTone:
		logger.Log(logger.Allow, "game", "activation ignored while playing reference tone")
	case RunSweep:
		g.stopSweep()
	}
}

func (g *Game) startRound() {
	freq, err := notes.Frequency(g.cfg.ReferenceNote, g.cfg.ReferenceOctave)
	if err != nil {
		logger.Log(logger.Allow, "game", err)
		fmt.Fprintf(g.report, "Error: %v\n", err)
		g.crit.Lock()
		g.stats.Errors++
		g.crit.Unlock()
		return
	}

	g.reconfigure(func() {
		g.referenceFrequency = freq
		g.phase.Set(dds.WordForFrequency(freq, g.cfg.SampleRate, g.cfg.TableSize), 0)
		g.elapsed.Store(0)
		g.setState(PlaySingleTone)
	}, true)

	g.crit.Lock()
	g.stats.Rounds++
	g.crit.Unlock()

	fmt.Fprintf(g.report, "Press the button when you think you hear %s%d! The frequency is %.2f\n",
		g.cfg.ReferenceNote, g.cfg.ReferenceOctave, freq)
}

func (g *Game) stopSweep() {
	var res Result

	g.reconfigure(func() {
		res.Frequency = g.phase.Frequency(g.cfg.SampleRate)
		res.Note = g.cfg.Mapper.Nearest(res.Frequency)
		res.Delta = math.Abs(res.Frequency - g.referenceFrequency)
		g.setState(Idle)
		g.indicator.SetActive(false)
	}, false)

	g.crit.Lock()
	if g.stats.Stopped == 0 || res.Delta < g.stats.Best {
		g.stats.Best = res.Delta
	}
	g.stats.Stopped++
	g.stats.Last = &res
	g.crit.Unlock()

	if !res.Note.Valid() {
		fmt.Fprintf(g.report, "You were %.2f Hz off the target! You hit %.2f Hz, which is not a note\n",
			res.Delta, res.Frequency)
		return
	}

	fmt.Fprintf(g.report, "You were %.2f Hz off the target! The closest note you hit is %s in octave %d, you hit %.2f Hz\n",
		res.Delta, res.Note.Name, res.Note.Octave, res.Frequency)
}

// Poll is called by the main loop. It never blocks.
func (g *Game) Poll() {
	switch g.State() {
	case PlaySingleTone:
		if g.elapsed.Load() >= uint32(g.cfg.SampleRate) {
			g.reconfigure(func() {
				g.plan.Install(g.phase)
				g.elapsed.Store(0)
				g.setState(RunSweep)
				g.indicator.SetActive(true)
			}, true)
		}
	case RunSweep:
		if g.elapsed.Load() >= g.plan.Ticks() {
			g.reconfigure(func() {
				g.setState(Idle)
				g.indicator.SetActive(false)
			}, false)

			g.crit.Lock()
			g.stats.Timeouts++
			g.crit.Unlock()
		}
	}
}
