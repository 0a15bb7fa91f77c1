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

package hardware

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/pitchsweep/game"
	"github.com/jetsetilly/pitchsweep/govern"
	"github.com/jetsetilly/pitchsweep/hardware/button"
	"github.com/jetsetilly/pitchsweep/hardware/clock"
	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/hardware/peripherals"
	"github.com/jetsetilly/pitchsweep/logger"
)

// Board struct is the main container for the emulated components of the
// board.
type Board struct {
	Game *game.Game

	// how the board is being driven. decided by the constructor
	mode govern.Mode

	DAC       *peripherals.DAC
	LED       *peripherals.LED
	Serial    *peripherals.Serial
	Button    *peripherals.Button
	Debouncer *button.Debouncer

	// the source of time for the debouncer
	Timebase clock.Timebase

	// only one of these will be non-nil
	manual   *clock.Manual
	realtime *clock.Realtime

	// the virtual time base used with the manual clock and the number of
	// sample periods that have been stepped through
	virtual *clock.Virtual
	steps   int64

	sampleRate int
}

// NewBoard creates a new board driven by a virtual clock. Time only moves
// forward with calls to Step().
func NewBoard(cfg game.Config, report io.Writer) (*Board, error) {
	brd := &Board{
		mode:       govern.ModeSimulate,
		manual:     clock.NewManual(nil),
		virtual:    &clock.Virtual{},
		sampleRate: cfg.SampleRate,
	}
	brd.Timebase = brd.virtual

	err := brd.attach(cfg, brd.manual, report)
	if err != nil {
		return nil, err
	}
	brd.manual.SetHandler(brd.Game.Tick)

	return brd, nil
}

// NewRealtimeBoard creates a new board driven by the wall clock. End() should
// be called when the board is no longer required.
func NewRealtimeBoard(cfg game.Config, report io.Writer) (*Board, error) {
	brd := &Board{
		mode:       govern.ModePlay,
		Timebase:   clock.NewWallclock(),
		sampleRate: cfg.SampleRate,
	}

	// the game is not created until after the clock so the tick handler
	// must be indirect. the clock is not started until the game exists
	brd.realtime = clock.NewRealtime(cfg.SampleRate, func() {
		brd.Game.Tick()
	})

	err := brd.attach(cfg, brd.realtime, report)
	if err != nil {
		brd.realtime.End()
		return nil, err
	}

	return brd, nil
}

func (brd *Board) attach(cfg game.Config, clk game.Clock, report io.Writer) error {
	brd.DAC = peripherals.NewDAC()
	brd.LED = &peripherals.LED{}
	brd.Serial = peripherals.NewSerial(report)
	brd.Button = &peripherals.Button{}
	brd.Debouncer = button.NewDebouncer(brd.Button, config.DebounceSettle)

	var err error
	brd.Game, err = game.NewGame(cfg, clk, brd.DAC, brd.LED, brd.Serial)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	logger.Logf(logger.Allow, "board", "%s mode at %d samples/sec", brd.mode, cfg.SampleRate)

	return nil
}

func (brd *Board) String() string {
	return fmt.Sprintf("[%s] %s %s dac=%04d", brd.mode, brd.LED, brd.Game, brd.DAC.Value())
}

// Mode returns how the board is being driven.
func (brd *Board) Mode() govern.Mode {
	return brd.mode
}

// Realtime returns true if the board follows the wall clock.
func (brd *Board) Realtime() bool {
	return brd.realtime != nil
}

// Now returns the current time of the board.
func (brd *Board) Now() time.Duration {
	return brd.Timebase.Now()
}

// Press the button. The falling edge is raised immediately and the press will
// be seen by the game once the debounce period has passed, if the button is
// still held.
func (brd *Board) Press() {
	brd.Button.Press()
	brd.Debouncer.Edge(brd.Now())
}

// Release the button.
func (brd *Board) Release() {
	brd.Button.Release()
}

// Service is one iteration of the main loop. The button is serviced before the
// game is polled.
func (brd *Board) Service() {
	if brd.Debouncer.Poll(brd.Now()) {
		brd.Game.Activate()
	}
	brd.Game.Poll()
}

// AttachMixer adds an audio mixer to the DAC.
func (brd *Board) AttachMixer(m peripherals.AudioMixer) {
	brd.DAC.AttachMixer(m)
}

// End the emulation. The clock is stopped and all mixers are detached.
func (brd *Board) End() error {
	if brd.realtime != nil {
		brd.realtime.End()
	} else {
		brd.manual.Stop()
	}
	logger.Logf(logger.Allow, "board", "%s mode ended. %d samples written to DAC", brd.mode, brd.DAC.Count())
	return brd.DAC.DetachMixers()
}
