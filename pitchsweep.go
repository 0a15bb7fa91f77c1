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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/pitchsweep/analysis"
	"github.com/jetsetilly/pitchsweep/digest"
	"github.com/jetsetilly/pitchsweep/govern"
	"github.com/jetsetilly/pitchsweep/hardware"
	"github.com/jetsetilly/pitchsweep/logger"
	"github.com/jetsetilly/pitchsweep/modalflag"
	"github.com/jetsetilly/pitchsweep/preferences"
	"github.com/jetsetilly/pitchsweep/prefs"
	"github.com/jetsetilly/pitchsweep/resources"
	"github.com/jetsetilly/pitchsweep/sdlaudio"
	"github.com/jetsetilly/pitchsweep/statsview"
	"github.com/jetsetilly/pitchsweep/terminal"
	"github.com/jetsetilly/pitchsweep/version"
	"github.com/jetsetilly/pitchsweep/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "SIMULATE", "ANALYSE")
	md.AdditionalHelp("preferences are stored in the resource directory and can be overridden with -prefs")

	prefsOverride := md.AddString("prefs", "", "override preferences (key::value; key::value)")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, "launch runtime statistics web server")
	}
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch govern.ParseMode(md.Mode()) {
	case govern.ModePlay:
		err = play(md)
	case govern.ModeSimulate:
		err = simulate(md)
	case govern.ModeAnalyse:
		err = analyse(md)
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// flags shared by the PLAY and SIMULATE modes
type boardFlags struct {
	wav    *string
	log    *bool
	memviz *string
}

func addBoardFlags(md *modalflag.Modes) boardFlags {
	return boardFlags{
		wav:    md.AddString("wav", "", "record audio to wav file"),
		log:    md.AddBool("log", false, "echo log to stderr"),
		memviz: md.AddString("memviz", "", "write graph of the board structure to file (dot format)"),
	}
}

// prepare the preferences and logging for a board. audio recording is added
// to the board if requested
func setupBoard(brd *hardware.Board, pref *preferences.Preferences, flgs boardFlags) error {
	if *flgs.log || pref.LogEcho.Get().(bool) {
		logger.SetEcho(os.Stderr)
	}

	wav := *flgs.wav
	if wav == "" && pref.Record.Get().(bool) {
		var err error
		wav, err = resources.JoinPath("recordings", fmt.Sprintf("pitchsweep_%s.wav", time.Now().Format("20060102_150405")))
		if err != nil {
			return err
		}
	}

	if wav != "" {
		aw, err := wavwriter.NewWavWriter(wav, brd.Game.Plan().SampleRate)
		if err != nil {
			return err
		}
		brd.AttachMixer(aw)
		fmt.Printf("! recording audio to %s\n", wav)
	}

	return nil
}

func endBoard(brd *hardware.Board, flgs boardFlags) error {
	if err := brd.End(); err != nil {
		return err
	}

	if *flgs.memviz != "" {
		f, err := os.Create(*flgs.memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, brd)
	}

	return nil
}

// crlfWriter translates newlines for a terminal in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	_, err := cw.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addBoardFlags(md)
	device := md.AddString("tty", terminal.DefaultDevice, "terminal device for keyboard input")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pref, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	kb, err := terminal.NewKeyboard(*device)
	if err != nil {
		return err
	}
	defer kb.Close()

	out := crlfWriter{w: os.Stdout}

	brd, err := hardware.NewRealtimeBoard(pref.GameConfig(), out)
	if err != nil {
		return err
	}

	if err := setupBoard(brd, pref, flgs); err != nil {
		brd.End()
		return err
	}

	if pref.AudioEnabled.Get().(bool) {
		aud, err := sdlaudio.NewAudio(brd.Game.Plan().SampleRate, pref.AudioBuffer.Get().(int), pref.AudioVolume.Get().(float64))
		if err != nil {
			logger.Log(logger.Allow, "play", err)
			fmt.Fprintf(out, "! no audio: %v\n", err)
		} else {
			brd.AttachMixer(aud)
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	fmt.Fprintf(out, "%s\n", terminal.Help)

	var held bool
	var releaseAt time.Duration

	err = brd.Run(func() (govern.State, error) {
		if held && brd.Now() >= releaseAt {
			brd.Release()
			held = false
		}

		select {
		case <-intChan:
			return govern.Ending, nil

		case k, ok := <-kb.Keys():
			if !ok {
				return govern.Ending, nil
			}

			switch terminal.ActionForKey(k) {
			case terminal.ActionQuit:
				return govern.Ending, nil
			case terminal.ActionStatus:
				fmt.Fprintf(out, "%s %s\n", brd, brd.Game.Statistics())
			case terminal.ActionPress:
				if !held {
					brd.Press()
					held = true
					releaseAt = brd.Now() + hardware.DefaultHold
				}
			}

		default:
		}

		return govern.Running, nil
	})
	if err != nil {
		brd.End()
		return err
	}

	fmt.Fprintf(out, "%s\n", brd.Game.Statistics())

	if err := endBoard(brd, flgs); err != nil {
		return err
	}

	return pref.Save()
}

func simulate(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addBoardFlags(md)
	script := md.AddString("script", "10ms, 2s", "button presses (time[:hold], ...)")
	duration := md.AddDuration("for", 0, "length of simulation (default is the end of the script plus the length of a round)")
	showDigest := md.AddBool("digest", false, "print digest of the audio output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	scr, err := hardware.ParseScript(*script)
	if err != nil {
		return err
	}

	pref, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	brd, err := hardware.NewBoard(pref.GameConfig(), os.Stdout)
	if err != nil {
		return err
	}

	if err := setupBoard(brd, pref, flgs); err != nil {
		brd.End()
		return err
	}

	var dig *digest.Audio
	if *showDigest {
		dig = digest.NewAudio()
		brd.AttachMixer(dig)
	}

	d := *duration
	if d == 0 {
		pl := brd.Game.Plan()
		d = scr.End() + time.Second + time.Duration(pl.Duration*float64(time.Second))
	}

	if err := brd.Simulate(scr, d); err != nil {
		brd.End()
		return err
	}

	fmt.Printf("%s after %s\n", brd.Game.Statistics(), brd.Now())
	if dig != nil {
		fmt.Printf("digest: %s\n", dig)
	}

	return endBoard(brd, flgs)
}

func analyse(md *modalflag.Modes) error {
	md.NewMode()
	windowSize := md.AddInt("window", 2048, "number of samples in each analysis window")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("wav or mp3 file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pref, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	rec, err := analysis.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	pts, err := analysis.Track(rec, *windowSize)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", filepath.Base(md.GetArg(0)), rec)

	mapper := pref.Mapper()
	for _, pt := range pts {
		fmt.Printf("%s %s\n", pt, mapper.Nearest(pt.Frequency))
	}

	start, rate := analysis.Fit(pts)
	fmt.Printf("fit: %.2fHz + %.2fHz/s\n", start, rate)

	return nil
}
