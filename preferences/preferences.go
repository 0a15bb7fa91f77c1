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

package preferences

import (
	"sync/atomic"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/game"
	"github.com/jetsetilly/pitchsweep/notes"
	"github.com/jetsetilly/pitchsweep/prefs"
	"github.com/jetsetilly/pitchsweep/resources"
)

// Preferences defines and collates all the preference values used by
// pitchsweep.
type Preferences struct {
	dsk *prefs.Disk

	// how the octave of a note is decided. either "round" or "floor"
	OctaveRule prefs.String

	// play the output of the DAC through the sound card
	AudioEnabled prefs.Bool

	// number of samples collected before they are queued with the sound
	// card. must be a power of two between MinAudioBuffer and MaxAudioBuffer
	AudioBuffer prefs.Int

	// volume of the sound card output in the range 0.0 to 1.0
	AudioVolume prefs.Float

	// record the output of the DAC to a wav file
	Record prefs.Bool

	// echo the log to stderr as it is written
	LogEcho prefs.Bool

	// the parsed value of OctaveRule
	rule atomic.Int32
}

// Limits of the AudioBuffer preference.
const (
	MinAudioBuffer = 64
	MaxAudioBuffer = 8192
)

// Errors returned by the preference hooks.
const (
	BadAudioBuffer = "preferences: audio buffer must be a power of two between %d and %d (%d)"
	BadAudioVolume = "preferences: audio volume must be between 0.0 and 1.0 (%.3f)"
)

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty then the default preferences file in the resource
// directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.OctaveRule.SetHookPre(func(v prefs.Value) error {
		_, err := notes.ParseOctaveRule(v.(string))
		return err
	})
	p.OctaveRule.SetHookPost(func(v prefs.Value) error {
		r, _ := notes.ParseOctaveRule(v.(string))
		p.rule.Store(int32(r))
		return nil
	})

	p.AudioBuffer.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < MinAudioBuffer || n > MaxAudioBuffer || n&(n-1) != 0 {
			return curated.Errorf(BadAudioBuffer, MinAudioBuffer, MaxAudioBuffer, n)
		}
		return nil
	})
	p.AudioVolume.SetHookPre(func(v prefs.Value) error {
		f := v.(float64)
		if f < 0 || f > 1 {
			return curated.Errorf(BadAudioVolume, f)
		}
		return nil
	})

	p.SetDefaults()

	if path == "" {
		var err error
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("notes.octaveRule", &p.OctaveRule); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("audio.enabled", &p.AudioEnabled); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("audio.buffer", &p.AudioBuffer); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("audio.volume", &p.AudioVolume); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("audio.record", &p.Record); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("logging.echo", &p.LogEcho); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.OctaveRule.Set(notes.RoundedOctave.String())
	_ = p.AudioEnabled.Set(true)
	_ = p.AudioBuffer.Set(512)
	_ = p.AudioVolume.Set(1.0)
	_ = p.Record.Set(false)
	_ = p.LogEcho.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Mapper returns the note mapper described by the preferences.
func (p *Preferences) Mapper() notes.Mapper {
	return notes.Mapper{Rule: notes.OctaveRule(p.rule.Load())}
}

// GameConfig returns the default game configuration amended by the
// preferences.
func (p *Preferences) GameConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Mapper = p.Mapper()
	return cfg
}
