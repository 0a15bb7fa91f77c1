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
	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/hardware/sweep"
	"github.com/jetsetilly/pitchsweep/notes"
)

// Config is the fixed configuration of a game.
type Config struct {
	// the pitch the player is asked to find
	ReferenceNote   string
	ReferenceOctave int

	SampleRate int
	TableSize  int

	Sweep sweep.Parameters

	// used to name the pitch the player stopped the sweep at
	Mapper notes.Mapper
}

// DefaultConfig returns the configuration used by the board.
func DefaultConfig() Config {
	return Config{
		ReferenceNote:   config.ReferenceNote,
		ReferenceOctave: config.ReferenceOctave,
		SampleRate:      config.SampleRate,
		TableSize:       config.TableSize,
		Sweep:           sweep.DefaultParameters(),
	}
}
