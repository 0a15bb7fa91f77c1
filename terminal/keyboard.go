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

package terminal

import (
	"errors"
	"io"
	"os"

	"github.com/pkg/term"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/logger"
)

// DefaultDevice is the terminal device used by NewKeyboard() when no device
// is specified.
const DefaultDevice = "/dev/tty"

// Keyboard reads keys from the terminal in raw mode. The terminal is restored
// when the keyboard is closed.
type Keyboard struct {
	t    *term.Term
	keys chan byte
	done chan bool
}

// NewKeyboard opens the terminal device and puts it into raw mode. Key presses
// are read in a separate goroutine.
func NewKeyboard(device string) (*Keyboard, error) {
	if device == "" {
		device = DefaultDevice
	}

	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	kb := &Keyboard{
		t:    t,
		keys: make(chan byte, 16),
		done: make(chan bool),
	}

	go func() {
		defer close(kb.done)
		defer close(kb.keys)

		b := make([]byte, 1)
		for {
			n, err := kb.t.Read(b)
			if err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
					logger.Log(logger.Allow, "terminal", err)
				}
				return
			}
			if n > 0 {
				kb.keys <- b[0]
			}
		}
	}()

	return kb, nil
}

// Keys returns the channel on which key presses are sent. The channel is
// closed when the keyboard is closed.
func (kb *Keyboard) Keys() <-chan byte {
	return kb.keys
}

// Close restores the terminal to the state it was in before NewKeyboard().
func (kb *Keyboard) Close() error {
	if err := kb.t.Restore(); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	if err := kb.t.Close(); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}
