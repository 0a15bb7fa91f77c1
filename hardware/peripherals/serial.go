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

package peripherals

import (
	"bytes"
	"io"
	"sync"

	"github.com/jetsetilly/pitchsweep/logger"
)

// Serial is the text report channel. Everything written is forwarded to the
// output and complete lines are copied to the log.
type Serial struct {
	crit sync.Mutex
	out  io.Writer
	line []byte
	sent int
}

// NewSerial is the preferred method of initialisation for the Serial type. A
// nil output discards the text but it is still logged.
func NewSerial(out io.Writer) *Serial {
	if out == nil {
		out = io.Discard
	}
	return &Serial{out: out}
}

// Write implements the io.Writer interface.
func (s *Serial) Write(p []byte) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	n, err := s.out.Write(p)
	s.sent += n

	s.line = append(s.line, p[:n]...)
	for {
		i := bytes.IndexByte(s.line, '\n')
		if i < 0 {
			break
		}
		logger.Log(logger.Allow, "serial", string(s.line[:i]))
		s.line = s.line[i+1:]
	}

	return n, err
}

// Sent returns the number of bytes written to the output.
func (s *Serial) Sent() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.sent
}
