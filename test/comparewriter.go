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

package test

import (
	"strings"
	"sync"
)

// CompareWriter collects everything written to it. Tests hand it to the board
// as the serial report channel and then check the reports with Compare().
// Writes may come from the realtime clock goroutine as well as the test.
type CompareWriter struct {
	crit sync.Mutex
	sb   strings.Builder
}

func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.sb.Write(p)
}

// Clear discards the collected output.
func (cw *CompareWriter) Clear() {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	cw.sb.Reset()
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}

func (cw *CompareWriter) String() string {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.sb.String()
}
