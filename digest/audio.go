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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer. samples are two bytes each
const bufferLength = 2048

// the previous digest value is kept at the start of the buffer so that the
// digest covers the entire stream
const bufferStart = sha1.Size

// Audio implements the peripherals.AudioMixer interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	samples  int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{
		buffer: make([]uint8, bufferLength),
	}
	dig.ResetDigest()
	return dig
}

// Hash returns the digest of all samples since the last reset. Samples that
// have not yet filled the buffer are included.
func (dig *Audio) Hash() string {
	if dig.bufferCt == bufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

func (dig *Audio) String() string {
	return fmt.Sprintf("%d samples %s", dig.samples, dig.Hash())
}

// ResetDigest resets the current digest value.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = bufferStart
	dig.samples = 0
}

// SetAudio implements the peripherals.AudioMixer interface.
func (dig *Audio) SetAudio(v uint16) error {
	dig.buffer[dig.bufferCt] = uint8(v)
	dig.buffer[dig.bufferCt+1] = uint8(v >> 8)
	dig.bufferCt += 2
	dig.samples++

	if dig.bufferCt >= len(dig.buffer) {
		dig.digest = sha1.Sum(dig.buffer)
		copy(dig.buffer, dig.digest[:])
		dig.bufferCt = bufferStart
	}

	return nil
}

// EndMixing implements the peripherals.AudioMixer interface.
func (dig *Audio) EndMixing() error {
	return nil
}
