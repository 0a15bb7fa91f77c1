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

// Package wavwriter allows writing of the DAC output to disk as a WAV file.
// Audio data is buffered in memory in its entirety and written to disk when
// the mixer is detached from the DAC.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/logger"
)

// BitDepth of the WAV file.
const BitDepth = 16

// WavWriter implements the peripherals.AudioMixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: bad sample rate (%d)", sampleRate)
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}, nil
}

// SetAudio implements the peripherals.AudioMixer interface. The unsigned
// value from the DAC is recentered and scaled to the bit depth of the file.
func (aw *WavWriter) SetAudio(v uint16) error {
	s := (int(v) - config.DACMidpoint) << (BitDepth - config.DACBits)
	aw.buffer = append(aw.buffer, s)
	return nil
}

// Len returns the number of samples buffered.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing implements the peripherals.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// PCM format, mono
	enc := wav.NewEncoder(f, aw.sampleRate, BitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
