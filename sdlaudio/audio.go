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

// Package sdlaudio plays the output of the DAC through the sound card using
// SDL. It implements the peripherals.AudioMixer interface.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/logger"
)

// if more than this number of buffers are queued then the buffer is dropped
// rather than queued. this stops latency building up if the sample clock
// runs faster than the sound card
const maxQueuedBuffers = 8

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer   []uint8
	bufferCt int

	// samples are scaled around the midpoint by the volume
	volume float64

	// number of buffers that were dropped because the queue was too long
	dropped int
}

// NewAudio is the preferred method of initialisation for the Audio type.
// Samples are queued with the sound card in batches of bufferLength. The
// volume is in the range 0.0 to 1.0.
func NewAudio(sampleRate int, bufferLength int, volume float64) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{
		buffer: make([]uint8, bufferLength),
		volume: volume,
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)
	logger.Logf(logger.Allow, "sdlaudio", "volume: %.2f", aud.volume)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the peripherals.AudioMixer interface.
func (aud *Audio) SetAudio(v uint16) error {
	// U8 format. the DAC's midpoint becomes 128
	s := float64(int(v>>(config.DACBits-8)) - 128)
	aud.buffer[aud.bufferCt] = uint8(128 + int(s*aud.volume))
	aud.bufferCt++

	if aud.bufferCt >= len(aud.buffer) {
		return aud.flushAudio()
	}

	return nil
}

func (aud *Audio) flushAudio() error {
	defer func() {
		aud.bufferCt = 0
	}()

	if sdl.GetQueuedAudioSize(aud.id) > uint32(len(aud.buffer)*maxQueuedBuffers) {
		aud.dropped++
		return nil
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer[:aud.bufferCt]); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the peripherals.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	defer sdl.QuitSubSystem(sdl.INIT_AUDIO)
	defer sdl.CloseAudioDevice(aud.id)

	if aud.dropped > 0 {
		logger.Logf(logger.Allow, "sdlaudio", "%d buffers dropped", aud.dropped)
	}

	return aud.flushAudio()
}
