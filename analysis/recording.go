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

package analysis

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/logger"
)

// UnsupportedFormat is returned by Load() for files that are neither WAV nor
// MP3.
const UnsupportedFormat = "analysis: unsupported file format (%s)"

// Recording is mono audio data.
type Recording struct {
	SampleRate float64
	Data       []float64
}

func (rec Recording) String() string {
	return fmt.Sprintf("%d samples at %.0fHz (%.2fs)", len(rec.Data), rec.SampleRate, rec.Duration())
}

// Duration of the recording in seconds.
func (rec Recording) Duration() float64 {
	if rec.SampleRate == 0 {
		return 0
	}
	return float64(len(rec.Data)) / rec.SampleRate
}

// Load a recording from a file. The format is decided by the file extension.
func Load(filename string) (Recording, error) {
	var load func(f *os.File) (Recording, error)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		load = func(f *os.File) (Recording, error) { return LoadWAV(f) }
	case ".mp3":
		load = func(f *os.File) (Recording, error) { return LoadMP3(f) }
	default:
		return Recording{}, curated.Errorf(UnsupportedFormat, filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return Recording{}, curated.Errorf("analysis: %v", err)
	}
	defer f.Close()

	return load(f)
}

// LoadWAV reads a recording in WAV format.
func LoadWAV(r io.ReadSeeker) (Recording, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Recording{}, curated.Errorf("analysis: wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Recording{}, curated.Errorf("analysis: wav: %v", err)
	}
	fb := buf.AsFloatBuffer()

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	rec := Recording{
		SampleRate: float64(dec.SampleRate),
		Data:       make([]float64, 0, len(fb.Data)/chans),
	}
	for i := 0; i < len(fb.Data); i += chans {
		rec.Data = append(rec.Data, fb.Data[i])
	}

	logger.Logf(logger.Allow, "analysis", "wav: %s", rec)

	return rec, nil
}

// LoadMP3 reads a recording in MP3 format.
func LoadMP3(r io.Reader) (Recording, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Recording{}, curated.Errorf("analysis: mp3: %v", err)
	}

	rec := Recording{
		SampleRate: float64(dec.SampleRate()),
	}

	// the decoded stream is always 16bit little endian stereo. only the left
	// channel is kept
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			rec.Data = append(rec.Data, float64(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return Recording{}, curated.Errorf("analysis: mp3: %v", err)
		}
	}

	logger.Logf(logger.Allow, "analysis", "mp3: %s", rec)

	return rec, nil
}
