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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/pitchsweep/hardware/peripherals"
	"github.com/jetsetilly/pitchsweep/test"
	"github.com/jetsetilly/pitchsweep/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.NewWavWriter(fn, 16384)
	test.DemandSuccess(t, err)

	dac := peripherals.NewDAC()
	dac.AttachMixer(aw)
	dac.SetValue(512)
	dac.SetValue(1023)
	dac.SetValue(0)
	test.ExpectEquality(t, aw.Len(), 3)
	test.DemandSuccess(t, dac.DetachMixers())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(16384))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(wavwriter.BitDepth))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 3)
	test.ExpectEquality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[1], 511<<6)
	test.ExpectEquality(t, buf.Data[2], -512<<6)
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.NewWavWriter("out.wav", 0)
	test.ExpectFailure(t, err)
}
