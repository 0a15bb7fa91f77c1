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
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jetsetilly/pitchsweep/curated"
)

// TooShort is returned when there are not enough samples to analyse.
const TooShort = "analysis: not enough samples (%d)"

// DominantFrequency returns the frequency with the most power in the samples.
// The samples are windowed before the transform and the peak is refined by
// fitting a parabola to the neighbouring bins.
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if len(samples) < 4 {
		return 0, curated.Errorf(TooShort, len(samples))
	}

	x := make([]float64, len(samples))
	copy(x, samples)

	// remove any DC offset before windowing
	floats.AddConst(-stat.Mean(x, nil), x)
	window.Apply(x, window.Hann)

	spectrum := fft.FFTReal(x)

	power := make([]float64, len(spectrum)/2)
	for i := range power {
		power[i] = cmplx.Abs(spectrum[i])
	}

	peak := floats.MaxIdx(power)
	bin := float64(peak)

	if peak > 0 && peak < len(power)-1 {
		a := math.Log(power[peak-1] + 1e-12)
		b := math.Log(power[peak] + 1e-12)
		c := math.Log(power[peak+1] + 1e-12)
		if d := a - 2*b + c; d != 0 {
			bin += 0.5 * (a - c) / d
		}
	}

	return bin * sampleRate / float64(len(x)), nil
}

// Point is the dominant frequency of one window of a recording.
type Point struct {
	// time of the middle of the window in seconds
	At        float64
	Frequency float64
}

func (p Point) String() string {
	return fmt.Sprintf("%.3fs: %.2fHz", p.At, p.Frequency)
}

// Track divides the recording into windows of the specified number of
// samples and finds the dominant frequency of each. A partial window at the
// end of the recording is ignored.
func Track(rec Recording, windowSize int) ([]Point, error) {
	if windowSize < 4 || len(rec.Data) < windowSize {
		return nil, curated.Errorf(TooShort, len(rec.Data))
	}

	var pts []Point
	for i := 0; i+windowSize <= len(rec.Data); i += windowSize {
		f, err := DominantFrequency(rec.Data[i:i+windowSize], rec.SampleRate)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{
			At:        (float64(i) + float64(windowSize)/2) / rec.SampleRate,
			Frequency: f,
		})
	}

	return pts, nil
}

// Fit returns the straight line that best fits the points. A steady tone has
// a rate of zero, a linear sweep has a constant positive rate. The rate is in
// Hz per second.
func Fit(pts []Point) (start float64, rate float64) {
	x := make([]float64, len(pts))
	y := make([]float64, len(pts))
	for i, p := range pts {
		x[i] = p.At
		y[i] = p.Frequency
	}
	return stat.LinearRegression(x, y, nil, false)
}
