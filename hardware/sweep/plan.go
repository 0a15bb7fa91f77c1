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

package sweep

import (
	"fmt"
	"math"

	"github.com/jetsetilly/pitchsweep/curated"
	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/hardware/dds"
)

// InvalidParameters is returned by Validate() and NewPlan().
const InvalidParameters = "sweep: invalid parameters: %s"

// Parameters of one sweep.
type Parameters struct {
	Start      float64 // Hz
	End        float64 // Hz
	Duration   float64 // seconds
	SampleRate int     // Hz
	TableSize  int
}

// DefaultParameters returns the sweep used by the board.
func DefaultParameters() Parameters {
	return Parameters{
		Start:      config.SweepStart,
		End:        config.SweepEnd,
		Duration:   config.SweepDuration,
		SampleRate: config.SampleRate,
		TableSize:  config.TableSize,
	}
}

func (p Parameters) String() string {
	return fmt.Sprintf("%.2fHz to %.2fHz in %.2fs", p.Start, p.End, p.Duration)
}

// Validate checks that the parameters describe a usable sweep.
func (p Parameters) Validate() error {
	if p.Start < 0 {
		return curated.Errorf(InvalidParameters, "start frequency is negative")
	}
	if p.End < p.Start {
		return curated.Errorf(InvalidParameters, "end frequency is lower than start frequency")
	}
	if !(p.Duration > 0) {
		return curated.Errorf(InvalidParameters, "duration must be greater than zero")
	}
	if p.SampleRate <= 0 {
		return curated.Errorf(InvalidParameters, "sample rate must be greater than zero")
	}
	if p.TableSize <= 0 || p.TableSize&(p.TableSize-1) != 0 {
		return curated.Errorf(InvalidParameters, "table size must be a power of two")
	}
	return nil
}

// Plan is the result of planning a sweep.
type Plan struct {
	Parameters

	// the frequency word at the start of the sweep
	Initial uint32

	// the value added to the frequency word on every tick
	Ramp uint32
}

// NewPlan derives the initial frequency word and the ramp for the parameters.
func NewPlan(p Parameters) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	m := float64(p.TableSize)
	r := float64(p.SampleRate)

	return Plan{
		Parameters: p,
		Initial:    uint32(math.Round(m * p.Start / r * dds.One)),
		Ramp:       uint32(math.Round(m * (p.End - p.Start) / (p.Duration * r * r) * dds.One)),
	}, nil
}

func (pl Plan) String() string {
	return fmt.Sprintf("%s: initial=%#08x ramp=%#08x", pl.Parameters, pl.Initial, pl.Ramp)
}

// Ticks returns the number of ticks the sweep lasts for.
func (pl Plan) Ticks() uint32 {
	return uint32(math.Round(pl.Duration * float64(pl.SampleRate)))
}

// Install sets the phase to the start of the sweep.
func (pl Plan) Install(ph *dds.Phase) {
	ph.Set(pl.Initial, pl.Ramp)
}

// FrequencyAt returns the ideal frequency of the sweep after the number of
// ticks.
func (pl Plan) FrequencyAt(ticks uint32) float64 {
	return pl.Start + (pl.End-pl.Start)*float64(ticks)/(pl.Duration*float64(pl.SampleRate))
}
