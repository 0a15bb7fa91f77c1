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
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/pitchsweep/hardware/config"
	"github.com/jetsetilly/pitchsweep/logger"
)

// AudioMixer implementations receive every value written to the DAC.
type AudioMixer interface {
	// SetAudio is called from the sample interrupt and should not take
	// longer than necessary
	SetAudio(value uint16) error

	// EndMixing is called when the mixer is detached from the DAC
	EndMixing() error
}

// DAC is a digital to analog converter with a resolution of config.DACBits.
type DAC struct {
	// mixers can be attached and detached from outside the sample interrupt
	crit   sync.Mutex
	mixers []AudioMixer

	value atomic.Uint32
	count atomic.Uint64
}

// NewDAC is the preferred method of initialisation for the DAC type.
func NewDAC() *DAC {
	dac := &DAC{}
	dac.value.Store(config.DACMidpoint)
	return dac
}

// SetValue sets the output of the converter. Only the lower config.DACBits
// bits are used.
func (dac *DAC) SetValue(v uint16) {
	v &= (1 << config.DACBits) - 1
	dac.value.Store(uint32(v))
	dac.count.Add(1)

	dac.crit.Lock()
	defer dac.crit.Unlock()

	for i := 0; i < len(dac.mixers); i++ {
		if err := dac.mixers[i].SetAudio(v); err != nil {
			logger.Logf(logger.Allow, "dac", "detaching mixer: %v", err)
			dac.mixers = append(dac.mixers[:i], dac.mixers[i+1:]...)
			i--
		}
	}
}

// Value returns the most recent value written to the converter.
func (dac *DAC) Value() uint16 {
	return uint16(dac.value.Load())
}

// Count returns the number of values written to the converter.
func (dac *DAC) Count() uint64 {
	return dac.count.Load()
}

// Registers returns the value as it would be split across the low and high
// data registers of the converter. The two least significant bits are left
// aligned in the low register.
func (dac *DAC) Registers() (uint8, uint8) {
	v := dac.value.Load()
	return uint8((v & 0x03) << 6), uint8(v >> 2)
}

// AttachMixer adds a mixer to the list of mixers receiving values.
func (dac *DAC) AttachMixer(m AudioMixer) {
	dac.crit.Lock()
	defer dac.crit.Unlock()
	dac.mixers = append(dac.mixers, m)
}

// DetachMixers removes all mixers, calling EndMixing() on each of them.
func (dac *DAC) DetachMixers() error {
	dac.crit.Lock()
	mixers := dac.mixers
	dac.mixers = nil
	dac.crit.Unlock()

	var firstErr error
	for _, m := range mixers {
		if err := m.EndMixing(); err != nil {
			logger.Log(logger.Allow, "dac", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
