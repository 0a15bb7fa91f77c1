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

// Package config holds the fixed configuration of the board. None of these
// values can be changed at runtime.
package config

import "time"

// SampleRate is the frequency of the sample clock in Hz.
const SampleRate = 16384

// TableSize is the number of entries in the waveform table. Must be a power
// of two.
const TableSize = 8192

// The pitch the player is asked to find.
const (
	ReferenceNote   = "F"
	ReferenceOctave = 5
)

// Parameters of the frequency sweep.
const (
	SweepStart    = 100.0  // Hz
	SweepEnd      = 3000.0 // Hz
	SweepDuration = 3.0    // seconds
)

// DebounceSettle is the time the button input must remain asserted after an
// edge before it is considered pressed.
const DebounceSettle = 30 * time.Millisecond

// DACBits is the resolution of the digital to analog converter.
const DACBits = 10

// DACMidpoint is the half-scale output of the DAC.
const DACMidpoint = 1 << (DACBits - 1)
