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

// Package test bundles helper functions that remove common boilerplate from
// tests. They are intended to be used in conjunction with the standard go
// test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions stop the test with t.Fatalf().
//
// It is worth describing how the success and failure functions handle nil
// because it is not obvious. A nil value is considered a success and so will
// cause ExpectFailure() to fail and ExpectSuccess() to succeed. This is
// because of how errors usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and can be used
// to capture output, for example the text sent over the serial report
// channel.
package test
