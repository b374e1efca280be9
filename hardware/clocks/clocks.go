// This file is part of GopherAVR.
//
// GopherAVR is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAVR is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAVR.  If not, see <https://www.gnu.org/licenses/>.

// Package clocks defines the constant values for the common clock speeds of
// the AVR microcontroller. Values are in MHz.
package clocks

const (
	// ATmega328P with an external crystal, as found on the Arduino Uno
	Crystal = 16.0

	// internal RC oscillator
	RC = 8.0

	// internal RC oscillator divided by eight. the factory default
	RCDiv8 = RC / 8
)

// Duration returns the number of seconds taken by the number of cycles at the
// clock speed (in MHz).
func Duration(cycles uint64, mhz float64) float64 {
	return float64(cycles) / (mhz * 1000000)
}
