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

package hardware

import "github.com/jetsetilly/gopheravr/hardware/cpu/execution"

// Step the emulator state one CPU instruction. Returns a copy of the result of
// the instruction.
func (avr *AVR) Step() (execution.Result, error) {
	err := avr.CPU.ExecuteInstruction()
	return avr.CPU.LastResult, err
}
