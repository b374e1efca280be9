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

package registers

import "fmt"

// the program counter of the largest AVR devices is 22 bits wide
const pcMask = 0x3fffff

// ProgramCounter is the word address of the next instruction.
type ProgramCounter struct {
	value uint32
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint32) ProgramCounter {
	return ProgramCounter{value: val & pcMask}
}

// Label returns an identifying string for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Address returns the current value of the program counter as a word address.
func (pc ProgramCounter) Address() uint32 {
	return pc.value
}

// Load value into the program counter.
func (pc *ProgramCounter) Load(val uint32) {
	pc.value = val & pcMask
}

// Add a signed number of words to the program counter. The program counter
// wraps at the limit of the address space.
func (pc *ProgramCounter) Add(words int) {
	pc.value = uint32(int64(pc.value)+int64(words)) & pcMask
}
