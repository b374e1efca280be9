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

package instructions

// Category groups operators by their effect on the machine.
type Category int

// List of valid categories.
const (
	// result is written to the destination register and flags are updated
	Arithmetic Category = iota

	// flags are updated but no register is written
	Compare

	// a register is written but flags are not touched
	Transfer

	// a single status register bit is set or cleared
	Status

	// the program counter is changed
	Flow

	// the remaining categories need the data memory or IO space, neither of
	// which is emulated. these instructions can be decoded and disassembled
	// but not executed
	Subroutine
	Stack
	IO
	Memory
)

func (c Category) String() string {
	switch c {
	case Arithmetic:
		return "Arithmetic"
	case Compare:
		return "Compare"
	case Transfer:
		return "Transfer"
	case Status:
		return "Status"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Stack:
		return "Stack"
	case IO:
		return "IO"
	case Memory:
		return "Memory"
	}
	return "unknown category"
}
