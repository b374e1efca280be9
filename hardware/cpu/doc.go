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

// Package cpu emulates the instruction core of an AVR 8-bit microcontroller.
// The AVR executes instructions according to the 16 bit word read from program
// memory at the address pointed to by the program counter. The word is decoded
// with the decode package and the decoded instruction is executed against the
// register file.
//
// There are two levels of execution. The Execute() function is a pure
// function of a decoded instruction and a register file. It handles all the
// register and status register operations:
//
//	ins, _ := decode.Decode(0x2634)
//	rf := registers.NewFile()
//	err := cpu.Execute(ins, rf)
//
// The CPU type adds program memory and the program counter to the register
// file. The CPU.ExecuteInstruction() function fetches the next instruction,
// decodes it, handles program flow instructions (RJMP, JMP) itself and
// delegates everything else to Execute().
//
// Instructions that can be decoded but not executed (stack, IO and data
// memory instructions) produce an error wrapping Unimplemented. What the CPU
// type does with such an instruction depends on the Unimplemented preference:
// the CPU is either halted or the instruction is skipped.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
package cpu
