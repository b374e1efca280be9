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

// Package disassembly creates and formats disassemblies of AVR programs.
//
// A disassembly is created in two passes. The linear pass decodes every word
// of program memory as though it were the first word of an instruction. The
// flow pass then follows the program from the reset vector, along
// fall-through paths and through jumps and calls, and marks every entry it
// reaches as blessed.
//
// Blessed entries are the more reliable of the two. The operand word of a two
// word instruction, for example, is decoded by the linear pass but will
// never be blessed.
//
// The Write() function writes the disassembly in assembler syntax. The
// WriteListing() function writes the disassembly in the format of a toolchain
// disassembly listing, with the instruction bytes in memory order. This is
// the format accepted by the fixtures package.
package disassembly
