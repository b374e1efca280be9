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

// Package registers implements the register types of the AVR core: the 32
// general purpose 8 bit registers, the status register and the program
// counter.
//
// The general purpose registers are collected in the File type. Access to the
// file is by index and an index outside of the range 0 to 31 is an error of
// type *IndexError. The status register is implemented as a series of flags.
// Setting of flags can be done directly or by way of the Merge() function,
// which copies only those flags selected by a mask:
//
//	sr := rf.ReadStatus()
//	sr.Merge(computed, registers.FlagZ|registers.FlagN)
//	rf.WriteStatus(sr)
//
// The program counter is a word address. Program memory is addressed in 16
// bit words and never in bytes.
package registers
