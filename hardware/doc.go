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

// Package hardware is the base package for the AVR emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// instruction core.
//
// The AVR type is the root of the emulation and contains external references
// to the CPU and program memory. The CPU is the only active component and
// program memory is loaded with AttachProgram() before the CPU is reset and
// run.
//
//	avr, _ := hardware.NewAVR(nil)
//	avr.AttachProgram(0, words)
//	avr.Run(nil)
package hardware
