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

// Package fixtures produces the test fixtures for two-register instructions.
//
// GenerateSource() writes an assembly source file containing one instruction
// for every combination of destination and source register. The file is
// assembled and then disassembled by external tools. ParseListing() reads the
// resulting listing and recovers, for each instruction, the instruction bytes
// as they appear in the listing and the two register numbers.
//
// WriteGoArrays() writes the parsed listing as Go source, suitable for
// embedding in a test suite.
//
// The bytes of an instruction appear in a listing in memory order, which for
// AVR program memory is low byte first. The Raw value of a Fixture is the two
// bytes in listing order, so the instruction word is Raw with the bytes
// swapped. The Word() function does this.
package fixtures
