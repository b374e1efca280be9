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

// Package sweep verifies the execution of a two register instruction for
// every combination of destination and source register.
//
// For each of the 1024 register pairs the instruction word is encoded,
// decoded and checked against the pair. The instruction is then executed
// against a register file filled with random values and the register file
// is checked: only the destination register may change, it must hold the
// expected result, and status register bits that the operator does not
// affect must keep their prior value.
//
// Pairs are distributed between a number of worker goroutines. Each worker has
// its own register file.
package sweep
