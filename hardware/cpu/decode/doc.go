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

// Package decode turns a 16 bit instruction word into a decoded Instruction.
// The word is compared with every entry in the instruction table, under each
// entry's mask, and the operands are extracted from the matching entry's
// operand fields.
//
// Decoding is a pure function of the instruction word. Two word instructions
// (JMP and CALL) need the following word to complete the absolute address. The
// Complete() function takes care of that:
//
//	ins, err := decode.Decode(w)
//	if err != nil {
//		return err
//	}
//	if ins.Defn.Words == 2 {
//		ins.Complete(next)
//	}
//
// Register operands are always absolute register numbers. For example, the
// register field of LDI R16, 0xFF is encoded as zero in the word but decodes
// as Rd=16.
package decode
