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

package decode

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
)

// UnknownOpcode is returned when an instruction word matches no entry in the
// instruction table.
var UnknownOpcode = errors.New("unknown opcode")

// Instruction is the result of decoding an instruction word.
type Instruction struct {
	Defn *instructions.Definition

	// the instruction word and, for two word instructions, the word that
	// follows it
	Word uint16
	Next uint16

	Rd uint8
	Rr uint8

	// immediate value
	K uint8

	// status register bit for BSET and BCLR
	Bit uint8

	// IO address
	A uint8

	// displacement from the Y pointer
	Q uint8

	// relative jump in words
	Offset int16

	// absolute address in words. only complete for two word instructions
	// after a call to Complete()
	Address uint32
}

// the instruction table ordered so that the most specific definitions are
// tried first
var table []*instructions.Definition

func init() {
	table = instructions.GetDefinitions()
	sort.SliceStable(table, func(i, j int) bool {
		return bits.OnesCount16(table[i].Mask) > bits.OnesCount16(table[j].Mask)
	})
}

// Decode the instruction word.
func Decode(word uint16) (Instruction, error) {
	for _, defn := range table {
		if !defn.Matches(word) {
			continue
		}

		ins := Instruction{
			Defn: defn,
			Word: word,
		}

		for _, o := range defn.Layout.Operands() {
			v := o.Field.Extract(word)
			switch o.Kind {
			case instructions.Rd:
				ins.Rd = uint8(v)
			case instructions.Rr:
				ins.Rr = uint8(v)
			case instructions.Immediate:
				ins.K = uint8(v)
			case instructions.StatusBit:
				ins.Bit = uint8(v)
			case instructions.IOAddress:
				ins.A = uint8(v)
			case instructions.Displacement:
				ins.Q = uint8(v)
			case instructions.Relative:
				ins.Offset = int16(v)
			case instructions.Absolute:
				ins.Address = uint32(v) << 16
			}
		}

		return ins, nil
	}

	return Instruction{}, fmt.Errorf("decode: %w (%#04x)", UnknownOpcode, word)
}

// Complete a two word instruction with the word that follows it in program
// memory. Has no effect for single word instructions.
func (ins *Instruction) Complete(next uint16) {
	if ins.Defn == nil || ins.Defn.Words != 2 {
		return
	}
	ins.Next = next
	ins.Address = ins.Address&0x3f0000 | uint32(next)
}

// Operator returns the operator of the decoded instruction.
func (ins Instruction) Operator() instructions.Operator {
	if ins.Defn == nil {
		return instructions.Nop
	}
	return ins.Defn.Operator
}

// Words returns the instruction as it appears in program memory.
func (ins Instruction) Words() []uint16 {
	if ins.Defn != nil && ins.Defn.Words == 2 {
		return []uint16{ins.Word, ins.Next}
	}
	return []uint16{ins.Word}
}
