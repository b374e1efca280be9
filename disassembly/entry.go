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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheravr/hardware/cpu/decode"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Undecodable entries are words that do not decode to any instruction. Decoded
// entries have been decoded as though every word is an instruction. Blessed
// entries have been reached by following the flow of the program from the
// reset vector.
const (
	EntryLevelUndecodable EntryLevel = iota
	EntryLevelDecoded
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelUndecodable:
		return "undecodable"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown level"
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// word address of the instruction
	Address uint32

	Instruction decode.Instruction
}

// FromWord returns the entry for a single instruction word at the address.
// The next word is used to complete two word instructions.
func FromWord(address uint32, word uint16, next uint16) *Entry {
	e := &Entry{
		Address: address,
	}

	ins, err := decode.Decode(word)
	if err != nil {
		e.Instruction.Word = word
		return e
	}

	ins.Complete(next)
	e.Instruction = ins
	e.Level = EntryLevelDecoded

	return e
}

// Bytecode returns the bytes of the instruction in memory order. Program words
// are stored low byte first.
func (e *Entry) Bytecode() string {
	var s strings.Builder
	for i, w := range e.Instruction.Words() {
		if i > 0 {
			s.WriteString(" ")
		}
		fmt.Fprintf(&s, "%02x %02x", uint8(w), uint8(w>>8))
	}
	return s.String()
}

// Mnemonic returns the operator of the entry in assembler syntax.
func (e *Entry) Mnemonic() string {
	if e.Level == EntryLevelUndecodable {
		return ".dw"
	}
	return e.Instruction.Mnemonic()
}

// Operands returns the operands of the entry in assembler syntax.
func (e *Entry) Operands() string {
	if e.Level == EntryLevelUndecodable {
		return fmt.Sprintf("%#04x", e.Instruction.Word)
	}
	return strings.Join(e.Instruction.Operands(), ", ")
}

func (e *Entry) String() string {
	return fmt.Sprintf("%#04x %s", e.Address*2, e.Instruction.String())
}
