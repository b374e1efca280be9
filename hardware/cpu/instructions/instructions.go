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

import (
	"errors"
	"fmt"
)

//go:generate go run ./generator

// Definition defines an instruction. The fixed bits of the instruction word
// are those set in Mask and the word matches the definition when
// word&Mask == Pattern. The remaining bits are operand fields, arranged
// according to Layout.
type Definition struct {
	Operator Operator
	Pattern  uint16
	Mask     uint16
	Layout   Layout
	Words    int
	Cycles   int
	Effect   Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %#04x/%#04x [%s] (%d words, %d cycles) %s",
		defn.Operator, defn.Pattern, defn.Mask, defn.Layout, defn.Words, defn.Cycles, defn.Effect)
}

// Matches returns true if the instruction word is an instance of the
// definition.
func (defn Definition) Matches(word uint16) bool {
	return word&defn.Mask == defn.Pattern
}

var definitions = GetDefinitions()

// Lookup returns the definition for the operator.
func Lookup(op Operator) (*Definition, bool) {
	for _, defn := range definitions {
		if defn.Operator == op {
			return defn, true
		}
	}
	return nil, false
}

// sentinal errors returned by Encode().
var (
	UnknownOperator = errors.New("unknown operator")
	OperandRange    = errors.New("operand out of range")
)

// Encode returns the instruction words for the operator with the supplied
// operands. Operands are given in assembler order. For absolute addressing
// the operand is the full 22 bit word address and two words are returned.
func Encode(op Operator, operands ...int) ([]uint16, error) {
	defn, ok := Lookup(op)
	if !ok {
		return nil, fmt.Errorf("instructions: %w (%s)", UnknownOperator, op)
	}

	ops := defn.Layout.Operands()
	if len(operands) != len(ops) {
		return nil, fmt.Errorf("instructions: %s requires %d operands not %d", op, len(ops), len(operands))
	}

	word := defn.Pattern
	var next uint16

	for i, o := range ops {
		v := operands[i]

		if o.Kind == Absolute {
			if v < 0 || v >= 1<<22 {
				return nil, fmt.Errorf("instructions: %w (%s %d)", OperandRange, o.Kind, v)
			}
			next = uint16(v)
			v >>= 16
		}

		if !o.Field.Fits(v) {
			return nil, fmt.Errorf("instructions: %w (%s %d)", OperandRange, o.Kind, v)
		}
		word = o.Field.Insert(word, v)
	}

	if defn.Words == 2 {
		return []uint16{word, next}, nil
	}
	return []uint16{word}, nil
}
