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

// OperandKind says how an operand value is to be interpreted.
type OperandKind int

// List of valid operand kinds.
const (
	Rd OperandKind = iota
	Rr
	Immediate
	StatusBit
	IOAddress
	Displacement
	Relative

	// the high six bits of a 22 bit program address. the low 16 bits are
	// in the second word of the instruction
	Absolute
)

func (k OperandKind) String() string {
	switch k {
	case Rd:
		return "Rd"
	case Rr:
		return "Rr"
	case Immediate:
		return "K"
	case StatusBit:
		return "s"
	case IOAddress:
		return "A"
	case Displacement:
		return "q"
	case Relative:
		return "k"
	case Absolute:
		return "k22"
	}
	return "unknown operand"
}

// Operand is a single operand of an instruction, in assembler order.
type Operand struct {
	Kind  OperandKind
	Field Field
}

// Layout is the arrangement of operands in the instruction word.
type Layout int

// List of valid layouts.
const (
	LayoutNone Layout = iota
	LayoutRdRr
	LayoutRd
	LayoutRr
	LayoutRdK
	LayoutBit
	LayoutRelative
	LayoutAbsolute
	LayoutRdA
	LayoutARr
	LayoutRdQ
	LayoutQRr
)

// operand fields of the AVR instruction set
var (
	fieldReg   = Field{Steps: []Step{{Mask: 0x01f0, Shift: 4}}}
	fieldRr    = Field{Steps: []Step{{Mask: 0x0200, Shift: 5}, {Mask: 0x000f, Shift: 0}}}
	fieldRegHi = Field{Steps: []Step{{Mask: 0x00f0, Shift: 4}}, Offset: 16}
	fieldK8    = Field{Steps: []Step{{Mask: 0x0f00, Shift: 4}, {Mask: 0x000f, Shift: 0}}}
	fieldBit   = Field{Steps: []Step{{Mask: 0x0070, Shift: 4}}}
	fieldK12   = Field{Steps: []Step{{Mask: 0x0fff, Shift: 0}}, Signed: 12}
	fieldK22   = Field{Steps: []Step{{Mask: 0x01f0, Shift: 3}, {Mask: 0x0001, Shift: 0}}}
	fieldA6    = Field{Steps: []Step{{Mask: 0x0600, Shift: 5}, {Mask: 0x000f, Shift: 0}}}
	fieldQ6    = Field{Steps: []Step{{Mask: 0x2000, Shift: 8}, {Mask: 0x0c00, Shift: 7}, {Mask: 0x0007, Shift: 0}}}
)

var layouts = map[Layout][]Operand{
	LayoutNone:     nil,
	LayoutRdRr:     {{Kind: Rd, Field: fieldReg}, {Kind: Rr, Field: fieldRr}},
	LayoutRd:       {{Kind: Rd, Field: fieldReg}},
	LayoutRr:       {{Kind: Rr, Field: fieldReg}},
	LayoutRdK:      {{Kind: Rd, Field: fieldRegHi}, {Kind: Immediate, Field: fieldK8}},
	LayoutBit:      {{Kind: StatusBit, Field: fieldBit}},
	LayoutRelative: {{Kind: Relative, Field: fieldK12}},
	LayoutAbsolute: {{Kind: Absolute, Field: fieldK22}},
	LayoutRdA:      {{Kind: Rd, Field: fieldReg}, {Kind: IOAddress, Field: fieldA6}},
	LayoutARr:      {{Kind: IOAddress, Field: fieldA6}, {Kind: Rr, Field: fieldReg}},
	LayoutRdQ:      {{Kind: Rd, Field: fieldReg}, {Kind: Displacement, Field: fieldQ6}},
	LayoutQRr:      {{Kind: Displacement, Field: fieldQ6}, {Kind: Rr, Field: fieldReg}},
}

// Operands returns the operands of the layout in assembler order.
func (l Layout) Operands() []Operand {
	return layouts[l]
}

// Mask returns the bits of the instruction word used by operands.
func (l Layout) Mask() uint16 {
	var m uint16
	for _, o := range layouts[l] {
		m |= o.Field.Mask()
	}
	return m
}

func (l Layout) String() string {
	switch l {
	case LayoutNone:
		return "None"
	case LayoutRdRr:
		return "Rd, Rr"
	case LayoutRd:
		return "Rd"
	case LayoutRr:
		return "Rr"
	case LayoutRdK:
		return "Rd, K"
	case LayoutBit:
		return "s"
	case LayoutRelative:
		return "k"
	case LayoutAbsolute:
		return "k22"
	case LayoutRdA:
		return "Rd, A"
	case LayoutARr:
		return "A, Rr"
	case LayoutRdQ:
		return "Rd, Y+q"
	case LayoutQRr:
		return "Y+q, Rr"
	}
	return "unknown layout"
}
