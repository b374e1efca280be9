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

import "math/bits"

// Step is a single mask-then-shift stage of an operand field. An operand is
// the bitwise OR of the result of every step in the field. A positive Shift
// shifts right, a negative Shift shifts left.
//
// Operands that are split across non-adjacent parts of the instruction word
// (for example, the Rr register of the two-register ALU instructions) are
// described with more than one step.
type Step struct {
	Mask  uint16
	Shift int
}

// Field describes how to extract an operand value from an instruction word.
type Field struct {
	Steps []Step

	// Offset is added to the value after extraction. The register operand of
	// the immediate instructions encodes R16 to R31 in four bits
	Offset int

	// Signed is the width of the field when the value is two's complement.
	// Zero for unsigned fields
	Signed int
}

// Extract the operand value from the instruction word.
func (f Field) Extract(word uint16) int {
	var v uint16
	for _, s := range f.Steps {
		if s.Shift >= 0 {
			v |= (word & s.Mask) >> s.Shift
		} else {
			v |= (word & s.Mask) << -s.Shift
		}
	}

	n := int(v)
	if f.Signed > 0 && n&(1<<(f.Signed-1)) != 0 {
		n -= 1 << f.Signed
	}

	return n + f.Offset
}

// Insert the operand value into the instruction word. The value should have
// been checked with Fits() beforehand.
func (f Field) Insert(word uint16, value int) uint16 {
	v := uint16(value - f.Offset)
	for _, s := range f.Steps {
		if s.Shift >= 0 {
			word |= (v << s.Shift) & s.Mask
		} else {
			word |= (v >> -s.Shift) & s.Mask
		}
	}
	return word
}

// Mask returns the bits of the instruction word occupied by the field.
func (f Field) Mask() uint16 {
	var m uint16
	for _, s := range f.Steps {
		m |= s.Mask
	}
	return m
}

// Width returns the number of bits in the field.
func (f Field) Width() int {
	return bits.OnesCount16(f.Mask())
}

// Fits returns true if value can be represented by the field.
func (f Field) Fits(value int) bool {
	v := value - f.Offset
	w := f.Width()
	if f.Signed > 0 {
		return v >= -(1<<(w-1)) && v < 1<<(w-1)
	}
	return v >= 0 && v < 1<<w
}
