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

package registers

import (
	"strings"
)

// Bits in the status register.
const (
	FlagC uint8 = 0x01
	FlagZ uint8 = 0x02
	FlagN uint8 = 0x04
	FlagV uint8 = 0x08
	FlagS uint8 = 0x10
	FlagH uint8 = 0x20
	FlagT uint8 = 0x40
	FlagI uint8 = 0x80
)

// StatusRegister is the AVR status register (SREG). Each bit is a separate
// field.
type StatusRegister struct {
	Interrupt bool
	Transfer  bool
	HalfCarry bool
	Sign      bool
	Overflow  bool
	Negative  bool
	Zero      bool
	Carry     bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SREG"
}

// String returns the status register as a string of eight letters. Upper case
// letters for set flags and lower case letters for clear flags. Most
// significant bit first.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(b bool, set rune, clear rune) {
		if b {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}

	flag(sr.Interrupt, 'I', 'i')
	flag(sr.Transfer, 'T', 't')
	flag(sr.HalfCarry, 'H', 'h')
	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.Negative, 'N', 'n')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister to an 8 bit value.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Interrupt {
		v |= FlagI
	}
	if sr.Transfer {
		v |= FlagT
	}
	if sr.HalfCarry {
		v |= FlagH
	}
	if sr.Sign {
		v |= FlagS
	}
	if sr.Overflow {
		v |= FlagV
	}
	if sr.Negative {
		v |= FlagN
	}
	if sr.Zero {
		v |= FlagZ
	}
	if sr.Carry {
		v |= FlagC
	}

	return v
}

// FromValue converts an 8 bit value to the StatusRegister.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Interrupt = v&FlagI == FlagI
	sr.Transfer = v&FlagT == FlagT
	sr.HalfCarry = v&FlagH == FlagH
	sr.Sign = v&FlagS == FlagS
	sr.Overflow = v&FlagV == FlagV
	sr.Negative = v&FlagN == FlagN
	sr.Zero = v&FlagZ == FlagZ
	sr.Carry = v&FlagC == FlagC
}

// Bit returns the state of the numbered status bit. Bit 0 is the carry flag
// and bit 7 is the interrupt flag.
func (sr StatusRegister) Bit(n int) bool {
	return sr.Value()&(1<<(n&0x07)) != 0
}

// SetBit changes the numbered status bit. This is how the BSET and BCLR
// instructions see the register.
func (sr *StatusRegister) SetBit(n int, set bool) {
	v := sr.Value()
	if set {
		v |= 1 << (n & 0x07)
	} else {
		v &^= 1 << (n & 0x07)
	}
	sr.FromValue(v)
}

// Merge copies the flags selected by mask from other. Flags outside of the
// mask are unchanged.
func (sr *StatusRegister) Merge(other StatusRegister, mask uint8) {
	sr.FromValue(sr.Value()&^mask | other.Value()&mask)
}

// FlagNames returns the letters of the flags selected by mask, most
// significant first. For example, "SVNZ".
func FlagNames(mask uint8) string {
	const names = "ITHSVNZC"
	s := strings.Builder{}
	for i := 0; i < 8; i++ {
		if mask&(0x80>>i) != 0 {
			s.WriteByte(names[i])
		}
	}
	return s.String()
}
