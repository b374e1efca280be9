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
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers in the file.
const NumRegisters = 32

// the Y pointer is the pair R29:R28
const (
	yLow  = 28
	yHigh = 29
)

// IndexError is returned when a register outside of the file is accessed.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("registers: index out of range (%d)", e.Index)
}

// File is the general purpose register file and the status register. The zero
// value is not ready for use because register labels are missing. Use
// NewFile().
type File struct {
	regs   [NumRegisters]Register
	status StatusRegister
}

// NewFile is the preferred method of initialisation for File. All registers
// and the status register are zero.
func NewFile() *File {
	rf := &File{}
	for i := range rf.regs {
		rf.regs[i] = NewRegister(0, fmt.Sprintf("R%d", i))
	}
	return rf
}

// Reset all registers and the status register to zero.
func (rf *File) Reset() {
	for i := range rf.regs {
		rf.regs[i].Load(0)
	}
	rf.status.Reset()
}

func (rf *File) check(index int) error {
	if index < 0 || index >= NumRegisters {
		return &IndexError{Index: index}
	}
	return nil
}

// Read returns the value of register index.
func (rf *File) Read(index int) (uint8, error) {
	if err := rf.check(index); err != nil {
		return 0, err
	}
	return rf.regs[index].Value(), nil
}

// Write value to register index.
func (rf *File) Write(index int, value uint8) error {
	if err := rf.check(index); err != nil {
		return err
	}
	rf.regs[index].Load(value)
	return nil
}

// Register returns a copy of the register at index. Useful for display.
func (rf *File) Register(index int) (Register, error) {
	if err := rf.check(index); err != nil {
		return Register{}, err
	}
	return rf.regs[index], nil
}

// ReadStatus returns a copy of the status register.
func (rf *File) ReadStatus() StatusRegister {
	return rf.status
}

// WriteStatus replaces the status register.
func (rf *File) WriteStatus(sr StatusRegister) {
	rf.status = sr
}

// Y returns the 16 bit value of the Y pointer.
func (rf *File) Y() uint16 {
	return uint16(rf.regs[yHigh].Value())<<8 | uint16(rf.regs[yLow].Value())
}

// Snapshot returns the values of all registers in index order.
func (rf *File) Snapshot() [NumRegisters]uint8 {
	var s [NumRegisters]uint8
	for i := range rf.regs {
		s[i] = rf.regs[i].Value()
	}
	return s
}

// String returns the register file as four rows of eight registers followed
// by the status register.
func (rf *File) String() string {
	s := strings.Builder{}
	for i := range rf.regs {
		s.WriteString(fmt.Sprintf("%4s=%02x", rf.regs[i].Label(), rf.regs[i].Value()))
		if i%8 == 7 {
			s.WriteRune('\n')
		} else {
			s.WriteRune(' ')
		}
	}
	s.WriteString(fmt.Sprintf("SREG=%s", rf.status.String()))
	return s.String()
}
