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

// Package flash implements the program memory of the AVR core. Program memory
// is read-only from the point of view of the CPU and is loaded from a program
// image before execution begins.
//
// Unprogrammed flash reads as 0xffff, same as the real device after a chip
// erase.
package flash

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheravr/hardware/memory/progbus"
)

// DefaultSize is the number of words of flash in the ATmega328P.
const DefaultSize = 16384

const erased = 0xffff

// Flash is the program memory.
type Flash struct {
	memory []uint16
}

// NewFlash is the preferred method of initialisation for the Flash type. A
// size of zero is the same as DefaultSize.
func NewFlash(size int) *Flash {
	if size <= 0 {
		size = DefaultSize
	}
	fl := &Flash{
		memory: make([]uint16, size),
	}
	fl.Clear()
	return fl
}

// Size returns the number of words in program memory.
func (fl *Flash) Size() int {
	return len(fl.memory)
}

// Clear erases program memory.
func (fl *Flash) Clear() {
	for i := range fl.memory {
		fl.memory[i] = erased
	}
}

// Read implements the progbus.Memory interface.
func (fl *Flash) Read(address uint32) (uint16, error) {
	if address >= uint32(len(fl.memory)) {
		return 0, fmt.Errorf("flash: %w (%#04x)", progbus.AddressError, address)
	}
	return fl.memory[address], nil
}

// Load implements the progbus.Loader interface.
func (fl *Flash) Load(origin uint32, words []uint16) error {
	if int(origin)+len(words) > len(fl.memory) {
		return fmt.Errorf("flash: program too large (%d words at %#04x)", len(words), origin)
	}
	copy(fl.memory[origin:], words)
	return nil
}

// Used returns the number of words from the start of program memory to the
// last programmed word.
func (fl *Flash) Used() int {
	for i := len(fl.memory) - 1; i >= 0; i-- {
		if fl.memory[i] != erased {
			return i + 1
		}
	}
	return 0
}

// String returns a hex dump of the programmed part of flash, eight words per
// row.
func (fl *Flash) String() string {
	s := strings.Builder{}
	used := fl.Used()
	for i := 0; i < used; i += 8 {
		s.WriteString(fmt.Sprintf("%06x |", i))
		for j := i; j < i+8 && j < used; j++ {
			s.WriteString(fmt.Sprintf(" %04x", fl.memory[j]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
