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
	"sync"

	"github.com/jetsetilly/gopheravr/hardware/memory/progbus"
)

// Disassembly represents the annotated disassembly of an AVR program.
type Disassembly struct {
	// indexed by word address
	entries []*Entry

	// the number of entries at each level
	counts map[EntryLevel]int

	// relative jumps wrap at this address. the size of program memory if it
	// is known, otherwise the number of entries
	wrap int

	crit sync.Mutex
}

// FromMemory disassembles the first size words of program memory. Relative
// jumps wrap at the end of program memory in the same way as they do for the
// CPU.
func FromMemory(mem progbus.Memory, size int) (*Disassembly, error) {
	dsm := &Disassembly{
		entries: make([]*Entry, size),
		counts:  make(map[EntryLevel]int),
		wrap:    size,
	}

	if sz, ok := mem.(progbus.Sizer); ok {
		dsm.wrap = sz.Size()
	}

	err := dsm.linear(mem)
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	dsm.flow(0)

	return dsm, nil
}

// decode every word in program memory
func (dsm *Disassembly) linear(mem progbus.Memory) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for address := range dsm.entries {
		word, err := mem.Read(uint32(address))
		if err != nil {
			return err
		}

		// the word following the last word in program memory is taken to be
		// erased flash
		next := uint16(0xffff)
		if address+1 < len(dsm.entries) {
			next, err = mem.Read(uint32(address + 1))
			if err != nil {
				return err
			}
		}

		e := FromWord(uint32(address), word, next)
		dsm.entries[address] = e
		dsm.counts[e.Level]++
	}

	return nil
}

// Len returns the number of words covered by the disassembly.
func (dsm *Disassembly) Len() int {
	return len(dsm.entries)
}

// Count returns the number of entries at the specified level.
func (dsm *Disassembly) Count(level EntryLevel) int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return dsm.counts[level]
}

// GetEntryByAddress returns the disassembly entry at the word address.
func (dsm *Disassembly) GetEntryByAddress(address uint32) (*Entry, bool) {
	if address >= uint32(len(dsm.entries)) {
		return nil, false
	}
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	return dsm.entries[address], true
}
