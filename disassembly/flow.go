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
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/memory/progbus"
)

// bless entries by following the flow of the program from the start address.
// a work list is used rather than recursion because a straight line program
// may be many thousands of instructions long
func (dsm *Disassembly) flow(start uint32) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	size := uint32(len(dsm.entries))
	work := []uint32{start}

	for len(work) > 0 {
		address := work[len(work)-1]
		work = work[:len(work)-1]

		if address >= size {
			continue
		}

		e := dsm.entries[address]
		if e.Level != EntryLevelDecoded {
			continue
		}

		dsm.counts[e.Level]--
		e.Level = EntryLevelBlessed
		dsm.counts[e.Level]++

		ins := e.Instruction
		next := address + uint32(ins.Defn.Words)

		switch ins.Operator() {
		case instructions.Rjmp:
			work = append(work, progbus.Relative(address, int(ins.Offset), dsm.wrap))
		case instructions.Jmp:
			work = append(work, ins.Address)
		case instructions.Rcall:
			work = append(work, next, progbus.Relative(address, int(ins.Offset), dsm.wrap))
		case instructions.Call:
			work = append(work, next, ins.Address)
		case instructions.Ret:
		default:
			work = append(work, next)
		}
	}
}
