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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
)

// the data hashed for each instruction is the previous digest followed by the
// address and words of the instruction, the register file and the status
// register
const traceLength = sha1.Size + 4 + 4 + registers.NumRegisters + 1

// Trace fingerprints the execution of a program instruction by instruction.
type Trace struct {
	digest [sha1.Size]byte
	data   [traceLength]byte
	count  int
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace() *Trace {
	return &Trace{}
}

// Hash implements the digest.Digest interface.
func (dig *Trace) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Trace) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.count = 0
}

// Count returns the number of instructions in the fingerprint.
func (dig *Trace) Count() int {
	return dig.count
}

// Update the fingerprint with the most recently executed instruction of the
// CPU.
func (dig *Trace) Update(mc *cpu.CPU) {
	// chain fingerprints by copying the previous fingerprint to the head of
	// the data
	i := copy(dig.data[:], dig.digest[:])

	res := mc.LastResult
	binary.LittleEndian.PutUint32(dig.data[i:], res.Address)
	i += 4

	w := res.Instruction.Words()
	binary.LittleEndian.PutUint16(dig.data[i:], w[0])
	var next uint16
	if len(w) > 1 {
		next = w[1]
	}
	binary.LittleEndian.PutUint16(dig.data[i+2:], next)
	i += 4

	regs := mc.Regs.Snapshot()
	i += copy(dig.data[i:], regs[:])
	dig.data[i] = mc.Regs.ReadStatus().Value()

	dig.digest = sha1.Sum(dig.data[:])
	dig.count++
}
