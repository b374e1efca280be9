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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopheravr/hardware/cpu/decode"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the word address at which the instruction started
	Address uint32

	// the decoded instruction. the Defn field will be nil if the instruction
	// word could not be decoded
	Instruction decode.Instruction

	// number of words read from program memory
	Words int

	// number of cycles consumed by the instruction
	Cycles int

	// whether the instruction has completed
	Final bool

	// whether the instruction was skipped rather than executed
	Skipped bool

	// any error message encountered during execution
	Error string
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Instruction.Defn == nil {
		return fmt.Sprintf("%#04x ??", r.Address)
	}
	s := fmt.Sprintf("%#04x %s", r.Address, r.Instruction.String())
	if r.Skipped {
		s = fmt.Sprintf("%s (skipped)", s)
	}
	if r.Error != "" {
		s = fmt.Sprintf("%s [%s]", s, r.Error)
	}
	return s
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	defn := r.Instruction.Defn
	if defn == nil {
		return fmt.Errorf("cpu: execution result has no instruction definition")
	}

	if r.Words != defn.Words {
		return fmt.Errorf("cpu: unexpected number of words read during decode (%d instead of %d)", r.Words, defn.Words)
	}

	// skipped instructions take a single cycle
	if r.Skipped {
		if r.Cycles != 1 {
			return fmt.Errorf("cpu: number of cycles wrong for skipped instruction [%s] (%d instead of 1)", defn.Operator, r.Cycles)
		}
		return nil
	}

	if r.Cycles != defn.Cycles {
		return fmt.Errorf("cpu: number of cycles wrong for instruction [%s] (%d instead of %d)", defn.Operator, r.Cycles, defn.Cycles)
	}

	return nil
}
