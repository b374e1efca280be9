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

package decode

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
)

// BSET and BCLR are almost always written using their alias. Indexed by status
// register bit.
var (
	setAliases   = [8]string{"SEC", "SEZ", "SEN", "SEV", "SES", "SEH", "SET", "SEI"}
	clearAliases = [8]string{"CLC", "CLZ", "CLN", "CLV", "CLS", "CLH", "CLT", "CLI"}
)

// Mnemonic returns the assembler mnemonic for the instruction. Aliases are
// preferred where the operator has them.
func (ins Instruction) Mnemonic() string {
	switch ins.Operator() {
	case instructions.Bset:
		return setAliases[ins.Bit&0x07]
	case instructions.Bclr:
		return clearAliases[ins.Bit&0x07]
	}
	return ins.Operator().String()
}

// Operands returns the operands of the instruction in assembler order and
// syntax.
func (ins Instruction) Operands() []string {
	if ins.Defn == nil {
		return nil
	}

	// aliases of BSET and BCLR take no operands
	if ins.Defn.Layout == instructions.LayoutBit {
		return nil
	}

	var ops []string
	for _, o := range ins.Defn.Layout.Operands() {
		switch o.Kind {
		case instructions.Rd:
			ops = append(ops, fmt.Sprintf("R%d", ins.Rd))
		case instructions.Rr:
			ops = append(ops, fmt.Sprintf("R%d", ins.Rr))
		case instructions.Immediate:
			ops = append(ops, fmt.Sprintf("0x%02X", ins.K))
		case instructions.IOAddress:
			ops = append(ops, fmt.Sprintf("0x%02X", ins.A))
		case instructions.Displacement:
			ops = append(ops, fmt.Sprintf("Y+%d", ins.Q))
		case instructions.Relative:
			// assembler syntax is a byte offset
			ops = append(ops, fmt.Sprintf(".%+d", int(ins.Offset)*2))
		case instructions.Absolute:
			ops = append(ops, fmt.Sprintf("0x%X", ins.Address*2))
		}
	}
	return ops
}

// String returns the instruction in assembler syntax. For example, "EOR R3,
// R20".
func (ins Instruction) String() string {
	if ins.Defn == nil {
		return fmt.Sprintf(".dw %#04x", ins.Word)
	}
	ops := ins.Operands()
	if len(ops) == 0 {
		return ins.Mnemonic()
	}
	return fmt.Sprintf("%s %s", ins.Mnemonic(), strings.Join(ops, ", "))
}
