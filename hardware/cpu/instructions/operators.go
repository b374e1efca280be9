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

import "strings"

// Operator identifies the operation performed by an instruction. The set of
// operators is closed and the executor dispatches on this value.
type Operator int

// List of supported operators. Ldd and Std are the Y-pointer with
// displacement forms of those instructions.
const (
	Nop Operator = iota
	Add
	Adc
	Sub
	Sbc
	And
	Eor
	Or
	Mov
	Cp
	Cpc
	Ldi
	Cpi
	Sbci
	Subi
	Ori
	Andi
	Com
	Neg
	Inc
	Dec
	Bset
	Bclr
	Rjmp
	Jmp
	Call
	Rcall
	Ret
	Push
	Pop
	In
	Out
	Ldd
	Std

	NumOperators
)

var mnemonics = [NumOperators]string{
	"NOP", "ADD", "ADC", "SUB", "SBC", "AND", "EOR", "OR", "MOV", "CP", "CPC",
	"LDI", "CPI", "SBCI", "SUBI", "ORI", "ANDI",
	"COM", "NEG", "INC", "DEC",
	"BSET", "BCLR",
	"RJMP", "JMP", "CALL", "RCALL", "RET",
	"PUSH", "POP", "IN", "OUT", "LDD", "STD",
}

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "unknown operator"
	}
	return mnemonics[op]
}

// ParseOperator returns the Operator for the mnemonic. Case insensitive.
func ParseOperator(mnemonic string) (Operator, bool) {
	mnemonic = strings.ToUpper(strings.TrimSpace(mnemonic))
	for i, m := range mnemonics {
		if m == mnemonic {
			return Operator(i), true
		}
	}
	return Nop, false
}
