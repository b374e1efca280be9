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

package cpu

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopheravr/hardware/cpu/decode"
	"github.com/jetsetilly/gopheravr/hardware/cpu/flags"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
)

// Unimplemented is returned when a decoded instruction can not be executed.
var Unimplemented = errors.New("unimplemented instruction")

// operation of the two operand ALU instructions. the carry argument is the
// carry flag before the operation
type operation func(d uint8, r uint8, carry bool) uint8

func carryIn(carry bool) uint8 {
	if carry {
		return 1
	}
	return 0
}

var operations = map[instructions.Operator]operation{
	instructions.Add:  func(d, r uint8, _ bool) uint8 { return d + r },
	instructions.Adc:  func(d, r uint8, c bool) uint8 { return d + r + carryIn(c) },
	instructions.Sub:  func(d, r uint8, _ bool) uint8 { return d - r },
	instructions.Subi: func(d, r uint8, _ bool) uint8 { return d - r },
	instructions.Cp:   func(d, r uint8, _ bool) uint8 { return d - r },
	instructions.Cpi:  func(d, r uint8, _ bool) uint8 { return d - r },
	instructions.Sbc:  func(d, r uint8, c bool) uint8 { return d - r - carryIn(c) },
	instructions.Sbci: func(d, r uint8, c bool) uint8 { return d - r - carryIn(c) },
	instructions.Cpc:  func(d, r uint8, c bool) uint8 { return d - r - carryIn(c) },
	instructions.And:  func(d, r uint8, _ bool) uint8 { return d & r },
	instructions.Andi: func(d, r uint8, _ bool) uint8 { return d & r },
	instructions.Or:   func(d, r uint8, _ bool) uint8 { return d | r },
	instructions.Ori:  func(d, r uint8, _ bool) uint8 { return d | r },
	instructions.Eor:  func(d, r uint8, _ bool) uint8 { return d ^ r },
	instructions.Mov:  func(_, r uint8, _ bool) uint8 { return r },
	instructions.Ldi:  func(_, r uint8, _ bool) uint8 { return r },
}

// single register operations
var unary = map[instructions.Operator]func(d uint8) uint8{
	instructions.Com: func(d uint8) uint8 { return ^d },
	instructions.Neg: func(d uint8) uint8 { return -d },
	instructions.Inc: func(d uint8) uint8 { return d + 1 },
	instructions.Dec: func(d uint8) uint8 { return d - 1 },
}

// Execute the decoded instruction against the register file. Only register
// and status register operations are supported. Any other operator results
// in an error wrapping Unimplemented and the register file is unchanged.
//
// Program flow is not the concern of this function. NOP is accepted and does
// nothing.
func Execute(ins decode.Instruction, rf *registers.File) error {
	if ins.Defn == nil {
		return fmt.Errorf("cpu: instruction has not been decoded (%#04x)", ins.Word)
	}

	op := ins.Defn.Operator

	switch ins.Defn.Layout {
	case instructions.LayoutRdRr:
		if f, ok := operations[op]; ok {
			r, err := rf.Read(int(ins.Rr))
			if err != nil {
				return fmt.Errorf("cpu: %s: %w", op, err)
			}
			return alu(op, f, ins.Rd, r, rf)
		}

	case instructions.LayoutRdK:
		if f, ok := operations[op]; ok {
			return alu(op, f, ins.Rd, ins.K, rf)
		}

	case instructions.LayoutRd:
		if f, ok := unary[op]; ok {
			d, err := rf.Read(int(ins.Rd))
			if err != nil {
				return fmt.Errorf("cpu: %s: %w", op, err)
			}
			res := f(d)

			// NEG is a subtraction from zero
			in := flags.Inputs{D: d, Result: res}
			if op == instructions.Neg {
				in = flags.Inputs{D: 0, R: d, Result: res}
			}

			err = rf.Write(int(ins.Rd), res)
			if err != nil {
				return fmt.Errorf("cpu: %s: %w", op, err)
			}
			rf.WriteStatus(flags.Compute(op, in, rf.ReadStatus()))
			return nil
		}

	case instructions.LayoutBit:
		switch op {
		case instructions.Bset, instructions.Bclr:
			sr := rf.ReadStatus()
			sr.SetBit(int(ins.Bit), op == instructions.Bset)
			rf.WriteStatus(sr)
			return nil
		}

	case instructions.LayoutNone:
		if op == instructions.Nop {
			return nil
		}
	}

	return fmt.Errorf("cpu: %w (%s)", Unimplemented, op)
}

// alu performs a two operand operation. compare operators update the status
// register only and operators with no flag policy update the destination
// register only
func alu(op instructions.Operator, f operation, rd uint8, r uint8, rf *registers.File) error {
	d, err := rf.Read(int(rd))
	if err != nil {
		return fmt.Errorf("cpu: %s: %w", op, err)
	}

	prior := rf.ReadStatus()
	res := f(d, r, prior.Carry)

	if defn, ok := instructions.Lookup(op); !ok || defn.Effect != instructions.Compare {
		err = rf.Write(int(rd), res)
		if err != nil {
			return fmt.Errorf("cpu: %s: %w", op, err)
		}
	}

	if flags.Affects(op) != 0 {
		rf.WriteStatus(flags.Compute(op, flags.Inputs{D: d, R: r, Result: res}, prior))
	}

	return nil
}
