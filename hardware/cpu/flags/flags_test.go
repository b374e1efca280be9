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

package flags_test

import (
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/cpu/flags"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
	"github.com/jetsetilly/gopheravr/test"
)

func status(v uint8) registers.StatusRegister {
	var sr registers.StatusRegister
	sr.FromValue(v)
	return sr
}

func TestLogical(t *testing.T) {
	// R0=0x0F, R1=0xF0
	sr := flags.Compute(instructions.Eor, flags.Inputs{D: 0x0f, R: 0xf0, Result: 0xff}, status(0))
	test.ExpectSuccess(t, sr.Negative)
	test.ExpectFailure(t, sr.Zero)
	test.ExpectFailure(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Sign)

	// self EOR clears the register
	sr = flags.Compute(instructions.Eor, flags.Inputs{D: 0xa5, R: 0xa5, Result: 0}, status(registers.FlagV|registers.FlagN))
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectFailure(t, sr.Negative)
	test.ExpectFailure(t, sr.Overflow)
	test.ExpectFailure(t, sr.Sign)

	// H and C are not affected
	sr = flags.Compute(instructions.And, flags.Inputs{Result: 0x01}, status(registers.FlagH|registers.FlagC))
	test.ExpectSuccess(t, sr.HalfCarry)
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectEquality(t, sr.Value(), registers.FlagH|registers.FlagC)
}

func TestAdd(t *testing.T) {
	// 0x7f + 0x01 overflows into the sign bit
	sr := flags.Compute(instructions.Add, flags.Inputs{D: 0x7f, R: 0x01, Result: 0x80}, status(0))
	test.ExpectSuccess(t, sr.HalfCarry)
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Negative)
	test.ExpectFailure(t, sr.Sign)
	test.ExpectFailure(t, sr.Carry)
	test.ExpectFailure(t, sr.Zero)

	// 0xff + 0x01 carries out
	sr = flags.Compute(instructions.Add, flags.Inputs{D: 0xff, R: 0x01, Result: 0x00}, status(0))
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectSuccess(t, sr.HalfCarry)
	test.ExpectFailure(t, sr.Overflow)
}

func TestSubtract(t *testing.T) {
	// 0x00 - 0x01 borrows
	sr := flags.Compute(instructions.Sub, flags.Inputs{D: 0x00, R: 0x01, Result: 0xff}, status(0))
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectSuccess(t, sr.HalfCarry)
	test.ExpectSuccess(t, sr.Negative)
	test.ExpectFailure(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Sign)

	// 0x80 - 0x01 overflows
	sr = flags.Compute(instructions.Cp, flags.Inputs{D: 0x80, R: 0x01, Result: 0x7f}, status(0))
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectFailure(t, sr.Negative)
	test.ExpectSuccess(t, sr.Sign)
	test.ExpectFailure(t, sr.Carry)

	sr = flags.Compute(instructions.Cpi, flags.Inputs{D: 0x10, R: 0x10, Result: 0}, status(0))
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectFailure(t, sr.Carry)
}

func TestSubtractCarryZero(t *testing.T) {
	// zero result keeps a previous zero flag
	sr := flags.Compute(instructions.Cpc, flags.Inputs{Result: 0}, status(registers.FlagZ))
	test.ExpectSuccess(t, sr.Zero)

	// but can not set it
	sr = flags.Compute(instructions.Sbc, flags.Inputs{Result: 0}, status(0))
	test.ExpectFailure(t, sr.Zero)

	// and a non-zero result clears it
	sr = flags.Compute(instructions.Sbci, flags.Inputs{D: 2, R: 1, Result: 1}, status(registers.FlagZ))
	test.ExpectFailure(t, sr.Zero)
}

func TestSingleRegister(t *testing.T) {
	sr := flags.Compute(instructions.Com, flags.Inputs{D: 0xff, Result: 0x00}, status(registers.FlagV))
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectFailure(t, sr.Overflow)

	sr = flags.Compute(instructions.Neg, flags.Inputs{R: 0x80, Result: 0x80}, status(0))
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectSuccess(t, sr.Negative)
	test.ExpectFailure(t, sr.Sign)

	sr = flags.Compute(instructions.Neg, flags.Inputs{R: 0x00, Result: 0x00}, status(registers.FlagC))
	test.ExpectFailure(t, sr.Carry)
	test.ExpectSuccess(t, sr.Zero)

	sr = flags.Compute(instructions.Inc, flags.Inputs{D: 0x7f, Result: 0x80}, status(registers.FlagC))
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Carry)

	sr = flags.Compute(instructions.Dec, flags.Inputs{D: 0x80, Result: 0x7f}, status(0))
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Sign)
}

// flags outside of the affected mask always keep their prior value
func TestUnaffectedFlags(t *testing.T) {
	ops := []instructions.Operator{
		instructions.Add, instructions.Adc, instructions.Sub, instructions.Sbc,
		instructions.And, instructions.Eor, instructions.Or, instructions.Cp,
		instructions.Cpc, instructions.Cpi, instructions.Sbci, instructions.Subi,
		instructions.Ori, instructions.Andi, instructions.Com, instructions.Neg,
		instructions.Inc, instructions.Dec,
	}

	inputs := []flags.Inputs{
		{D: 0x00, R: 0x00, Result: 0x00},
		{D: 0x0f, R: 0xf0, Result: 0xff},
		{D: 0x7f, R: 0x01, Result: 0x80},
		{D: 0x80, R: 0x81, Result: 0x01},
	}

	for _, op := range ops {
		mask := flags.Affects(op)
		test.ExpectInequality(t, mask, 0, op)
		test.ExpectEquality(t, mask&(registers.FlagI|registers.FlagT), 0, op)

		for p := 0; p <= 0xff; p++ {
			prior := status(uint8(p))
			for _, in := range inputs {
				sr := flags.Compute(op, in, prior)
				test.DemandEquality(t, sr.Value()&^mask, uint8(p)&^mask, op)
			}
		}
	}

	// no policy means no change
	test.ExpectEquality(t, flags.Affects(instructions.Mov), 0)
	test.ExpectEquality(t, flags.Compute(instructions.Mov, flags.Inputs{Result: 0}, status(0x5a)).Value(), 0x5a)
}

func TestEORMask(t *testing.T) {
	test.ExpectEquality(t, registers.FlagNames(flags.Affects(instructions.Eor)), "SVNZ")
	test.ExpectEquality(t, registers.FlagNames(flags.Affects(instructions.Add)), "HSVNZC")
	test.ExpectEquality(t, registers.FlagNames(flags.Affects(instructions.Com)), "SVNZC")
	test.ExpectEquality(t, registers.FlagNames(flags.Affects(instructions.Inc)), "SVNZ")
}
