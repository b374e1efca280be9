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

package flags

import (
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
)

// Inputs to the flag computation. D is the value of the destination register
// before the operation and R is the source operand (register or immediate
// value). Result is the value of the operation.
type Inputs struct {
	D      uint8
	R      uint8
	Result uint8
}

type policy struct {
	affects uint8
	compute func(in Inputs, prior registers.StatusRegister) registers.StatusRegister
}

const (
	logicalFlags    = registers.FlagS | registers.FlagV | registers.FlagN | registers.FlagZ
	arithmeticFlags = registers.FlagH | registers.FlagS | registers.FlagV | registers.FlagN | registers.FlagZ | registers.FlagC
	complementFlags = registers.FlagS | registers.FlagV | registers.FlagN | registers.FlagZ | registers.FlagC
	countFlags      = registers.FlagS | registers.FlagV | registers.FlagN | registers.FlagZ
)

var policies = map[instructions.Operator]policy{
	instructions.And:  {affects: logicalFlags, compute: logical},
	instructions.Andi: {affects: logicalFlags, compute: logical},
	instructions.Eor:  {affects: logicalFlags, compute: logical},
	instructions.Or:   {affects: logicalFlags, compute: logical},
	instructions.Ori:  {affects: logicalFlags, compute: logical},
	instructions.Add:  {affects: arithmeticFlags, compute: add},
	instructions.Adc:  {affects: arithmeticFlags, compute: add},
	instructions.Sub:  {affects: arithmeticFlags, compute: subtract},
	instructions.Subi: {affects: arithmeticFlags, compute: subtract},
	instructions.Cp:   {affects: arithmeticFlags, compute: subtract},
	instructions.Cpi:  {affects: arithmeticFlags, compute: subtract},
	instructions.Sbc:  {affects: arithmeticFlags, compute: subtractCarry},
	instructions.Sbci: {affects: arithmeticFlags, compute: subtractCarry},
	instructions.Cpc:  {affects: arithmeticFlags, compute: subtractCarry},
	instructions.Neg:  {affects: arithmeticFlags, compute: negate},
	instructions.Com:  {affects: complementFlags, compute: complement},
	instructions.Inc:  {affects: countFlags, compute: increment},
	instructions.Dec:  {affects: countFlags, compute: decrement},
}

// Affects returns the mask of status register flags affected by the operator.
// Zero if the operator affects no flags through the policy table.
func Affects(op instructions.Operator) uint8 {
	return policies[op].affects
}

// Compute the status register that results from the operation. The returned
// value differs from prior only in the flags affected by the operator. If the
// operator has no policy the prior status register is returned unchanged.
func Compute(op instructions.Operator, in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	p, ok := policies[op]
	if !ok {
		return prior
	}
	sr := prior
	sr.Merge(p.compute(in, prior), p.affects)
	return sr
}

func bit(v uint8, n int) bool {
	return v&(1<<n) != 0
}

// zero and negative flags and the sign flag from them. the overflow flag must
// be set before calling this function
func resultFlags(sr *registers.StatusRegister, result uint8) {
	sr.Zero = result == 0
	sr.Negative = bit(result, 7)
	sr.Sign = sr.Negative != sr.Overflow
}

func logical(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	sr.Overflow = false
	resultFlags(&sr, in.Result)
	return sr
}

func add(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	d3, r3, res3 := bit(in.D, 3), bit(in.R, 3), bit(in.Result, 3)
	d7, r7, res7 := bit(in.D, 7), bit(in.R, 7), bit(in.Result, 7)

	sr.HalfCarry = d3 && r3 || r3 && !res3 || !res3 && d3
	sr.Overflow = d7 && r7 && !res7 || !d7 && !r7 && res7
	sr.Carry = d7 && r7 || r7 && !res7 || !res7 && d7
	resultFlags(&sr, in.Result)
	return sr
}

// borrow and overflow flags common to all the subtraction operators
func borrow(sr *registers.StatusRegister, in Inputs) {
	d3, r3, res3 := bit(in.D, 3), bit(in.R, 3), bit(in.Result, 3)
	d7, r7, res7 := bit(in.D, 7), bit(in.R, 7), bit(in.Result, 7)

	sr.HalfCarry = !d3 && r3 || r3 && res3 || res3 && !d3
	sr.Overflow = d7 && !r7 && !res7 || !d7 && r7 && res7
	sr.Carry = !d7 && r7 || r7 && res7 || res7 && !d7
}

func subtract(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	borrow(&sr, in)
	resultFlags(&sr, in.Result)
	return sr
}

// the zero flag is only ever cleared by the carry variants of subtraction.
// this allows multi-byte comparisons
func subtractCarry(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	borrow(&sr, in)
	resultFlags(&sr, in.Result)
	sr.Zero = in.Result == 0 && prior.Zero
	return sr
}

// NEG is a subtraction from zero. R is the value being negated and D is
// ignored
func negate(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	sr.HalfCarry = bit(in.Result, 3) || bit(in.R, 3)
	sr.Overflow = in.Result == 0x80
	sr.Carry = in.Result != 0
	resultFlags(&sr, in.Result)
	return sr
}

func complement(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	sr.Overflow = false
	sr.Carry = true
	resultFlags(&sr, in.Result)
	return sr
}

func increment(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	sr.Overflow = in.Result == 0x80
	resultFlags(&sr, in.Result)
	return sr
}

func decrement(in Inputs, prior registers.StatusRegister) registers.StatusRegister {
	sr := prior
	sr.Overflow = in.Result == 0x7f
	resultFlags(&sr, in.Result)
	return sr
}
