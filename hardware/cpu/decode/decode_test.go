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

package decode_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/cpu/decode"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/test"
)

func TestEOR(t *testing.T) {
	ins, err := decode.Decode(0x2634)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Operator(), instructions.Eor)
	test.ExpectEquality(t, ins.Rd, 3)
	test.ExpectEquality(t, ins.Rr, 20)
	test.ExpectEquality(t, ins.String(), "EOR R3, R20")

	// bytes "41 26" as they appear in a listing make the word 0x2641
	ins, err = decode.Decode(0x2641)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.String(), "EOR R4, R17")
}

func TestEORRoundTrip(t *testing.T) {
	seen := make(map[uint16]bool)

	for rd := 0; rd < 32; rd++ {
		for rr := 0; rr < 32; rr++ {
			w, err := instructions.Encode(instructions.Eor, rd, rr)
			test.DemandSuccess(t, err)

			// every pair encodes to a different word
			test.DemandSuccess(t, !seen[w[0]], rd, rr)
			seen[w[0]] = true

			ins, err := decode.Decode(w[0])
			test.DemandSuccess(t, err)
			test.DemandEquality(t, ins.Operator(), instructions.Eor)
			test.DemandEquality(t, ins.Rd, uint8(rd))
			test.DemandEquality(t, ins.Rr, uint8(rr))
		}
	}

	test.ExpectEquality(t, len(seen), 1024)
}

func TestUnknownOpcode(t *testing.T) {
	for _, w := range []uint16{0xffff, 0x0001, 0x9409 | 0x0100} {
		_, err := decode.Decode(w)
		test.ExpectSuccess(t, errors.Is(err, decode.UnknownOpcode), w)
	}
}

func TestDecodeAll(t *testing.T) {
	// every word that decodes successfully must re-encode to the same word
	for w := 0; w <= 0xffff; w++ {
		ins, err := decode.Decode(uint16(w))
		if err != nil {
			continue
		}
		test.DemandSuccess(t, ins.Defn.Matches(uint16(w)))

		var operands []int
		for _, o := range ins.Defn.Layout.Operands() {
			switch o.Kind {
			case instructions.Rd:
				operands = append(operands, int(ins.Rd))
			case instructions.Rr:
				operands = append(operands, int(ins.Rr))
			case instructions.Immediate:
				operands = append(operands, int(ins.K))
			case instructions.StatusBit:
				operands = append(operands, int(ins.Bit))
			case instructions.IOAddress:
				operands = append(operands, int(ins.A))
			case instructions.Displacement:
				operands = append(operands, int(ins.Q))
			case instructions.Relative:
				operands = append(operands, int(ins.Offset))
			case instructions.Absolute:
				operands = append(operands, int(ins.Address))
			}
		}

		enc, err := instructions.Encode(ins.Operator(), operands...)
		test.DemandSuccess(t, err)
		test.DemandEquality(t, enc[0], uint16(w), ins.Operator())
	}
}

func TestTwoWord(t *testing.T) {
	ins, err := decode.Decode(0x95fd)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ins.Operator(), instructions.Jmp)
	test.ExpectEquality(t, ins.Address, 0x3f0000)

	ins.Complete(0x1234)
	test.ExpectEquality(t, ins.Address, 0x3f1234)
	test.ExpectEquality(t, len(ins.Words()), 2)
	test.ExpectEquality(t, ins.String(), "JMP 0x7E2468")

	// completing a single word instruction does nothing
	ins, err = decode.Decode(0x2634)
	test.DemandSuccess(t, err)
	ins.Complete(0xffff)
	test.ExpectEquality(t, ins.Next, 0)
	test.ExpectEquality(t, len(ins.Words()), 1)
}

func TestString(t *testing.T) {
	cases := []struct {
		word uint16
		asm  string
	}{
		{0x0000, "NOP"},
		{0xef0f, "LDI R16, 0xFF"},
		{0x3f3f, "CPI R19, 0xFF"},
		{0xcfff, "RJMP .-2"},
		{0xc002, "RJMP .+4"},
		{0x9478, "SEI"},
		{0x94f8, "CLI"},
		{0x9408, "SEC"},
		{0x9488, "CLC"},
		{0x2411, "EOR R1, R1"},
		{0x9501, "NEG R16"},
		{0xac5f, "LDD R5, Y+63"},
		{0xbe0f, "OUT 0x3F, R0"},
		{0x920f, "PUSH R0"},
		{0x9508, "RET"},
	}

	for _, c := range cases {
		ins, err := decode.Decode(c.word)
		test.DemandSuccess(t, err, c.asm)
		test.ExpectEquality(t, ins.String(), c.asm)
	}
}
