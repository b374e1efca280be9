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

package fixtures

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
)

// NotTwoRegister is returned when a fixture is requested for an operator that
// does not take a destination and a source register.
var NotTwoRegister = errors.New("operator does not take two registers")

const sourceHeader = `
.nolist
.include "m328Pdef.inc"
.list


; start vector
.org 0x0000
        rjmp    main                    ; jump to main label

; main program
main:
`

// NumSourceInstructions is the number of instructions written by
// GenerateSource().
const NumSourceInstructions = registers.NumRegisters * registers.NumRegisters

func twoRegister(op instructions.Operator) error {
	defn, ok := instructions.Lookup(op)
	if !ok {
		return fmt.Errorf("fixtures: %w (%s)", instructions.UnknownOperator, op)
	}
	if defn.Layout != instructions.LayoutRdRr {
		return fmt.Errorf("fixtures: %w (%s)", NotTwoRegister, op)
	}
	return nil
}

// GenerateSource writes assembly source containing the operator with every
// combination of destination and source register. The destination register
// changes slowest.
func GenerateSource(w io.Writer, op instructions.Operator) error {
	if err := twoRegister(op); err != nil {
		return err
	}

	var s strings.Builder
	s.WriteString(sourceHeader)
	for rd := 0; rd < registers.NumRegisters; rd++ {
		for rr := 0; rr < registers.NumRegisters; rr++ {
			fmt.Fprintf(&s, "\t%s R%d, R%d\n", op, rd, rr)
		}
	}
	s.WriteString("\n")

	if _, err := io.WriteString(w, s.String()); err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}
	return nil
}
