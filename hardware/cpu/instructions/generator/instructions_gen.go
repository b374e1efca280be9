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

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
)

const definitionsCSVFile = "instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// generated code - do not change\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the AVR core\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{\n"

const trailingBoilerPlate = "}\n}\n"

var layouts = map[string]instructions.Layout{
	"NONE":     instructions.LayoutNone,
	"RD_RR":    instructions.LayoutRdRr,
	"RD":       instructions.LayoutRd,
	"RR":       instructions.LayoutRr,
	"RD_K":     instructions.LayoutRdK,
	"BIT":      instructions.LayoutBit,
	"RELATIVE": instructions.LayoutRelative,
	"ABSOLUTE": instructions.LayoutAbsolute,
	"RD_A":     instructions.LayoutRdA,
	"A_RR":     instructions.LayoutARr,
	"RD_Q":     instructions.LayoutRdQ,
	"Q_RR":     instructions.LayoutQRr,
}

var layoutNames = map[instructions.Layout]string{
	instructions.LayoutNone:     "LayoutNone",
	instructions.LayoutRdRr:     "LayoutRdRr",
	instructions.LayoutRd:       "LayoutRd",
	instructions.LayoutRr:       "LayoutRr",
	instructions.LayoutRdK:      "LayoutRdK",
	instructions.LayoutBit:      "LayoutBit",
	instructions.LayoutRelative: "LayoutRelative",
	instructions.LayoutAbsolute: "LayoutAbsolute",
	instructions.LayoutRdA:      "LayoutRdA",
	instructions.LayoutARr:      "LayoutARr",
	instructions.LayoutRdQ:      "LayoutRdQ",
	instructions.LayoutQRr:      "LayoutQRr",
}

var categories = map[string]instructions.Category{
	"ARITHMETIC": instructions.Arithmetic,
	"COMPARE":    instructions.Compare,
	"TRANSFER":   instructions.Transfer,
	"STATUS":     instructions.Status,
	"FLOW":       instructions.Flow,
	"SUBROUTINE": instructions.Subroutine,
	"STACK":      instructions.Stack,
	"IO":         instructions.IO,
	"MEMORY":     instructions.Memory,
}

// parseBitPattern converts a sixteen character pattern into the fixed bit
// pattern and mask.
func parseBitPattern(s string) (pattern uint16, mask uint16, err error) {
	if len(s) != 16 {
		return 0, 0, fmt.Errorf("bit pattern must be 16 characters (%s)", s)
	}
	for _, c := range s {
		pattern <<= 1
		mask <<= 1
		switch c {
		case '0':
			mask |= 1
		case '1':
			mask |= 1
			pattern |= 1
		}
	}
	return pattern, mask, nil
}

func parseCSV() ([]instructions.Definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions (%s)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true
	csvr.ReuseRecord = true

	// category field is optional
	csvr.FieldsPerRecord = -1

	var deftable []instructions.Definition

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return nil, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		newDef := instructions.Definition{}

		// field: mnemonic
		op, ok := instructions.ParseOperator(rec[0])
		if !ok {
			return nil, fmt.Errorf("unknown mnemonic (%s) [line %d]", rec[0], line)
		}
		newDef.Operator = op

		// field: bit pattern
		newDef.Pattern, newDef.Mask, err = parseBitPattern(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%v [line %d]", err, line)
		}

		// field: operand layout
		newDef.Layout, ok = layouts[strings.ToUpper(rec[2])]
		if !ok {
			return nil, fmt.Errorf("invalid operand layout for %s (%s)", rec[0], rec[2])
		}

		// operand fields must cover the variable bits exactly
		if newDef.Layout.Mask() != ^newDef.Mask {
			return nil, fmt.Errorf("operand layout %s does not match bit pattern for %s (%s)", newDef.Layout, rec[0], rec[1])
		}

		// field: number of words
		newDef.Words, err = strconv.Atoi(rec[3])
		if err != nil || newDef.Words < 1 || newDef.Words > 2 {
			return nil, fmt.Errorf("invalid word count for %s (%s)", rec[0], rec[3])
		}

		// field: cycle count
		newDef.Cycles, err = strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %s (%s)", rec[0], rec[4])
		}

		// field: category
		if len(rec) == 5 {
			newDef.Effect = instructions.Arithmetic
		} else {
			newDef.Effect, ok = categories[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown category for %s (%s)", rec[0], rec[5])
			}
		}

		deftable = append(deftable, newDef)
	}

	return deftable, nil
}

// checkAmbiguity makes sure that no instruction word matches more than one
// definition.
func checkAmbiguity(deftable []instructions.Definition) error {
	for w := 0; w <= 0xffff; w++ {
		var match *instructions.Definition
		for i := range deftable {
			if deftable[i].Matches(uint16(w)) {
				if match != nil {
					return fmt.Errorf("%#04x matches both %s and %s", w, match.Operator, deftable[i].Operator)
				}
				match = &deftable[i]
			}
		}
	}
	return nil
}

func constName(op instructions.Operator) string {
	s := op.String()
	return s[:1] + strings.ToLower(s[1:])
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during opcode generation (%s)\n", err)
		os.Exit(10)
	}

	err = checkAmbiguity(deftable)
	if err != nil {
		fmt.Printf("error during opcode generation (%s)\n", err)
		os.Exit(10)
	}

	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for _, defn := range deftable {
		s.WriteString(fmt.Sprintf("{Operator: %s, Pattern: %#04x, Mask: %#04x, Layout: %s, Words: %d, Cycles: %d, Effect: %s},\n",
			constName(defn.Operator), defn.Pattern, defn.Mask, layoutNames[defn.Layout], defn.Words, defn.Cycles, defn.Effect))
	}
	s.WriteString(trailingBoilerPlate)

	output, err := format.Source([]byte(s.String()))
	if err != nil {
		fmt.Printf("error during opcode generation (%s)\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0644)
	if err != nil {
		fmt.Printf("error during opcode generation (%s)\n", err)
		os.Exit(10)
	}

	fmt.Printf("%d instruction definitions written to %s\n", len(deftable), generatedGoFile)
}
