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
	"fmt"
	"go/format"
	"io"
	"strings"
)

// the number of values on each line of a generated slice literal
const valuesPerLine = 16

func writeSlice[T uint16 | int](s *strings.Builder, name string, typ string, values []T, hex bool) {
	fmt.Fprintf(s, "var %s = []%s{", name, typ)
	for i, v := range values {
		if i%valuesPerLine == 0 {
			s.WriteString("\n")
		}
		if hex {
			fmt.Fprintf(s, "%#04x, ", v)
		} else {
			fmt.Fprintf(s, "%d, ", v)
		}
	}
	s.WriteString("\n}\n\n")
}

// WriteGoArrays writes the listing as Go source. The source declares three
// slices named after the operator: for EOR they are eorRaw, eorRd and eorRr.
func WriteGoArrays(w io.Writer, pkg string, l *Listing) error {
	name := strings.ToLower(l.Operator.String())

	s := &strings.Builder{}
	s.WriteString("// generated code - do not change\n\n")
	fmt.Fprintf(s, "package %s\n\n", pkg)
	fmt.Fprintf(s, "// %s instructions recovered from a disassembly listing\n", l.Operator)
	writeSlice(s, name+"Raw", "uint16", l.Raw, true)
	writeSlice(s, name+"Rd", "int", l.Rd, false)
	writeSlice(s, name+"Rr", "int", l.Rr, false)

	b, err := format.Source([]byte(s.String()))
	if err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}

	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("fixtures: %w", err)
	}
	return nil
}
