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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the instruction bytes
	Bytecode bool

	// include entries that were not reached by the flow pass
	Unblessed bool
}

func (dsm *Disassembly) filter(attr WriteAttr, e *Entry) bool {
	if e.Level == EntryLevelBlessed {
		return true
	}
	return attr.Unblessed && e.Level == EntryLevelDecoded
}

// Write the disassembly to io.Writer in assembler syntax.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for _, e := range dsm.entries {
		if !dsm.filter(attr, e) {
			continue
		}

		var s strings.Builder
		fmt.Fprintf(&s, "%#04x ", e.Address*2)
		if attr.Bytecode {
			fmt.Fprintf(&s, "%-12s ", e.Bytecode())
		}
		fmt.Fprintf(&s, "%-5s %s\n", e.Mnemonic(), e.Operands())

		if _, err := io.WriteString(output, s.String()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}

	return nil
}

// WriteListing writes the disassembly to io.Writer in the format of a
// toolchain listing. Addresses are byte addresses and the instruction bytes are
// in memory order. Mnemonics and operands are lower case.
func (dsm *Disassembly) WriteListing(output io.Writer, attr WriteAttr) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for _, e := range dsm.entries {
		if !dsm.filter(attr, e) {
			continue
		}

		line := fmt.Sprintf("%4x:\t%-12s\t%s", e.Address*2, e.Bytecode(), strings.ToLower(e.Mnemonic()))
		if ops := e.Operands(); ops != "" {
			line = fmt.Sprintf("%s\t%s", line, strings.ToLower(ops))
		}

		if _, err := fmt.Fprintln(output, line); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}

	return nil
}
