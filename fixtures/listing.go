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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
)

// MalformedLine is returned when a line of the listing containing the operator
// mnemonic cannot be parsed. A listing with such a line cannot be trusted and
// the whole parse fails.
var MalformedLine = errors.New("malformed listing line")

// Fixture is a single instruction recovered from a listing.
type Fixture struct {
	// the two instruction bytes in the order they appear in the listing
	Raw uint16

	Rd int
	Rr int
}

// Word returns the instruction word for the fixture.
func (f Fixture) Word() uint16 {
	return bits.ReverseBytes16(f.Raw)
}

func (f Fixture) String() string {
	return fmt.Sprintf("%#04x R%d, R%d", f.Raw, f.Rd, f.Rr)
}

// Listing is the result of ParseListing(). The three slices are always the
// same length and are in the order the instructions appear in the listing.
type Listing struct {
	Operator instructions.Operator
	Raw      []uint16
	Rd       []int
	Rr       []int
}

// Len returns the number of instructions in the listing.
func (l *Listing) Len() int {
	return len(l.Raw)
}

// Fixture returns the i'th instruction in the listing.
func (l *Listing) Fixture(i int) Fixture {
	return Fixture{Raw: l.Raw[i], Rd: l.Rd[i], Rr: l.Rr[i]}
}

func (l *Listing) append(f Fixture) {
	l.Raw = append(l.Raw, f.Raw)
	l.Rd = append(l.Rd, f.Rd)
	l.Rr = append(l.Rr, f.Rr)
}

// the line pattern. everything up to and including the first colon is the
// address. the two instruction bytes follow, separated by any amount of
// whitespace, and then the mnemonic and the two registers
func linePattern(op instructions.Operator) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^.*?:\s+([0-9a-f]{2})\s+([0-9a-f]{2})\s+` +
		regexp.QuoteMeta(op.String()) + `\s+r(\d{1,2}),\s*r(\d{1,2})(?:\s|;|$)`)
}

// a line is a candidate if the mnemonic appears as a separate token
func candidate(line string, op instructions.Operator) bool {
	for _, f := range strings.Fields(line) {
		if strings.EqualFold(f, op.String()) {
			return true
		}
	}
	return false
}

// ParseListing reads a disassembly listing and returns the instructions for the
// operator. Lines not mentioning the operator are ignored. A line that
// mentions the operator but does not match the expected pattern fails the
// entire parse.
func ParseListing(r io.Reader, op instructions.Operator) (*Listing, error) {
	if err := twoRegister(op); err != nil {
		return nil, err
	}

	pat := linePattern(op)
	l := &Listing{Operator: op}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if !candidate(line, op) {
			continue
		}

		m := pat.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("fixtures: %w: line %d: %q", MalformedLine, lineNum, line)
		}

		// the pattern guarantees that these conversions succeed
		b1, _ := strconv.ParseUint(m[1], 16, 8)
		b2, _ := strconv.ParseUint(m[2], 16, 8)
		rd, _ := strconv.Atoi(m[3])
		rr, _ := strconv.Atoi(m[4])

		if rd >= registers.NumRegisters || rr >= registers.NumRegisters {
			return nil, fmt.Errorf("fixtures: %w: line %d: register out of range", MalformedLine, lineNum)
		}

		l.append(Fixture{Raw: uint16(b1)<<8 | uint16(b2), Rd: rd, Rr: rr})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}

	return l, nil
}
