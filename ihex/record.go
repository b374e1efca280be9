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

package ihex

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// RecordType identifies the type of an Intel HEX record.
type RecordType uint8

// List of valid RecordType values.
const (
	Data                   RecordType = 0x00
	EndOfFile              RecordType = 0x01
	ExtendedSegmentAddress RecordType = 0x02
	StartSegmentAddress    RecordType = 0x03
	ExtendedLinearAddress  RecordType = 0x04
	StartLinearAddress     RecordType = 0x05
)

func (t RecordType) String() string {
	switch t {
	case Data:
		return "data"
	case EndOfFile:
		return "end of file"
	case ExtendedSegmentAddress:
		return "extended segment address"
	case StartSegmentAddress:
		return "start segment address"
	case ExtendedLinearAddress:
		return "extended linear address"
	case StartLinearAddress:
		return "start linear address"
	}
	return fmt.Sprintf("unknown record type (%#02x)", uint8(t))
}

// Sentinel errors returned by ParseRecord().
var (
	MalformedRecord = errors.New("malformed record")
	ChecksumError   = errors.New("checksum mismatch")
)

// Record is a single line of an Intel HEX file.
type Record struct {
	Type    RecordType
	Address uint16
	Data    []byte
}

// checksum of the record. the two's complement of the sum of all the bytes
// in the record
func (r Record) checksum() uint8 {
	sum := uint8(len(r.Data)) + uint8(r.Address>>8) + uint8(r.Address) + uint8(r.Type)
	for _, b := range r.Data {
		sum += b
	}
	return -sum
}

// String returns the record as it would appear in a file.
func (r Record) String() string {
	return fmt.Sprintf(":%02X%04X%02X%s%02X", len(r.Data), r.Address, uint8(r.Type),
		strings.ToUpper(hex.EncodeToString(r.Data)), r.checksum())
}

// ParseRecord parses a single line of an Intel HEX file. Leading and trailing
// whitespace is ignored.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimSpace(line)

	if !strings.HasPrefix(line, ":") {
		return Record{}, fmt.Errorf("ihex: %w: missing start code", MalformedRecord)
	}

	b, err := hex.DecodeString(line[1:])
	if err != nil {
		return Record{}, fmt.Errorf("ihex: %w: %v", MalformedRecord, err)
	}

	// byte count, address (two bytes), record type and checksum
	if len(b) < 5 {
		return Record{}, fmt.Errorf("ihex: %w: record too short", MalformedRecord)
	}

	n := int(b[0])
	if len(b) != n+5 {
		return Record{}, fmt.Errorf("ihex: %w: byte count is %d but record has %d data bytes", MalformedRecord, n, len(b)-5)
	}

	r := Record{
		Address: uint16(b[1])<<8 | uint16(b[2]),
		Type:    RecordType(b[3]),
		Data:    b[4 : 4+n],
	}

	if cs := b[len(b)-1]; cs != r.checksum() {
		return Record{}, fmt.Errorf("ihex: %w: %#02x instead of %#02x", ChecksumError, cs, r.checksum())
	}

	if r.Type > StartLinearAddress {
		return Record{}, fmt.Errorf("ihex: %w: %v", MalformedRecord, r.Type)
	}

	// the address records have a fixed amount of data
	var expect int
	switch r.Type {
	case EndOfFile:
		expect = 0
	case ExtendedSegmentAddress, ExtendedLinearAddress:
		expect = 2
	case StartSegmentAddress, StartLinearAddress:
		expect = 4
	default:
		expect = -1
	}
	if expect >= 0 && n != expect {
		return Record{}, fmt.Errorf("ihex: %w: %v record with %d data bytes", MalformedRecord, r.Type, n)
	}

	return r, nil
}
