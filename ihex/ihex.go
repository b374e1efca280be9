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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// the largest image accepted. twice the size of the 22 bit word address
// space
const maxImage = 1 << 23

// Image is the program image described by an Intel HEX file.
type Image struct {
	// bytes from address zero to the highest address written by a data
	// record
	Bytes []byte

	// the start address from a start segment or start linear address
	// record. zero if there was no such record
	Start uint32
}

func (img *Image) write(address uint32, data []byte) error {
	// the extended linear address can place data at the very top of the 32bit
	// address space so the end of the data is calculated in 64bits
	end := uint64(address) + uint64(len(data))
	if end > maxImage {
		return fmt.Errorf("ihex: data at %#x exceeds maximum image size", address)
	}
	for uint64(len(img.Bytes)) < end {
		img.Bytes = append(img.Bytes, 0xff)
	}
	copy(img.Bytes[address:], data)
	return nil
}

// Read an Intel HEX file. Reading stops at the end of file record. Blank lines
// are ignored. A file without an end of file record is accepted.
func Read(r io.Reader) (*Image, error) {
	img := &Image{}

	var base uint32

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		switch rec.Type {
		case Data:
			err = img.write(base+uint32(rec.Address), rec.Data)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
		case EndOfFile:
			return img, nil
		case ExtendedSegmentAddress:
			base = (uint32(rec.Data[0])<<8 | uint32(rec.Data[1])) << 4
		case ExtendedLinearAddress:
			base = (uint32(rec.Data[0])<<8 | uint32(rec.Data[1])) << 16
		case StartSegmentAddress, StartLinearAddress:
			img.Start = uint32(rec.Data[0])<<24 | uint32(rec.Data[1])<<16 | uint32(rec.Data[2])<<8 | uint32(rec.Data[3])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ihex: %w", err)
	}

	return img, nil
}

// Words returns the image as 16 bit program words. Words are stored low byte
// first. An image with an odd number of bytes is padded with 0xff.
func (img *Image) Words() []uint16 {
	words := make([]uint16, (len(img.Bytes)+1)/2)
	for i := range words {
		lo := img.Bytes[i*2]
		hi := uint8(0xff)
		if i*2+1 < len(img.Bytes) {
			hi = img.Bytes[i*2+1]
		}
		words[i] = uint16(hi)<<8 | uint16(lo)
	}
	return words
}

// the number of data bytes in each data record written by Write()
const recordLength = 16

// Write program words as an Intel HEX file, starting at the word address
// origin. Extended linear address records are written when the data crosses a
// 64KB boundary.
func Write(w io.Writer, origin uint32, words []uint16) error {
	data := make([]byte, 0, len(words)*2)
	for _, v := range words {
		data = append(data, uint8(v), uint8(v>>8))
	}

	address := origin * 2
	var base uint32

	for len(data) > 0 {
		if address&0xffff0000 != base {
			base = address & 0xffff0000
			rec := Record{Type: ExtendedLinearAddress, Data: []byte{uint8(base >> 24), uint8(base >> 16)}}
			if _, err := fmt.Fprintln(w, rec); err != nil {
				return err
			}
		}

		// records do not cross a 64KB boundary
		n := recordLength
		if n > len(data) {
			n = len(data)
		}
		if rem := int(0x10000 - address&0xffff); n > rem {
			n = rem
		}

		rec := Record{Type: Data, Address: uint16(address), Data: data[:n]}
		if _, err := fmt.Fprintln(w, rec); err != nil {
			return err
		}

		data = data[n:]
		address += uint32(n)
	}

	_, err := fmt.Fprintln(w, Record{Type: EndOfFile})
	return err
}
