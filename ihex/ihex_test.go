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

package ihex_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheravr/ihex"
	"github.com/jetsetilly/gopheravr/test"
)

func TestParseRecord(t *testing.T) {
	r, err := ihex.ParseRecord(":020000003426A4")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Type, ihex.Data)
	test.ExpectEquality(t, r.Address, uint16(0))
	test.ExpectEquality(t, len(r.Data), 2)
	test.ExpectEquality(t, r.Data[0], uint8(0x34))
	test.ExpectEquality(t, r.Data[1], uint8(0x26))
	test.ExpectEquality(t, r.String(), ":020000003426A4")

	// lower case and surrounding whitespace
	r, err = ihex.ParseRecord("  :00000001ff\r\n")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Type, ihex.EndOfFile)
}

func TestChecksum(t *testing.T) {
	_, err := ihex.ParseRecord(":020000003426A5")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, ihex.ChecksumError))
}

func TestMalformed(t *testing.T) {
	for _, s := range []string{
		"020000003426A4",
		":0200",
		":02000000342GA4",
		":030000003426A3",
		":0200000100FFFE",
		":00000006FA",
	} {
		_, err := ihex.ParseRecord(s)
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, errors.Is(err, ihex.MalformedRecord))
	}
}

func TestRead(t *testing.T) {
	const program = `
:020000003426A4
:02000400FFCF2C
:00000001FF
:0200000011EE00
`
	img, err := ihex.Read(strings.NewReader(program))
	test.DemandSuccess(t, err)

	// gap between the two data records is erased flash
	test.ExpectEquality(t, len(img.Bytes), 6)
	test.ExpectEquality(t, img.Bytes[2], uint8(0xff))

	words := img.Words()
	test.DemandEquality(t, len(words), 3)
	test.ExpectEquality(t, words[0], uint16(0x2634))
	test.ExpectEquality(t, words[1], uint16(0xffff))
	test.ExpectEquality(t, words[2], uint16(0xcfff))
}

func TestReadError(t *testing.T) {
	_, err := ihex.Read(strings.NewReader(":020000003426A4\n:020000003426A5\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, ihex.ChecksumError))
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "line 2:"))
}

func TestImageLimit(t *testing.T) {
	// data at the top of the 32bit address space
	_, err := ihex.Read(strings.NewReader(":02000004FFFFFC\n:02FFFF000102FD\n:00000001FF\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "line 2:"))

	// data straddling the maximum image size
	_, err = ihex.Read(strings.NewReader(":0200000400807A\n:02FFFF000102FD\n"))
	test.ExpectFailure(t, err)
}

func TestExtendedLinear(t *testing.T) {
	img, err := ihex.Read(strings.NewReader(":020000040001F9\n:020000003426A4\n:00000001FF\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(img.Bytes), 0x10002)
	test.ExpectEquality(t, img.Words()[0x8000], uint16(0x2634))
}

func TestWrite(t *testing.T) {
	w := &strings.Builder{}
	err := ihex.Write(w, 0, []uint16{0x2634})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.String(), ":020000003426A4\n:00000001FF\n")

	// words spanning a 64KB boundary
	words := make([]uint16, 40)
	for i := range words {
		words[i] = uint16(i)
	}
	w.Reset()
	err = ihex.Write(w, 0x7ff0, words)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), ":020000040001F9\n"))

	img, err := ihex.Read(strings.NewReader(w.String()))
	test.DemandSuccess(t, err)
	got := img.Words()[0x7ff0:]
	test.DemandEquality(t, len(got), len(words))
	for i := range words {
		test.ExpectEquality(t, got[i], words[i])
	}
}
