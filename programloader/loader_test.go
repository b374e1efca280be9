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

package programloader_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jetsetilly/gopheravr/programloader"
	"github.com/jetsetilly/gopheravr/test"
)

func TestNewLoader(t *testing.T) {
	ld := programloader.NewLoader("testdata/eor.hex", "")
	test.ExpectEquality(t, ld.Format, programloader.FormatHex)
	test.ExpectEquality(t, ld.ShortName(), "eor")

	ld = programloader.NewLoader("program.BIN", "auto")
	test.ExpectEquality(t, ld.Format, programloader.FormatBin)

	ld = programloader.NewLoader("program.dat", "")
	test.ExpectEquality(t, ld.Format, programloader.FormatAuto)

	ld = programloader.NewLoader("program.dat", "hex")
	test.ExpectEquality(t, ld.Format, programloader.FormatHex)
}

func TestLoadHex(t *testing.T) {
	ld := programloader.NewLoader("testdata/eor.hex", "")
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.DemandEquality(t, len(ld.Words), 1)
	test.ExpectEquality(t, ld.Words[0], uint16(0x2634))

	// loading again with the correct hash succeeds
	test.ExpectSuccess(t, ld.Load())

	ld.Hash = "0000"
	test.ExpectFailure(t, ld.Load())
}

func TestLoadBin(t *testing.T) {
	ld := programloader.NewLoader("testdata/loop.bin", "")
	test.DemandSuccess(t, ld.Load())
	test.DemandEquality(t, len(ld.Words), 2)
	test.ExpectEquality(t, ld.Words[0], uint16(0x2634))
	test.ExpectEquality(t, ld.Words[1], uint16(0xcfff))
}

func TestAutoDetect(t *testing.T) {
	ld := programloader.NewLoader("program.dat", "")
	ld.Data = []byte("\n:020000003426A4\n:00000001FF\n")
	test.DemandSuccess(t, ld.Load())
	test.DemandEquality(t, len(ld.Words), 1)
	test.ExpectEquality(t, ld.Words[0], uint16(0x2634))
}

func TestLoadErrors(t *testing.T) {
	ld := programloader.NewLoader("testdata/missing.hex", "")
	test.ExpectFailure(t, ld.Load())

	ld = programloader.NewLoader("ftp://example.com/program.hex", "")
	test.ExpectFailure(t, ld.Load())

	ld = programloader.NewLoader("program.elf", "elf")
	ld.Data = []byte{0x7f, 'E', 'L', 'F'}
	test.ExpectFailure(t, ld.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(":020000003426A4\n:00000001FF\n"))
	}))
	defer srv.Close()

	ld := programloader.NewLoader(srv.URL+"/eor.hex", "")
	test.DemandSuccess(t, ld.Load())
	test.DemandEquality(t, len(ld.Words), 1)
	test.ExpectEquality(t, ld.Words[0], uint16(0x2634))
}
