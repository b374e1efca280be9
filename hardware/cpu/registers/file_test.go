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

package registers_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
	"github.com/jetsetilly/gopheravr/test"
)

func TestFileReadWrite(t *testing.T) {
	rf := registers.NewFile()

	for i := 0; i < registers.NumRegisters; i++ {
		test.DemandSuccess(t, rf.Write(i, uint8(i*3)))
	}

	// every register is a distinct cell
	for i := 0; i < registers.NumRegisters; i++ {
		v, err := rf.Read(i)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, uint8(i*3), i)
	}

	r, err := rf.Register(20)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Label(), "R20")
	test.ExpectEquality(t, r.Value(), 60)

	rf.Reset()
	test.ExpectEquality(t, rf.Snapshot(), [registers.NumRegisters]uint8{})
}

func TestFileIndexError(t *testing.T) {
	rf := registers.NewFile()

	for _, idx := range []int{-1, 32, 100} {
		_, err := rf.Read(idx)
		var ie *registers.IndexError
		test.ExpectSuccess(t, errors.As(err, &ie), idx)
		test.ExpectEquality(t, ie.Index, idx)

		err = rf.Write(idx, 0)
		test.ExpectSuccess(t, errors.As(err, &ie), idx)
	}

	// nothing was written
	test.ExpectEquality(t, rf.Snapshot(), [registers.NumRegisters]uint8{})
}

func TestFileStatus(t *testing.T) {
	rf := registers.NewFile()
	test.ExpectEquality(t, rf.ReadStatus().Value(), 0)

	var sr registers.StatusRegister
	sr.Zero = true
	sr.Carry = true
	rf.WriteStatus(sr)
	test.ExpectEquality(t, rf.ReadStatus(), sr)

	// ReadStatus returns a copy
	c := rf.ReadStatus()
	c.Negative = true
	test.ExpectFailure(t, rf.ReadStatus().Negative)
}

func TestYPointer(t *testing.T) {
	rf := registers.NewFile()
	test.DemandSuccess(t, rf.Write(28, 0x34))
	test.DemandSuccess(t, rf.Write(29, 0x12))
	test.ExpectEquality(t, rf.Y(), 0x1234)
}
