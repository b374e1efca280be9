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
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
	"github.com/jetsetilly/gopheravr/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "R7")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, r.IsNegative())
	test.ExpectEquality(t, r.Label(), "R7")

	r.Load(0x81)
	test.ExpectEquality(t, r.Value(), 0x81)
	test.ExpectFailure(t, r.IsZero())
	test.ExpectSuccess(t, r.IsNegative())
	test.ExpectSuccess(t, r.Bit(0))
	test.ExpectFailure(t, r.Bit(1))
	test.ExpectSuccess(t, r.Bit(7))
	test.ExpectEquality(t, r.String(), "R7=0x81")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 129)
	pc.Add(-130)
	test.ExpectEquality(t, pc.Address(), 0x3fffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), 0)
	test.ExpectEquality(t, pc.String(), "0x0000")
}
