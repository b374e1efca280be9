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

package flash_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/memory/flash"
	"github.com/jetsetilly/gopheravr/hardware/memory/progbus"
	"github.com/jetsetilly/gopheravr/test"
)

func TestFlash(t *testing.T) {
	fl := flash.NewFlash(0)
	test.ExpectEquality(t, fl.Size(), flash.DefaultSize)
	test.ExpectEquality(t, fl.Used(), 0)

	w, err := fl.Read(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, 0xffff)

	test.DemandSuccess(t, fl.Load(2, []uint16{0x2634, 0x0000}))
	test.ExpectEquality(t, fl.Used(), 4)

	w, err = fl.Read(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, 0x2634)
	test.ExpectEquality(t, fl.String(), "000000 | ffff ffff 2634 0000")

	fl.Clear()
	test.ExpectEquality(t, fl.Used(), 0)
}

func TestFlashLimits(t *testing.T) {
	fl := flash.NewFlash(4)

	_, err := fl.Read(4)
	test.ExpectSuccess(t, errors.Is(err, progbus.AddressError))

	test.ExpectFailure(t, fl.Load(3, []uint16{1, 2}))
	test.ExpectSuccess(t, fl.Load(2, []uint16{1, 2}))
}
