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


package progbus_test

import (
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/memory/progbus"
	"github.com/jetsetilly/gopheravr/test"
)

func TestRelative(t *testing.T) {
	test.ExpectEquality(t, progbus.Relative(10, 5, 100), 16)
	test.ExpectEquality(t, progbus.Relative(99, 0, 100), 0)
	test.ExpectEquality(t, progbus.Relative(0, -2, 100), 99)

	// offsets larger than memory wrap more than once
	test.ExpectEquality(t, progbus.Relative(0, -2046, 3), 1)
	test.ExpectEquality(t, progbus.Relative(0, 2047, 3), 2)
	test.ExpectEquality(t, progbus.Relative(0, -2, 1), 0)

	// no wrapping
	test.ExpectEquality(t, progbus.Relative(10, -5, 0), 6)
}
