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

package sweep

import (
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
	"github.com/jetsetilly/gopheravr/random"
	"github.com/jetsetilly/gopheravr/test"
)

func TestRandomiseRepeatable(t *testing.T) {
	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true

	rf := registers.NewFile()
	sr := randomise(rf, rnd, pair{rd: 3, rr: 20})
	want := rf.Snapshot()

	// other pairs randomised in between, as happens with many workers
	other := registers.NewFile()
	for rd := 0; rd < registers.NumRegisters; rd++ {
		randomise(other, rnd, pair{rd: rd, rr: 0})
	}

	rf.Reset()
	test.ExpectEquality(t, randomise(rf, rnd, pair{rd: 3, rr: 20}), sr)
	test.ExpectEquality(t, rf.Snapshot(), want)

	// different pairs see different values
	randomise(other, rnd, pair{rd: 20, rr: 3})
	test.ExpectInequality(t, other.Snapshot(), want)
}
