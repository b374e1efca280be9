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

package random

import (
	"math/rand"
	"sync"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is implemented by anything that can report the number of cycles
// consumed by the emulation.
type Clock interface {
	CycleCount() uint64
}

// Random is a random number generator that can be sensitive to time within
// the emulation.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed
	ZeroSeed bool

	crit sync.Mutex
	src  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clk argument can be nil, in which case the cycle count is always zero.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

// Plumb a new Clock into the random number generator.
func (rnd *Random) Plumb(clk Clock) {
	rnd.clk = clk
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

func (rnd *Random) cycles() int64 {
	if rnd.clk == nil {
		return 0
	}
	return int64(rnd.clk.CycleCount())
}

// Keyed returns a random source whose sequence depends only on the seed and
// the key. Sources returned for the same key produce the same sequence
// regardless of what other random numbers have been taken in the meantime.
func (rnd *Random) Keyed(key int64) *rand.Rand {
	return rand.New(rand.NewSource(rnd.seed() + key))
}

// Repeatable returns a random number in the range 0 to n-1 that depends only
// on the seed and the current cycle count.
func (rnd *Random) Repeatable(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + rnd.cycles())).Intn(n)
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()

	if rnd.src == nil {
		rnd.src = rand.New(rand.NewSource(rnd.seed()))
	}
	return rnd.src.Intn(n)
}

// Uint8 returns a random 8 bit value.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.Intn(0x100))
}
