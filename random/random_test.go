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

package random_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopheravr/random"
	"github.com/jetsetilly/gopheravr/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) CycleCount() uint64 {
	return c.cycles
}

func TestRepeatable(t *testing.T) {
	clk := &clock{cycles: 1000}
	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Repeatable(i), b.Repeatable(i))
	}

	// same cycle count, same number
	v := a.Repeatable(1 << 30)
	test.ExpectEquality(t, a.Repeatable(1<<30), v)
}

func TestIntn(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestConcurrent(t *testing.T) {
	rnd := random.NewRandom(nil)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				v := rnd.Intn(10)
				if v < 0 || v >= 10 {
					t.Errorf("out of range: %d", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestKeyed(t *testing.T) {
	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true

	a := rnd.Keyed(10)
	var seq []int
	for i := 0; i < 10; i++ {
		seq = append(seq, a.Intn(256))
	}

	// taking numbers from other sources does not change the sequence
	_ = rnd.Intn(256)
	_ = rnd.Keyed(11).Intn(256)

	b := rnd.Keyed(10)
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, b.Intn(256), seq[i], i)
	}
}
