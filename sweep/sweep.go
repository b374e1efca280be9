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
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/jetsetilly/gopheravr/fixtures"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/cpu/decode"
	"github.com/jetsetilly/gopheravr/hardware/cpu/flags"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
	"github.com/jetsetilly/gopheravr/logger"
	"github.com/jetsetilly/gopheravr/random"
)

// Failure describes a register pair that failed verification.
type Failure struct {
	Rd     int
	Rr     int
	Word   uint16
	Reason string
}

func (f Failure) String() string {
	return fmt.Sprintf("R%d, R%d (%#04x): %s", f.Rd, f.Rr, f.Word, f.Reason)
}

// Report is the result of a sweep.
type Report struct {
	Operator instructions.Operator

	// number of register pairs checked
	Checked int

	// failures sorted by register pair
	Failures []Failure
}

// Passed returns true if every register pair was checked and none failed.
func (r Report) Passed() bool {
	return r.Checked == fixtures.NumSourceInstructions && len(r.Failures) == 0
}

func (r Report) String() string {
	if r.Passed() {
		return fmt.Sprintf("%s: %d pairs passed", r.Operator, r.Checked)
	}
	return fmt.Sprintf("%s: %d pairs checked, %d failed", r.Operator, r.Checked, len(r.Failures))
}

type pair struct {
	rd, rr int
}

// Run a sweep of the operator. A worker count of zero or less uses one worker
// per CPU. The rnd argument can be nil, in which case a zero seeded random
// source is used.
//
// If the context is cancelled before the sweep completes the error from the
// context is returned along with the partial report.
func Run(ctx context.Context, op instructions.Operator, workers int, rnd *random.Random) (Report, error) {
	report := Report{Operator: op}

	defn, ok := instructions.Lookup(op)
	if !ok {
		return report, fmt.Errorf("sweep: %w (%s)", instructions.UnknownOperator, op)
	}
	if defn.Layout != instructions.LayoutRdRr {
		return report, fmt.Errorf("sweep: %w (%s)", fixtures.NotTwoRegister, op)
	}
	if _, ok := reference[op]; !ok {
		return report, fmt.Errorf("sweep: no reference for %s", op)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if rnd == nil {
		rnd = random.NewRandom(nil)
		rnd.ZeroSeed = true
	}

	pairs := make(chan pair)
	go func() {
		defer close(pairs)
		for rd := 0; rd < registers.NumRegisters; rd++ {
			for rr := 0; rr < registers.NumRegisters; rr++ {
				select {
				case pairs <- pair{rd: rd, rr: rr}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var wg sync.WaitGroup
	var crit sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			rf := registers.NewFile()
			for p := range pairs {
				f := check(op, p, rf, rnd)

				crit.Lock()
				report.Checked++
				if f != nil {
					report.Failures = append(report.Failures, *f)
				}
				crit.Unlock()
			}
		}()
	}

	wg.Wait()

	sort.Slice(report.Failures, func(i, j int) bool {
		a := report.Failures[i]
		b := report.Failures[j]
		return a.Rd*registers.NumRegisters+a.Rr < b.Rd*registers.NumRegisters+b.Rr
	})

	logger.Logf(logger.Allow, "SWEEP", "%s (%d workers)", report, workers)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("sweep: %w", err)
	}

	return report, nil
}

// fill the register file and status register with random values. the values
// depend only on the register pair and the seed of rnd, so a failing pair sees
// the same values however many workers are running
func randomise(rf *registers.File, rnd *random.Random, p pair) registers.StatusRegister {
	src := rnd.Keyed(int64(p.rd*registers.NumRegisters + p.rr))
	for i := 0; i < registers.NumRegisters; i++ {
		_ = rf.Write(i, uint8(src.Intn(0x100)))
	}
	var sr registers.StatusRegister
	sr.FromValue(uint8(src.Intn(0x100)))
	rf.WriteStatus(sr)
	return sr
}

// check a single register pair using the supplied register file. returns nil
// if the pair passes
func check(op instructions.Operator, p pair, rf *registers.File, rnd *random.Random) *Failure {
	fail := func(word uint16, format string, args ...any) *Failure {
		return &Failure{Rd: p.rd, Rr: p.rr, Word: word, Reason: fmt.Sprintf(format, args...)}
	}

	words, err := instructions.Encode(op, p.rd, p.rr)
	if err != nil {
		return fail(0, "encode: %v", err)
	}
	word := words[0]

	ins, err := decode.Decode(word)
	if err != nil {
		return fail(word, "%v", err)
	}
	if ins.Operator() != op || int(ins.Rd) != p.rd || int(ins.Rr) != p.rr {
		return fail(word, "decoded as %s", ins)
	}

	prior := randomise(rf, rnd, p)

	before := rf.Snapshot()

	err = cpu.Execute(ins, rf)
	if err != nil {
		return fail(word, "%v", err)
	}

	after := rf.Snapshot()
	status := rf.ReadStatus()

	d := before[p.rd]
	r := before[p.rr]
	result := reference[op](d, r, prior.Carry)

	defn, _ := instructions.Lookup(op)
	for i := range after {
		if i == p.rd && defn.Effect != instructions.Compare {
			if after[i] != result {
				return fail(word, "R%d is %#02x instead of %#02x", i, after[i], result)
			}
			continue
		}
		if after[i] != before[i] {
			return fail(word, "R%d changed from %#02x to %#02x", i, before[i], after[i])
		}
	}

	mask := flags.Affects(op)
	if status.Value()&^mask != prior.Value()&^mask {
		return fail(word, "unaffected flags changed from %s to %s", prior, status)
	}

	if mask&registers.FlagN == registers.FlagN && status.Negative != (result&0x80 == 0x80) {
		return fail(word, "N flag is %v for result %#02x", status.Negative, result)
	}

	if mask&registers.FlagZ == registers.FlagZ {
		z := result == 0
		if sticky[op] {
			z = z && prior.Zero
		}
		if status.Zero != z {
			return fail(word, "Z flag is %v for result %#02x", status.Zero, result)
		}
	}

	if mask&registers.FlagS == registers.FlagS && status.Sign != (status.Negative != status.Overflow) {
		return fail(word, "S flag is not N xor V (%s)", status)
	}

	return nil
}
