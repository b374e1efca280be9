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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopheravr/digest"
	"github.com/jetsetilly/gopheravr/hardware"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/test"
)

func trace(t *testing.T, program ...[]int) string {
	t.Helper()

	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.Reset())

	avr, err := hardware.NewAVR(prefs)
	test.DemandSuccess(t, err)

	var words []uint16
	for _, p := range program {
		w, err := instructions.Encode(instructions.Operator(p[0]), p[1:]...)
		test.DemandSuccess(t, err)
		words = append(words, w...)
	}
	test.DemandSuccess(t, avr.AttachProgram(0, words))

	var dig digest.Digest = digest.NewTrace()
	tr := dig.(*digest.Trace)
	err = avr.RunForInstructionCount(len(program), func(_ int) (bool, error) {
		tr.Update(avr.CPU)
		return true, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tr.Count(), len(program))

	return dig.Hash()
}

func TestTrace(t *testing.T) {
	a := trace(t,
		[]int{int(instructions.Ldi), 16, 0x0f},
		[]int{int(instructions.Ldi), 17, 0xf0},
		[]int{int(instructions.Eor), 16, 17},
	)
	b := trace(t,
		[]int{int(instructions.Ldi), 16, 0x0f},
		[]int{int(instructions.Ldi), 17, 0xf0},
		[]int{int(instructions.Eor), 16, 17},
	)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, len(a), 40)

	c := trace(t,
		[]int{int(instructions.Ldi), 16, 0x0f},
		[]int{int(instructions.Ldi), 17, 0xf0},
		[]int{int(instructions.Or), 16, 17},
	)
	test.ExpectInequality(t, a, c)
}

func TestReset(t *testing.T) {
	tr := digest.NewTrace()
	empty := tr.Hash()
	test.ExpectEquality(t, empty, "0000000000000000000000000000000000000000")
	tr.ResetDigest()
	test.ExpectEquality(t, tr.Hash(), empty)
	test.ExpectEquality(t, tr.Count(), 0)
}
