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

import "github.com/jetsetilly/gopheravr/hardware/cpu/instructions"

func carry(c bool) uint8 {
	if c {
		return 1
	}
	return 0
}

// the expected result of each two register operator. for compare operators
// this is the result used to compute the flags
var reference = map[instructions.Operator]func(d, r uint8, c bool) uint8{
	instructions.Add: func(d, r uint8, _ bool) uint8 { return d + r },
	instructions.Adc: func(d, r uint8, c bool) uint8 { return d + r + carry(c) },
	instructions.Sub: func(d, r uint8, _ bool) uint8 { return d - r },
	instructions.Sbc: func(d, r uint8, c bool) uint8 { return d - r - carry(c) },
	instructions.And: func(d, r uint8, _ bool) uint8 { return d & r },
	instructions.Eor: func(d, r uint8, _ bool) uint8 { return d ^ r },
	instructions.Or:  func(d, r uint8, _ bool) uint8 { return d | r },
	instructions.Mov: func(_, r uint8, _ bool) uint8 { return r },
	instructions.Cp:  func(d, r uint8, _ bool) uint8 { return d - r },
	instructions.Cpc: func(d, r uint8, c bool) uint8 { return d - r - carry(c) },
}

// operators where the Z flag can only be cleared
var sticky = map[instructions.Operator]bool{
	instructions.Sbc: true,
	instructions.Cpc: true,
}
