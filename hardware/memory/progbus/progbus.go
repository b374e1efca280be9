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

// Package progbus defines the interface between the CPU and program memory.
package progbus

import "errors"

// AddressError is returned when the CPU reads from an address outside of
// program memory.
var AddressError = errors.New("inaccessible program address")

// Memory defines the operations for program memory when accessed from the
// CPU. Program memory is addressed in 16 bit words.
type Memory interface {
	Read(address uint32) (uint16, error)
}

// Loader is implemented by program memory that can be loaded with a program
// image.
type Loader interface {
	Load(origin uint32, words []uint16) error
}

// Sizer is implemented by program memory of a fixed size. Relative jumps wrap
// at the end of memory that implements Sizer.
type Sizer interface {
	Size() int
}

// Relative returns the destination of a relative jump from the instruction at
// address. The destination wraps modulo size. A size of zero means there is no
// wrapping other than that of the uint32 result.
func Relative(address uint32, offset int, size int) uint32 {
	dest := int64(address) + 1 + int64(offset)
	if size <= 0 {
		return uint32(dest)
	}
	s := int64(size)
	return uint32(((dest % s) + s) % s)
}
