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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// There are two functions that return random numbers:
//
// Repeatable() returns numbers based on the current cycle count of the
// emulation. The function will always return the same number for the same
// cycle count and the same base seed.
//
// Intn() returns random numbers regardless of the cycle count. Intn() is safe
// to call from more than one goroutine.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true before the first call to either function. This is useful for
// testing purposes.
package random
