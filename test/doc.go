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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure with t.Errorf() and allow the
// test to continue. The Demand*() functions stop the test with t.Fatalf().
//
// The ExpectSuccess() and ExpectFailure() functions accept values of type bool
// or error. For a bool, success is true. For an error, success is nil.
//
// Each function accepts optional tags which are prepended to the failure
// message. This is useful when testing inside a loop:
//
//	for i := range 32 {
//		test.ExpectEquality(t, v[i], expected[i], "register", i)
//	}
package test
