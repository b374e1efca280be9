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

// Package prefs holds live preference values. A preference value can be
// changed at any time, from any goroutine, and the new value is seen the next
// time the value is read.
//
// Preferences are grouped in a Collection under a key. The collection is the
// place where default values and values from the command line are applied:
//
//	var p prefs.Bool
//	c := prefs.NewCollection()
//	c.Add("cpu.randstate", &p)
//	c.ApplyCommandLine()
//
// Values on the command line are specified as a preferences string. See
// PushCommandLineStack() for details.
package prefs
