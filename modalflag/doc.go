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

// Package modalflag handles command lines made up of modes, where each mode
// has its own flags. It is built on the flag package of the standard library.
//
// A Modes value is initialised with the arguments with NewArgs(). Flags and
// sub-modes for the top level are added and then Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("RUN", "execute a program")
//	md.AddSubMode("DISASM", "disassemble a program")
//	r, err := md.Parse()
//
// After parsing, Mode() returns the selected mode. Mode names are case
// insensitive on the command line and always upper case when returned. The
// first sub-mode added is the default and is selected if the next argument
// is not a mode name.
//
// Flags for the selected mode are added after a call to NewMode() and are
// parsed with another call to Parse(). Arguments remaining after the flags
// are returned by RemainingArgs():
//
//	md.NewMode()
//	dump := md.AddBool("dump", false, "dump state on exit")
//	r, err = md.Parse()
//	...
//	filename := md.GetArg(0)
//
// If flags are found that are not recognised and sub-modes have been added then
// the default mode is selected and the flags are left for the next call to
// Parse(). This allows the flags of the default mode to be given without
// naming the mode.
//
// The -help flag is handled by Parse(). Help is written to the Output field
// and ParseHelp is returned.
package modalflag
