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

// Package stepper steps through an AVR program one instruction at a time,
// with a single key press for each command.
//
// Key presses are read from a KeySource. The Terminal type is a KeySource that
// reads from a posix terminal in cbreak mode, so that keys are seen as soon as
// they are pressed without waiting for the return key.
//
// The commands are:
//
//	space, return, s     step one instruction
//	c                    continue for a short burst of instructions
//	r                    print registers
//	d                    dump the CPU state
//	q, ctrl-c            quit
package stepper
