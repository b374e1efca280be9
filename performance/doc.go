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

// Package performance measures the speed of the emulation.
//
// Check() runs the program attached to an AVR for a fixed duration of time
// and reports the effective clock speed of the emulation, as compared to the
// clock speed of the AVR. It will optionally generate profiling information.
//
// RunProfiler() can be used to generate profiles for any function. On its own
// it will not limit the amount of time the function runs for.
package performance
