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

// Package programloader is used to specify and load the program to attach to
// the AVR. Programs can be loaded from the local filesystem or over HTTP.
//
// Two formats are supported. Intel HEX files, as produced by AVR toolchains,
// and raw binary files where each program word is two bytes, low byte first.
// The format is decided by the file extension or, failing that, by the
// content of the file.
package programloader
