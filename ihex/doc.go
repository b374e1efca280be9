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

// Package ihex reads and writes program images in the Intel HEX format. This
// is the format produced by AVR toolchains for programming flash.
//
// Each line of a file is a record. A record starts with a colon and is followed
// by pairs of hex digits: the byte count, a 16 bit address, the record type,
// the data and a checksum. The checksum is the two's complement of the sum of
// all other bytes in the record.
//
// Data records are placed in the image at the record address plus the base
// address set by the most recent extended segment or extended linear address
// record. Bytes in the image that are not covered by a data record have the
// value 0xff, which is the value of erased flash.
//
// Program memory is word addressed and the words of an AVR program are stored
// low byte first. The Words() function of the Image type converts the byte
// image into the form required by the flash package.
package ihex
