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

// Package digest produces fingerprints of emulation output. Two runs of the
// same program from the same starting state produce the same fingerprint.
//
// The Trace type fingerprints the execution of a program. The fingerprint is
// chained: each executed instruction is hashed together with the fingerprint
// of everything that came before it.
package digest

// Digest implementations compute a fingerprint of emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
