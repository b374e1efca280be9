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

// Package flags computes the status register after an ALU operation. The
// computation is a pure function of the operator, the operands, the result
// and the status register before the operation.
//
// Every operator that affects the status register has an entry in a policy
// table. The entry names the flags the operator affects and the function that
// computes them. The computed flags are merged into the prior status register
// under the mask of affected flags, so flags that an operator does not affect
// always keep their prior value.
package flags
