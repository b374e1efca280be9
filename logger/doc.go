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

// Package logger is the central log for the application. Log entries are
// tagged with the area of the application that created them, for example
// "CPU", and consecutive identical entries are folded into a single entry with
// a repeat count.
//
// Every log request must be accompanied by a Permission. The Allow value can
// be used when a log entry should always be made.
//
//	logger.Logf(logger.Allow, "CPU", "halted at %#04x", pc)
//
// The log can be echoed to an io.Writer as entries are made. See SetEcho().
package logger
