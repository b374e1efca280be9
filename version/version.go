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

// Package version reports the version of the application. The version number
// is set at link time by the makefile. Revision information comes from the
// build information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherAVR"

// set at link time with -ldflags "-X". empty if the project was not built
// with the makefile
var number string

// Info describes the build of the application.
type Info struct {
	// the version number. "unreleased" if there is no version number but
	// there is revision information. "local" if there is neither, which
	// happens with "go run ."
	Version string

	// the vcs revision. suffixed with "+dirty" if the source had been
	// modified but not committed
	Revision string

	// true if this is a numbered release
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

var info Info

// Get returns the version information.
func Get() Info {
	return info
}

func init() {
	info = fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(bi *debug.BuildInfo, ok bool) Info {
	var vcs bool
	var revision string
	var modified bool

	if ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := Info{}

	if revision == "" {
		inf.Revision = "no revision information"
	} else {
		inf.Revision = revision
		if modified {
			inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
		}
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
