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

package modalflag

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const modeSeparator = "/"

type subMode struct {
	name        string
	description string
}

// Modes handles the modes and flags of a command line. The Output field
// should be set before calling Parse() or help messages will not be seen.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// recreated on every call to NewMode()
	flags *flag.FlagSet

	// the argument list given to NewArgs() and the index of the next
	// argument to be parsed
	args    []string
	argsIdx int

	// sub-modes added since the most recent call to NewMode(). the first
	// entry is the default
	subModes []subMode

	// the series of modes selected by calls to Parse(). never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs sets the arguments to be parsed and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode. Flags and sub-modes from the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.Usage = func() {}
}

// AdditionalHelp adds text to the help message of the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubMode adds a sub-mode to the current mode. The first sub-mode added is
// the default.
func (md *Modes) AddSubMode(name string, description string) {
	md.subModes = append(md.subModes, subMode{
		name:        strings.ToUpper(name),
		description: description,
	})
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added then
	// Mode() returns the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error returned alongside should be shown to the user
	ParseError
)

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	// the flag package writes the error message as well as returning it. we
	// only want the returned error
	md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.help()
			return ParseHelp, nil
		}

		// unrecognised flags belong to the default mode
		if len(md.subModes) == 0 {
			return ParseError, fmt.Errorf("%s: %w", md.banner(), err)
		}
		md.path = append(md.path, md.subModes[0].name)
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	// flags for this level have been consumed
	md.argsIdx = len(md.args) - md.flags.NArg()

	mode := md.subModes[0].name
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m.name == arg {
			mode = m.name
			md.argsIdx++
			break // for loop
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the flags of the current mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddValue adds a flag of any type implementing the flag.Value interface.
func (md *Modes) AddValue(value flag.Value, name string, usage string) {
	md.flags.Var(value, name, usage)
}

// Visit calls fn for every flag that was set on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

func (md *Modes) banner() string {
	if len(md.path) == 0 {
		return "usage"
	}
	return fmt.Sprintf("usage of %s mode", md.Path())
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var flags bytes.Buffer
	md.flags.SetOutput(&flags)
	md.flags.PrintDefaults()

	if flags.Len() == 0 && len(md.subModes) == 0 && md.additionalHelp == "" {
		if len(md.path) == 0 {
			fmt.Fprintln(md.Output, "no help available")
		} else {
			fmt.Fprintf(md.Output, "no help available for %s mode\n", md.Path())
		}
		return
	}

	fmt.Fprintf(md.Output, "%s:\n", md.banner())
	_, _ = flags.WriteTo(md.Output)

	if len(md.subModes) > 0 {
		fmt.Fprintln(md.Output, "  modes:")
		tw := tabwriter.NewWriter(md.Output, 0, 0, 2, ' ', 0)
		for i, m := range md.subModes {
			d := m.description
			if i == 0 {
				d = fmt.Sprintf("%s (default)", d)
			}
			fmt.Fprintf(tw, "    %s\t%s\n", m.name, d)
		}
		_ = tw.Flush()
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
