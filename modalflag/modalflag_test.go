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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopheravr/modalflag"
	"github.com/jetsetilly/gopheravr/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"sweep", "-workers", "4", "eor"})
	md.AddSubMode("RUN", "execute a program")
	md.AddSubMode("SWEEP", "verify an operator")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "SWEEP")

	md.NewMode()
	workers := md.AddInt("workers", 0, "number of workers")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *workers, 4)
	test.ExpectEquality(t, md.GetArg(0), "eor")
	test.ExpectEquality(t, md.Path(), "SWEEP")
}

func TestDefaultMode(t *testing.T) {
	// a mode's flags given without the mode name select the default mode
	md := modalflag.Modes{}
	md.NewArgs([]string{"-dump", "program.hex"})
	md.AddSubMode("RUN", "execute a program")
	md.AddSubMode("DISASM", "disassemble a program")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	dump := md.AddBool("dump", false, "dump state")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, *dump)
	test.ExpectEquality(t, md.GetArg(0), "program.hex")

	// an argument that isn't a mode name also selects the default mode and is
	// left for the next parse
	md.NewArgs([]string{"program.hex"})
	md.AddSubMode("RUN", "execute a program")
	md.AddSubMode("DISASM", "disassemble a program")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	md.NewMode()
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "program.hex")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"fixture", "parse", "eor.lst"})
	md.AddSubMode("RUN", "")
	md.AddSubMode("FIXTURE", "")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	md.NewMode()
	md.AddSubMode("GENERATE", "")
	md.AddSubMode("PARSE", "")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PARSE")
	test.ExpectEquality(t, md.Path(), "FIXTURE/PARSE")
	test.ExpectEquality(t, md.String(), "FIXTURE/PARSE")

	md.NewMode()
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.GetArg(0), "eor.lst")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("no help available\n"))
}

func TestHelp(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubMode("RUN", "execute a program")
	md.AddSubMode("STEP", "step through a program")
	md.AdditionalHelp("more help")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"  modes:\n" +
		"    RUN   execute a program (default)\n" +
		"    STEP  step through a program\n" +
		"\n" +
		"more help\n"

	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpSubMode(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"step", "-help"})
	md.AddSubMode("RUN", "")
	md.AddSubMode("STEP", "")
	_, _ = md.Parse()

	md.NewMode()
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "no help available for STEP mode"))
}
