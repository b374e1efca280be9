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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/xyproto/env/v2"

	"github.com/jetsetilly/gopheravr/digest"
	"github.com/jetsetilly/gopheravr/disassembly"
	"github.com/jetsetilly/gopheravr/fixtures"
	"github.com/jetsetilly/gopheravr/hardware"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/memory/flash"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/logger"
	"github.com/jetsetilly/gopheravr/modalflag"
	"github.com/jetsetilly/gopheravr/performance"
	"github.com/jetsetilly/gopheravr/prefs"
	"github.com/jetsetilly/gopheravr/programloader"
	"github.com/jetsetilly/gopheravr/statsview"
	"github.com/jetsetilly/gopheravr/stepper"
	"github.com/jetsetilly/gopheravr/sweep"
	"github.com/jetsetilly/gopheravr/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// #ctrlc cancels the context. modes that run for a long time check the
	// context regularly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(launch(ctx, os.Args[1:]))
}

func launch(ctx context.Context, args []string) int {
	env.Load()
	if env.Bool("GOPHERAVR_LOGECHO") {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
	}

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubMode("RUN", "run a program until it halts")
	md.AddSubMode("STEP", "step through a program one instruction at a time")
	md.AddSubMode("DISASM", "disassemble a program")
	md.AddSubMode("FIXTURE", "generate and parse two register instruction fixtures")
	md.AddSubMode("SWEEP", "verify a two register instruction for every register pair")
	md.AddSubMode("PERFORMANCE", "measure the speed of the emulation")
	md.AddSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "STEP":
		err = step(md)
	case "DISASM":
		err = disasm(md)
	case "FIXTURE":
		err = fixture(md)
	case "SWEEP":
		err = sweepMode(ctx, md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Println(version.Get())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// operatorFlag implements the flag.Value interface for instruction operators
type operatorFlag struct {
	op instructions.Operator
}

func (f *operatorFlag) String() string {
	return f.op.String()
}

func (f *operatorFlag) Set(s string) error {
	op, ok := instructions.ParseOperator(s)
	if !ok {
		return fmt.Errorf("%w (%s)", instructions.UnknownOperator, s)
	}
	f.op = op
	return nil
}

// loads the program named by the only remaining argument
func loadProgram(md *modalflag.Modes, format string) (programloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return programloader.Loader{}, fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return programloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := programloader.NewLoader(md.GetArg(0), format)
	err := ld.Load()
	return ld, err
}

// creates a new AVR with the preferences string from the command line and
// attaches the program
func newAVR(prefsString string, ld programloader.Loader) (*hardware.AVR, error) {
	if prefsString != "" {
		prefs.PushCommandLineStack(prefsString)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "PREFS", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	avr, err := hardware.NewAVR(p)
	if err != nil {
		return nil, err
	}

	err = avr.AttachProgram(0, ld.Words)
	if err != nil {
		return nil, err
	}

	return avr, nil
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, HEX, BIN")
	prefsString := md.AddString("prefs", "", "preferences string, eg. \"cpu.unimplemented::nop\"")
	count := md.AddInt("count", 0, "maximum number of instructions to execute (0 for no limit)")
	clock := md.AddFloat64("clock", 0, "clock speed in MHz (0 for the default)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	dump := md.AddBool("dump", false, "dump CPU state on exit")
	memvizFile := md.AddString("memviz", "", "write graphviz map of CPU state to file on exit")
	stats := md.AddBool("statsview", false, "run stats server")
	fingerprint := md.AddBool("digest", false, "print a fingerprint of the execution on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	ld, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	avr, err := newAVR(*prefsString, ld)
	if err != nil {
		return err
	}
	if *clock > 0 {
		avr.Clock = *clock
	}

	if *stats {
		srv := statsview.Launch(os.Stdout, "")
		defer srv.Stop()
	}

	var dig *digest.Trace
	if *fingerprint {
		dig = digest.NewTrace()
	}

	// context is checked every PerformanceBrake instructions
	var n int
	err = avr.Run(func() (bool, error) {
		n++
		if dig != nil {
			dig.Update(avr.CPU)
		}
		if *count > 0 && n >= *count {
			return false, nil
		}
		if n%hardware.PerformanceBrake == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		return true, nil
	})

	fmt.Printf("%s after %d instructions (%.6fs at %.1fMHz)\n", avr.CPU, n, avr.Elapsed(), avr.Clock)

	if dig != nil {
		fmt.Printf("digest: %s\n", dig.Hash())
	}

	if *dump {
		avr.CPU.Dump(os.Stdout)
	}

	if *memvizFile != "" {
		f, ferr := os.Create(*memvizFile)
		if ferr != nil {
			return ferr
		}
		state := avr.CPU.State()
		memviz.Map(f, &state)
		if ferr := f.Close(); ferr != nil {
			return ferr
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, HEX, BIN")
	prefsString := md.AddString("prefs", "", "preferences string, eg. \"cpu.unimplemented::nop\"")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	avr, err := newAVR(*prefsString, ld)
	if err != nil {
		return err
	}

	term, err := stepper.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	err = term.CBreakMode()
	if err != nil {
		return err
	}
	defer func() {
		_ = term.CanonicalMode()
	}()

	return stepper.NewStepper(avr, term, term).Run()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, HEX, BIN")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	all := md.AddBool("all", false, "include instructions not reached from the reset vector")
	listing := md.AddBool("listing", false, "write disassembly in toolchain listing format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	fl := flash.NewFlash(flash.DefaultSize)
	err = fl.Load(0, ld.Words)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromMemory(fl, fl.Used())
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		Bytecode:  *bytecode,
		Unblessed: *all,
	}

	if *listing {
		return dsm.WriteListing(md.Output, attr)
	}
	return dsm.Write(md.Output, attr)
}

func fixture(md *modalflag.Modes) error {
	md.NewMode()
	md.AddSubMode("GENERATE", "write assembly source for every register pair")
	md.AddSubMode("PARSE", "parse a disassembly listing and write Go slices")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mode := md.Mode()

	md.NewMode()
	op := &operatorFlag{op: instructions.Eor}
	md.AddValue(op, "op", "two register operator")

	var pkg *string
	if mode == "PARSE" {
		pkg = md.AddString("package", "fixtures", "package name of the generated Go source")
	}

	p, err = md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch mode {
	case "GENERATE":
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("too many arguments for %s mode", md)
		}
		return fixtures.GenerateSource(md.Output, op.op)

	case "PARSE":
		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("disassembly listing required for %s mode", md)
		case 1:
		default:
			return fmt.Errorf("too many arguments for %s mode", md)
		}

		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		l, err := fixtures.ParseListing(f, op.op)
		if err != nil {
			return err
		}

		return fixtures.WriteGoArrays(md.Output, *pkg, l)
	}

	return nil
}

func sweepMode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	workers := md.AddInt("workers", 0, "number of worker goroutines (0 for one per CPU)")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		srv := statsview.Launch(os.Stdout, "")
		defer srv.Stop()
	}

	// every two register operator if none are named
	var ops []instructions.Operator
	if len(md.RemainingArgs()) == 0 {
		for _, defn := range instructions.GetDefinitions() {
			if defn.Layout == instructions.LayoutRdRr {
				ops = append(ops, defn.Operator)
			}
		}
	} else {
		for _, a := range md.RemainingArgs() {
			op, ok := instructions.ParseOperator(a)
			if !ok {
				return fmt.Errorf("%w (%s)", instructions.UnknownOperator, a)
			}
			ops = append(ops, op)
		}
	}

	var failed []string
	for _, op := range ops {
		report, err := sweep.Run(ctx, op, *workers, nil)
		if err != nil {
			return err
		}

		fmt.Fprintln(md.Output, report)
		for _, f := range report.Failures {
			fmt.Fprintf(md.Output, "  %s\n", f)
		}

		if !report.Passed() {
			failed = append(failed, op.String())
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("sweep failed for %s", strings.Join(failed, ", "))
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, HEX, BIN")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "produce profiling reports: NONE, CPU, MEM, ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	ld, err := loadProgram(md, *format)
	if err != nil {
		return err
	}

	avr, err := newAVR("", ld)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, avr, *duration)
}
