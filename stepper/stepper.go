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

package stepper

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopheravr/hardware"
)

// KeySource is anything that can supply single key presses.
type KeySource interface {
	ReadKey() (byte, error)
}

// the number of instructions executed by the continue command
const burst = hardware.PerformanceBrake

// Stepper steps through the program attached to an AVR.
type Stepper struct {
	avr    *hardware.AVR
	keys   KeySource
	output io.Writer
}

// NewStepper is the preferred method of initialisation for the Stepper type.
func NewStepper(avr *hardware.AVR, keys KeySource, output io.Writer) *Stepper {
	return &Stepper{
		avr:    avr,
		keys:   keys,
		output: output,
	}
}

func (stp *Stepper) prompt() {
	fmt.Fprintf(stp.output, "%s > ", stp.avr.CPU)
}

func (stp *Stepper) step() error {
	res, err := stp.avr.Step()
	fmt.Fprintf(stp.output, "%s\n", res)
	return err
}

// Run reads keys until the quit command or the end of input. An error is
// returned if the CPU halts.
func (stp *Stepper) Run() error {
	for {
		stp.prompt()

		k, err := stp.keys.ReadKey()
		if err != nil {
			fmt.Fprintln(stp.output)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("stepper: %w", err)
		}

		switch k {
		case KeySpace, KeyCarriageReturn, KeyLineFeed, 's':
			if err := stp.step(); err != nil {
				return err
			}

		case 'c':
			fmt.Fprintln(stp.output)
			err := stp.avr.RunForInstructionCount(burst, nil)
			fmt.Fprintf(stp.output, "%s\n", stp.avr.CPU.LastResult)
			if err != nil {
				return err
			}

		case 'r':
			fmt.Fprintln(stp.output)
			fmt.Fprintln(stp.output, stp.avr.CPU.Regs)

		case 'd':
			fmt.Fprintln(stp.output)
			stp.avr.CPU.Dump(stp.output)

		case 'q', KeyInterrupt, KeyEndOfFile:
			fmt.Fprintln(stp.output)
			return nil

		default:
			fmt.Fprintf(stp.output, "\nunknown command (%q)\n", k)
		}
	}
}
