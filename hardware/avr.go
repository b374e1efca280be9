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

package hardware

import (
	"github.com/jetsetilly/gopheravr/hardware/clocks"
	"github.com/jetsetilly/gopheravr/hardware/cpu"
	"github.com/jetsetilly/gopheravr/hardware/instance"
	"github.com/jetsetilly/gopheravr/hardware/memory/flash"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
)

// AVR struct is the main container for the emulated components of the AVR.
type AVR struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	Flash *flash.Flash

	// clock speed in MHz
	Clock float64
}

// NewAVR creates a new AVR and everything associated with the hardware. The
// prefs argument can be nil, in which case preferences are created from the
// environment and the command line.
func NewAVR(prefs *preferences.Preferences) (*AVR, error) {
	ins, err := instance.NewInstance(nil, prefs)
	if err != nil {
		return nil, err
	}

	avr := &AVR{
		Instance: ins,
		Flash:    flash.NewFlash(flash.DefaultSize),
		Clock:    clocks.Crystal,
	}

	avr.CPU = cpu.NewCPU(ins, avr.Flash)
	ins.Random.Plumb(avr.CPU)

	return avr, nil
}

// AttachProgram erases program memory, loads the program at the origin and
// resets the CPU.
func (avr *AVR) AttachProgram(origin uint32, words []uint16) error {
	avr.Flash.Clear()
	err := avr.Flash.Load(origin, words)
	if err != nil {
		return err
	}
	avr.Reset()
	return nil
}

// Reset the CPU. Program memory is unchanged.
func (avr *AVR) Reset() {
	avr.CPU.Reset()
}

// Elapsed returns the number of seconds of emulated time since the last reset.
func (avr *AVR) Elapsed() float64 {
	return clocks.Duration(avr.CPU.CycleCount(), avr.Clock)
}
