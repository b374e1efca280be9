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

package cpu

import (
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/jetsetilly/gopheravr/hardware/cpu/decode"
	"github.com/jetsetilly/gopheravr/hardware/cpu/execution"
	"github.com/jetsetilly/gopheravr/hardware/cpu/instructions"
	"github.com/jetsetilly/gopheravr/hardware/cpu/registers"
	"github.com/jetsetilly/gopheravr/hardware/instance"
	"github.com/jetsetilly/gopheravr/hardware/memory/progbus"
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/logger"
)

// Halted is returned by ExecuteInstruction() when the CPU has been halted.
var Halted = errors.New("cpu: halted")

// CPU implements the instruction core of the AVR. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC   registers.ProgramCounter
	Regs *registers.File

	mem progbus.Memory

	// last result. the address field is the word address of the instruction
	LastResult execution.Result

	// number of cycles consumed since the last reset
	cycles uint64

	// the cpu has stopped because of an error or an unimplemented
	// instruction. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// instance argument can be nil, in which case the CPU is always reset to a
// zero state and unimplemented instructions always halt the CPU.
func NewCPU(instance *instance.Instance, mem progbus.Memory) *CPU {
	mc := &CPU{
		instance: instance,
		mem:      mem,
		PC:       registers.NewProgramCounter(0),
		Regs:     registers.NewFile(),
	}
	mc.Reset()
	return mc
}

// Plumb a new program memory into the CPU.
func (mc *CPU) Plumb(mem progbus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	sr := mc.Regs.ReadStatus()
	return fmt.Sprintf("%s=%s %s=%s", mc.PC.Label(), mc.PC, sr.Label(), sr)
}

// Reset reinitialises all registers. The program counter is always reset to
// zero, which is the reset vector of the AVR.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.cycles = 0
	mc.PC.Load(0)

	mc.Regs.Reset()

	// checking for instance == nil because it's possible for NewCPU to be
	// called with a nil instance (test package)
	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		for i := 0; i < registers.NumRegisters; i++ {
			_ = mc.Regs.Write(i, mc.instance.Random.Uint8())
		}
		var sr registers.StatusRegister
		sr.FromValue(mc.instance.Random.Uint8())
		mc.Regs.WriteStatus(sr)
	}
}

// CycleCount implements the random.Clock interface.
func (mc *CPU) CycleCount() uint64 {
	return mc.cycles
}

// fetch the word at the program counter and advance the program counter
func (mc *CPU) fetch() (uint16, error) {
	w, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}
	mc.PC.Add(1)
	mc.LastResult.Words++
	return w, nil
}

// skipUnimplemented returns true if the unimplemented instruction preference
// is set to skip
func (mc *CPU) skipUnimplemented() bool {
	return mc.instance != nil && mc.instance.Prefs.Unimplemented.String() == preferences.UnimplementedNop
}

func (mc *CPU) kill(err error) error {
	mc.Killed = true
	mc.LastResult.Error = err.Error()
	logger.Logf(logger.Allow, "CPU", "halted at %#04x: %v", mc.LastResult.Address, err)
	return err
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter. On return LastResult describes the instruction.
//
// An error halts the CPU and every subsequent call returns an error wrapping
// Halted until the CPU is Reset().
func (mc *CPU) ExecuteInstruction() error {
	if mc.Killed {
		return fmt.Errorf("%w at %#04x", Halted, mc.LastResult.Address)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	w, err := mc.fetch()
	if err != nil {
		return mc.kill(err)
	}

	ins, err := decode.Decode(w)
	if err != nil {
		mc.LastResult.Instruction.Word = w
		return mc.kill(err)
	}

	if ins.Defn.Words == 2 {
		next, err := mc.fetch()
		if err != nil {
			return mc.kill(err)
		}
		ins.Complete(next)
	}

	mc.LastResult.Instruction = ins

	switch ins.Defn.Operator {
	case instructions.Rjmp:
		// wraps at the end of program memory in the same way as the disassembly
		if sz, ok := mc.mem.(progbus.Sizer); ok {
			mc.PC.Load(progbus.Relative(mc.LastResult.Address, int(ins.Offset), sz.Size()))
		} else {
			mc.PC.Add(int(ins.Offset))
		}
	case instructions.Jmp:
		mc.PC.Load(ins.Address)
	default:
		err = Execute(ins, mc.Regs)
		if err != nil {
			if !errors.Is(err, Unimplemented) || !mc.skipUnimplemented() {
				return mc.kill(err)
			}

			logger.Logf(logger.Allow, "CPU", "skipping %s at %#04x", ins, mc.LastResult.Address)
			mc.LastResult.Skipped = true
			mc.LastResult.Cycles = 1
			mc.LastResult.Final = true
			mc.cycles++
			return nil
		}
	}

	mc.LastResult.Cycles = ins.Defn.Cycles
	mc.LastResult.Final = true
	mc.cycles += uint64(ins.Defn.Cycles)

	return nil
}

// State is a copy of the CPU state suitable for display and for comparison.
type State struct {
	PC        uint32
	Registers [registers.NumRegisters]uint8
	Status    string
	Cycles    uint64
	Killed    bool
	Last      string
}

// State returns a copy of the current CPU state.
func (mc *CPU) State() State {
	return State{
		PC:        mc.PC.Address(),
		Registers: mc.Regs.Snapshot(),
		Status:    mc.Regs.ReadStatus().String(),
		Cycles:    mc.cycles,
		Killed:    mc.Killed,
		Last:      mc.LastResult.String(),
	}
}

// Dump writes a detailed description of the CPU state to io.Writer.
func (mc *CPU) Dump(w io.Writer) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	cfg.Fdump(w, mc.State())
}
