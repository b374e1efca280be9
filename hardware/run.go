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

// It can be expensive to do a full continue check after every instruction.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every instruction and the emulation stops when it
// returns false or an error. A nil continueCheck() runs until the CPU halts.
//
// An instruction that halts the CPU ends the emulation with an error.
func (avr *AVR) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		err := avr.CPU.ExecuteInstruction()
		if err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForInstructionCount sets emulator running for the specified number of
// instructions. An instruction that halts the CPU ends the emulation early
// with an error.
func (avr *AVR) RunForInstructionCount(count int, continueCheck func(n int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(n int) (bool, error) { return true, nil }
	}

	for n := 0; n < count; n++ {
		err := avr.CPU.ExecuteInstruction()
		if err != nil {
			return err
		}

		cont, err := continueCheck(n)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}
