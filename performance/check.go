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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopheravr/hardware"
)

var timedOut = errors.New("performance timed out")

// CalcSpeed takes the number of cycles executed in a duration (in seconds)
// and returns the effective clock speed in MHz and the accuracy of that value
// as a percentage of the target clock speed.
func CalcSpeed(cycles uint64, duration float64, mhz float64) (effective float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	effective = float64(cycles) / duration / 1000000
	if mhz > 0 {
		accuracy = 100 * effective / mhz
	}
	return effective, accuracy
}

// Check runs the program attached to the AVR for the specified duration and
// writes the effective clock speed to output. The program should not halt
// the CPU before the duration has elapsed.
func Check(output io.Writer, profile Profile, avr *hardware.AVR, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startCycles := avr.CPU.CycleCount()
	timer := time.NewTimer(dur)
	defer timer.Stop()

	// checking the timer after every instruction is expensive
	performanceBrake := 0

	runner := func() error {
		return avr.Run(func() (bool, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return true, nil
			}
			performanceBrake = 0

			select {
			case <-timer.C:
				return false, timedOut
			default:
			}
			return true, nil
		})
	}

	start := time.Now()
	err = RunProfiler(profile, "performance", runner)
	elapsed := time.Since(start).Seconds()

	cycles := avr.CPU.CycleCount() - startCycles
	mhz, accuracy := CalcSpeed(cycles, elapsed, avr.Clock)
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed, accuracy)

	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	return nil
}
