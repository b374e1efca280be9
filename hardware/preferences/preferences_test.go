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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/prefs"
	"github.com/jetsetilly/gopheravr/test"
)

func TestDefaults(t *testing.T) {
	t.Setenv("GOPHERAVR_RANDOMSTATE", "")
	t.Setenv("GOPHERAVR_UNIMPLEMENTED", "")

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.Unimplemented.String(), preferences.UnimplementedHalt)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("GOPHERAVR_RANDOMSTATE", "true")
	t.Setenv("GOPHERAVR_UNIMPLEMENTED", "nop")

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), true)
	test.ExpectEquality(t, p.Unimplemented.String(), preferences.UnimplementedNop)

	t.Setenv("GOPHERAVR_UNIMPLEMENTED", "explode")
	_, err = preferences.NewPreferences()
	test.ExpectFailure(t, err)
}

func TestEnvironmentChange(t *testing.T) {
	// the environment is read again every time preferences are created
	t.Setenv("GOPHERAVR_UNIMPLEMENTED", "halt")
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Unimplemented.String(), preferences.UnimplementedHalt)

	t.Setenv("GOPHERAVR_UNIMPLEMENTED", "nop")
	p, err = preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Unimplemented.String(), preferences.UnimplementedNop)
}

func TestCommandLine(t *testing.T) {
	t.Setenv("GOPHERAVR_UNIMPLEMENTED", "")

	prefs.PushCommandLineStack("cpu.unimplemented::nop")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Unimplemented.String(), preferences.UnimplementedNop)

	test.ExpectSuccess(t, p.Set("cpu.unimplemented", "halt"))
	test.ExpectEquality(t, p.Unimplemented.String(), preferences.UnimplementedHalt)
}

func TestReset(t *testing.T) {
	t.Setenv("GOPHERAVR_RANDOMSTATE", "true")
	t.Setenv("GOPHERAVR_UNIMPLEMENTED", "nop")

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Reset())
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.Unimplemented.String(), preferences.UnimplementedHalt)
}
