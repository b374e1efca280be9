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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopheravr/prefs"
	"github.com/jetsetilly/gopheravr/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("false"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set("1"))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectFailure(t, v.Set(10))

	// value unchanged by failed set
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set(" foo "))
	test.ExpectEquality(t, v.String(), "foo")

	v.SetChoices("halt", "nop")
	test.ExpectSuccess(t, v.Set("NOP"))
	test.ExpectEquality(t, v.String(), "nop")
	test.ExpectFailure(t, v.Set("skip"))
	test.ExpectEquality(t, v.String(), "nop")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "halt")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.Get().(int), 0)
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, v.Set("20"))
	test.ExpectEquality(t, v.Get().(int), 20)
	test.ExpectFailure(t, v.Set("twenty"))
	test.ExpectEquality(t, v.String(), "20")
}

func TestHook(t *testing.T) {
	var v prefs.Bool
	var seen bool
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(bool)
		return nil
	})
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, seen)
}

func TestCollection(t *testing.T) {
	var b prefs.Bool
	var s prefs.String
	s.SetChoices("halt", "nop")

	c := prefs.NewCollection()
	test.DemandSuccess(t, c.Add("cpu.randstate", &b))
	test.DemandSuccess(t, c.Add("cpu.unimplemented", &s))
	test.ExpectFailure(t, c.Add("cpu.randstate", &b))
	test.DemandSuccess(t, c.Reset())

	test.ExpectSuccess(t, c.Set("cpu.randstate", true))
	test.ExpectFailure(t, c.Set("cpu.unknown", true))
	test.ExpectFailure(t, c.Set("cpu.unimplemented", "skip"))

	v, ok := c.Get("cpu.unimplemented")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "halt")

	test.ExpectEquality(t, c.String(), "cpu.randstate :: true\ncpu.unimplemented :: halt\n")

	prefs.PushCommandLineStack("cpu.unimplemented::nop; other::value")
	test.ExpectSuccess(t, c.ApplyCommandLine())
	test.ExpectEquality(t, s.String(), "nop")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")

	// invalid value on the command line
	prefs.PushCommandLineStack("cpu.randstate::maybe")
	test.ExpectFailure(t, c.ApplyCommandLine())
	prefs.PopCommandLineStack()
}
