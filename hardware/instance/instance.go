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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the AVR type, but is not actually the AVR itself.
//
// Particularly useful when running more than one instance of the emulation in
// parallel.
package instance

import (
	"github.com/jetsetilly/gopheravr/hardware/preferences"
	"github.com/jetsetilly/gopheravr/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main  Label = ""
	Sweep Label = "sweep"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the AVR type, but is not actually the AVR
// itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The clk argument can be nil and plumbed in later with Random.Plumb(). If the
// prefs argument is nil then a new prefs instance will be created. Providing a
// non-nil value allows the preferences of more than one instance to be
// synchronised.
func NewInstance(clk random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clk),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing where the initial state must be the same for every run.
func (ins *Instance) Normalise() error {
	ins.Random.ZeroSeed = true
	return ins.Prefs.Reset()
}
