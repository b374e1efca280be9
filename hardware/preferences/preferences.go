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

// Package preferences collates the preference values used by the hardware
// packages. Default values are taken from the environment and can then be
// overridden by the command line preferences string.
//
//	GOPHERAVR_RANDOMSTATE    initialise registers to random values on reset
//	GOPHERAVR_UNIMPLEMENTED  what the CPU does with an instruction it can
//	                         decode but not execute. "halt" or "nop"
package preferences

import (
	"github.com/jetsetilly/gopheravr/prefs"
	"github.com/xyproto/env/v2"
)

// Values for the Unimplemented preference.
const (
	UnimplementedHalt = "halt"
	UnimplementedNop  = "nop"
)

// Preferences defines and collates all the preference values used by the
// hardware packages.
type Preferences struct {
	coll *prefs.Collection

	// initialise register file to unknown state after reset
	RandomState prefs.Bool

	// action taken by the CPU on an unimplemented instruction
	Unimplemented prefs.String
}

func (p *Preferences) String() string {
	return p.coll.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		coll: prefs.NewCollection(),
	}

	p.Unimplemented.SetChoices(UnimplementedHalt, UnimplementedNop)

	err := p.coll.Add("cpu.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.coll.Add("cpu.unimplemented", &p.Unimplemented)
	if err != nil {
		return nil, err
	}

	err = p.SetDefaults()
	if err != nil {
		return nil, err
	}

	err = p.coll.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets all preferences to the values found in the environment.
func (p *Preferences) SetDefaults() error {
	// the env package caches the environment on first use. reload it so that
	// changes made since then are seen
	env.Load()

	err := p.RandomState.Set(env.Bool("GOPHERAVR_RANDOMSTATE"))
	if err != nil {
		return err
	}
	return p.Unimplemented.Set(env.Str("GOPHERAVR_UNIMPLEMENTED", UnimplementedHalt))
}

// Set the preference identified by key. The keys are "cpu.randstate" and
// "cpu.unimplemented".
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.coll.Set(key, v)
}

// Reset all preferences to their built-in default values. The environment is
// ignored.
func (p *Preferences) Reset() error {
	return p.coll.Reset()
}
