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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Collection is a set of preferences, each identified by a key.
type Collection struct {
	entries map[string]Pref
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]Pref),
	}
}

// Add a preference to the collection. It is an error to add the same key
// twice.
func (c *Collection) Add(key string, p Pref) error {
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: %s already in collection", key)
	}
	c.entries[key] = p
	return nil
}

// Set the preference identified by key.
func (c *Collection) Set(key string, v Value) error {
	p, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("prefs: no such preference (%s)", key)
	}
	if err := p.Set(v); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	return nil
}

// Get the value of the preference identified by key.
func (c *Collection) Get(key string) (Value, bool) {
	p, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return p.Get(), true
}

// ApplyCommandLine sets every preference in the collection that has a value
// in the current command line group. See PushCommandLineStack().
func (c *Collection) ApplyCommandLine() error {
	for _, key := range c.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := c.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reset all preferences in the collection.
func (c *Collection) Reset() error {
	for _, key := range c.keys() {
		if err := c.entries[key].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}
	return nil
}

func (c *Collection) keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the collection in the same key/value format as a command
// line preferences string. One entry per line in key order.
func (c *Collection) String() string {
	s := strings.Builder{}
	for _, key := range c.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", key, c.entries[key].String()))
	}
	return s.String()
}
