// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/superfx/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// keyValueSeparator separates the key from the value on every line of a
// preferences file.
const keyValueSeparator = " :: "

// Sentinel error patterns returned by Disk.
const (
	NoPrefsFile = "prefs: no prefs file (%s)"
	InvalidKey  = "prefs: invalid key (%s)"
	DiskError   = "prefs: %v"
)

// Disk represents preference values as stored on disk. Values are added to
// the Disk with Add() and then saved and loaded as a group. Entries in the
// file that are not part of the group are preserved when saving.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keyValueSeparator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the disk group. The key must not contain
// whitespace.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") {
		return curated.Errorf(InvalidKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all values in the disk group to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// readFile returns the key/value pairs in the preferences file.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}
		kv := strings.SplitN(line, keyValueSeparator, 2)
		if len(kv) != 2 {
			continue
		}
		entries[strings.TrimSpace(kv[0])] = kv[1]
	}

	return entries, scanner.Err()
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	entries, err := dsk.readFile()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(DiskError, err)
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keyValueSeparator, entries[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. If the file does not exist and
// saveOnFail is true then the current values are saved to create the file.
//
// Preferences on the command line stack take priority over values on disk.
// They are applied even if the file does not exist.
func (dsk *Disk) Load(saveOnFail bool) error {
	var missing bool

	entries, err := dsk.readFile()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(DiskError, err)
		}
		missing = true
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
	}

	for _, k := range dsk.keys() {
		v, ok := entries[k]
		if clOk, clv := GetCommandLinePref(k); clOk {
			v = clv.(string)
			ok = true
		}
		if ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	if missing && !saveOnFail {
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}
