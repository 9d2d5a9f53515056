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

package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/prefs"
)

// PreferenceError is the pattern for errors returned when a SuperFX
// preference is set to an invalid value.
const PreferenceError = "superfx: %v"

// Values accepted by the Spec preference.
const (
	SpecAuto = "AUTO"
	SpecNTSC = "NTSC"
	SpecPAL  = "PAL"
)

// SuperFXPreferences are the preferences for the GSU coprocessor.
type SuperFXPreferences struct {
	// instruction budget scaling as a percentage. a value of 100 gives
	// the standard budget for each scanline
	Overclock prefs.Int

	// multiplier applied to the base budget when the CLSR register selects
	// the faster clock
	DoubleClock prefs.Float

	// television specification used to calibrate the budget. AUTO means
	// the specification is taken from the cartridge header
	Spec prefs.String

	// engine errors are passed to the yield hook, which may halt the host.
	// when false the error is logged and the yield is recorded but the hook
	// is not consulted
	AbortOnError prefs.Bool
}

func newSuperFXPreferences(dsk *prefs.Disk) (*SuperFXPreferences, error) {
	p := &SuperFXPreferences{}
	p.SetDefaults()

	p.Overclock.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(PreferenceError, "overclock must be a positive percentage")
		}
		return nil
	})

	p.DoubleClock.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0.0 {
			return curated.Errorf(PreferenceError, "double clock multiplier must be positive")
		}
		return nil
	})

	p.Spec.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case SpecAuto, SpecNTSC, SpecPAL:
			return nil
		}
		return curated.Errorf(PreferenceError, fmt.Sprintf("unknown specification (%s)", v))
	})

	err := dsk.Add("superfx.overclock", &p.Overclock)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("superfx.doubleclock", &p.DoubleClock)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("superfx.spec", &p.Spec)
	if err != nil {
		return nil, err
	}
	err = dsk.Add("superfx.abortonerror", &p.AbortOnError)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *SuperFXPreferences) SetDefaults() {
	p.Overclock.Set(100)
	p.DoubleClock.Set(2.0)
	p.Spec.Set(SpecAuto)
	p.AbortOnError.Set(true)
}
