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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/hardware/preferences"
	"github.com/jetsetilly/superfx/prefs"
	"github.com/jetsetilly/superfx/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.SuperFX.Overclock.Get().(int), 100)
	test.ExpectEquality(t, p.SuperFX.DoubleClock.Get().(float64), 2.0)
	test.ExpectEquality(t, p.SuperFX.Spec.String(), preferences.SpecAuto)
	test.ExpectEquality(t, p.SuperFX.AbortOnError.Get().(bool), true)
}

func TestInvalidValues(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	err = p.SuperFX.Overclock.Set(0)
	test.ExpectSuccess(t, curated.Is(err, preferences.PreferenceError))
	err = p.SuperFX.DoubleClock.Set(-1.0)
	test.ExpectSuccess(t, curated.Is(err, preferences.PreferenceError))
	err = p.SuperFX.Spec.Set("SECAM")
	test.ExpectSuccess(t, curated.Is(err, preferences.PreferenceError))

	// failed sets leave the previous value in place
	test.ExpectEquality(t, p.SuperFX.Overclock.Get().(int), 100)
	test.ExpectEquality(t, p.SuperFX.Spec.String(), preferences.SpecAuto)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.SuperFX.Overclock.Set(150))
	test.ExpectSuccess(t, p.SuperFX.Spec.Set(preferences.SpecPAL))
	test.ExpectSuccess(t, p.SuperFX.AbortOnError.Set(false))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.SuperFX.Overclock.Get().(int), 150)
	test.ExpectEquality(t, q.SuperFX.Spec.String(), preferences.SpecPAL)
	test.ExpectEquality(t, q.SuperFX.AbortOnError.Get().(bool), false)

	q.SetDefaults()
	test.ExpectEquality(t, q.SuperFX.Overclock.Get().(int), 100)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("superfx.overclock::300")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SuperFX.Overclock.Get().(int), 300)
}
