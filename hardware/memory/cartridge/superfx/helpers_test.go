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

package superfx_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/superfx/environment"
	"github.com/jetsetilly/superfx/hardware/memory/cartridge/superfx"
	"github.com/jetsetilly/superfx/hardware/preferences"
	"github.com/jetsetilly/superfx/hardware/specification"
	"github.com/jetsetilly/superfx/test"
)

// countingEngine records how it was called and runs for a fixed number of
// instructions
type countingEngine struct {
	calls   int
	budget  uint32
	status  uint16
	execute uint32

	// called at the end of every Run()
	after func(st *superfx.State)
}

func (eng *countingEngine) Run(st *superfx.State, budget uint32) uint32 {
	eng.calls++
	eng.budget = budget
	eng.status = st.StatusReg
	if eng.after != nil {
		eng.after(st)
	}
	return eng.execute
}

// pattern is the content of the test cartridge at the offset
func pattern(i int) uint8 {
	return uint8(i ^ (i >> 8) ^ (i >> 16))
}

type testGSU struct {
	*superfx.GSU
	rom    []uint8
	ram    []uint8
	window []uint8
}

func newTestEnvironment(t *testing.T) *environment.Environment {
	t.Helper()
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)
	return env
}

// newTestGSU creates and resets a GSU with small ROM and RAM buffers
func newTestGSU(t *testing.T, engine superfx.Engine, romBanks int, ramBanks int) *testGSU {
	t.Helper()

	gsu := &testGSU{
		GSU:    superfx.NewGSU(newTestEnvironment(t), specification.SpecNTSC, engine),
		ram:    make([]uint8, ramBanks*superfx.BankSize),
		window: make([]uint8, superfx.WindowSize),
	}

	data := make([]uint8, romBanks*superfx.BankSize)
	for i := range data {
		data[i] = pattern(i)
	}
	gsu.rom, _ = superfx.LayoutROM(data)

	test.DemandSuccess(t, gsu.Reset(gsu.rom, romBanks, gsu.ram, ramBanks, gsu.window))

	return gsu
}

// write a sequence of bytes to the host bus
func (gsu *testGSU) write(t *testing.T, addr uint16, data ...uint8) {
	t.Helper()
	for i, d := range data {
		test.DemandSuccess(t, gsu.Write(addr+uint16(i), d))
	}
}

func (gsu *testGSU) word(offset int) uint16 {
	return uint16(gsu.window[offset]) | uint16(gsu.window[offset+1])<<8
}
