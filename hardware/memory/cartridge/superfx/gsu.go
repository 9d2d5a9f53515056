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

package superfx

import (
	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/environment"
	"github.com/jetsetilly/superfx/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/superfx/hardware/specification"
	"github.com/jetsetilly/superfx/logger"
)

// Sentinel error patterns returned by GSU.
const (
	UnmappedAddress = "gsu: unmapped address: %#04x"
	WindowTooShort  = "gsu: reset: register window too short: %d bytes"
	NoBanks         = "gsu: reset: bank count must be positive: rom=%d ram=%d"
	EngineError     = "gsu: engine error: %#x"
	NoEnvironment   = "gsu: reset: no environment"
)

// GSU is the host side of the coprocessor. It owns the State and handles
// reads and writes from the host CPU to the register window.
type GSU struct {
	env    *environment.Environment
	spec   specification.Spec
	engine Engine

	state State

	// set when a session has been started from the bus during the current
	// scanline. cleared at the end of every scanline
	oneLineDone bool

	// the host interrupt line
	irq bool

	exec      mapper.CoProcExecutionState
	yieldHook mapper.CartYieldHook
	halt      bool

	// copy of the AbortOnError preference
	abortOnError bool
}

// NewGSU is the preferred method of initialisation for the GSU type. The
// engine can be nil, in which case StopEngine is used. The environment must
// not be nil. Reset() will return an error if it is.
//
// The GSU must be Reset() before use.
func NewGSU(env *environment.Environment, spec specification.Spec, engine Engine) *GSU {
	if engine == nil {
		engine = StopEngine
	}
	return &GSU{
		env:       env,
		spec:      spec,
		engine:    engine,
		yieldHook: mapper.StubCartYieldHook{},
	}
}

// State returns the GSU state. The State is only consistent with the register
// window between sessions if it has been decoded. See Decode().
func (gsu *GSU) State() *State {
	return &gsu.state
}

// Spec returns the television specification used to calibrate the
// instruction budget.
func (gsu *GSU) Spec() specification.Spec {
	return gsu.spec
}

// SetSpec changes the television specification and recalculates the
// instruction budget.
func (gsu *GSU) SetSpec(spec specification.Spec) {
	gsu.spec = spec
	gsu.UpdatePrefs()
}

// UpdatePrefs recalculates the instruction budget from the SuperFX
// preferences and the television specification.
func (gsu *GSU) UpdatePrefs() {
	if gsu.env == nil {
		return
	}
	p := gsu.env.Prefs.SuperFX
	gsu.abortOnError = p.AbortOnError.Get().(bool)
	gsu.state.SetTiming(gsu.spec.FramesPerSecond, gsu.spec.ScanlinesTotal,
		p.DoubleClock.Get().(float64), p.Overclock.Get().(int))
	logger.Logf(gsu.env, "gsu", "%s: speed per line 1x:%d 2x:%d", gsu.spec.ID,
		gsu.state.SpeedPerLine, gsu.state.SpeedPerLine2x)
}

// Reset the GSU. The rom, ram and register window are owned by the host and
// are retained by the GSU until the next reset.
//
// The ROM should be laid out as described by LayoutROM(). The number of
// banks are the number of 64K banks in each memory. The register window
// must be at least WindowSize bytes and will be cleared.
func (gsu *GSU) Reset(rom []uint8, romBanks int, ram []uint8, ramBanks int, window []uint8) error {
	if gsu.env == nil {
		return curated.Errorf(NoEnvironment)
	}
	if len(window) < WindowSize {
		return curated.Errorf(WindowTooShort, len(window))
	}
	if romBanks <= 0 || ramBanks <= 0 {
		return curated.Errorf(NoBanks, romBanks, ramBanks)
	}

	gsu.oneLineDone = false
	gsu.irq = false
	gsu.halt = false

	gsu.state = State{}
	st := &gsu.state
	gsu.UpdatePrefs()

	if romBanks > ROMBanksMax {
		romBanks = ROMBanksMax
	}

	st.ROM = rom
	st.RAM = ram
	st.ROMBanks = romBanks
	st.RAMBanks = ramBanks
	st.Window = window

	clear(window[:WindowSize])
	window[RegVCR] = 0

	st.tables = NewBankTables(romBanks, ramBanks)

	// a nop in the pipe
	st.Pipe = 0x01

	st.prevMode = -1
	st.prevScreenHeight = -1

	st.readRegisterSpace()

	gsu.exec = mapper.CoProcExecutionState{
		Sync:  mapper.CoProcIdle,
		Yield: mapper.CoProcYield{Type: mapper.YieldProgramEnded},
	}

	logger.Logf(gsu.env, "gsu", "reset: %d ROM banks, %d RAM banks", romBanks, ramBanks)

	return nil
}

// Decode the register window into the State. Useful for inspecting the
// State between sessions.
func (gsu *GSU) Decode() {
	gsu.state.readRegisterSpace()
}

// Encode the State into the register window. Changes made to the State
// between sessions are lost unless they are encoded.
func (gsu *GSU) Encode() {
	gsu.state.writeRegisterSpace()
}

func inWindow(addr uint16) bool {
	return addr >= WindowOrigin && addr < WindowOrigin+WindowSize
}

// Write a byte to the register window from the host CPU. A write may start
// an execution session.
func (gsu *GSU) Write(addr uint16, data uint8) error {
	if !inWindow(addr) {
		return curated.Errorf(UnmappedAddress, addr)
	}

	st := &gsu.state
	w := st.Window
	off := addr - WindowOrigin

	switch addr {
	case addrSFR:
		if (w[off]^data)&FlagG != 0 {
			w[off] = data
			if data&FlagG != 0 {
				gsu.startFromBus()
			} else {
				st.flushCache()
			}
		} else {
			w[off] = data
		}

	case addrPBR, addrROMBR:
		w[off] = data & 0x7f

	case addrSCBR:
		w[off] = data
		st.MarkScreenDirty()

	case addrVCR:
		// read only

	case addrRAMBR:
		w[off] = data
		st.updateRAMBank(data)

	case addrR15hi:
		// writing the high byte of R15 starts the GSU
		w[off] = data
		w[RegSFR] |= FlagG
		gsu.startFromBus()

	default:
		w[off] = data
		if addr >= addrCache {
			st.cacheWriteAccess(addr)
		}
	}

	return nil
}

// Read a byte from the register window for the host CPU. Reading the high
// byte of the status register acknowledges the interrupt.
func (gsu *GSU) Read(addr uint16) (uint8, error) {
	if !inWindow(addr) {
		return 0, curated.Errorf(UnmappedAddress, addr)
	}

	w := gsu.state.Window
	off := addr - WindowOrigin
	data := w[off]

	if addr == addrSFRhi {
		gsu.irq = false
		w[off] = data & 0x7f
	}

	return data, nil
}

// IRQ returns the state of the host interrupt line.
func (gsu *GSU) IRQ() bool {
	return gsu.irq
}

// AcknowledgeIRQ clears the host interrupt line without changing the
// register window.
func (gsu *GSU) AcknowledgeIRQ() {
	gsu.irq = false
}

// Halted returns true if the yield hook has requested that the host stops.
func (gsu *GSU) Halted() bool {
	return gsu.halt
}
