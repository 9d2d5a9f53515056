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
	"github.com/jetsetilly/superfx/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/superfx/logger"
)

// startFromBus runs a session if one has not already been run during this
// scanline. The latch is set before the session so that a bus write from the
// engine cannot start a nested session.
func (gsu *GSU) startFromBus() {
	if !gsu.oneLineDone {
		gsu.oneLineDone = true
		gsu.Exec()
	}
}

// Exec runs a session if the go flag is set and the GSU has access to ROM or
// RAM. The budget depends on the clock selected by the CLSR register. The
// host interrupt line is raised if the session stopped with the IRQ flag
// set.
func (gsu *GSU) Exec() {
	st := &gsu.state
	w := st.Window

	if w[RegSFR]&FlagG == 0 || w[RegSCMR]&(scmrRAN|scmrRON) == 0 {
		return
	}

	budget := st.SpeedPerLine
	if w[RegCLSR]&clsrDoubleClock != 0 {
		budget = st.SpeedPerLine2x
	}

	gsu.Emulate(budget)

	status := st.readWord(RegSFR)
	if status&(FlagG|FlagIRQ) == FlagIRQ {
		gsu.irq = true
	}
}

// Emulate runs a single session with the instruction budget. Returns the
// error code set by the engine if it is non-zero, otherwise the number of
// instructions executed.
//
// If the program counter is not in an area the GSU can read instructions
// from then the go flag is cleared and zero is returned without running the
// engine.
func (gsu *GSU) Emulate(budget uint32) uint32 {
	st := &gsu.state

	gsu.exec.Sync = mapper.CoProcStarting
	st.readRegisterSpace()

	if !st.checkStartAddress() {
		st.StatusReg &^= FlagG
		st.writeRegisterSpace()
		st.Instructions = 0
		logger.Logf(gsu.env, "gsu", "invalid start address: %02x:%04x", st.ProgramBankReg, st.R[15])
		gsu.yield(mapper.CoProcYield{Type: mapper.YieldInvalidStart})
		return 0
	}

	st.StatusReg &^= FlagIRQ

	gsu.exec.Sync = mapper.CoProcRunning
	st.Instructions = gsu.engine.Run(st, budget)

	st.writeRegisterSpace()

	if st.ErrorCode != 0 {
		err := curated.Errorf(EngineError, st.ErrorCode)
		logger.Log(gsu.env, "gsu", err)
		gsu.yield(mapper.CoProcYield{Type: mapper.YieldExecutionError, Error: err, Instructions: st.Instructions})
		return st.ErrorCode
	}

	if st.StatusReg&FlagG == 0 {
		gsu.yield(mapper.CoProcYield{Type: mapper.YieldProgramEnded, Instructions: st.Instructions})
	} else {
		gsu.yield(mapper.CoProcYield{Type: mapper.YieldBudgetExhausted, Instructions: st.Instructions})
	}

	return st.Instructions
}

func (gsu *GSU) yield(y mapper.CoProcYield) {
	gsu.exec.Yield = y
	switch y.Type {
	case mapper.YieldProgramEnded, mapper.YieldBudgetExhausted:
		gsu.exec.Sync = mapper.CoProcIdle
	default:
		gsu.exec.Sync = mapper.CoProcStopped
	}

	if y.Type.Normal() {
		return
	}

	if y.Type == mapper.YieldExecutionError && !gsu.abortOnError {
		return
	}

	if gsu.yieldHook.CartYield(y) {
		gsu.halt = true
	}
}

// checkStartAddress returns true if the program counter is in an area that
// the GSU can read instructions from.
func (st *State) checkStartAddress() bool {
	// program counter is in the cache
	if st.CacheActive && st.R[15] >= st.CacheBaseReg && uint32(st.R[15]) < uint32(st.CacheBaseReg)+CacheSize {
		return true
	}

	scmr := st.Window[RegSCMR]

	// ROM access
	if scmr&scmrRON != 0 {
		if st.ProgramBankReg <= 0x5f || st.ProgramBankReg >= 0x80 {
			return true
		}
	}

	// RAM access
	if st.ProgramBankReg <= 0x7f && scmr&scmrRAN != 0 {
		return true
	}

	return false
}

// Scanline should be called by the host at the end of every scanline. A
// session is run if one has not been started from the bus during the
// scanline.
func (gsu *GSU) Scanline() {
	if !gsu.oneLineDone {
		gsu.oneLineDone = true
		gsu.Exec()
	}
	gsu.oneLineDone = false
}

// StartLine clears the once per scanline latch without running a session.
func (gsu *GSU) StartLine() {
	gsu.oneLineDone = false
}
