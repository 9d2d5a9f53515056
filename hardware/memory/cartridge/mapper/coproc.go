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

package mapper

// CoProcExecutionState details the current condition of the coprocessor's
// execution.
type CoProcExecutionState struct {
	Sync  CoProcSynchronisation
	Yield CoProcYield
}

// CoProcSynchronisation is used to describe the synchronisation state of the
// coprocessor with the host CPU.
type CoProcSynchronisation int

func (s CoProcSynchronisation) String() string {
	switch s {
	case CoProcIdle:
		return "idle"
	case CoProcStarting:
		return "starting"
	case CoProcRunning:
		return "running"
	case CoProcStopped:
		return "stopped"
	}
	panic("unknown CoProcSynchronisation")
}

// List of valid CoProcSynchronisation values.
//
// Execution is synchronous with the host CPU. A session always progresses
// from Starting to either Running or Stopped, and from Running back to Idle
// or Stopped. The host only ever observes the Idle and Stopped states.
const (
	// the coprocessor is not executing. this is the state before the first
	// session and after a session that ended normally
	CoProcIdle CoProcSynchronisation = iota

	// the register window has been decoded and the start address is being
	// checked
	CoProcStarting

	// the instruction engine is running
	CoProcRunning

	// the most recent session ended with the go flag cleared
	CoProcStopped
)

// CartYieldHook allows the host to be notified when the coprocessor yields
// for a reason that is not part of normal operation.
type CartYieldHook interface {
	// CartYield returns true if the host should stop emulation
	CartYield(CoProcYield) bool
}

// StubCartYieldHook is a stub implementation for the CartYieldHook interface.
type StubCartYieldHook struct{}

// CartYield is a stub implementation for the CartYieldHook interface.
func (StubCartYieldHook) CartYield(_ CoProcYield) bool {
	return false
}

// CartCoProc is implemented by cartridges that have a coprocessor that
// functions independently from the host CPU.
type CartCoProc interface {
	CoProcID() string

	// the state of the coprocessor
	CoProcExecutionState() CoProcExecutionState

	// set interface for coprocessor yields
	SetYieldHook(CartYieldHook)

	// the contents of register n. returns false if specified register is out
	// of range
	CoProcRegister(n int) (uint32, bool)
	CoProcRegisterSet(n int, value uint32) bool

	// read coprocessor memory address for 8/16 bit values. return false if
	// address is out of range
	CoProcRead8bit(addr uint32) (uint8, bool)
	CoProcRead16bit(addr uint32) (uint16, bool)
}

// CoProcYield describes a coprocessor yield state.
type CoProcYield struct {
	Type  CoProcYieldType
	Error error

	// number of instructions executed by the session that yielded
	Instructions uint32
}

// CoProcYieldType specifies the type of yield. This is a broad
// categorisation.
type CoProcYieldType int

func (t CoProcYieldType) String() string {
	switch t {
	case YieldProgramEnded:
		return "ended"
	case YieldBudgetExhausted:
		return "budget exhausted"
	case YieldInvalidStart:
		return "invalid start address"
	case YieldExecutionError:
		return "execution error"
	case YieldRunning:
		return "running"
	}
	panic("unknown CoProcYieldType")
}

// Normal returns true if yield type is expected during normal operation of
// the coprocessor.
func (t CoProcYieldType) Normal() bool {
	return t == YieldRunning || t == YieldProgramEnded || t == YieldBudgetExhausted
}

// List of CoProcYieldType values.
const (
	// the program has stopped by clearing the go flag
	YieldProgramEnded CoProcYieldType = iota

	// the instruction budget for the scanline has been used up. the program
	// will continue from the same point on the next scanline
	YieldBudgetExhausted

	// the program counter is not in an area that the coprocessor can read
	// instructions from. the go flag has been cleared
	YieldInvalidStart

	// the instruction engine reported an error code
	YieldExecutionError

	// the coprocessor has not yet yielded and is still running
	YieldRunning
)
