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

package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/environment"
	"github.com/jetsetilly/superfx/hardware/memory/cartridge/superfx"
	"github.com/jetsetilly/superfx/hardware/specification"
	"github.com/jetsetilly/superfx/logger"
)

// Sentinel error patterns.
const (
	ScriptError = "script: %v"
	EngineError = "script: engine: %v"
)

// ErrorLua is the value of the GSU error code when the run function fails.
const ErrorLua = 0x01

// name of the Lua function that acts as the instruction engine
const runFunction = "run"

// Bench is a Lua scripting environment connected to a GSU. The Bench is the
// instruction engine of the GSU.
type Bench struct {
	env    *environment.Environment
	L      *lua.LState
	gsu    *superfx.GSU
	window []uint8

	// the state during a session. nil outside of a session
	running *superfx.State

	// the most recent error in the run function
	engineErr error
}

// NewBench is the preferred method of initialisation for the Bench type. The
// GSU must be reset with Reset() before use.
func NewBench(env *environment.Environment, spec specification.Spec) *Bench {
	b := &Bench{
		env:    env,
		L:      lua.NewState(),
		window: make([]uint8, superfx.WindowSize),
	}
	b.gsu = superfx.NewGSU(env, spec, b)
	b.L.SetGlobal("gsu", b.api())
	return b
}

// Close the Lua state.
func (b *Bench) Close() {
	b.L.Close()
}

// GSU returns the GSU connected to the bench.
func (b *Bench) GSU() *superfx.GSU {
	return b.gsu
}

// Window returns the register window of the GSU.
func (b *Bench) Window() []uint8 {
	return b.window
}

// Reset the GSU with cartridge data. The data is arranged with
// superfx.LayoutROM().
func (b *Bench) Reset(data []uint8, ramBanks int) error {
	rom, romBanks := superfx.LayoutROM(data)
	ram := make([]uint8, ramBanks*superfx.BankSize)
	b.engineErr = nil
	return b.gsu.Reset(rom, romBanks, ram, ramBanks, b.window)
}

// RunString executes a Lua script.
func (b *Bench) RunString(src string) error {
	if err := b.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile executes a Lua script file.
func (b *Bench) RunFile(filename string) error {
	if err := b.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// EngineError returns the most recent error in the run function. Returns nil
// if there has been no error since the last reset.
func (b *Bench) EngineError() error {
	return b.engineErr
}

// Run implements the superfx.Engine interface.
func (b *Bench) Run(st *superfx.State, budget uint32) uint32 {
	fn := b.L.GetGlobal(runFunction)
	if fn.Type() != lua.LTFunction {
		return superfx.StopEngine.Run(st, budget)
	}

	b.running = st
	defer func() {
		b.running = nil
	}()

	err := b.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(budget))
	if err != nil {
		b.engineErr = curated.Errorf(EngineError, err)
		logger.Log(b.env, "script", b.engineErr)
		st.ErrorCode = ErrorLua
		st.StatusReg &^= superfx.FlagG
		return 0
	}

	ret := b.L.Get(-1)
	b.L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0
	}
	if n < 0 {
		return 0
	}
	return uint32(n)
}

func (b *Bench) String() string {
	if b.running != nil {
		return fmt.Sprintf("running: %s", b.running)
	}
	return b.gsu.State().String()
}
