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

// Engine is the instruction engine of the GSU. Run() executes instructions
// beginning at the program counter (R15) in the program bank until the go
// flag is cleared or the budget has been used up.
//
// Run() returns the number of instructions executed. An engine that
// encounters an error should set State.ErrorCode to a non-zero value.
//
// The State has been decoded from the register window before Run() is
// called and it will be encoded into the register window after Run()
// returns. The engine must not access the register window directly except
// for the cache area.
type Engine interface {
	Run(st *State, budget uint32) uint32
}

// EngineFunc allows a function to be used as an Engine.
type EngineFunc func(st *State, budget uint32) uint32

// Run implements the Engine interface.
func (f EngineFunc) Run(st *State, budget uint32) uint32 {
	return f(st, budget)
}

// StopEngine is an Engine that stops immediately. It is used when no
// engine is supplied to NewGSU().
var StopEngine = EngineFunc(func(st *State, _ uint32) uint32 {
	st.StatusReg &^= FlagG
	return 0
})
