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
	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/superfx/hardware/memory/cartridge/superfx"
	"github.com/jetsetilly/superfx/logger"
)

// api returns the gsu table.
func (b *Bench) api() *lua.LTable {
	tbl := b.L.NewTable()
	b.L.SetFuncs(tbl, map[string]lua.LGFunction{
		"write":        b.write,
		"read":         b.read,
		"scanline":     b.scanline,
		"frame":        b.frame,
		"irq":          b.irq,
		"ack":          b.ack,
		"reg":          b.reg,
		"setreg":       b.setreg,
		"stop":         b.stop,
		"fail":         b.fail,
		"color":        b.color,
		"por":          b.por,
		"plot":         b.plot,
		"rpix":         b.rpix,
		"cache":        b.cache,
		"peek":         b.peek,
		"poke":         b.poke,
		"instructions": b.instructions,
		"log":          b.log,
	})
	return tbl
}

// session returns the running state or raises an error
func (b *Bench) session(L *lua.LState, fn string) *superfx.State {
	if b.running == nil {
		L.RaiseError("gsu.%s: only available during a session", fn)
	}
	return b.running
}

func (b *Bench) write(L *lua.LState) int {
	if b.running != nil {
		L.RaiseError("gsu.write: host bus is not available during a session")
	}
	addr := L.CheckInt(1)
	data := L.CheckInt(2)
	if err := b.gsu.Write(uint16(addr), uint8(data)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (b *Bench) read(L *lua.LState) int {
	addr := L.CheckInt(1)
	d, err := b.gsu.Read(uint16(addr))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(d))
	return 1
}

func (b *Bench) scanline(L *lua.LState) int {
	if b.running != nil {
		L.RaiseError("gsu.scanline: not available during a session")
	}
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		b.gsu.Scanline()
	}
	return 0
}

func (b *Bench) frame(L *lua.LState) int {
	if b.running != nil {
		L.RaiseError("gsu.frame: not available during a session")
	}
	for i := 0; i < b.gsu.Spec().ScanlinesTotal; i++ {
		b.gsu.Scanline()
	}
	return 0
}

func (b *Bench) irq(L *lua.LState) int {
	L.Push(lua.LBool(b.gsu.IRQ()))
	return 1
}

func (b *Bench) ack(L *lua.LState) int {
	b.gsu.AcknowledgeIRQ()
	return 0
}

// register 16 is the status register
func (b *Bench) reg(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > 16 {
		L.ArgError(1, "register out of range")
	}

	if st := b.running; st != nil {
		if n == 16 {
			L.Push(lua.LNumber(st.StatusReg))
		} else {
			L.Push(lua.LNumber(st.R[n]))
		}
		return 1
	}

	v, _ := b.gsu.CoProcRegister(n)
	L.Push(lua.LNumber(v))
	return 1
}

func (b *Bench) setreg(L *lua.LState) int {
	n := L.CheckInt(1)
	v := L.CheckInt(2)
	if n < 0 || n > 16 {
		L.ArgError(1, "register out of range")
	}

	if st := b.running; st != nil {
		if n == 16 {
			st.StatusReg = uint16(v)
		} else {
			st.R[n] = uint16(v)
		}
		return 0
	}

	b.gsu.CoProcRegisterSet(n, uint32(v))
	return 0
}

func (b *Bench) stop(L *lua.LState) int {
	st := b.session(L, "stop")
	st.StatusReg &^= superfx.FlagG
	return 0
}

func (b *Bench) fail(L *lua.LState) int {
	st := b.session(L, "fail")
	code := L.CheckInt(1)
	if code == 0 {
		L.ArgError(1, "error code must not be zero")
	}
	st.ErrorCode = uint32(code)
	st.StatusReg &^= superfx.FlagG
	return 0
}

func (b *Bench) color(L *lua.LState) int {
	b.gsu.State().Color = uint8(L.CheckInt(1))
	return 0
}

func (b *Bench) por(L *lua.LState) int {
	b.gsu.State().PlotOption = uint8(L.CheckInt(1))
	return 0
}

func (b *Bench) plot(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	st := b.gsu.State()
	st.Dispatch(st.Plot, uint8(x), uint8(y))
	return 0
}

func (b *Bench) rpix(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	st := b.gsu.State()
	L.Push(lua.LNumber(st.Dispatch(st.Rpix, uint8(x), uint8(y))))
	return 1
}

func (b *Bench) cache(L *lua.LState) int {
	st := b.session(L, "cache")
	st.ActivateCache(uint16(L.CheckInt(1)))
	return 0
}

func (b *Bench) peek(L *lua.LState) int {
	addr := L.CheckInt(1)
	d, ok := b.gsu.CoProcRead8bit(uint32(addr))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(d))
	return 1
}

func (b *Bench) poke(L *lua.LState) int {
	bank := L.CheckInt(1)
	idx := L.CheckInt(2)
	v := L.CheckInt(3)
	b.gsu.PutRAM(bank, idx, uint8(v))
	return 0
}

func (b *Bench) instructions(L *lua.LState) int {
	L.Push(lua.LNumber(b.gsu.State().Instructions))
	return 1
}

func (b *Bench) log(L *lua.LState) int {
	logger.Log(b.env, "lua", L.CheckString(1))
	return 0
}
