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
	"testing"

	"github.com/jetsetilly/superfx/hardware/memory/cartridge/superfx"
	"github.com/jetsetilly/superfx/test"
)

func TestRegisterDecode(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)

	gsu.window[superfx.RegR0] = 0x34
	gsu.window[superfx.RegR0+1] = 0x12
	gsu.window[superfx.RegR15] = 0x00
	gsu.window[superfx.RegR15+1] = 0x80
	gsu.window[superfx.RegPBR] = 0x01
	gsu.window[superfx.RegROMBR] = 0x41
	gsu.window[superfx.RegCBR] = 0x10
	gsu.window[superfx.RegCBR+1] = 0x02

	gsu.Decode()
	st := gsu.State()

	test.ExpectEquality(t, st.R[0], uint16(0x1234))
	test.ExpectEquality(t, st.R[15], uint16(0x8000))
	test.ExpectEquality(t, st.ProgramBankReg, uint8(0x01))
	test.ExpectEquality(t, st.ProgramBank, st.Tables().ROM[0x01])
	test.ExpectEquality(t, st.ROMBankReg, uint8(0x41))
	test.ExpectEquality(t, st.ROMBank, st.Tables().ROM[0x41])
	test.ExpectEquality(t, st.CacheBaseReg, uint16(0x0210))
}

func TestFlagDecode(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)
	st := gsu.State()

	gsu.Decode()
	test.ExpectInequality(t, st.Zero, 0)
	test.ExpectEquality(t, st.Sign, 0)
	test.ExpectEquality(t, st.Overflow, 0)
	test.ExpectEquality(t, st.Carry, 0)

	gsu.window[superfx.RegSFR] = superfx.FlagZ | superfx.FlagS | superfx.FlagOV | superfx.FlagCY
	gsu.Decode()
	test.ExpectEquality(t, st.Zero, 0)
	test.ExpectEquality(t, st.Sign&0x8000, 0x8000)
	test.ExpectInequality(t, st.Overflow, 0)
	test.ExpectEquality(t, st.Carry, 1)
}

func TestFlagRoundTrip(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)

	for _, sfr := range []uint16{
		0x0000,
		superfx.FlagZ,
		superfx.FlagCY,
		superfx.FlagS,
		superfx.FlagOV,
		superfx.FlagZ | superfx.FlagS | superfx.FlagOV | superfx.FlagCY,
		superfx.FlagG | superfx.FlagALT1 | superfx.FlagB,
		superfx.FlagIRQ | superfx.FlagZ,
	} {
		gsu.window[superfx.RegSFR] = uint8(sfr)
		gsu.window[superfx.RegSFR+1] = uint8(sfr >> 8)
		gsu.Decode()
		gsu.Encode()
		test.ExpectEquality(t, gsu.word(superfx.RegSFR), sfr)
	}
}

func TestOverflowBoundary(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)
	st := gsu.State()

	for _, v := range []struct {
		overflow int32
		set      bool
	}{
		{overflow: 0x7fff, set: false},
		{overflow: 0x8000, set: true},
		{overflow: -0x8000, set: false},
		{overflow: -0x8001, set: true},
		{overflow: 0, set: false},
	} {
		gsu.Decode()
		st.Overflow = v.overflow
		gsu.Encode()
		test.ExpectEquality(t, gsu.word(superfx.RegSFR)&superfx.FlagOV != 0, v.set, v.overflow)
	}
}

func TestZeroFlagUsesLowWord(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)
	st := gsu.State()

	gsu.Decode()
	st.Zero = 0x10000
	gsu.Encode()
	test.ExpectEquality(t, gsu.word(superfx.RegSFR)&superfx.FlagZ, uint16(superfx.FlagZ))

	st.Zero = 1
	gsu.Encode()
	test.ExpectEquality(t, gsu.word(superfx.RegSFR)&superfx.FlagZ, uint16(0))
}

func TestRegisterEncode(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)
	st := gsu.State()

	gsu.Decode()
	st.R[3] = 0xbeef
	st.R[15] = 0x8123
	st.ProgramBankReg = 0x02
	st.ROMBankReg = 0x44
	st.RAMBankReg = 0x01
	st.CacheBaseReg = 0x1230
	gsu.Encode()

	test.ExpectEquality(t, gsu.word(superfx.RegR0+6), uint16(0xbeef))
	test.ExpectEquality(t, gsu.word(superfx.RegR15), uint16(0x8123))
	test.ExpectEquality(t, gsu.window[superfx.RegPBR], uint8(0x02))
	test.ExpectEquality(t, gsu.window[superfx.RegROMBR], uint8(0x44))
	test.ExpectEquality(t, gsu.window[superfx.RegRAMBR], uint8(0x01))
	test.ExpectEquality(t, gsu.word(superfx.RegCBR), uint16(0x1230))
}

func TestDecodeEncodeIdentity(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)

	for _, sfr := range []uint16{0x0000, 0x001e, 0x0014, 0x000a, 0x0002} {
		for i := 0; i < 32; i++ {
			gsu.window[superfx.RegR0+i] = uint8(i*7 + int(sfr))
		}
		gsu.window[superfx.RegSFR] = uint8(sfr)
		gsu.window[superfx.RegSFR+1] = uint8(sfr >> 8)
		gsu.window[superfx.RegPBR] = 0x12
		gsu.window[superfx.RegROMBR] = 0x45
		gsu.window[superfx.RegRAMBR] = 0x03
		gsu.window[superfx.RegCBR] = 0x30
		gsu.window[superfx.RegCBR+1] = 0x12

		before := make([]uint8, 0x40)
		copy(before, gsu.window)

		gsu.Decode()
		gsu.Encode()

		for i := 0; i < 32; i++ {
			test.ExpectEquality(t, gsu.window[superfx.RegR0+i], before[superfx.RegR0+i], sfr, i)
		}
		test.ExpectEquality(t, gsu.word(superfx.RegSFR), sfr)
		test.ExpectEquality(t, gsu.window[superfx.RegPBR], before[superfx.RegPBR])
		test.ExpectEquality(t, gsu.window[superfx.RegROMBR], before[superfx.RegROMBR])
		test.ExpectEquality(t, gsu.window[superfx.RegRAMBR], before[superfx.RegRAMBR])
		test.ExpectEquality(t, gsu.word(superfx.RegCBR), uint16(0x1230))
	}
}
