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

func TestCacheWriteTracking(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)
	st := gsu.State()

	gsu.write(t, 0x3100, 0x01)
	test.ExpectEquality(t, st.CacheFlags, uint32(0))

	gsu.write(t, 0x310f, 0x01)
	test.ExpectEquality(t, st.CacheFlags, uint32(0x00000001))

	gsu.write(t, 0x311e, 0x01)
	test.ExpectEquality(t, st.CacheFlags, uint32(0x00000001))

	gsu.write(t, 0x32ff, 0x01)
	test.ExpectEquality(t, st.CacheFlags, uint32(0x80000001))

	test.ExpectEquality(t, st.Cache()[0x0f], uint8(0x01))
	test.ExpectEquality(t, st.Cache()[0x1ff], uint8(0x01))
}

func TestCacheFlushOnStop(t *testing.T) {
	gsu := newTestGSU(t, nil, 2, 2)
	st := gsu.State()

	gsu.window[superfx.RegCBR] = 0x34
	gsu.window[superfx.RegCBR+1] = 0x12

	// the GSU can not run because neither RON nor RAN is set
	gsu.write(t, 0x3030, superfx.FlagG)

	st.ActivateCache(0x1234)
	st.CacheFlags = 0xff

	gsu.write(t, 0x3030, 0x00)
	test.ExpectEquality(t, st.CacheFlags, uint32(0))
	test.ExpectEquality(t, st.CacheBaseReg, uint16(0))
	test.ExpectEquality(t, st.CacheActive, false)

	// window is unchanged
	test.ExpectEquality(t, gsu.word(superfx.RegCBR), uint16(0x1234))
}

func TestActivateCache(t *testing.T) {
	st := &superfx.State{}

	st.ActivateCache(0x1234)
	test.ExpectEquality(t, st.CacheBaseReg, uint16(0x1230))
	test.ExpectEquality(t, st.CacheActive, true)

	// same base does not flush
	st.CacheFlags = 0xff
	st.ActivateCache(0x1238)
	test.ExpectEquality(t, st.CacheFlags, uint32(0xff))

	// different base does
	st.ActivateCache(0x2000)
	test.ExpectEquality(t, st.CacheFlags, uint32(0))
	test.ExpectEquality(t, st.CacheBaseReg, uint16(0x2000))

	// engine flush retains the base
	st.CacheFlags = 0xff
	st.FlushCache()
	test.ExpectEquality(t, st.CacheFlags, uint32(0))
	test.ExpectEquality(t, st.CacheBaseReg, uint16(0x2000))
	test.ExpectEquality(t, st.CacheActive, false)

	// reactivating at the same base flushes because the cache was inactive
	st.CacheFlags = 0xff
	st.ActivateCache(0x2000)
	test.ExpectEquality(t, st.CacheFlags, uint32(0))
	test.ExpectEquality(t, st.CacheActive, true)
}

func TestCacheLineValid(t *testing.T) {
	st := &superfx.State{}

	test.ExpectEquality(t, st.CacheLineValid(0x0000), false)

	st.ActivateCache(0x1230)
	st.CacheFlags = 0x02

	test.ExpectEquality(t, st.CacheLineValid(0x1235), false)
	test.ExpectEquality(t, st.CacheLineValid(0x1245), true)
	test.ExpectEquality(t, st.CacheLineValid(0x122f), false)
	test.ExpectEquality(t, st.CacheLineValid(0x1230+superfx.CacheSize), false)
}
