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

// newPlotGSU returns a GSU with the screen set to 128 lines in the mode
func newPlotGSU(t *testing.T, mode uint8) *testGSU {
	t.Helper()
	gsu := newTestGSU(t, nil, 2, 2)
	gsu.window[superfx.RegSCMR] = mode
	gsu.Decode()
	return gsu
}

func TestPlotRoutines(t *testing.T) {
	for mode, expected := range []superfx.PlotMode{superfx.Plot2bit, superfx.Plot4bit, superfx.Plot4bit, superfx.Plot8bit} {
		st := newPlotGSU(t, uint8(mode)).State()
		test.ExpectEquality(t, st.Plot, superfx.PlotRoutine{Mode: expected, Op: superfx.OpPlot}, mode)
		test.ExpectEquality(t, st.Rpix, superfx.PlotRoutine{Mode: expected, Op: superfx.OpRpix}, mode)
		test.ExpectEquality(t, st.PlotSlots[0], st.Plot, mode)
		test.ExpectEquality(t, st.PlotSlots[1], st.Rpix, mode)
		test.ExpectEquality(t, st.PlotSlots[2], st.Plot, mode)
		test.ExpectEquality(t, st.PlotSlots[3], st.Rpix, mode)
	}

	test.ExpectEquality(t, superfx.PlotRoutine{Mode: superfx.Plot8bit, Op: superfx.OpRpix}.String(), "rpix 8bit")
	test.ExpectEquality(t, superfx.Plot4bit.Bitplanes(), 4)
}

func TestPixelAddress(t *testing.T) {
	st := newPlotGSU(t, 0x01).State()
	test.ExpectEquality(t, st.PixelAddress(9, 10), uint32(32+512+4))
}

func TestPlot4bit(t *testing.T) {
	gsu := newPlotGSU(t, 0x01)
	st := gsu.State()

	st.Color = 0x0b
	st.PlotPixel(9, 10)

	a := st.PixelAddress(9, 10)
	test.ExpectEquality(t, gsu.ram[a], uint8(0x40))
	test.ExpectEquality(t, gsu.ram[a+0x01], uint8(0x40))
	test.ExpectEquality(t, gsu.ram[a+0x10], uint8(0x00))
	test.ExpectEquality(t, gsu.ram[a+0x11], uint8(0x40))

	test.ExpectEquality(t, st.ReadPixel(9, 10), uint8(0x0b))
	test.ExpectEquality(t, st.ReadPixel(8, 10), uint8(0x00))
	test.ExpectEquality(t, st.Dispatch(st.Rpix, 9, 10), uint8(0x0b))
}

func TestTransparency(t *testing.T) {
	gsu := newPlotGSU(t, 0x01)
	st := gsu.State()

	st.Color = 0x0f
	st.PlotPixel(0, 0)

	// low nibble is zero so nothing is plotted
	st.Color = 0x10
	st.PlotPixel(0, 0)
	test.ExpectEquality(t, st.ReadPixel(0, 0), uint8(0x0f))

	// transparency disabled
	st.PlotOption = 0x01
	st.PlotPixel(0, 0)
	test.ExpectEquality(t, st.ReadPixel(0, 0), uint8(0x00))
}

func TestTransparency2bit(t *testing.T) {
	gsu := newPlotGSU(t, 0x00)
	st := gsu.State()

	st.Color = 0x04
	st.PlotPixel(3, 3)
	test.ExpectEquality(t, st.ReadPixel(3, 3), uint8(0x00))

	st.Color = 0x07
	st.PlotPixel(3, 3)
	test.ExpectEquality(t, st.ReadPixel(3, 3), uint8(0x03))
}

func TestTransparency8bit(t *testing.T) {
	gsu := newPlotGSU(t, 0x03)
	st := gsu.State()

	// with the freeze high nibble bit set only the low nibble is tested
	st.PlotOption = 0x08
	st.Color = 0xf0
	st.Dispatch(st.Plot, 2, 2)
	test.ExpectEquality(t, st.ReadPixel(2, 2), uint8(0x00))

	st.Color = 0xf1
	st.Dispatch(st.Plot, 2, 2)
	test.ExpectEquality(t, st.ReadPixel(2, 2), uint8(0xf1))

	st.PlotOption = 0x00
	st.Color = 0xf0
	test.ExpectEquality(t, st.Dispatch(st.Plot, 2, 2), uint8(0x00))
	test.ExpectEquality(t, st.ReadPixel(2, 2), uint8(0xf0))

	st.Color = 0x00
	st.PlotPixel(2, 2)
	test.ExpectEquality(t, st.ReadPixel(2, 2), uint8(0xf0))
}

func TestDither(t *testing.T) {
	gsu := newPlotGSU(t, 0x01)
	st := gsu.State()

	st.PlotOption = 0x03
	st.Color = 0x5a
	st.PlotPixel(0, 0)
	st.PlotPixel(1, 0)
	st.PlotPixel(1, 1)
	test.ExpectEquality(t, st.ReadPixel(0, 0), uint8(0x0a))
	test.ExpectEquality(t, st.ReadPixel(1, 0), uint8(0x05))
	test.ExpectEquality(t, st.ReadPixel(1, 1), uint8(0x0a))

	// no dithering in 8bit mode
	gsu = newPlotGSU(t, 0x03)
	st = gsu.State()
	st.PlotOption = 0x03
	st.Color = 0x5a
	st.PlotPixel(1, 0)
	test.ExpectEquality(t, st.ReadPixel(1, 0), uint8(0x5a))
}
