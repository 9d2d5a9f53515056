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

import "fmt"

// PlotMode is the pixel format of the screen.
type PlotMode int

// List of valid PlotMode values.
const (
	Plot2bit PlotMode = iota
	Plot4bit
	Plot8bit
)

func (m PlotMode) String() string {
	switch m {
	case Plot2bit:
		return "2bit"
	case Plot4bit:
		return "4bit"
	case Plot8bit:
		return "8bit"
	}
	panic("unknown PlotMode")
}

// Bitplanes returns the number of bitplanes for the plot mode.
func (m PlotMode) Bitplanes() int {
	switch m {
	case Plot2bit:
		return 2
	case Plot4bit:
		return 4
	}
	return 8
}

// plot mode for each value of the SCMR mode bits
var plotModes = [4]PlotMode{Plot2bit, Plot4bit, Plot4bit, Plot8bit}

// PlotOp distinguishes between writing a pixel and reading a pixel.
type PlotOp int

// List of valid PlotOp values.
const (
	OpPlot PlotOp = iota
	OpRpix
)

// PlotRoutine is the pixel routine selected by the screen mode.
type PlotRoutine struct {
	Mode PlotMode
	Op   PlotOp
}

func (r PlotRoutine) String() string {
	if r.Op == OpRpix {
		return fmt.Sprintf("rpix %s", r.Mode)
	}
	return fmt.Sprintf("plot %s", r.Mode)
}

// offsets of each bitplane from the byte pair of a pixel row
var bitplaneOffsets = [8]uint32{0x00, 0x01, 0x10, 0x11, 0x20, 0x21, 0x30, 0x31}

// PixelAddress returns the offset in RAM of the first bitplane of the pixel
// at x,y. The value is only meaningful after the screen pointers have been
// computed.
func (st *State) PixelAddress(x uint8, y uint8) uint32 {
	return st.ScreenRows[y>>3] + st.X[x>>3] + (uint32(y&7) << 1)
}

// Dispatch runs the plot routine for the pixel at x,y. For OpRpix routines
// the color of the pixel is returned. For OpPlot routines the Color register
// is written to the pixel and the return value is zero.
func (st *State) Dispatch(r PlotRoutine, x uint8, y uint8) uint8 {
	if r.Op == OpRpix {
		return st.rpix(r.Mode, x, y)
	}
	st.plot(r.Mode, x, y)
	return 0
}

// PlotPixel writes the Color register to the pixel at x,y using the plot
// routine for the current screen mode. The PlotOption register controls
// dithering and transparency.
func (st *State) PlotPixel(x uint8, y uint8) {
	st.plot(st.Plot.Mode, x, y)
}

// ReadPixel returns the color of the pixel at x,y using the rpix routine for
// the current screen mode.
func (st *State) ReadPixel(x uint8, y uint8) uint8 {
	return st.rpix(st.Rpix.Mode, x, y)
}

func (st *State) plot(mode PlotMode, x uint8, y uint8) {
	c := st.Color

	// dithering uses the high nibble on alternate pixels
	if mode != Plot8bit && st.PlotOption&0x02 != 0 && (x^y)&0x01 != 0 {
		c >>= 4
	}

	// transparency
	if st.PlotOption&0x01 == 0 {
		switch mode {
		case Plot2bit:
			if c&0x03 == 0 {
				return
			}
		case Plot4bit:
			if c&0x0f == 0 {
				return
			}
		case Plot8bit:
			if st.PlotOption&0x08 != 0 {
				if c&0x0f == 0 {
					return
				}
			} else if c == 0 {
				return
			}
		}
	}

	a := st.PixelAddress(x, y)
	v := uint8(0x80 >> (x & 0x07))

	for p := 0; p < mode.Bitplanes(); p++ {
		i := a + bitplaneOffsets[p]
		if int(i) >= len(st.RAM) {
			continue
		}
		if c&(1<<p) != 0 {
			st.RAM[i] |= v
		} else {
			st.RAM[i] &^= v
		}
	}
}

func (st *State) rpix(mode PlotMode, x uint8, y uint8) uint8 {
	a := st.PixelAddress(x, y)
	v := uint8(0x80 >> (x & 0x07))

	var c uint8
	for p := 0; p < mode.Bitplanes(); p++ {
		i := a + bitplaneOffsets[p]
		if int(i) >= len(st.RAM) {
			continue
		}
		if st.RAM[i]&v != 0 {
			c |= 1 << p
		}
	}

	return c
}
