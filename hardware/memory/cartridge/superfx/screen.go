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

// the shift amounts used to generate the screen pointer tables. the tables
// are organised by screen height and the values are indexed by screen mode
type screenShifts struct {
	// the size of a tile in bytes. rows of tiles are stored one after the
	// other so this is also the row stride
	tile [4]uint

	// columns of tiles are a multiple of the screen height apart. the
	// column offset is (i<<column)+(i<<extra). when extra is zero it is
	// not used
	column [4]uint
	extra  [4]uint
}

var shifts = map[int]screenShifts{
	128: {tile: [4]uint{4, 5, 6, 6}, column: [4]uint{8, 9, 10, 10}},
	160: {tile: [4]uint{4, 5, 6, 6}, column: [4]uint{8, 9, 10, 10}, extra: [4]uint{6, 7, 8, 8}},
	192: {tile: [4]uint{4, 5, 6, 6}, column: [4]uint{8, 9, 10, 10}, extra: [4]uint{7, 8, 9, 9}},
}

// shifts for the 256 line screen, which is organised as two halves of 16
// tile rows
var shifts256 = struct {
	rowHalf [4]uint
	row     [4]uint
	colHalf [4]uint
	col     [4]uint
}{
	rowHalf: [4]uint{9, 10, 11, 11},
	row:     [4]uint{8, 9, 10, 10},
	colHalf: [4]uint{8, 9, 10, 10},
	col:     [4]uint{4, 5, 6, 6},
}

// MarkScreenDirty forces the screen pointer tables to be recalculated on the
// next decode. Called when the host writes to the SCBR register.
func (st *State) MarkScreenDirty() {
	st.scbrDirty = true
}

// computeScreenPointers fills the ScreenRows and X tables. A pixel at x,y is
// in the byte pair at:
//
//	ScreenRows[y>>3] + X[x>>3] + ((y&7)<<1)
//
// The tables are only recalculated if the mode, the height or the screen
// base have changed since the previous calculation.
func (st *State) computeScreenPointers() {
	if st.Mode == st.prevMode && st.ScreenHeight == st.prevScreenHeight && !st.scbrDirty {
		return
	}

	mode := st.Mode & 0x03

	if s, ok := shifts[st.ScreenHeight]; ok {
		for i := uint32(0); i < 32; i++ {
			st.ScreenRows[i] = st.ScreenBase + (i << s.tile[mode])
			st.X[i] = i << s.column[mode]
			if s.extra[mode] != 0 {
				st.X[i] += i << s.extra[mode]
			}
		}
	} else {
		s := shifts256
		for i := uint32(0); i < 32; i++ {
			st.ScreenRows[i] = st.ScreenBase + ((i & 0x10) << s.rowHalf[mode]) + ((i & 0x0f) << s.row[mode])
			st.X[i] = ((i & 0x10) << s.colHalf[mode]) + ((i & 0x0f) << s.col[mode])
		}
	}

	st.prevMode = st.Mode
	st.prevScreenHeight = st.ScreenHeight
	st.scbrDirty = false
}
