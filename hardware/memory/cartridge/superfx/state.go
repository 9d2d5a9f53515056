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

// Buffer identifies the memory that a BankPointer refers to.
type Buffer int

// List of valid Buffer values.
const (
	BufferNone Buffer = iota
	BufferROM
	BufferRAM
)

func (b Buffer) String() string {
	switch b {
	case BufferROM:
		return "ROM"
	case BufferRAM:
		return "RAM"
	}
	return "none"
}

// BankPointer is the start of a 64K bank in either ROM or RAM.
type BankPointer struct {
	Buffer Buffer
	Offset uint32
}

func (p BankPointer) String() string {
	return fmt.Sprintf("%s+%06x", p.Buffer, p.Offset)
}

// State is the GSU state as seen by the instruction engine. Fields are
// decoded from the register window at the start of a session and encoded
// back into the window at the end of the session.
type State struct {
	// general purpose registers. R15 is the program counter
	R [16]uint16

	// indexes of the source and destination registers, as selected by the
	// FROM, TO and WITH instructions
	Sreg int
	Dreg int

	// packed status flag register. the Z, S, OV and CY bits are not
	// authoritative during a session. the cached flags below are used
	// instead
	StatusReg uint16

	// cached flags. Zero is zero when the Z flag is set. the S flag is set
	// if bit 15 of Sign is set. the OV flag is set if Overflow is outside
	// the signed 16 bit range. the CY flag is set if Carry is non-zero
	Zero     int32
	Sign     int32
	Overflow int32
	Carry    int32

	ProgramBankReg uint8
	ROMBankReg     uint8
	RAMBankReg     uint8
	CacheBaseReg   uint16

	// banks selected by the bank registers
	ProgramBank BankPointer
	ROMBank     BankPointer
	RAMBank     BankPointer

	// plot option register and color register. these are set by the
	// engine and are not part of the register window
	PlotOption uint8
	Color      uint8

	// screen geometry decoded from the SCBR and SCMR registers
	Mode             int
	ScreenHeight     int
	ScreenRealHeight int
	ScreenSize       int
	ScreenBase       uint32

	// offsets into RAM for each row of 8x8 tiles and the x offset for each
	// column of tiles. see computeScreenPointers()
	ScreenRows [32]uint32
	X          [32]uint32

	prevMode         int
	prevScreenHeight int
	scbrDirty        bool

	// plot routines for the current screen mode
	Plot PlotRoutine
	Rpix PlotRoutine

	// plot routines assigned to the opcode slots 0x04c, 0x14c, 0x24c and
	// 0x34c. the PLOT/RPIX instruction is selected by the ALT flags
	PlotSlots [4]PlotRoutine

	// one bit for each 16 byte line of the cache that has been written to
	// by the host
	CacheFlags  uint32
	CacheActive bool

	// prefetched instruction byte
	Pipe uint8

	// the number of instructions executed in the most recent session
	Instructions uint32

	// non-zero if the engine encountered an error
	ErrorCode uint32

	// instruction budgets for each scanline
	SpeedPerLine   uint32
	SpeedPerLine2x uint32

	// number of 64K banks of ROM and RAM
	ROMBanks int
	RAMBanks int

	// memory belonging to the host. ROM is laid out as described by
	// LayoutROM(). Window is the register window
	ROM    []uint8
	RAM    []uint8
	Window []uint8

	tables BankTables
}

// Tables returns the bank tables built when the GSU was reset.
func (st *State) Tables() BankTables {
	return st.tables
}

// View returns the memory beginning at the bank pointer. The view is limited
// to a single bank. Returns nil if the bank is not in memory.
func (st *State) View(p BankPointer) []uint8 {
	var mem []uint8
	switch p.Buffer {
	case BufferROM:
		mem = st.ROM
	case BufferRAM:
		mem = st.RAM
	default:
		return nil
	}

	if int(p.Offset) >= len(mem) {
		return nil
	}

	end := int(p.Offset) + BankSize
	if end > len(mem) {
		end = len(mem)
	}

	return mem[p.Offset:end]
}

// Cache returns the instruction cache area of the register window.
func (st *State) Cache() []uint8 {
	return st.Window[RegCache : RegCache+CacheSize]
}

func (st *State) readWord(offset int) uint16 {
	return uint16(st.Window[offset]) | uint16(st.Window[offset+1])<<8
}

func (st *State) writeWord(offset int, v uint16) {
	st.Window[offset] = uint8(v)
	st.Window[offset+1] = uint8(v >> 8)
}

func (st *State) String() string {
	return fmt.Sprintf("R15=%04x SFR=%04x PBR=%02x ROMBR=%02x RAMBR=%02x CBR=%04x",
		st.R[15], st.StatusReg, st.ProgramBankReg, st.ROMBankReg, st.RAMBankReg, st.CacheBaseReg)
}
