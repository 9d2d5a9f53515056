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

// screen heights selected by the HT0 and HT1 bits of the SCMR register
var screenHeights = [4]int{128, 160, 192, 256}

// bytes per column of tiles for each screen mode, divided by the number of
// tile rows
var screenMult = [4]int{16, 32, 32, 64}

// readRegisterSpace decodes the register window into the State.
func (st *State) readRegisterSpace() {
	st.ErrorCode = 0

	for i := range st.R {
		st.R[i] = st.readWord(RegR0 + i*2)
	}

	st.StatusReg = st.readWord(RegSFR)
	st.ProgramBankReg = st.Window[RegPBR]
	st.ROMBankReg = st.Window[RegROMBR]
	st.RAMBankReg = st.Window[RegRAMBR] & (RAMBanksMax - 1)
	st.CacheBaseReg = st.readWord(RegCBR)

	st.Zero = 0
	if st.StatusReg&FlagZ == 0 {
		st.Zero = 1
	}
	st.Sign = int32(st.StatusReg&FlagS) << 12
	st.Overflow = int32(st.StatusReg&FlagOV) << 16
	st.Carry = int32(st.StatusReg&FlagCY) >> 2

	st.RAMBank = st.tables.RAM[st.RAMBankReg&0x03]
	st.ROMBank = st.tables.ROM[st.ROMBankReg]
	st.ProgramBank = st.tables.ROM[st.ProgramBankReg]

	st.decodeScreen()

	st.Plot = PlotRoutine{Mode: plotModes[st.Mode], Op: OpPlot}
	st.Rpix = PlotRoutine{Mode: plotModes[st.Mode], Op: OpRpix}
	st.PlotSlots = [4]PlotRoutine{st.Plot, st.Rpix, st.Plot, st.Rpix}

	st.computeScreenPointers()
}

// decodeScreen sets the screen geometry from the SCBR and SCMR registers.
func (st *State) decodeScreen() {
	scmr := st.Window[RegSCMR]

	base := int(st.Window[RegSCBR]) << 10

	var n int
	if scmr&scmrHT0 != 0 {
		n |= 0x01
	}
	if scmr&scmrHT1 != 0 {
		n |= 0x02
	}

	st.ScreenHeight = screenHeights[n]
	st.ScreenRealHeight = screenHeights[n]
	st.Mode = int(scmr & scmrMode)

	if n == 3 {
		st.ScreenSize = (256 / 8) * (256 / 8) * 32
	} else {
		st.ScreenSize = (st.ScreenHeight / 8) * (256 / 8) * screenMult[st.Mode]
	}

	// OBJ mode draws into sprites and always has a height of 256
	if st.PlotOption&0x10 != 0 {
		st.ScreenHeight = 256
	}

	// screen must fit into RAM
	if base+st.ScreenSize > st.RAMBanks*BankSize {
		base = st.RAMBanks*BankSize - st.ScreenSize
	}

	st.ScreenBase = uint32(base)
}

// writeRegisterSpace encodes the State into the register window.
func (st *State) writeRegisterSpace() {
	for i := range st.R {
		st.writeWord(RegR0+i*2, st.R[i])
	}

	st.StatusReg &^= FlagZ | FlagS | FlagOV | FlagCY
	if uint16(st.Zero) == 0 {
		st.StatusReg |= FlagZ
	}
	if st.Sign&0x8000 != 0 {
		st.StatusReg |= FlagS
	}
	if st.Overflow >= 0x8000 || st.Overflow < -0x8000 {
		st.StatusReg |= FlagOV
	}
	if st.Carry != 0 {
		st.StatusReg |= FlagCY
	}

	st.writeWord(RegSFR, st.StatusReg)
	st.Window[RegPBR] = st.ProgramBankReg
	st.Window[RegROMBR] = st.ROMBankReg
	st.Window[RegRAMBR] = st.RAMBankReg
	st.writeWord(RegCBR, st.CacheBaseReg)
}
