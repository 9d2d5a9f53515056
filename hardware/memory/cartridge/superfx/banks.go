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

// BankTables map bank numbers to memory. The ROM table is indexed by the
// program bank and ROM bank registers and the RAM table by the RAM bank
// register.
type BankTables struct {
	ROM [256]BankPointer
	RAM [RAMBanksMax]BankPointer
}

// NewBankTables builds the bank tables for the number of 64K banks of ROM
// and RAM. The number of ROM banks is clamped to ROMBanksMax. Both values
// must be greater than zero.
//
// Banks 0x40 to 0x5f (and mirrors) map linearly onto ROM. Banks 0x00 to
// 0x3f (and mirrors) map onto the LoROM area at 0x800000, where each 32K
// block of ROM appears twice in a 64K bank. Banks 0x70 to 0x73 are the RAM
// banks.
func NewBankTables(romBanks int, ramBanks int) BankTables {
	var tbl BankTables

	if romBanks > ROMBanksMax {
		romBanks = ROMBanksMax
	}

	for i := range tbl.ROM {
		b := uint32(i & 0x7f)
		if b >= 0x40 {
			if romBanks > 1 {
				b %= uint32(romBanks)
			} else {
				b &= 1
			}
			tbl.ROM[i] = BankPointer{Buffer: BufferROM, Offset: b << 16}
		} else {
			b %= uint32(romBanks * 2)
			tbl.ROM[i] = BankPointer{Buffer: BufferROM, Offset: (b << 16) + mirrorOrigin}
		}
	}

	for i := range tbl.RAM {
		tbl.RAM[i] = BankPointer{Buffer: BufferRAM, Offset: uint32(i%ramBanks) << 16}
		tbl.ROM[0x70+i] = tbl.RAM[i]
	}

	return tbl
}

// updateRAMBank is called when the host writes to the RAM bank register.
func (st *State) updateRAMBank(data uint8) {
	st.RAMBankReg = data & (RAMBanksMax - 1)
	st.RAMBank = st.tables.RAM[st.RAMBankReg]
}
