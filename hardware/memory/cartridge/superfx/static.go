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

// size of a LoROM block as seen by the host CPU
const loromBlock = 0x8000

// LayoutROM arranges cartridge data into the buffer expected by the bank
// tables. Returns the buffer and the number of 64K banks of ROM.
//
// The cartridge data is copied to the start of the buffer, where it is
// addressed linearly by banks 0x40 to 0x5f. A second copy of the data is
// placed at 0x800000 with every 32K block repeated twice in a 64K bank. This
// is how banks 0x00 to 0x3f see the ROM.
func LayoutROM(data []uint8) ([]uint8, int) {
	size, banks := LayoutROMSize(len(data))
	blocks := banks * 2
	rom := make([]uint8, size)

	copy(rom[:banks*BankSize], data)

	for c := 0; c < blocks; c++ {
		src := c * loromBlock
		if src >= len(data) {
			break
		}
		end := min(src+loromBlock, len(data))
		dest := mirrorOrigin + c*BankSize
		copy(rom[dest:], data[src:end])
		copy(rom[dest+loromBlock:], data[src:end])
	}

	return rom, banks
}

// LayoutROMSize returns the size of the buffer created by LayoutROM() for
// cartridge data of length n and the number of 64K banks of ROM. Data
// larger than the GSU can address is truncated.
func LayoutROMSize(n int) (int, int) {
	banks := min(max((n+BankSize-1)/BankSize, 1), ROMBanksMax)
	return mirrorOrigin + banks*2*BankSize, banks
}
