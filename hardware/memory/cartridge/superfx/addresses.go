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

// The register window begins at this host address.
const WindowOrigin = 0x3000

// Size of the register window including the cache.
const WindowSize = 0x300

// Offsets of registers in the register window.
const (
	// 16 general purpose registers as little endian words
	RegR0  = 0x00
	RegR15 = 0x1e

	// status flag register (16 bit)
	RegSFR = 0x30

	// backup RAM register
	RegBRAMR = 0x33

	// program bank register
	RegPBR = 0x34

	// ROM bank register
	RegROMBR = 0x36

	// config register
	RegCFGR = 0x37

	// screen base register
	RegSCBR = 0x38

	// clock select register
	RegCLSR = 0x39

	// screen mode register
	RegSCMR = 0x3a

	// version code register (read only)
	RegVCR = 0x3b

	// RAM bank register
	RegRAMBR = 0x3c

	// cache base register (16 bit)
	RegCBR = 0x3e

	// the 512 byte instruction cache is mirrored in the register window
	RegCache = 0x100
)

// CacheSize is the size of the instruction cache in bytes.
const CacheSize = 0x200

// Host addresses with side effects when written to.
const (
	addrSFR   = WindowOrigin + RegSFR
	addrSFRhi = WindowOrigin + RegSFR + 1
	addrPBR   = WindowOrigin + RegPBR
	addrROMBR = WindowOrigin + RegROMBR
	addrSCBR  = WindowOrigin + RegSCBR
	addrVCR   = WindowOrigin + RegVCR
	addrRAMBR = WindowOrigin + RegRAMBR
	addrR15hi = WindowOrigin + RegR15 + 1
	addrCache = WindowOrigin + RegCache
)

// Bits in the status flag register.
const (
	FlagI    = 1 << 0
	FlagZ    = 1 << 1
	FlagCY   = 1 << 2
	FlagS    = 1 << 3
	FlagOV   = 1 << 4
	FlagG    = 1 << 5
	FlagR    = 1 << 6
	FlagALT1 = 1 << 8
	FlagALT2 = 1 << 9
	FlagIL   = 1 << 10
	FlagIH   = 1 << 11
	FlagB    = 1 << 12
	FlagIRQ  = 1 << 15
)

// Bits in the screen mode register.
const (
	scmrHT0  = 0x04
	scmrHT1  = 0x20
	scmrRAN  = 0x08
	scmrRON  = 0x10
	scmrMode = 0x03
)

// clock select bit in the CLSR register
const clsrDoubleClock = 0x01

// The number of RAM banks addressable by the GSU.
const RAMBanksMax = 4

// The GSU can not access more than 2MB of ROM.
const ROMBanksMax = 0x20

// Size of a bank in bytes.
const BankSize = 0x10000

// Offset in the ROM buffer of the mirrored LoROM area. See LayoutROM().
const mirrorOrigin = 0x800000
