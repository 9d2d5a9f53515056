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

package cartridgeloader

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/hardware/memory/cartridge/superfx"
	"github.com/jetsetilly/superfx/hardware/specification"
)

// Sentinel error patterns returned by SuperFX().
const (
	NoHeader   = "cartridgeloader: header: %v"
	NotSuperFX = "cartridgeloader: not a SuperFX cartridge: %v"
)

// the header as seen on the host bus
const (
	headerAddress = 0x00ffb0
	headerSize    = 0x50
)

// offsets into the header of fields that are read directly
const (
	offsetExpansionRAM = 0x0d
	offsetTitle        = 0x10
	titleLen           = 21
	offsetMapMode      = 0x25
	offsetChipType     = 0x26
	offsetDestination  = 0x29
)

// LoROM map mode with the FastROM bit removed
const mapModeLoROM = 0x20

// destination codes of the NTSC regions
const (
	destinationJapan        = 0x00
	destinationNorthAmerica = 0x01
)

// loromOffset converts a LoROM bus address to an offset in the cartridge
// data. Each bank maps 32K of data into the upper half of the bank.
func loromOffset(addr uint32) (int, error) {
	if addr&0x8000 == 0 {
		return 0, fmt.Errorf("bus address %06x is not in ROM", addr)
	}
	bank := (addr >> 16) & 0x7f
	return int(bank<<15 | addr&0x7fff), nil
}

// default number of RAM banks when the header does not specify an expansion
// RAM size
const defaultRAMBanks = 2

// Header is the information in the cartridge header that is relevant to the
// GSU.
type Header struct {
	Title    string
	MapMode  uint8
	FastROM  bool
	ChipType uint8

	// the destination code and the television specification it implies
	Destination uint8
	Spec        specification.Spec

	// number of 64K banks of ROM and RAM
	ROMBanks int
	RAMBanks int
}

func (h Header) String() string {
	speed := "SlowROM"
	if h.FastROM {
		speed = "FastROM"
	}
	return fmt.Sprintf("%s [%s %s chip=%#02x] ROM=%d RAM=%d", h.Title, h.Spec.ID, speed,
		h.ChipType, h.ROMBanks, h.RAMBanks)
}

// SuperFX reads the cartridge header. Returns an error if the cartridge does
// not have a SuperFX chip.
func (cl Loader) SuperFX() (Header, error) {
	if !cl.HasLoaded() {
		return Header{}, curated.Errorf(NotLoaded)
	}

	start, err := loromOffset(headerAddress)
	if err != nil {
		return Header{}, curated.Errorf(NoHeader, err)
	}

	if start+headerSize > len(cl.Data) {
		return Header{}, curated.Errorf(NoHeader, "cartridge data is too short")
	}
	raw := cl.Data[start : start+headerSize]

	hdr := Header{
		Title:       strings.TrimRight(string(raw[offsetTitle:offsetTitle+titleLen]), " \x00"),
		MapMode:     raw[offsetMapMode],
		FastROM:     raw[offsetMapMode]&0x10 != 0,
		ChipType:    raw[offsetChipType],
		Destination: raw[offsetDestination],
	}

	if hdr.MapMode&^0x10 != mapModeLoROM {
		return Header{}, curated.Errorf(NotSuperFX, fmt.Sprintf("map mode %#02x", hdr.MapMode))
	}

	// chip types 0x13 to 0x1f are SuperFX variations
	if hdr.ChipType&0xf0 != 0x10 || hdr.ChipType&0x0f < 0x03 {
		return Header{}, curated.Errorf(NotSuperFX, fmt.Sprintf("chip type %#02x", hdr.ChipType))
	}

	switch {
	case hdr.Destination == destinationJapan || hdr.Destination == destinationNorthAmerica:
		hdr.Spec = specification.SpecNTSC
	case hdr.Destination >= 0x02 && hdr.Destination <= 0x0c:
		hdr.Spec = specification.SpecPAL
	default:
		hdr.Spec = specification.SpecNTSC
	}

	_, hdr.ROMBanks = superfx.LayoutROMSize(len(cl.Data))
	hdr.RAMBanks = ramBanks(raw[offsetExpansionRAM])

	return hdr, nil
}

// ramBanks returns the number of 64K RAM banks for the expansion RAM size
// field. The field is the size in kilobytes as a power of two.
func ramBanks(n uint8) int {
	if n == 0 || n > 10 {
		return defaultRAMBanks
	}
	kb := 1 << n
	return min(max((kb+63)/64, 1), superfx.RAMBanksMax)
}
