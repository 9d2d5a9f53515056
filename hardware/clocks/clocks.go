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

// Package clocks defines the master clock frequencies of the host console
// and the clock frequencies of the GSU coprocessor. All values are in MHz.
package clocks

// Master clock of the host console.
const (
	NTSC = 21.477272
	PAL  = 21.281370
)

// Master clock cycles for each scanline of the host console.
const CyclesPerScanline = 1364

// The GSU runs from the master clock. The first revision of the chip divides
// the master clock by two. Later revisions can run at the full master clock
// rate when selected by the CLSR register.
const (
	GSU_NTSC   = NTSC / 2
	GSU_PAL    = PAL / 2
	GSU2x_NTSC = NTSC
	GSU2x_PAL  = PAL
)
