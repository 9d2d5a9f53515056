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

// Package superfx implements the host interface of the GSU coprocessor found
// in SuperFX cartridges.
//
// The host CPU communicates with the GSU through a register window at host
// addresses 0x3000 to 0x32ff. Writes to the window are made with GSU.Write()
// and reads with GSU.Read(). Some writes have side effects: setting the go
// flag in the status register starts an execution session, clearing it
// flushes the instruction cache, writes to the RAM bank register update the
// RAM bank and writes to the cache area are tracked.
//
// An execution session decodes the register window into the State type,
// checks that the program counter is in an area that the GSU can read
// instructions from, runs the instruction engine for a budgeted number of
// instructions and then encodes the State back into the register window.
// Between sessions the register window is the authoritative copy of the GSU
// registers.
//
// The instruction engine is not part of this package. It is supplied to
// NewGSU() as an implementation of the Engine interface and it operates on
// the State type. The State provides the bank tables, the screen pointer
// tables and the plot routines that the engine needs.
//
// The number of instructions in a session is calibrated to the television
// specification and scaled by the SuperFX preferences. At most one session is
// started by the host for each scanline. The Scanline() function should be
// called by the host at the end of every scanline.
package superfx
