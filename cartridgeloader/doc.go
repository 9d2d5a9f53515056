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

// Package cartridgeloader is used to load SuperFX cartridge data from a file
// or over HTTP.
//
// The simplest use of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/starfox.sfc")
//	err := cl.Load()
//
// After a successful Load() the Hash field contains the SHA1 hash of the
// cartridge data. If the Hash field is set before calling Load() the loaded
// data must match it.
//
// The SuperFX() function reads the cartridge header and returns the
// information required to reset the GSU: the number of ROM and RAM banks and
// the television specification implied by the destination code.
package cartridgeloader
