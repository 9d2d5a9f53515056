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

// Package script is a Lua test bench for the GSU. A script drives the host
// side of the GSU through the gsu table and can supply the instruction
// engine by defining a global function called run:
//
//	function run(budget)
//		gsu.setreg(0, gsu.reg(0) + 1)
//		gsu.stop()
//		return 1
//	end
//
//	gsu.write(0x303a, 0x10)
//	gsu.write(0x301f, 0x00)
//
// The run function is called once for every session with the instruction
// budget for the session. It returns the number of instructions executed.
// If the script does not define run the GSU stops immediately.
//
// The gsu table has the following functions:
//
//	write(addr, data)     write to the host bus
//	read(addr)            read from the host bus
//	scanline([n])         end the current scanline n times
//	frame()               end every scanline in a frame
//	irq()                 the state of the interrupt line
//	ack()                 acknowledge the interrupt
//	reg(n) setreg(n, v)   general purpose registers (16 is the status register)
//	stop()                clear the go flag
//	fail(code)            stop the session with an error code
//	color(c) por(v)       set the color and plot option registers
//	plot(x, y) rpix(x, y) draw and read pixels
//	cache(pc)             execute the CACHE instruction
//	peek(addr)            read a byte from a 24 bit GSU address
//	poke(bank, idx, v)    write a byte to RAM
//	instructions()        instructions executed by the most recent session
//	log(msg)              add an entry to the log
package script
