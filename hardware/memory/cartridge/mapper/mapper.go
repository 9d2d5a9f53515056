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

package mapper

// CartRegistersBus defines the operations required for a debugger to access
// the registers of a coprocessor in a cartridge.
//
// The coprocessor is allowed to panic if it is not interfaced with correctly.
// The format of the register argument to PutRegister() should be documented
// by the implementation.
type CartRegistersBus interface {
	// GetRegisters returns a copy of the coprocessor's registers
	GetRegisters() CartRegisters

	// Update a register in the coprocessor with new data.
	PutRegister(register string, data string)
}

// CartRegisters conceptualises the coprocessor specific registers that are
// inaccessible through normal addressing.
type CartRegisters interface {
	String() string
}

// CartRAMbus is implemented by cartridges with RAM that is accessible by the
// coprocessor.
type CartRAMbus interface {
	GetRAM() []CartRAM

	// Update the value at the index of the specified RAM bank. Note that this
	// is not the address; it refers to the Data array as returned by GetRAM()
	PutRAM(bank int, idx int, data uint8)
}

// CartRAM represents a single segment of RAM in the cartridge. Data is a
// copy of the RAM and changing it has no effect on the emulation.
type CartRAM struct {
	Label  string
	Origin uint32
	Data   []uint8
	Mapped bool
}

// CartStaticBus defines the operations required for a debugger to access the
// ROM of the cartridge as it is seen by the coprocessor.
type CartStaticBus interface {
	// GetStatic returns the static areas of the cartridge
	GetStatic() []CartStatic
}

// CartStatic represents a single area of static memory.
type CartStatic struct {
	Label  string
	Origin uint32
	Data   []uint8
}
