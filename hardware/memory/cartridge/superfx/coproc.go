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

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/superfx/hardware/memory/cartridge/mapper"
)

// Registers is a copy of the register window as returned by GetRegisters().
type Registers struct {
	R     [16]uint16
	SFR   uint16
	BRAMR uint8
	PBR   uint8
	ROMBR uint8
	CFGR  uint8
	SCBR  uint8
	CLSR  uint8
	SCMR  uint8
	VCR   uint8
	RAMBR uint8
	CBR   uint16
}

func (r Registers) String() string {
	s := strings.Builder{}
	for i := range r.R {
		s.WriteString(fmt.Sprintf("R%-2d=%04x ", i, r.R[i]))
		if i%4 == 3 {
			s.WriteString("\n")
		}
	}
	s.WriteString(fmt.Sprintf("SFR=%04x PBR=%02x ROMBR=%02x RAMBR=%02x CBR=%04x\n", r.SFR, r.PBR, r.ROMBR, r.RAMBR, r.CBR))
	s.WriteString(fmt.Sprintf("SCBR=%02x SCMR=%02x CLSR=%02x CFGR=%02x BRAMR=%02x VCR=%02x", r.SCBR, r.SCMR, r.CLSR, r.CFGR, r.BRAMR, r.VCR))
	return s.String()
}

// GetRegisters implements the mapper.CartRegistersBus interface.
func (gsu *GSU) GetRegisters() mapper.CartRegisters {
	st := &gsu.state
	w := st.Window

	var r Registers
	for i := range r.R {
		r.R[i] = st.readWord(RegR0 + i*2)
	}
	r.SFR = st.readWord(RegSFR)
	r.BRAMR = w[RegBRAMR]
	r.PBR = w[RegPBR]
	r.ROMBR = w[RegROMBR]
	r.CFGR = w[RegCFGR]
	r.SCBR = w[RegSCBR]
	r.CLSR = w[RegCLSR]
	r.SCMR = w[RegSCMR]
	r.VCR = w[RegVCR]
	r.RAMBR = w[RegRAMBR]
	r.CBR = st.readWord(RegCBR)

	return r
}

// PutRegister implements the mapper.CartRegistersBus interface. The data
// string is a hexadecimal number. Valid register names:
//
//	r0 to r15 = uint16
//	sfr = uint16
//	cbr = uint16
//	pbr, rombr = uint8 (masked to 7 bits)
//	rambr, scbr, scmr, clsr, cfgr, bramr = uint8
//
// Unlike the host bus, changing a register does not start a session. Note
// that PutRegister() will panic() if the register or data string is invalid.
func (gsu *GSU) PutRegister(register string, data string) {
	st := &gsu.state
	w := st.Window

	v, err := strconv.ParseUint(data, 16, 16)
	if err != nil {
		panic(fmt.Sprintf("gsu: unrecognised data [%s]", data))
	}

	register = strings.ToLower(register)

	if strings.HasPrefix(register, "r") && !strings.HasPrefix(register, "ram") && !strings.HasPrefix(register, "rom") {
		n, err := strconv.Atoi(register[1:])
		if err != nil || n < 0 || n > 15 {
			panic(fmt.Sprintf("gsu: unrecognised register [%s]", register))
		}
		st.writeWord(RegR0+n*2, uint16(v))
		return
	}

	switch register {
	case "sfr":
		st.writeWord(RegSFR, uint16(v))
	case "cbr":
		st.writeWord(RegCBR, uint16(v))
	case "pbr":
		w[RegPBR] = uint8(v) & 0x7f
	case "rombr":
		w[RegROMBR] = uint8(v) & 0x7f
	case "rambr":
		w[RegRAMBR] = uint8(v)
		st.updateRAMBank(uint8(v))
	case "scbr":
		w[RegSCBR] = uint8(v)
		st.MarkScreenDirty()
	case "scmr":
		w[RegSCMR] = uint8(v)
	case "clsr":
		w[RegCLSR] = uint8(v)
	case "cfgr":
		w[RegCFGR] = uint8(v)
	case "bramr":
		w[RegBRAMR] = uint8(v)
	default:
		panic(fmt.Sprintf("gsu: unrecognised register [%s]", register))
	}
}

// CoProcID implements the mapper.CartCoProc interface.
func (gsu *GSU) CoProcID() string {
	return "GSU"
}

// CoProcExecutionState implements the mapper.CartCoProc interface.
func (gsu *GSU) CoProcExecutionState() mapper.CoProcExecutionState {
	return gsu.exec
}

// SetYieldHook implements the mapper.CartCoProc interface.
func (gsu *GSU) SetYieldHook(hook mapper.CartYieldHook) {
	if hook == nil {
		hook = mapper.StubCartYieldHook{}
	}
	gsu.yieldHook = hook
}

// CoProcRegister implements the mapper.CartCoProc interface. Registers 0 to
// 15 are the general purpose registers and register 16 is the status flag
// register. Values are read from the register window.
func (gsu *GSU) CoProcRegister(n int) (uint32, bool) {
	switch {
	case n >= 0 && n < 16:
		return uint32(gsu.state.readWord(RegR0 + n*2)), true
	case n == 16:
		return uint32(gsu.state.readWord(RegSFR)), true
	}
	return 0, false
}

// CoProcRegisterSet implements the mapper.CartCoProc interface.
func (gsu *GSU) CoProcRegisterSet(n int, value uint32) bool {
	switch {
	case n >= 0 && n < 16:
		gsu.state.writeWord(RegR0+n*2, uint16(value))
	case n == 16:
		gsu.state.writeWord(RegSFR, uint16(value))
	default:
		return false
	}
	return true
}

// CoProcRead8bit implements the mapper.CartCoProc interface. The address is
// a 24 bit GSU address with the bank in the upper eight bits.
func (gsu *GSU) CoProcRead8bit(addr uint32) (uint8, bool) {
	bank := gsu.state.View(gsu.state.tables.ROM[(addr>>16)&0xff])
	idx := int(addr & 0xffff)
	if idx >= len(bank) {
		return 0, false
	}
	return bank[idx], true
}

// CoProcRead16bit implements the mapper.CartCoProc interface. Values are
// little endian. The read does not cross into the next bank.
func (gsu *GSU) CoProcRead16bit(addr uint32) (uint16, bool) {
	lo, ok := gsu.CoProcRead8bit(addr)
	if !ok {
		return 0, false
	}
	hi, ok := gsu.CoProcRead8bit((addr & 0xff0000) | ((addr + 1) & 0xffff))
	if !ok {
		return 0, false
	}
	return uint16(lo) | uint16(hi)<<8, true
}

// GetRAM implements the mapper.CartRAMbus interface.
func (gsu *GSU) GetRAM() []mapper.CartRAM {
	st := &gsu.state
	ram := make([]mapper.CartRAM, 0, st.RAMBanks)
	for b := 0; b < st.RAMBanks; b++ {
		v := st.View(st.tables.RAM[b])
		c := make([]uint8, len(v))
		copy(c, v)
		ram = append(ram, mapper.CartRAM{
			Label:  fmt.Sprintf("RAM %d", b),
			Origin: uint32(0x70+b) << 16,
			Data:   c,
			Mapped: b == int(st.RAMBankReg),
		})
	}
	return ram
}

// PutRAM implements the mapper.CartRAMbus interface.
func (gsu *GSU) PutRAM(bank int, idx int, data uint8) {
	st := &gsu.state
	if bank < 0 || bank >= st.RAMBanks {
		return
	}
	v := st.View(st.tables.RAM[bank])
	if idx < 0 || idx >= len(v) {
		return
	}
	v[idx] = data
}

// GetStatic implements the mapper.CartStaticBus interface.
func (gsu *GSU) GetStatic() []mapper.CartStatic {
	st := &gsu.state
	end := min(st.ROMBanks*BankSize, len(st.ROM))
	return []mapper.CartStatic{
		{
			Label:  "ROM",
			Origin: 0x400000,
			Data:   st.ROM[:end],
		},
	}
}
