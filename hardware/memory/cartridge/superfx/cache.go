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

// cacheWriteAccess is called when the host writes to the cache area of the
// register window. Writing the last byte of a 16 byte cache line marks the
// line as valid. Line zero is the first 16 bytes of the cache area.
func (st *State) cacheWriteAccess(addr uint16) {
	offset := addr - addrCache
	if offset&0x00f == 0x00f {
		st.CacheFlags |= 1 << ((offset >> 4) & 0x1f)
	}
}

// flushCache is called when the host clears the go flag. The cache base
// register is reset.
func (st *State) flushCache() {
	st.CacheFlags = 0
	st.CacheBaseReg = 0
	st.CacheActive = false
}

// FlushCache invalidates the cache. For use by the instruction engine. The
// cache base register is left unchanged.
func (st *State) FlushCache() {
	st.CacheFlags = 0
	st.CacheActive = false
}

// ActivateCache is for use by the instruction engine when it executes the
// CACHE instruction. The cache base is set to the 16 byte aligned program
// counter and the cache is flushed if the base has changed or if the cache
// was not active.
func (st *State) ActivateCache(pc uint16) {
	base := pc & 0xfff0
	if st.CacheBaseReg != base || !st.CacheActive {
		st.FlushCache()
		st.CacheBaseReg = base
		st.CacheActive = true
	}
}

// CacheLineValid returns true if the cache line containing the program
// counter value has been filled. Returns false if the cache is inactive or if
// the address is outside of the cache.
func (st *State) CacheLineValid(pc uint16) bool {
	if !st.CacheActive || pc < st.CacheBaseReg || uint32(pc) >= uint32(st.CacheBaseReg)+CacheSize {
		return false
	}
	line := (pc - st.CacheBaseReg) >> 4
	return st.CacheFlags&(1<<line) != 0
}
