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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/superfx/cartridgeloader"
	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/hardware/specification"
	"github.com/jetsetilly/superfx/test"
)

// cartridge creates LoROM cartridge data with a header at 0x7fb0
func cartridge(size int, mapMode uint8, chip uint8, destination uint8, expansionRAM uint8) []uint8 {
	data := make([]uint8, size)
	hdr := data[0x7fb0:0x8000]
	copy(hdr[0x10:0x25], fmt.Sprintf("%-21s", "GSU TEST"))
	hdr[0x0d] = expansionRAM
	hdr[0x25] = mapMode
	hdr[0x26] = chip
	hdr[0x29] = destination
	return data
}

func writeCartridge(t *testing.T, name string, data []uint8) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
	return pth
}

func TestLoad(t *testing.T) {
	data := cartridge(0x20000, 0x20, 0x15, 0x01, 0x05)
	cl := cartridgeloader.NewLoader(writeCartridge(t, "test.sfc", data))

	test.ExpectEquality(t, cl.HasLoaded(), false)
	test.ExpectEquality(t, cl.ShortName(), "test")

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), len(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
}

func TestLoadMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.sfc"))
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}

func TestLoadUnsupportedScheme(t *testing.T) {
	cl := cartridgeloader.NewLoader("ftp://example.com/test.sfc")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnsupportedURL))
}

func TestExpectedHash(t *testing.T) {
	data := cartridge(0x20000, 0x20, 0x15, 0x01, 0x05)
	pth := writeCartridge(t, "test.sfc", data)

	cl := cartridgeloader.NewLoader(pth)
	cl.Hash = "0000"
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectEquality(t, cl.HasLoaded(), false)

	cl = cartridgeloader.NewLoader(pth)
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	test.ExpectSuccess(t, cl.Load())
}

func TestCopierHeader(t *testing.T) {
	data := cartridge(0x20000, 0x20, 0x15, 0x01, 0x05)
	withCopier := append(make([]uint8, 512), data...)

	cl := cartridgeloader.NewLoader(writeCartridge(t, "test.smc", withCopier))
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), len(data))
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	hdr, err := cl.SuperFX()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title, "GSU TEST")
}

func TestLoadHTTP(t *testing.T) {
	data := cartridge(0x20000, 0x20, 0x15, 0x01, 0x05)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.sfc" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/test.sfc")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.sfc")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
}

func TestSuperFXHeader(t *testing.T) {
	cl := cartridgeloader.Loader{Data: cartridge(0x20000, 0x30, 0x1a, 0x00, 0x06)}

	hdr, err := cl.SuperFX()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title, "GSU TEST")
	test.ExpectEquality(t, hdr.MapMode, uint8(0x30))
	test.ExpectEquality(t, hdr.FastROM, true)
	test.ExpectEquality(t, hdr.ChipType, uint8(0x1a))
	test.ExpectEquality(t, hdr.Spec.ID, specification.SpecNTSC.ID)
	test.ExpectEquality(t, hdr.ROMBanks, 2)
	test.ExpectEquality(t, hdr.RAMBanks, 1)
}

func TestSuperFXRegion(t *testing.T) {
	for _, v := range []struct {
		destination uint8
		spec        string
	}{
		{destination: 0x00, spec: "NTSC"},
		{destination: 0x01, spec: "NTSC"},
		{destination: 0x02, spec: "PAL"},
		{destination: 0x0c, spec: "PAL"},
		{destination: 0x0d, spec: "NTSC"},
	} {
		cl := cartridgeloader.Loader{Data: cartridge(0x10000, 0x20, 0x13, v.destination, 0)}
		hdr, err := cl.SuperFX()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, hdr.Spec.ID, v.spec, v.destination)
		test.ExpectEquality(t, hdr.RAMBanks, 2, v.destination)
	}
}

func TestNotSuperFX(t *testing.T) {
	// HiROM
	cl := cartridgeloader.Loader{Data: cartridge(0x10000, 0x21, 0x15, 0x01, 0)}
	_, err := cl.SuperFX()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NotSuperFX))

	// no coprocessor
	cl = cartridgeloader.Loader{Data: cartridge(0x10000, 0x20, 0x02, 0x01, 0)}
	_, err = cl.SuperFX()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NotSuperFX))

	// DSP coprocessor
	cl = cartridgeloader.Loader{Data: cartridge(0x10000, 0x20, 0x03, 0x01, 0)}
	_, err = cl.SuperFX()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NotSuperFX))
}

func TestShortData(t *testing.T) {
	cl := cartridgeloader.Loader{}
	_, err := cl.SuperFX()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NotLoaded))

	cl = cartridgeloader.Loader{Data: make([]uint8, 0x7000)}
	_, err = cl.SuperFX()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NoHeader))
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsSupportedExtension("starfox.sfc"))
	test.ExpectSuccess(t, cartridgeloader.IsSupportedExtension("STARFOX.SMC"))
	test.ExpectFailure(t, cartridgeloader.IsSupportedExtension("starfox.txt"))
}
