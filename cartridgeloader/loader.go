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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/superfx/curated"
)

// Sentinel error patterns returned by the Loader.
const (
	LoadError       = "cartridgeloader: %v"
	UnsupportedURL  = "cartridgeloader: unsupported URL scheme (%s)"
	UnexpectedHash  = "cartridgeloader: unexpected hash value"
	NotLoaded       = "cartridgeloader: cartridge has not been loaded"
	copierHeaderLen = 512
)

// Loader specifies the cartridge to load.
type Loader struct {
	// filename of cartridge to load. can be a URL with the http or https
	// scheme
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. any copier header has been removed
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	n := filepath.Base(cl.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a URL scheme of http or
// https are fetched over the network. Everything else is treated as a local
// file.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var data []uint8
	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}
		data, err = io.ReadAll(resp.Body)

	case "file":
		data, err = os.ReadFile(cl.Filename)

	default:
		// a windows drive letter is parsed as a scheme
		if len(scheme) == 1 {
			data, err = os.ReadFile(cl.Filename)
		} else {
			return curated.Errorf(UnsupportedURL, scheme)
		}
	}

	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	// some copier devices prefix the data with a 512 byte header
	if len(data)%0x8000 == copierHeaderLen {
		data = data[copierHeaderLen:]
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
