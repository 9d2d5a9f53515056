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
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".SFC", ".SMC", ".FIG", ".BIN"}

// IsSupportedExtension returns true if the filename has one of the extensions
// in FileExtensions. The comparison is case insensitive.
func IsSupportedExtension(filename string) bool {
	f := strings.ToUpper(filename)
	for _, e := range FileExtensions {
		if strings.HasSuffix(f, e) {
			return true
		}
	}
	return false
}
