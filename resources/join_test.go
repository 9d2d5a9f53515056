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

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/superfx/resources"
	"github.com/jetsetilly/superfx/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	pth, err := resources.JoinPath("scripts", "bench.lua")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".superfx", "scripts", "bench.lua"))

	// directory has been created but the file has not
	info, err := os.Stat(filepath.Join(".superfx", "scripts"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	again, err := resources.JoinPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, again, pth)
}
