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

package logger

import (
	"io"
	"strings"
)

// ANSI sequences used by the Colorizer.
const (
	dimRed    = "\033[2;31m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The first line
// of a write is output as normal and any subsequent lines are dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	var n int

	l := strings.Split(strings.TrimSpace(string(p)), "\n")

	m, err := io.WriteString(c.out, l[0]+"\n")
	n += m
	if err != nil {
		return n, err
	}
	if len(l) == 1 {
		return len(p), nil
	}

	m, err = io.WriteString(c.out, dimRed)
	n += m
	if err != nil {
		return n, err
	}
	defer io.WriteString(c.out, normalPen)

	for _, s := range l[1:] {
		m, err := io.WriteString(c.out, s+"\n")
		n += m
		if err != nil {
			return n, err
		}
	}

	return len(p), nil
}
