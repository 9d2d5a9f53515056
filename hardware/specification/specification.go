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

// Package specification contains the timing specifications of the
// television standards supported by the host console. The values are used to
// calibrate the number of GSU instructions that can be executed for each
// scanline.
package specification

import (
	"strings"

	"github.com/jetsetilly/superfx/hardware/clocks"
)

// Spec is used to define the timing of a television standard.
type Spec struct {
	ID string

	// the master clock of the host console in MHz
	MasterClock float64

	// the number of scanlines in a frame
	ScanlinesTotal int

	// the number of frames per second. this is the value used by the
	// emulation and not a value derived from the clock
	FramesPerSecond float64
}

// SpecNTSC is the specification for NTSC consoles.
var SpecNTSC = Spec{
	ID:              "NTSC",
	MasterClock:     clocks.NTSC,
	ScanlinesTotal:  262,
	FramesPerSecond: 60.0988,
}

// SpecPAL is the specification for PAL consoles.
var SpecPAL = Spec{
	ID:              "PAL",
	MasterClock:     clocks.PAL,
	ScanlinesTotal:  312,
	FramesPerSecond: 50.0070,
}

// SpecList is the list of all possible specification IDs.
var SpecList = []string{"NTSC", "PAL"}

// SearchSpec looks for a specification ID in the string. The search is case
// insensitive. Returns false if the string does not contain a valid ID.
func SearchSpec(s string) (Spec, bool) {
	s = strings.ToUpper(s)
	switch {
	case strings.Contains(s, SpecPAL.ID):
		return SpecPAL, true
	case strings.Contains(s, SpecNTSC.ID):
		return SpecNTSC, true
	}
	return SpecNTSC, false
}

// MeasuredFramesPerSecond returns the number of frames per second implied by
// the master clock and the number of scanlines.
func (spec Spec) MeasuredFramesPerSecond() float64 {
	return spec.MasterClock * 1000000 / float64(clocks.CyclesPerScanline*spec.ScanlinesTotal)
}
