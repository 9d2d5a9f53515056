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
	"math"
)

// InstructionsPerSecond is the empirical number of GSU instructions executed
// for each second of emulation at the standard clock rate.
const InstructionsPerSecond = 5823405.0

// SetTiming calculates the instruction budgets for each scanline.
//
// The base budget is the number of instructions per second divided between
// the scanlines in a second. The budget for the faster clock is the base
// budget multiplied by doubleClock. Both budgets are scaled by the overclock
// percentage and rounded to the nearest integer.
func (st *State) SetTiming(framesPerSecond float64, linesPerFrame int, doubleClock float64, overclock int) {
	base := InstructionsPerSecond * ((1.0 / framesPerSecond) / float64(linesPerFrame))
	double := base * doubleClock
	mult := float64(overclock) / 100.0
	st.SpeedPerLine = uint32(math.Round(base * mult))
	st.SpeedPerLine2x = uint32(math.Round(double * mult))
}
