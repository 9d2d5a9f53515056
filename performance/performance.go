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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/hardware/specification"
)

// Emulation is the part of the GSU that is driven by Check().
type Emulation interface {
	Scanline()
	Spec() specification.Spec
}

// the timers are only checked every brake scanlines
const brake = 64

// Result of a performance check.
type Result struct {
	Scanlines int
	Frames    int
	Duration  time.Duration
	FPS       float64
	Accuracy  float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%", r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy)
}

// Measure runs the emulation for the specified duration, after a leadtime
// during which the framerate is allowed to settle.
func Measure(emu Emulation, leadtime time.Duration, duration time.Duration) Result {
	var lines int
	var startLine int
	var start time.Time

	lead := time.After(leadtime)
	var end <-chan time.Time

	done := false
	for !done {
		for i := 0; i < brake; i++ {
			emu.Scanline()
		}
		lines += brake

		select {
		case <-lead:
			lead = nil
			startLine = lines
			start = time.Now()
			end = time.After(duration)
		case <-end:
			done = true
		default:
		}
	}

	spec := emu.Spec()

	r := Result{
		Scanlines: lines - startLine,
		Duration:  time.Since(start),
	}
	r.Frames = r.Scanlines / spec.ScanlinesTotal
	r.FPS, r.Accuracy = CalcFPS(spec, r.Frames, r.Duration.Seconds())

	return r
}

// Check the performance of the emulation for the duration, which is parsed
// with time.ParseDuration(). The result is written to output.
func Check(output io.Writer, profile Profile, emu Emulation, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	var r Result
	err = RunProfiler(profile, "performance", func() error {
		r = Measure(emu, 2*time.Second, dur)
		return nil
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(output, r)
	return err
}
