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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/superfx/cartridgeloader"
	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/environment"
	"github.com/jetsetilly/superfx/hardware/specification"
	"github.com/jetsetilly/superfx/logger"
	"github.com/jetsetilly/superfx/modalflag"
	"github.com/jetsetilly/superfx/performance"
	"github.com/jetsetilly/superfx/prefs"
	"github.com/jetsetilly/superfx/screendigest"
	"github.com/jetsetilly/superfx/screendump"
	"github.com/jetsetilly/superfx/script"
	"github.com/jetsetilly/superfx/statsview"
	"github.com/jetsetilly/superfx/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "INFO", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, os.Stdout)

	case "INFO":
		err = info(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		os.Exit(reportError(os.Stdout, md, err))
	}
}

// reportError writes the error to output and returns the exit value. Errors
// from the instruction engine are followed by the log entries made by the
// GSU and the bench.
func reportError(output io.Writer, md *modalflag.Modes, err error) int {
	switch {
	case curated.Has(err, script.EngineError):
		fmt.Fprintf(output, "* engine error in %s mode: %s\n", md, err)
		logger.BorrowLog(func(entries []logger.Entry) {
			for _, e := range entries {
				if e.Tag == "gsu" || e.Tag == "script" {
					fmt.Fprintf(output, "  %s", e)
				}
			}
		})
		return 30

	case curated.IsAny(err):
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	fmt.Fprintf(output, "* unexpected error in %s mode: %s\n", md, err)
	return 21
}

// echoLog sends new log entries to stdout. entries are colourised if stdout
// is a terminal.
func echoLog() {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(os.Stdout, false)
	}
}

func loadCartridge(md *modalflag.Modes) (cartridgeloader.Loader, cartridgeloader.Header, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return cartridgeloader.Loader{}, cartridgeloader.Header{}, fmt.Errorf("SuperFX cartridge required for %s mode", md)
	case 1:
	default:
		return cartridgeloader.Loader{}, cartridgeloader.Header{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	err := cartload.Load()
	if err != nil {
		return cartload, cartridgeloader.Header{}, err
	}

	hdr, err := cartload.SuperFX()
	if err != nil {
		return cartload, hdr, err
	}

	return cartload, hdr, nil
}

// selectSpec chooses the television specification. in order of precedence:
// the command line, the preferences file and the cartridge header.
func selectSpec(flag string, env *environment.Environment, hdr cartridgeloader.Header) (specification.Spec, error) {
	for _, s := range []string{flag, env.Prefs.SuperFX.Spec.Get().(string)} {
		s = strings.ToUpper(s)
		if s == "AUTO" || s == "" {
			continue
		}
		spec, ok := specification.SearchSpec(s)
		if !ok {
			return spec, fmt.Errorf("unknown television specification: %s", s)
		}
		return spec, nil
	}
	return hdr.Spec, nil
}

// prepareBench loads the cartridge named on the command line and resets a new
// bench with it.
func prepareBench(md *modalflag.Modes, spec string, overclock int) (*script.Bench, specification.Spec, error) {
	cartload, hdr, err := loadCartridge(md)
	if err != nil {
		return nil, specification.Spec{}, err
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, specification.Spec{}, err
	}

	if overclock > 0 {
		err = env.Prefs.SuperFX.Overclock.Set(overclock)
		if err != nil {
			return nil, specification.Spec{}, err
		}
	}

	tvSpec, err := selectSpec(spec, env, hdr)
	if err != nil {
		return nil, tvSpec, err
	}

	bench := script.NewBench(env, tvSpec)

	err = bench.Reset(cartload.Data, hdr.RAMBanks)
	if err != nil {
		bench.Close()
		return nil, tvSpec, err
	}

	logger.Logf(env, "superfx", "%s (%s)", hdr.Title, cartload.Hash)

	return bench, tvSpec, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	scriptFile := md.AddString("script", "", "lua script to run on the bench")
	lines := md.AddInt("lines", 0, "number of scanlines to run after the script")
	spec := md.AddString("spec", "AUTO", "television specification: AUTO, NTSC, PAL")
	overclock := md.AddInt("overclock", 0, "overclock percentage. zero to use preferences")
	screen := md.AddString("screen", "", "save the GSU screen to PNG file")
	scale := md.AddInt("scale", 1, "scale of saved screen")
	memvizFile := md.AddString("memviz", "", "save a graphviz dump of the GSU registers")
	digest := md.AddBool("digest", false, "print a fingerprint of the screen at the end of every frame")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences with key::value pairs")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog()
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "! unused preferences: %s\n", unused)
			}
		}()
	}

	bench, tvSpec, err := prepareBench(md, *spec, *overclock)
	if err != nil {
		return err
	}
	defer bench.Close()

	if *scriptFile != "" {
		err = bench.RunFile(*scriptFile)
		if err != nil {
			return err
		}
	}

	gsu := bench.GSU()
	dig := screendigest.NewSHA1()
	for i := 1; i <= *lines; i++ {
		gsu.Scanline()
		if *digest && i%tvSpec.ScanlinesTotal == 0 {
			dig.Frame(screendump.Render(gsu.State()))
			fmt.Fprintf(output, "frame %d: %s\n", dig.Frames(), dig)
		}
	}

	fmt.Fprintln(output, gsu.GetRegisters())

	if *screen != "" {
		err = screendump.Save(*screen, gsu.State(), *scale)
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, gsu.GetRegisters())
		err = f.Close()
		if err != nil {
			return err
		}
	}

	return bench.EngineError()
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	scriptFile := md.AddString("script", "", "lua script to run on the bench")
	spec := md.AddString("spec", "AUTO", "television specification: AUTO, NTSC, PAL")
	overclock := md.AddInt("overclock", 0, "overclock percentage. zero to use preferences")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE (comma sep)")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		echoLog()
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	bench, _, err := prepareBench(md, *spec, *overclock)
	if err != nil {
		return err
	}
	defer bench.Close()

	if *scriptFile != "" {
		err = bench.RunFile(*scriptFile)
		if err != nil {
			return err
		}
	}

	err = performance.Check(output, prf, bench.GSU(), *duration)
	if err != nil {
		return err
	}

	return bench.EngineError()
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cartload, hdr, err := loadCartridge(md)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", cartload.ShortName())
	fmt.Fprintf(output, "sha1: %s\n", cartload.Hash)
	fmt.Fprintf(output, "%s\n", hdr)

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
