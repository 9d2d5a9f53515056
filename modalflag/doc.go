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

// Package modalflag is a wrapper for the flag package in the standard
// library. It adds the notion of modes: a command line is a series of modes,
// each with its own flags.
//
//	superfx -log INFO starfox.sfc
//
// The top level has a -log flag and the sub-modes RUN, INFO and VERSION.
// After the first call to Parse() the selected mode is INFO and a new set of
// flags can be declared for the INFO mode before Parse() is called again:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO", "VERSION")
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode is the default. A default mode is selected when the
// next argument is not the name of a sub-mode.
//
// Help is requested with -help or -h. The help message lists the flags for
// the current mode, followed by the available sub-modes and any text added
// with AdditionalHelp().
package modalflag
