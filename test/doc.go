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

// Package test contains helper functions that remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test
// to continue. The Demand functions use t.Fatalf() and should be used when
// later parts of a test depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type. A bool is successful when true and an error is successful when nil.
// An untyped nil is always considered a success, because that is how a nil
// error arrives when passed through an interface.
//
// All functions accept optional tags that are printed at the start of a
// failure message. These are useful when testing in a loop.
//
// CompareWriter implements io.Writer and can be used to capture output.
package test
