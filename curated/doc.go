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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with Errorf(). The pattern string given to
// Errorf() identifies the error and can be checked for with Is() and Has().
// Patterns that callers need to test for are exported as constant strings
// by the package that raises the error:
//
//	const UnmappedAddress = "gsu: unmapped address: %#04x"
//
//	err := curated.Errorf(UnmappedAddress, addr)
//	if curated.Is(err, UnmappedAddress) {
//		...
//	}
//
// Is() only looks at the outermost error. Has() searches the wrapped values
// of the chain. IsAny() answers whether the error is curated at all, which
// is a convenient way of separating expected errors from unexpected ones.
//
// The Error() string is normalised so that duplicate adjacent parts of the
// chain are removed. A chain is thought of as parts separated by ": ", so
// wrapping "reset: %v" around "reset: window too short" prints as
// "reset: window too short".
//
// Curated errors support Unwrap() so that errors.Is() and errors.As() from
// the standard library see through them to any wrapped error value.
package curated
