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

// Package resources contains functions to prepare paths for superfx
// resources, such as the preferences file.
//
// JoinPath() prepends the base path to the path specified in the arguments
// and creates any directories needed to reach the file. It does not create
// the file itself.
//
// For builds with the "release" build tag the base path is in the user's
// configuration directory. On a Linux system that would be something like:
//
//	/home/user/.config/superfx/
//
// For all other builds the base path is in the current working directory:
//
//	.superfx
package resources
