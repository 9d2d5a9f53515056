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

// Package screendigest creates a chained SHA1 fingerprint of successive GSU
// screens. Each new fingerprint includes the previous fingerprint so the
// final value identifies the whole sequence of frames. Useful for regression
// testing of instruction engines.
package screendigest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// SHA1 is a chained fingerprint of GSU screens.
type SHA1 struct {
	digest [sha1.Size]byte
	frames int
	pixels []uint8
}

// NewSHA1 is the preferred method of initialisation for the SHA1 type.
func NewSHA1() *SHA1 {
	return &SHA1{}
}

func (dig *SHA1) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of frames that contributed to the fingerprint.
func (dig *SHA1) Frames() int {
	return dig.frames
}

// ResetDigest resets the fingerprint to zero.
func (dig *SHA1) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frame adds the screen image to the fingerprint. The color index of every
// pixel is used rather than the palette color.
func (dig *SHA1) Frame(img *image.Paletted) {
	b := img.Bounds()
	l := len(dig.digest) + b.Dx()*b.Dy()
	if cap(dig.pixels) < l {
		dig.pixels = make([]uint8, l)
	}
	dig.pixels = dig.pixels[:l]

	// the previous fingerprint is at the head of the data
	n := copy(dig.pixels, dig.digest[:])
	for y := b.Min.Y; y < b.Max.Y; y++ {
		n += copy(dig.pixels[n:], img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)])
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
