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

package screendump

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/superfx/curated"
	"github.com/jetsetilly/superfx/hardware/memory/cartridge/superfx"
)

// SaveError is the pattern for errors returned by Save().
const SaveError = "screendump: %v"

// Width of the GSU screen in pixels.
const Width = 256

// Palette returns a greyscale palette with one entry for every color that
// can be represented in the plot mode.
func Palette(mode superfx.PlotMode) color.Palette {
	n := 1 << mode.Bitplanes()
	p := make(color.Palette, n)
	for i := range p {
		l := uint8(i * 255 / (n - 1))
		p[i] = color.Gray{Y: l}
	}
	return p
}

// Render the GSU screen to a paletted image. The image is Width pixels wide
// and as high as the screen height of the current screen mode.
func Render(st *superfx.State) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, Width, st.ScreenHeight), Palette(st.Rpix.Mode))
	for y := 0; y < st.ScreenHeight; y++ {
		for x := 0; x < Width; x++ {
			img.SetColorIndex(x, y, st.ReadPixel(uint8(x), uint8(y)))
		}
	}
	return img
}

// Scale the image by an integer factor. Pixels are not interpolated. A scale
// of one or less returns the original image.
func Scale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the image to the writer.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Save renders the GSU screen, scales it and writes it to the named file as
// a PNG.
func Save(filename string, st *superfx.State, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	defer f.Close()

	err = WritePNG(f, Scale(Render(st), scale))
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
