// seehuhn.de/go/cvd - colour filters for colour-vision deficiency
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cvd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Layout describes the order of the bytes of a pixel in an interleaved
// pixel buffer.
type Layout int

// These are the supported pixel layouts.  Alpha bytes are never changed.
const (
	BGR  Layout = iota // 3 bytes per pixel, as used by Windows DIBs
	BGRA               // 4 bytes per pixel, as used by Windows DIBs
	RGBA               // 4 bytes per pixel, as used by [image.RGBA]
)

func (l Layout) String() string {
	switch l {
	case BGR:
		return "BGR"
	case BGRA:
		return "BGRA"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// PixelSize returns the number of bytes per pixel, or 0 if the layout is
// not known.
func (l Layout) PixelSize() int {
	switch l {
	case BGR:
		return 3
	case BGRA, RGBA:
		return 4
	default:
		return 0
	}
}

// offsets returns the positions of the red, green and blue bytes inside a
// pixel.
func (l Layout) offsets() (r, g, b int) {
	if l == RGBA {
		return 0, 1, 2
	}
	return 2, 1, 0
}

// Transform applies the filter to the pixels inside region, in place.
//
// The buffer pix holds height rows of width pixels each, without padding
// between rows.  The region must lie inside the image, otherwise an error
// wrapping [ErrRegion] is returned and no pixels are changed.
//
// If parameters have changed since the last call, the lookup tables are
// rebuilt first.
func (f *Filter) Transform(pix []byte, width, height int, region image.Rectangle, layout Layout) error {
	ps := layout.PixelSize()
	if ps == 0 {
		return fmt.Errorf("cvd: unsupported pixel layout %d", int(layout))
	}
	if width < 0 || height < 0 || len(pix)/ps/max(width, 1) < height {
		return fmt.Errorf("%w: %d bytes is too short for a %dx%d %s image",
			ErrRegion, len(pix), width, height, layout)
	}
	bounds := image.Rect(0, 0, width, height)
	if !region.In(bounds) {
		return fmt.Errorf("%w: %v not inside %v", ErrRegion, region, bounds)
	}

	f.transform(pix, width*ps, region, layout)
	return nil
}

// TransformImage applies the filter to all pixels of img, in place.
//
// Images of type *image.RGBA and *image.NRGBA are processed directly.  For
// *image.RGBA the colour values are used as they are, which is correct for
// opaque images.  Other image types are converted pixel by pixel.
func (f *Filter) TransformImage(img draw.Image) {
	switch img := img.(type) {
	case *image.RGBA:
		f.transform(img.Pix, img.Stride, img.Rect.Sub(img.Rect.Min), RGBA)
	case *image.NRGBA:
		f.transform(img.Pix, img.Stride, img.Rect.Sub(img.Rect.Min), RGBA)
	default:
		f.Rebuild()
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				c.R, c.G, c.B = f.apply(c.R, c.G, c.B)
				img.Set(x, y, c)
			}
		}
	}
}

// transform processes the pixels inside region, where row y of the image
// starts at byte y*stride of pix.  The region must be valid.
func (f *Filter) transform(pix []byte, stride int, region image.Rectangle, layout Layout) {
	f.Rebuild()
	if region.Empty() {
		return
	}

	ps := layout.PixelSize()
	ri, gi, bi := layout.offsets()
	for y := region.Min.Y; y < region.Max.Y; y++ {
		row := pix[y*stride+region.Min.X*ps : y*stride+region.Max.X*ps]
		for i := 0; i < len(row); i += ps {
			px := row[i : i+ps]
			px[ri], px[gi], px[bi] = f.apply(px[ri], px[gi], px[bi])
		}
	}
}

// apply maps a single colour through all stages of the filter.
// The lookup tables must be up to date.
func (f *Filter) apply(r, g, b uint8) (uint8, uint8, uint8) {
	t := f.tab
	p := &f.params

	if p.Negative {
		r, g, b = ^r, ^g, ^b
	}

	switch p.Swap {
	case SwapGreenBlue:
		g, b = b, g
	case SwapRedBlue:
		r, b = b, r
	case SwapRedGreen:
		r, g = g, r
	}

	if !f.hsiIdentity {
		h, s, i := rgbToHSI(r, g, b)
		h = t.hue[h]
		sx := hueSextant[h]
		i = t.intensity[sx][int(i)<<8|int(s)]
		s = t.saturation[sx][s]
		r, g, b = hsiToRGB(h, s, i)
	}

	r, g, b = t.gamma[Red][r], t.gamma[Green][g], t.gamma[Blue][b]

	switch p.Merge {
	case MergeRed:
		r = addSat(t.keep[r], t.merge[Red][int(g)<<8|int(b)])
	case MergeGreen:
		g = addSat(t.keep[g], t.merge[Green][int(r)<<8|int(b)])
	case MergeBlue:
		b = addSat(t.keep[b], t.merge[Blue][int(r)<<8|int(g)])
	case MergeAll:
		grey := addSat(addSat(t.grey[Red][r], t.grey[Green][g]), t.grey[Blue][b])
		a := t.apply[grey]
		r = addSat(t.keep[r], a)
		g = addSat(t.keep[g], a)
		b = addSat(t.keep[b], a)
	}

	return r, g, b
}

// addSat adds two levels, saturating at 255.
func addSat(a, b uint8) uint8 {
	s := int(a) + int(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
