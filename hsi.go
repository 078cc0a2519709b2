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

// The HSI representation used here works on bytes throughout:
//   - intensity is the largest of the three channels,
//   - saturation is 255 - 256*min/max (0 for grey),
//   - hue runs once around the colour circle in 0..255, with 0 = red,
//     43 = yellow, 85 = green, 128 = cyan, 171 = blue, 213 = magenta.
//
// A round trip through rgbToHSI and hsiToRGB preserves the intensity
// exactly and changes each channel by at most 3.

// rgbToHSI converts a colour to hue, saturation and intensity.
func rgbToHSI(r, g, b uint8) (h, s, i uint8) {
	// Find the ordering of the three channels.  Inside each sextant the
	// middle channel either rises (even sextants) or falls (odd sextants)
	// as the hue increases.
	var sextant, hi, mid, lo int
	if r >= g {
		if g >= b {
			sextant, hi, mid, lo = 0, int(r), int(g), int(b)
		} else if r >= b {
			sextant, hi, mid, lo = 5, int(r), int(b), int(g)
		} else {
			sextant, hi, mid, lo = 4, int(b), int(r), int(g)
		}
	} else {
		if r >= b {
			sextant, hi, mid, lo = 1, int(g), int(r), int(b)
		} else if g >= b {
			sextant, hi, mid, lo = 2, int(g), int(b), int(r)
		} else {
			sextant, hi, mid, lo = 3, int(b), int(g), int(r)
		}
	}

	if hi == lo {
		// achromatic
		return 0, 0, uint8(hi)
	}

	d := hi - lo
	var frac int // position inside the sextant, 0..256
	if sextant&1 == 0 {
		frac = ((mid - lo) << 8) / d
	} else {
		frac = ((hi - mid) << 8) / d
	}
	h = uint8(((sextant<<8 + frac + 3) / 6) & 255)
	s = uint8(255 - (lo<<8)/hi)
	return h, s, uint8(hi)
}

// hsiToRGB is the inverse of rgbToHSI.
func hsiToRGB(h, s, i uint8) (r, g, b uint8) {
	if s == 0 {
		return i, i, i
	}

	t := int(h) * 6
	sextant := t >> 8
	frac := t & 255

	hi := int(i)
	lo := (hi * (256 - int(s))) >> 8
	step := ((hi-lo)*frac + 128) >> 8
	rising := uint8(lo + step)
	falling := uint8(hi - step)
	top, bottom := uint8(hi), uint8(lo)

	switch sextant {
	case 0:
		return top, rising, bottom
	case 1:
		return falling, top, bottom
	case 2:
		return bottom, top, rising
	case 3:
		return bottom, falling, top
	case 4:
		return rising, bottom, top
	default:
		return top, bottom, falling
	}
}

// hueSextant maps a hue value to the sextant used for desaturation.
// The bins are not of equal width.
var hueSextant = func() (res [256]Sextant) {
	for h := range res {
		switch {
		case h < 22:
			res[h] = SextantRed
		case h < 64:
			res[h] = SextantYellow
		case h < 107:
			res[h] = SextantGreen
		case h < 150:
			res[h] = SextantCyan
		case h < 192:
			res[h] = SextantBlue
		case h < 234:
			res[h] = SextantMagenta
		default:
			res[h] = SextantRed
		}
	}
	return res
}()
