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

import "testing"

func TestKnownHues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		hue     uint8
	}{
		{"red", 255, 0, 0, 0},
		{"yellow", 255, 255, 0, 43},
		{"green", 0, 255, 0, 85},
		{"cyan", 0, 255, 255, 128},
		{"blue", 0, 0, 255, 171},
		{"magenta", 255, 0, 255, 213},
		{"dark red", 128, 0, 0, 0},
	}
	for _, tt := range tests {
		h, s, i := rgbToHSI(tt.r, tt.g, tt.b)
		if h != tt.hue {
			t.Errorf("%s: hue = %d, want %d", tt.name, h, tt.hue)
		}
		if s != 255 {
			t.Errorf("%s: saturation = %d, want 255", tt.name, s)
		}
		if i != max(tt.r, tt.g, tt.b) {
			t.Errorf("%s: intensity = %d, want %d", tt.name, i, max(tt.r, tt.g, tt.b))
		}
	}
}

func TestGreyHSI(t *testing.T) {
	for v := 0; v < 256; v++ {
		h, s, i := rgbToHSI(uint8(v), uint8(v), uint8(v))
		if h != 0 || s != 0 || int(i) != v {
			t.Errorf("grey %d: got (%d, %d, %d), want (0, 0, %d)", v, h, s, i, v)
		}
		r, g, b := hsiToRGB(123, 0, uint8(v))
		if int(r) != v || int(g) != v || int(b) != v {
			t.Errorf("hsiToRGB(123, 0, %d) = (%d, %d, %d)", v, r, g, b)
		}
	}
}

func TestHSIRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive test in short mode")
	}

	const maxErr = 3
	dist := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b++ {
				h, s, i := rgbToHSI(uint8(r), uint8(g), uint8(b))
				r2, g2, b2 := hsiToRGB(h, s, i)

				if int(max(r2, g2, b2)) != max(r, g, b) {
					t.Fatalf("(%d, %d, %d): intensity changed to %d",
						r, g, b, max(r2, g2, b2))
				}
				if dist(uint8(r), r2) > maxErr || dist(uint8(g), g2) > maxErr || dist(uint8(b), b2) > maxErr {
					t.Fatalf("(%d, %d, %d) -> (%d, %d, %d) -> (%d, %d, %d)",
						r, g, b, h, s, i, r2, g2, b2)
				}
			}
		}
	}
}

func TestHueSextant(t *testing.T) {
	tests := []struct {
		hue  int
		want Sextant
	}{
		{0, SextantRed},
		{21, SextantRed},
		{22, SextantYellow},
		{63, SextantYellow},
		{64, SextantGreen},
		{106, SextantGreen},
		{107, SextantCyan},
		{149, SextantCyan},
		{150, SextantBlue},
		{191, SextantBlue},
		{192, SextantMagenta},
		{233, SextantMagenta},
		{234, SextantRed},
		{255, SextantRed},
	}
	for _, tt := range tests {
		got := hueSextant[tt.hue]
		if got != tt.want {
			t.Errorf("hue %d: got %s, want %s", tt.hue, got, tt.want)
		}
	}
}
