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
	"bytes"
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNeutralIdentity(t *testing.T) {
	f := newTestFilter(t)
	f.Rebuild()

	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b++ {
				r2, g2, b2 := f.apply(uint8(r), uint8(g), uint8(b))
				if int(r2) != r || int(g2) != g || int(b2) != b {
					t.Fatalf("(%d, %d, %d) -> (%d, %d, %d)", r, g, b, r2, g2, b2)
				}
			}
		}
	}

	// the same via the pixel buffer interface
	pix := make([]byte, 256*3)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	orig := append([]byte(nil), pix...)
	err := f.Transform(pix, 16, 16, image.Rect(0, 0, 16, 16), BGR)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pix, orig) {
		t.Error("neutral filter changed the pixel buffer")
	}
}

func TestNegationInvolution(t *testing.T) {
	f := newTestFilter(t)
	f.SetNegative(true)
	f.Rebuild()

	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 5 {
				r1, g1, b1 := f.apply(uint8(r), uint8(g), uint8(b))
				if int(r1) != 255-r || int(g1) != 255-g || int(b1) != 255-b {
					t.Fatalf("(%d, %d, %d) -> (%d, %d, %d)", r, g, b, r1, g1, b1)
				}
				r2, g2, b2 := f.apply(r1, g1, b1)
				if int(r2) != r || int(g2) != g || int(b2) != b {
					t.Fatalf("(%d, %d, %d) -> (%d, %d, %d)", r, g, b, r2, g2, b2)
				}
			}
		}
	}
}

func TestGreyAchromatic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for k := 0; k < 20; k++ {
		f := newTestFilter(t)
		f.SetGamma(rng.Float32())
		brightness := rng.Float32()
		for c := Red; c <= Blue; c++ {
			f.SetBrightness(c, brightness)
		}
		f.SetHue(rng.Float32())
		f.SetHueCompress(rng.Float32())
		for s := SextantRed; s <= SextantMagenta; s++ {
			f.SetGrey(s, rng.Float32())
		}
		f.SetSeverity(rng.Float32())
		f.SetNegative(rng.Intn(2) == 1)

		pix := make([]byte, 256*4)
		for v := 0; v < 256; v++ {
			copy(pix[4*v:], []byte{byte(v), byte(v), byte(v), 255})
		}
		err := f.Transform(pix, 256, 1, image.Rect(0, 0, 256, 1), BGRA)
		if err != nil {
			t.Fatal(err)
		}
		for v := 0; v < 256; v++ {
			px := pix[4*v : 4*v+4]
			if px[0] != px[1] || px[1] != px[2] || px[3] != 255 {
				t.Fatalf("%+v: grey %d -> %v", f.Parameters(), v, px)
			}
		}
	}
}

func TestDesaturateRed(t *testing.T) {
	f := newTestFilter(t)
	err := f.SetGrey(SextantRed, 1)
	if err != nil {
		t.Fatal(err)
	}

	pix := []byte{0, 0, 255} // B, G, R
	err = f.Transform(pix, 1, 1, image.Rect(0, 0, 1, 1), BGR)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{77, 77, 77}, pix); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}

	// the luma of the original colour is 0.3*255 = 76.5
	luma := 0.3*float64(pix[2]) + 0.59*float64(pix[1]) + 0.11*float64(pix[0])
	if luma < 75.5 || luma > 77.5 {
		t.Errorf("luma = %g, want 76.5 +/- 1", luma)
	}

	// other hues are not affected
	pix = []byte{255, 255, 0}
	f.Transform(pix, 1, 1, image.Rect(0, 0, 1, 1), BGR)
	if d := cmp.Diff([]byte{255, 255, 0}, pix); d != "" {
		t.Errorf("cyan pixel changed (-want +got):\n%s", d)
	}
}

func TestLazyRebuild(t *testing.T) {
	f := newTestFilter(t)
	pix := []byte{10, 20, 30, 40}
	whole := image.Rect(0, 0, 1, 1)

	if f.rebuilds != 0 {
		t.Fatalf("tables built before first use")
	}
	f.Transform(pix, 1, 1, whole, BGRA)
	f.Transform(pix, 1, 1, whole, BGRA)
	if f.rebuilds != 1 {
		t.Errorf("rebuilds = %d, want 1", f.rebuilds)
	}

	f.SetHue(0.7)
	f.SetHue(0.7)
	if f.dirty&tableHue == 0 {
		t.Error("hue table not marked dirty")
	}
	if f.rebuilds != 1 {
		t.Errorf("setter rebuilt the tables")
	}
	err := f.Transform(pix, 1, 1, whole, BGRA)
	if err != nil {
		t.Fatal(err)
	}
	if f.rebuilds != 2 {
		t.Errorf("rebuilds = %d, want 2", f.rebuilds)
	}
	if f.dirty != 0 {
		t.Errorf("dirty = %s after transform", f.dirty)
	}

	// an empty region still brings the tables up to date
	f.SetGamma(0.1)
	f.Transform(pix, 1, 1, image.Rectangle{}, BGRA)
	if f.rebuilds != 3 || f.dirty != 0 {
		t.Errorf("rebuilds = %d, dirty = %s", f.rebuilds, f.dirty)
	}
}

func TestTransformRegion(t *testing.T) {
	const width, height = 4, 3
	f := newTestFilter(t)
	f.SetNegative(true)

	pix := make([]byte, width*height*4)
	for i := range pix {
		pix[i] = 100
	}
	err := f.Transform(pix, width, height, image.Rect(1, 1, 3, 2), BGRA)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := pix[(y*width+x)*4:][:4]
			want := []byte{100, 100, 100, 100}
			if y == 1 && (x == 1 || x == 2) {
				want = []byte{155, 155, 155, 100}
			}
			if d := cmp.Diff(want, px); d != "" {
				t.Errorf("pixel (%d, %d) (-want +got):\n%s", x, y, d)
			}
		}
	}
}

func TestTransformErrors(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		width, height int
		region        image.Rectangle
		layout        Layout
		isRegion      bool
	}{
		{"outside", 48, 4, 4, image.Rect(2, 2, 5, 4), BGR, true},
		{"negative", 48, 4, 4, image.Rect(-1, 0, 2, 2), BGR, true},
		{"short buffer", 47, 4, 4, image.Rect(0, 0, 1, 1), BGR, true},
		{"short buffer BGRA", 48, 4, 4, image.Rect(0, 0, 1, 1), BGRA, true},
		{"negative width", 48, -4, 4, image.Rectangle{}, BGR, true},
		{"layout", 48, 4, 4, image.Rect(0, 0, 1, 1), Layout(7), false},
	}
	for _, tt := range tests {
		f := newTestFilter(t)
		f.SetNegative(true)
		pix := make([]byte, tt.size)

		err := f.Transform(pix, tt.width, tt.height, tt.region, tt.layout)
		if err == nil {
			t.Errorf("%s: missing error", tt.name)
			continue
		}
		if errors.Is(err, ErrRegion) != tt.isRegion {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !bytes.Equal(pix, make([]byte, tt.size)) {
			t.Errorf("%s: pixels changed", tt.name)
		}
	}
}

func TestSwapModes(t *testing.T) {
	tests := []struct {
		mode    SwapMode
		r, g, b uint8
	}{
		{SwapNone, 10, 20, 30},
		{SwapGreenBlue, 10, 30, 20},
		{SwapRedBlue, 30, 20, 10},
		{SwapRedGreen, 20, 10, 30},
	}
	for _, tt := range tests {
		f := newTestFilter(t)
		f.SetSwapMode(tt.mode)
		pix := []byte{10, 20, 30, 255} // R, G, B, A
		f.Transform(pix, 1, 1, image.Rect(0, 0, 1, 1), RGBA)
		if d := cmp.Diff([]byte{tt.r, tt.g, tt.b, 255}, pix); d != "" {
			t.Errorf("%s (-want +got):\n%s", tt.mode, d)
		}
	}
}

func TestMergeModes(t *testing.T) {
	tests := []struct {
		mode    MergeMode
		r, g, b uint8
	}{
		{MergeNone, 200, 100, 50},
		{MergeRed, 92, 100, 50},
		{MergeGreen, 200, 157, 50},
		{MergeBlue, 200, 100, 133},
		{MergeAll, 125, 125, 125},
	}
	for _, tt := range tests {
		f := newTestFilter(t)
		f.SetMergeMode(tt.mode)
		pix := []byte{50, 100, 200} // B, G, R
		f.Transform(pix, 1, 1, image.Rect(0, 0, 1, 1), BGR)
		if d := cmp.Diff([]byte{tt.b, tt.g, tt.r}, pix); d != "" {
			t.Errorf("%s (-want +got):\n%s", tt.mode, d)
		}
	}

	// with severity 0, the merge has no effect
	f := newTestFilter(t)
	f.SetMergeMode(MergeAll)
	f.SetSeverity(0)
	pix := []byte{50, 100, 200}
	f.Transform(pix, 1, 1, image.Rect(0, 0, 1, 1), BGR)
	if d := cmp.Diff([]byte{50, 100, 200}, pix); d != "" {
		t.Errorf("severity 0 (-want +got):\n%s", d)
	}
}

func TestTransformImage(t *testing.T) {
	f := newTestFilter(t)
	f.SetNegative(true)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = 40
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 2)).(*image.NRGBA)
	f.TransformImage(sub)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := color.NRGBA{40, 40, 40, 40}
			if y == 1 && x >= 1 {
				want = color.NRGBA{215, 215, 215, 40}
			}
			if got := img.NRGBAAt(x, y); got != want {
				t.Errorf("NRGBA pixel (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}

	// other image types use the generic code path
	img64 := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	img64.Set(0, 0, color.NRGBA{0x14, 0x28, 0x3c, 0xff})
	f.TransformImage(img64)
	got := color.NRGBAModel.Convert(img64.At(0, 0))
	want := color.NRGBA{0xeb, 0xd7, 0xc3, 0xff}
	if got != want {
		t.Errorf("RGBA64 pixel: got %v, want %v", got, want)
	}
}
