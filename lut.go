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

import "math"

// luts holds all lookup tables used by the pixel transform.
// Two-dimensional tables are flattened, with the first index in the high
// byte.
type luts struct {
	// gamma holds the tone curve for each channel.
	gamma [3][256]uint8

	// intensity maps (intensity, saturation) to a new intensity, for each
	// sextant.
	intensity [numSextants][256 * 256]uint8

	// saturation maps saturation to a new saturation, for each sextant.
	saturation [numSextants][256]uint8

	hue [256]uint8

	// keep and apply split a level into the parts which are kept and
	// replaced when channels are merged.
	keep  [256]uint8
	apply [256]uint8

	// merge gives the replacement value for the merged channel, computed
	// from the two remaining channels in RGB order.
	merge [3][256 * 256]uint8

	// grey holds the luma contribution of each channel.  These tables do
	// not depend on the parameters.
	grey [3][256]uint8
}

// lumaWeight gives the contribution of each channel to the luma of a
// colour (ITU-R BT.601).
var lumaWeight = [3]float64{0.3, 0.59, 0.11}

// sextantWeight gives the relative brightness of a fully saturated colour
// in each sextant, compared to white.
var sextantWeight = [numSextants]float64{
	SextantRed:     0.3,
	SextantYellow:  0.45,
	SextantGreen:   0.59,
	SextantCyan:    0.3,
	SextantBlue:    0.11,
	SextantMagenta: 0.3,
}

// mergeWeight gives, for each merge target, the weights of the two
// remaining channels (in RGB order) and an overall scale factor which brings
// the weights to a sum of approximately 1.
var mergeWeight = [3]struct{ a, b, scale float64 }{
	Red:   {0.59, 0.11, 1.42},
	Green: {0.3, 0.11, 2.4},
	Blue:  {0.3, 0.59, 1.12},
}

// build recomputes the tables in the given set.
func (t *luts) build(p *Parameters, set tableSet) {
	if set&tablesGamma != 0 {
		t.buildGamma(p, set)
	}
	if set&tablesSextant != 0 {
		t.buildSextants(p, set)
	}
	if set&tableHue != 0 {
		t.buildHue(p)
	}
	if set&tableSeverity != 0 {
		t.buildSeverity(p)
	}
}

// buildGamma computes the tone curves for the channels selected by mask.
func (t *luts) buildGamma(p *Parameters, mask tableSet) {
	for c := Red; c <= Blue; c++ {
		if mask&gammaTable(c) == 0 {
			continue
		}
		curve := NewCurve(p.Gamma, p.Brightness[c])
		tab := &t.gamma[c]
		for level := range tab {
			tab[level] = curve.Evaluate(uint8(level))
		}
	}
}

// buildSextants computes the intensity and saturation tables for the
// sextants selected by mask.
//
// Desaturating a colour moves it towards a grey of similar brightness.
// Since the intensity of a colour is its largest channel, a fully
// saturated colour is much darker than a grey of the same intensity, and
// the intensity is reduced accordingly.  Grey pixels (saturation 0) are
// never changed.
func (t *luts) buildSextants(p *Parameters, mask tableSet) {
	for s := SextantRed; s <= SextantMagenta; s++ {
		if mask&sextantTable(s) == 0 {
			continue
		}
		amount := float64(p.Grey[s])
		loss := amount * (1 - sextantWeight[s])

		tab := &t.intensity[s]
		for i := 0; i < 256; i++ {
			for sat := 0; sat < 256; sat++ {
				v := float64(i) * (1 - loss*float64(sat)/255)
				tab[i<<8|sat] = uint8(clamp(math.Round(v), 0, 255))
			}
		}

		satTab := &t.saturation[s]
		for sat := range satTab {
			v := float64(sat) * (1 - amount)
			satTab[sat] = uint8(clamp(math.Round(v), 0, 255))
		}
	}
}

// buildHue computes the hue remapping table.  Hue is circular, so results
// wrap around instead of being clamped.
func (t *luts) buildHue(p *Parameters) {
	scale := 1 - float64(p.HueCompress)
	shift := (float64(p.Hue) - 0.5) * 255
	for h := range t.hue {
		v := int(math.Round(float64(h)*scale + shift))
		t.hue[h] = uint8(v & 255)
	}
}

// buildSeverity computes the tables used for merging channels.
func (t *luts) buildSeverity(p *Parameters) {
	sev := float64(p.Severity)
	for i := 0; i < 256; i++ {
		t.keep[i] = uint8(clamp(math.Round((1-sev)*float64(i)), 0, 255))
		t.apply[i] = uint8(clamp(math.Round(sev*float64(i)), 0, 255))
	}
	for c, w := range mergeWeight {
		tab := &t.merge[c]
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b++ {
				v := sev * (w.a*float64(a) + w.b*float64(b)) * w.scale
				tab[a<<8|b] = uint8(clamp(math.Round(v), 0, 255))
			}
		}
	}
}

// buildGrey computes the static luma tables.
func (t *luts) buildGrey() {
	for c, w := range lumaWeight {
		for i := 0; i < 256; i++ {
			t.grey[c][i] = uint8(math.Round(w * float64(i)))
		}
	}
}

// hsiIsIdentity returns true if the HSI stage of the transform leaves
// every colour unchanged.
func (t *luts) hsiIsIdentity(p *Parameters) bool {
	for _, amount := range p.Grey {
		if amount != 0 {
			return false
		}
	}
	for h, v := range t.hue {
		if int(v) != h {
			return false
		}
	}
	return true
}
