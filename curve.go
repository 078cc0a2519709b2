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

// Curve is the tone curve of one colour channel.  A brightness offset is
// added to the input level, and the result is raised to a gamma exponent.
//
// The zero value is not useful; use [NewCurve] to create a Curve from the
// normalised gamma and brightness settings.
type Curve struct {
	// Offset is added to the input level, before the exponent is applied.
	// The range is [-256, 256].
	Offset float64

	// Exponent is applied to the input level, after normalising it to
	// [0, 1].  The range is [0.5, 2].
	Exponent float64
}

// NewCurve converts normalised gamma and brightness settings into a tone
// curve.  A value of 0.5 for both settings gives the identity curve.
func NewCurve(gamma, brightness float32) *Curve {
	g := float64(gamma)
	c := &Curve{
		Offset:   (float64(brightness) - 0.5) * 512,
		Exponent: 1,
	}
	switch {
	case g > 0.5:
		c.Exponent = 1 / (1 - (g - 0.5))
	case g < 0.5:
		c.Exponent = 1 / (1 + (0.5-g)*2)
	}
	return c
}

// Evaluate maps an input level in [0, 255] to an output level.
func (c *Curve) Evaluate(level uint8) uint8 {
	v := clamp(float64(level)+c.Offset, 0, 255)
	if c.Exponent != 1 && v > 0 {
		v = 255 * math.Pow(v/255, c.Exponent)
	}
	return uint8(clamp(math.Round(v), 0, 255))
}

// IsIdentity returns true if the curve maps every level to itself.
func (c *Curve) IsIdentity() bool {
	return c.Offset == 0 && c.Exponent == 1
}
