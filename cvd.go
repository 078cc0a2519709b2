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

// Package cvd remaps the colours of screen captures, to simulate or to
// compensate for colour-vision deficiency.
//
// A [Filter] holds a set of normalised [Parameters] (gamma, per-channel
// brightness, hue rotation, per-hue desaturation, channel swapping and
// channel merging) together with the lookup tables derived from them.
// The tables are rebuilt lazily, the first time pixels are processed after
// a parameter change.
//
// # Filtering Pixels
//
// Use [New] to create a filter, adjust the parameters with the setter
// methods, and then call [Filter.Transform] on an interleaved pixel buffer:
//
//	f, err := cvd.New(nil) // default parameters
//	if err != nil {
//	    // handle error
//	}
//	f.SetGrey(cvd.SextantRed, 1)
//	err = f.Transform(pix, width, height, region, cvd.BGRA)
//
// Go images can be processed in place with [Filter.TransformImage].
//
// # Parameter Files
//
// Parameters are stored in a fixed-size binary record of [RecordSize]
// bytes, see [Filter.Save] and [Filter.Load].  Records are written in host
// byte order; records from a machine with the opposite byte order are
// detected by their signature and converted when loading.
package cvd

import "fmt"

// Parameters is the complete set of colour adjustment settings.
//
// All float fields except Magnification are normalised to [0, 1], with 0.5
// meaning "no change" for Gamma, Brightness and Hue.
type Parameters struct {
	Name    string
	Version int32 // record format version, set when decoding

	Gamma       float32
	Brightness  [3]float32 // indexed by Channel
	Hue         float32    // hue rotation
	HueCompress float32    // hue compression
	Grey        [6]float32 // desaturation amount, indexed by Sextant

	Severity float32 // strength of the channel merge
	Swap     SwapMode
	Merge    MergeMode

	// The following fields are used by the magnifier window only.
	// They do not affect the pixel transform.
	Magnification   float32
	MouseFilter     float32
	RefreshInterval int32 // in milliseconds
	OnTop           bool
	Negative        bool
	FeedbackAllowed bool

	// Reserved and ThirdParty are not interpreted, but are preserved when
	// a record is loaded and saved again.  Reserved is converted together
	// with the rest of the record when the byte order is corrected,
	// ThirdParty is kept byte for byte.
	Reserved   [16]uint32
	ThirdParty [64]byte
}

// DefaultParameters returns the neutral settings.  With these parameters
// (and Negative unset) a filter leaves all pixels unchanged.
func DefaultParameters() *Parameters {
	return &Parameters{
		Name:            "Default",
		Version:         currentVersion,
		Gamma:           0.5,
		Brightness:      [3]float32{0.5, 0.5, 0.5},
		Hue:             0.5,
		Severity:        1,
		Magnification:   2,
		MouseFilter:     0.5,
		RefreshInterval: 100,
		OnTop:           true,
	}
}

// Channel selects one of the colour channels of a pixel.
type Channel int

// These are the colour channels.
const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Sextant is one of six ranges of the hue circle.  Each sextant has its own
// desaturation setting.
type Sextant int

// The six hue sextants, in the order they appear around the hue circle.
const (
	SextantRed Sextant = iota
	SextantYellow
	SextantGreen
	SextantCyan
	SextantBlue
	SextantMagenta

	numSextants = 6
)

func (s Sextant) String() string {
	switch s {
	case SextantRed:
		return "red"
	case SextantYellow:
		return "yellow"
	case SextantGreen:
		return "green"
	case SextantCyan:
		return "cyan"
	case SextantBlue:
		return "blue"
	case SextantMagenta:
		return "magenta"
	default:
		return fmt.Sprintf("Sextant(%d)", int(s))
	}
}

// SwapMode selects a pair of colour channels to exchange.
type SwapMode int32

// These are the supported channel swaps.
const (
	SwapNone SwapMode = iota
	SwapGreenBlue
	SwapRedBlue
	SwapRedGreen
)

func (m SwapMode) String() string {
	switch m {
	case SwapNone:
		return "none"
	case SwapGreenBlue:
		return "green-blue"
	case SwapRedBlue:
		return "red-blue"
	case SwapRedGreen:
		return "red-green"
	default:
		return fmt.Sprintf("SwapMode(%d)", int32(m))
	}
}

// MergeMode selects how colour channels are merged to simulate dichromatic
// colour vision.
type MergeMode int32

// These are the supported merge modes.
const (
	MergeNone  MergeMode = iota
	MergeRed             // red is replaced by a mix of green and blue
	MergeGreen           // green is replaced by a mix of red and blue
	MergeBlue            // blue is replaced by a mix of red and green
	MergeAll             // all channels are blended towards grey
)

func (m MergeMode) String() string {
	switch m {
	case MergeNone:
		return "none"
	case MergeRed:
		return "red"
	case MergeGreen:
		return "green"
	case MergeBlue:
		return "blue"
	case MergeAll:
		return "all"
	default:
		return fmt.Sprintf("MergeMode(%d)", int32(m))
	}
}

// LoadStatus describes conditions which were encountered while decoding a
// parameter record, but which did not prevent the record from being used.
type LoadStatus uint8

// These are the possible load conditions.  Several may be set at once.
const (
	// StatusSwapped indicates that the record was written on a machine with
	// the opposite byte order and has been converted.
	StatusSwapped LoadStatus = 1 << iota

	// StatusNewerVersion indicates that the record was written by a newer
	// version of the format.  All known fields have been loaded.
	StatusNewerVersion

	// StatusClamped indicates that some fields were out of range and have
	// been clamped.
	StatusClamped
)

func (s LoadStatus) String() string {
	if s == 0 {
		return "ok"
	}
	res := ""
	add := func(flag LoadStatus, name string) {
		if s&flag == 0 {
			return
		}
		if res != "" {
			res += "|"
		}
		res += name
		s &^= flag
	}
	add(StatusSwapped, "swapped")
	add(StatusNewerVersion, "newer version")
	add(StatusClamped, "clamped")
	if s != 0 {
		add(s, fmt.Sprintf("0x%02X", uint8(s)))
	}
	return res
}
