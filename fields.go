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
	"strings"

	"golang.org/x/exp/constraints"
)

// Field identifies one of the settings in [Parameters].
type Field int

// These are the fields of a parameter record.
const (
	FieldName Field = iota
	FieldGamma
	FieldBrightnessRed
	FieldBrightnessGreen
	FieldBrightnessBlue
	FieldHue
	FieldHueCompress
	FieldGreyRed
	FieldGreyYellow
	FieldGreyGreen
	FieldGreyCyan
	FieldGreyBlue
	FieldGreyMagenta
	FieldSeverity
	FieldSwapMode
	FieldMergeMode
	FieldMagnification
	FieldMouseFilter
	FieldRefreshInterval
	FieldOnTop
	FieldNegative
	FieldFeedbackAllowed

	numFields
)

var fieldNames = [numFields]string{
	FieldName:            "name",
	FieldGamma:           "gamma",
	FieldBrightnessRed:   "red brightness",
	FieldBrightnessGreen: "green brightness",
	FieldBrightnessBlue:  "blue brightness",
	FieldHue:             "hue",
	FieldHueCompress:     "hue compression",
	FieldGreyRed:         "red desaturation",
	FieldGreyYellow:      "yellow desaturation",
	FieldGreyGreen:       "green desaturation",
	FieldGreyCyan:        "cyan desaturation",
	FieldGreyBlue:        "blue desaturation",
	FieldGreyMagenta:     "magenta desaturation",
	FieldSeverity:        "severity",
	FieldSwapMode:        "swap mode",
	FieldMergeMode:       "merge mode",
	FieldMagnification:   "magnification",
	FieldMouseFilter:     "mouse filter",
	FieldRefreshInterval: "refresh interval",
	FieldOnTop:           "on top",
	FieldNegative:        "negative",
	FieldFeedbackAllowed: "feedback allowed",
}

func (f Field) String() string {
	if f >= 0 && f < numFields {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func brightnessField(c Channel) Field {
	return FieldBrightnessRed + Field(c)
}

func greyField(s Sextant) Field {
	return FieldGreyRed + Field(s)
}

// tableSet is a set of lookup table groups.
type tableSet uint16

const (
	tableGammaRed tableSet = 1 << iota
	tableGammaGreen
	tableGammaBlue
	tableSextantRed
	tableSextantYellow
	tableSextantGreen
	tableSextantCyan
	tableSextantBlue
	tableSextantMagenta
	tableHue
	tableSeverity

	tablesGamma   = tableGammaRed | tableGammaGreen | tableGammaBlue
	tablesSextant = tableSextantRed | tableSextantYellow | tableSextantGreen |
		tableSextantCyan | tableSextantBlue | tableSextantMagenta
	tablesAll = tablesGamma | tablesSextant | tableHue | tableSeverity
)

func gammaTable(c Channel) tableSet {
	return tableGammaRed << c
}

func sextantTable(s Sextant) tableSet {
	return tableSextantRed << s
}

var tableNames = []string{
	"gamma red", "gamma green", "gamma blue",
	"sextant red", "sextant yellow", "sextant green",
	"sextant cyan", "sextant blue", "sextant magenta",
	"hue", "severity",
}

func (s tableSet) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for i, name := range tableNames {
		if s&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}

// dependencies lists the table groups which must be rebuilt when a field
// changes.  Fields which are not listed do not affect any table.
var dependencies = [numFields]tableSet{
	FieldGamma:           tablesGamma,
	FieldBrightnessRed:   tableGammaRed,
	FieldBrightnessGreen: tableGammaGreen,
	FieldBrightnessBlue:  tableGammaBlue,
	FieldHue:             tableHue,
	FieldHueCompress:     tableHue,
	FieldGreyRed:         tableSextantRed,
	FieldGreyYellow:      tableSextantYellow,
	FieldGreyGreen:       tableSextantGreen,
	FieldGreyCyan:        tableSextantCyan,
	FieldGreyBlue:        tableSextantBlue,
	FieldGreyMagenta:     tableSextantMagenta,
	FieldSeverity:        tableSeverity,
}

// Tables returns the names of the lookup table groups which are
// recomputed when the field changes.  Fields which only affect the
// magnifier window return nil.
func (f Field) Tables() []string {
	if f < 0 || f >= numFields || dependencies[f] == 0 {
		return nil
	}
	return strings.Split(dependencies[f].String(), ",")
}

// fieldRange gives the valid range of the numeric fields.
var fieldRange = [numFields]struct{ lo, hi float64 }{
	FieldGamma:           {0, 1},
	FieldBrightnessRed:   {0, 1},
	FieldBrightnessGreen: {0, 1},
	FieldBrightnessBlue:  {0, 1},
	FieldHue:             {0, 1},
	FieldHueCompress:     {0, 1},
	FieldGreyRed:         {0, 1},
	FieldGreyYellow:      {0, 1},
	FieldGreyGreen:       {0, 1},
	FieldGreyCyan:        {0, 1},
	FieldGreyBlue:        {0, 1},
	FieldGreyMagenta:     {0, 1},
	FieldSeverity:        {0, 1},
	FieldSwapMode:        {float64(SwapNone), float64(SwapRedGreen)},
	FieldMergeMode:       {float64(MergeNone), float64(MergeAll)},
	FieldMagnification:   {1, 32},
	FieldMouseFilter:     {0, 1},
	FieldRefreshInterval: {10, 10000},
}

// maxNameLen is the longest name which fits into a record, leaving room for
// the terminating zero byte.
const maxNameLen = nameSize - 1

// clampField limits v to the valid range of the given field.  If v is out
// of range (or NaN), the clamped value is returned together with a
// *RangeError.
func clampField[T constraints.Integer | constraints.Float](field Field, v T) (T, error) {
	r := fieldRange[field]
	lo, hi := T(r.lo), T(r.hi)

	c := clamp(v, lo, hi)
	if v != v { // NaN
		c = lo
	}
	if c == v {
		return v, nil
	}
	return c, &RangeError{Field: field, Value: float64(v), Clamped: float64(c)}
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floatFields gives access to all float32 fields of a parameter record.
var floatFields = []struct {
	field Field
	get   func(p *Parameters) *float32
}{
	{FieldGamma, func(p *Parameters) *float32 { return &p.Gamma }},
	{FieldBrightnessRed, func(p *Parameters) *float32 { return &p.Brightness[Red] }},
	{FieldBrightnessGreen, func(p *Parameters) *float32 { return &p.Brightness[Green] }},
	{FieldBrightnessBlue, func(p *Parameters) *float32 { return &p.Brightness[Blue] }},
	{FieldHue, func(p *Parameters) *float32 { return &p.Hue }},
	{FieldHueCompress, func(p *Parameters) *float32 { return &p.HueCompress }},
	{FieldGreyRed, func(p *Parameters) *float32 { return &p.Grey[SextantRed] }},
	{FieldGreyYellow, func(p *Parameters) *float32 { return &p.Grey[SextantYellow] }},
	{FieldGreyGreen, func(p *Parameters) *float32 { return &p.Grey[SextantGreen] }},
	{FieldGreyCyan, func(p *Parameters) *float32 { return &p.Grey[SextantCyan] }},
	{FieldGreyBlue, func(p *Parameters) *float32 { return &p.Grey[SextantBlue] }},
	{FieldGreyMagenta, func(p *Parameters) *float32 { return &p.Grey[SextantMagenta] }},
	{FieldSeverity, func(p *Parameters) *float32 { return &p.Severity }},
	{FieldMagnification, func(p *Parameters) *float32 { return &p.Magnification }},
	{FieldMouseFilter, func(p *Parameters) *float32 { return &p.MouseFilter }},
}

// Validate checks that all fields are within their valid range.
// The first offending field is reported as a *RangeError.
func (p *Parameters) Validate() error {
	q := *p
	return q.check(true)
}

// Clamp limits all fields to their valid range.
// The return value indicates whether any field was changed.
func (p *Parameters) Clamp() bool {
	return p.check(false) != nil
}

// check clamps all fields of p.  It returns the first range error found.
// If stopEarly is set, it returns as soon as an error is found.
func (p *Parameters) check(stopEarly bool) error {
	var first error
	note := func(err error) bool {
		if err != nil && first == nil {
			first = err
		}
		return first != nil && stopEarly
	}

	name, err := truncateName(p.Name)
	p.Name = name
	if note(err) {
		return first
	}
	for _, ff := range floatFields {
		ptr := ff.get(p)
		*ptr, err = clampField(ff.field, *ptr)
		if note(err) {
			return first
		}
	}
	p.Swap, err = clampField(FieldSwapMode, p.Swap)
	if note(err) {
		return first
	}
	p.Merge, err = clampField(FieldMergeMode, p.Merge)
	if note(err) {
		return first
	}
	p.RefreshInterval, err = clampField(FieldRefreshInterval, p.RefreshInterval)
	note(err)
	return first
}
