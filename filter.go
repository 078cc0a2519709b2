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
	"errors"
	"fmt"
	"io"
)

// Filter holds a set of colour adjustment parameters, together with the
// lookup tables needed to apply them to pixels.
//
// A Filter is not safe for concurrent use.  Callers which share a Filter
// between goroutines must synchronise access.
type Filter struct {
	params   Parameters
	modified bool

	// dirty lists the table groups which are out of date.
	dirty    tableSet
	rebuilds int

	// hsiIdentity is set if the HSI stage of the transform does not
	// change any colour and can be skipped.
	hsiIdentity bool

	tab *luts
}

// New creates a new filter.  If p is nil, [DefaultParameters] are used.
// Otherwise p must pass [Parameters.Validate].
func New(p *Parameters) (*Filter, error) {
	if p == nil {
		p = DefaultParameters()
	} else if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cvd: invalid initial parameters: %w", err)
	}

	f := &Filter{
		params: *p,
		dirty:  tablesAll,
		tab:    new(luts),
	}
	if f.params.Version == 0 {
		f.params.Version = currentVersion
	}
	f.tab.buildGrey()
	return f, nil
}

// Parameters returns a copy of the current parameters.
func (f *Filter) Parameters() *Parameters {
	p := f.params
	return &p
}

// Modified reports whether the parameters have changed since they were
// last loaded or saved.
func (f *Filter) Modified() bool {
	return f.modified
}

// Rebuild brings all lookup tables up to date.  Only table groups
// affected by parameter changes are recomputed.  Rebuild is called
// automatically before pixels are transformed.
func (f *Filter) Rebuild() {
	if f.dirty == 0 {
		return
	}
	Logger().Debug("rebuilding lookup tables", "tables", f.dirty)

	f.tab.build(&f.params, f.dirty)
	f.hsiIdentity = f.tab.hsiIsIdentity(&f.params)
	f.dirty = 0
	f.rebuilds++
}

// Reset restores the default parameters.  The name of the parameter set
// is reset, too.
func (f *Filter) Reset() {
	f.params = *DefaultParameters()
	f.modified = true
	f.dirty = tablesAll
}

// Load reads a parameter record of [RecordSize] bytes from r.
//
// On success, the record replaces the current parameters.  If an error is
// returned, the filter is unchanged.  Conditions which did not prevent the
// record from being used are reported in the LoadStatus.
func (f *Filter) Load(r io.Reader) (LoadStatus, error) {
	buf := make([]byte, RecordSize)
	_, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return 0, fmt.Errorf("cvd: reading parameters: %w", err)
	}

	p, status, err := DecodeParameters(buf)
	if err != nil {
		return 0, err
	}
	if status != 0 {
		Logger().Warn("parameter record adjusted while loading",
			"name", p.Name,
			"version", p.Version,
			"status", status)
	}

	f.params = *p
	f.modified = false
	f.dirty = tablesAll
	return status, nil
}

// Save writes the current parameters to w, as a record of [RecordSize]
// bytes in host byte order.
func (f *Filter) Save(w io.Writer) error {
	buf := f.params.Encode()
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("cvd: writing parameters: %w", err)
	}
	f.modified = false
	return nil
}

// changed records that a field has been given a new value.
func (f *Filter) changed(field Field) {
	f.modified = true
	f.dirty |= dependencies[field]
}

func (f *Filter) setFloat(field Field, ptr *float32, v float32) error {
	v, err := clampField(field, v)
	if v != *ptr {
		*ptr = v
		f.changed(field)
	}
	return err
}

func (f *Filter) setBool(field Field, ptr *bool, v bool) {
	if v != *ptr {
		*ptr = v
		f.changed(field)
	}
}

// SetName sets the name of the parameter set.  Names longer than 127 bytes
// are truncated, and a *RangeError is returned.
func (f *Filter) SetName(name string) error {
	name, err := truncateName(name)
	if name != f.params.Name {
		f.params.Name = name
		f.changed(FieldName)
	}
	return err
}

// Name returns the name of the parameter set.
func (f *Filter) Name() string {
	return f.params.Name
}

// SetGamma sets the gamma value used for all channels.  The valid range is
// [0, 1], and 0.5 leaves the levels unchanged.  Values outside the valid
// range are clamped, and a *RangeError is returned.
//
// The other numeric setters follow the same convention.
func (f *Filter) SetGamma(v float32) error {
	return f.setFloat(FieldGamma, &f.params.Gamma, v)
}

// Gamma returns the gamma setting.
func (f *Filter) Gamma() float32 {
	return f.params.Gamma
}

// SetBrightness sets the brightness of channel c.  The valid range is
// [0, 1], and 0.5 leaves the levels unchanged.
func (f *Filter) SetBrightness(c Channel, v float32) error {
	return f.setFloat(brightnessField(c), &f.params.Brightness[c], v)
}

// Brightness returns the brightness setting of channel c.
func (f *Filter) Brightness(c Channel) float32 {
	return f.params.Brightness[c]
}

// SetHue sets the hue rotation.  The valid range is [0, 1], and 0.5 leaves
// the hue unchanged.
func (f *Filter) SetHue(v float32) error {
	return f.setFloat(FieldHue, &f.params.Hue, v)
}

// Hue returns the hue rotation setting.
func (f *Filter) Hue() float32 {
	return f.params.Hue
}

// SetHueCompress sets the amount by which the hue circle is compressed.
func (f *Filter) SetHueCompress(v float32) error {
	return f.setFloat(FieldHueCompress, &f.params.HueCompress, v)
}

// HueCompress returns the hue compression setting.
func (f *Filter) HueCompress() float32 {
	return f.params.HueCompress
}

// SetGrey sets the desaturation amount for colours in hue sextant s.
// A value of 1 turns fully saturated colours of this hue into grey.
func (f *Filter) SetGrey(s Sextant, v float32) error {
	return f.setFloat(greyField(s), &f.params.Grey[s], v)
}

// Grey returns the desaturation amount for hue sextant s.
func (f *Filter) Grey(s Sextant) float32 {
	return f.params.Grey[s]
}

// SetSeverity sets the strength of the channel merge.
func (f *Filter) SetSeverity(v float32) error {
	return f.setFloat(FieldSeverity, &f.params.Severity, v)
}

// Severity returns the strength of the channel merge.
func (f *Filter) Severity() float32 {
	return f.params.Severity
}

// SetSwapMode selects a pair of channels to exchange.
func (f *Filter) SetSwapMode(m SwapMode) error {
	m, err := clampField(FieldSwapMode, m)
	if m != f.params.Swap {
		f.params.Swap = m
		f.changed(FieldSwapMode)
	}
	return err
}

// SwapMode returns the current channel swap.
func (f *Filter) SwapMode() SwapMode {
	return f.params.Swap
}

// SetMergeMode selects the channel merge.
func (f *Filter) SetMergeMode(m MergeMode) error {
	m, err := clampField(FieldMergeMode, m)
	if m != f.params.Merge {
		f.params.Merge = m
		f.changed(FieldMergeMode)
	}
	return err
}

// MergeMode returns the current channel merge.
func (f *Filter) MergeMode() MergeMode {
	return f.params.Merge
}

// SetMagnification sets the zoom factor of the magnifier window.
// The valid range is [1, 32].
func (f *Filter) SetMagnification(v float32) error {
	return f.setFloat(FieldMagnification, &f.params.Magnification, v)
}

func (f *Filter) Magnification() float32 {
	return f.params.Magnification
}

func (f *Filter) SetMouseFilter(v float32) error {
	return f.setFloat(FieldMouseFilter, &f.params.MouseFilter, v)
}

func (f *Filter) MouseFilter() float32 {
	return f.params.MouseFilter
}

// SetRefreshInterval sets the refresh interval of the magnifier window, in
// milliseconds.  The valid range is [10, 10000].
func (f *Filter) SetRefreshInterval(ms int32) error {
	ms, err := clampField(FieldRefreshInterval, ms)
	if ms != f.params.RefreshInterval {
		f.params.RefreshInterval = ms
		f.changed(FieldRefreshInterval)
	}
	return err
}

func (f *Filter) RefreshInterval() int32 {
	return f.params.RefreshInterval
}

func (f *Filter) SetOnTop(v bool) {
	f.setBool(FieldOnTop, &f.params.OnTop, v)
}

func (f *Filter) OnTop() bool {
	return f.params.OnTop
}

// SetNegative selects whether colours are inverted before all other
// processing.
func (f *Filter) SetNegative(v bool) {
	f.setBool(FieldNegative, &f.params.Negative, v)
}

func (f *Filter) Negative() bool {
	return f.params.Negative
}

func (f *Filter) SetFeedbackAllowed(v bool) {
	f.setBool(FieldFeedbackAllowed, &f.params.FeedbackAllowed, v)
}

func (f *Filter) FeedbackAllowed() bool {
	return f.params.FeedbackAllowed
}
