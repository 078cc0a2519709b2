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
)

var (
	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("cvd: value out of range")

	// ErrCorrupt is matched by every *InvalidFileError.
	ErrCorrupt = errors.New("cvd: corrupt parameter record")

	// ErrRegion is returned by the transform methods if the region or the
	// pixel buffer does not match the image dimensions.
	ErrRegion = errors.New("cvd: invalid image region")
)

// RangeError reports that a value was outside the valid range of a field
// and has been clamped.  The clamped value has been stored, so a RangeError
// is informational only.
type RangeError struct {
	Field   Field
	Value   float64 // the requested value
	Clamped float64 // the value which was stored
}

func (e *RangeError) Error() string {
	if e.Field == FieldName {
		return fmt.Sprintf("cvd: name too long (%d bytes), truncated to %d bytes",
			int(e.Value), int(e.Clamped))
	}
	return fmt.Sprintf("cvd: %s %g out of range, clamped to %g",
		e.Field, e.Value, e.Clamped)
}

// Is allows to match range errors using errors.Is(err, ErrRange).
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// InvalidFileError indicates that a parameter record contains invalid
// binary data and cannot be decoded.
type InvalidFileError struct {
	Offset int
	Reason string
}

func invalidFile(offset int, reason string) error {
	return &InvalidFileError{Offset: offset, Reason: reason}
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("cvd: invalid parameter record (byte %d): %s", e.Offset, e.Reason)
}

// Is allows to match decoding errors using errors.Is(err, ErrCorrupt).
func (e *InvalidFileError) Is(target error) bool {
	return target == ErrCorrupt
}
