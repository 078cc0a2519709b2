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
	"encoding/binary"
	"math"
	"unicode/utf8"
)

const (
	// Signature is the first field of every parameter record, in the byte
	// order of the machine which wrote the record.
	Signature uint32 = 0x43424D47

	swappedSignature uint32 = 0x474D4243

	// RecordSize is the size of a parameter record in bytes.
	RecordSize = 348

	currentVersion int32 = 1
	nameSize             = 128
)

// Byte offsets of the fields in a parameter record.
const (
	offSignature       = 0
	offVersion         = 4
	offName            = 8
	offGamma           = 136
	offBrightness      = 140 // 3 entries
	offHue             = 152
	offHueCompress     = 156
	offGrey            = 160 // 6 entries
	offSeverity        = 184
	offSwap            = 188
	offMerge           = 192
	offMagnification   = 196
	offMouseFilter     = 200
	offRefreshInterval = 204
	offOnTop           = 208
	offNegative        = 212
	offFeedback        = 216
	offReserved        = 220 // 16 entries
	offThirdParty      = 284
	thirdPartySize     = 64
)

// foreignEndian is the byte order opposite to the byte order of the host.
var foreignEndian binary.ByteOrder = func() binary.ByteOrder {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}()

// DecodeParameters decodes a parameter record.
//
// Records written on machines with either byte order are accepted.  Fields
// which are out of range are clamped.  Conditions which do not prevent
// the record from being used are reported in the returned LoadStatus.
// Data beyond the first RecordSize bytes is ignored.
func DecodeParameters(data []byte) (*Parameters, LoadStatus, error) {
	if len(data) < RecordSize {
		return nil, 0, invalidFile(len(data), "record is too short")
	}

	var status LoadStatus
	var order binary.ByteOrder
	switch binary.NativeEndian.Uint32(data[offSignature:]) {
	case Signature:
		order = binary.NativeEndian
	case swappedSignature:
		order = foreignEndian
		status |= StatusSwapped
	default:
		return nil, 0, invalidFile(offSignature, "missing signature")
	}
	r := &record{data: data, order: order}

	version := r.getInt32(offVersion)
	if version < 1 {
		return nil, 0, invalidFile(offVersion, "invalid version")
	} else if version > currentVersion {
		status |= StatusNewerVersion
	}

	nameBytes := data[offName : offName+nameSize]
	end := bytes.IndexByte(nameBytes, 0)
	if end < 0 {
		return nil, 0, invalidFile(offName, "name is not terminated")
	}

	p := &Parameters{
		Name:            string(nameBytes[:end]),
		Version:         version,
		Gamma:           r.getFloat32(offGamma),
		Hue:             r.getFloat32(offHue),
		HueCompress:     r.getFloat32(offHueCompress),
		Severity:        r.getFloat32(offSeverity),
		Swap:            SwapMode(r.getInt32(offSwap)),
		Merge:           MergeMode(r.getInt32(offMerge)),
		Magnification:   r.getFloat32(offMagnification),
		MouseFilter:     r.getFloat32(offMouseFilter),
		RefreshInterval: r.getInt32(offRefreshInterval),
		OnTop:           r.getBool(offOnTop),
		Negative:        r.getBool(offNegative),
		FeedbackAllowed: r.getBool(offFeedback),
	}
	for c := range p.Brightness {
		p.Brightness[c] = r.getFloat32(offBrightness + 4*c)
	}
	for s := range p.Grey {
		p.Grey[s] = r.getFloat32(offGrey + 4*s)
	}
	for i := range p.Reserved {
		p.Reserved[i] = r.getUint32(offReserved + 4*i)
	}
	copy(p.ThirdParty[:], data[offThirdParty:offThirdParty+thirdPartySize])

	if p.Clamp() {
		status |= StatusClamped
	}

	return p, status, nil
}

// record gives access to the fields of an encoded parameter record.
type record struct {
	data  []byte
	order binary.ByteOrder
}

func (r *record) getUint32(offset int) uint32 {
	return r.order.Uint32(r.data[offset:])
}

func (r *record) getInt32(offset int) int32 {
	return int32(r.getUint32(offset))
}

func (r *record) getFloat32(offset int) float32 {
	return math.Float32frombits(r.getUint32(offset))
}

func (r *record) getBool(offset int) bool {
	return r.getUint32(offset) != 0
}

// truncateName makes sure that a name fits into a parameter record.
// The name is cut at the first zero byte, and long names are shortened
// without splitting a UTF-8 sequence.
func truncateName(name string) (string, error) {
	orig := len(name)
	if i := bytes.IndexByte([]byte(name), 0); i >= 0 {
		name = name[:i]
	}
	if len(name) > maxNameLen {
		n := maxNameLen
		for n > 0 && !utf8.RuneStart(name[n]) {
			n--
		}
		name = name[:n]
	}
	if len(name) == orig {
		return name, nil
	}
	return name, &RangeError{
		Field:   FieldName,
		Value:   float64(orig),
		Clamped: float64(len(name)),
	}
}
