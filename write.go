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
	"encoding/binary"
	"math"
)

// Encode converts the parameters to a binary record, in the byte order of
// the host.  Fields which are out of range are written as they are; use
// [Parameters.Validate] to check the parameters first.
func (p *Parameters) Encode() []byte {
	return p.encode(binary.NativeEndian)
}

func (p *Parameters) encode(order binary.ByteOrder) []byte {
	version := p.Version
	if version == 0 {
		version = currentVersion
	}

	buf := make([]byte, RecordSize)
	w := &record{data: buf, order: order}

	w.putUint32(offSignature, Signature)
	w.putInt32(offVersion, version)
	name, _ := truncateName(p.Name)
	copy(buf[offName:offName+maxNameLen], name)

	w.putFloat32(offGamma, p.Gamma)
	for c, v := range p.Brightness {
		w.putFloat32(offBrightness+4*c, v)
	}
	w.putFloat32(offHue, p.Hue)
	w.putFloat32(offHueCompress, p.HueCompress)
	for s, v := range p.Grey {
		w.putFloat32(offGrey+4*s, v)
	}
	w.putFloat32(offSeverity, p.Severity)
	w.putInt32(offSwap, int32(p.Swap))
	w.putInt32(offMerge, int32(p.Merge))

	w.putFloat32(offMagnification, p.Magnification)
	w.putFloat32(offMouseFilter, p.MouseFilter)
	w.putInt32(offRefreshInterval, p.RefreshInterval)
	w.putBool(offOnTop, p.OnTop)
	w.putBool(offNegative, p.Negative)
	w.putBool(offFeedback, p.FeedbackAllowed)

	for i, v := range p.Reserved {
		w.putUint32(offReserved+4*i, v)
	}
	copy(buf[offThirdParty:], p.ThirdParty[:])

	return buf
}

func (r *record) putUint32(offset int, value uint32) {
	r.order.PutUint32(r.data[offset:], value)
}

func (r *record) putInt32(offset int, value int32) {
	r.putUint32(offset, uint32(value))
}

func (r *record) putFloat32(offset int, value float32) {
	r.putUint32(offset, math.Float32bits(value))
}

func (r *record) putBool(offset int, value bool) {
	var x uint32
	if value {
		x = 1
	}
	r.putUint32(offset, x)
}
