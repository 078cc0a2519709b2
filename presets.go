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
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Built-in parameter sets, stored as parameter records.
//
//   - protanopia: red is replaced by a mix of green and blue
//   - deuteranopia: green is replaced by a mix of red and blue
//   - tritanopia: blue is replaced by a mix of red and green
//   - greyscale: all colours are replaced by their luma
//
//go:embed presets/*.cbm
var presetFS embed.FS

const presetExt = ".cbm"

// ErrUnknownPreset is returned by [Preset] if no built-in parameter set of
// the given name exists.
var ErrUnknownPreset = errors.New("cvd: unknown preset")

// PresetNames returns the names of the built-in parameter sets, in
// alphabetical order.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		panic(err) // unreachable, the directory is embedded
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), presetExt))
	}
	return names
}

// Preset returns a copy of the built-in parameter set with the given name.
func Preset(name string) (*Parameters, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+presetExt))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	} else if err != nil {
		return nil, err
	}

	p, _, err := DecodeParameters(data)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", name, err)
	}
	return p, nil
}

// Presets returns all built-in parameter sets, indexed by name.
func Presets() map[string]*Parameters {
	res := make(map[string]*Parameters)
	for _, name := range PresetNames() {
		p, err := Preset(name)
		if err != nil {
			panic(err) // unreachable, the presets are tested
		}
		res[name] = p
	}
	return res
}
