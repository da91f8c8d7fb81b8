// seehuhn.de/go/compose - a layer for composing PDF page content
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

package hatch

import (
	"fmt"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/compose/content"
)

// A Manager writes patterns and allocates their resource names.
//
// Pattern names are P1, P2, ... in order of creation.  A Manager is
// not safe for concurrent use.
type Manager struct {
	numPatterns int
}

// NewManager creates a pattern manager.
func NewManager() *Manager {
	return &Manager{}
}

// NewPattern writes a tiling pattern for the given configuration and
// returns its resource name and reference.
func (m *Manager) NewPattern(w pdf.Putter, cfg Config) (pdf.Name, pdf.Reference, error) {
	width, height := cfg.cellSize()
	ops := cellOps(cfg, width, height)
	return m.writePattern(w, width, height, ops)
}

// NewCustomPattern writes a tiling pattern with the given tile size,
// using a builder callback to define the tile content.
func (m *Manager) NewCustomPattern(w pdf.Putter, width, height float64, build func(*Builder)) (pdf.Name, pdf.Reference, error) {
	b := NewBuilder()
	build(b)
	return m.writePattern(w, width, height, b.Ops())
}

func (m *Manager) writePattern(w pdf.Putter, width, height float64, ops content.Stream) (pdf.Name, pdf.Reference, error) {
	m.numPatterns++
	name := pdf.Name(fmt.Sprintf("P%d", m.numPatterns))

	dict := pdf.Dict{
		"Type":        pdf.Name("Pattern"),
		"PatternType": pdf.Integer(1), // tiling pattern
		"PaintType":   pdf.Integer(1), // coloured
		"TilingType":  pdf.Integer(1), // constant spacing
		"BBox":        &pdf.Rectangle{URx: width, URy: height},
		"XStep":       pdf.Number(width),
		"YStep":       pdf.Number(height),
		"Resources":   pdf.Dict{},
	}

	ref := w.Alloc()
	stm, err := w.OpenStream(ref, dict, &pdf.FilterCompress{})
	if err != nil {
		return "", 0, err
	}
	err = ops.Write(stm)
	if err != nil {
		return "", 0, err
	}
	err = stm.Close()
	if err != nil {
		return "", 0, err
	}
	return name, ref, nil
}

// AddToResources registers a pattern in the "Pattern" sub-dictionary
// of the given resource dictionary.
func AddToResources(resources pdf.Dict, name pdf.Name, ref pdf.Reference) {
	patterns, _ := resources["Pattern"].(pdf.Dict)
	if patterns == nil {
		patterns = pdf.Dict{}
		resources["Pattern"] = patterns
	}
	patterns[name] = ref
}
