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

package block

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/compose/content"
)

// A Manager holds a set of registered blocks.
//
// The zero Manager is not usable; use [NewManager].  A Manager is not
// safe for concurrent use.
type Manager struct {
	blocks   map[string]*Block
	xobjects map[string]pdf.Reference
	numNames int
}

// NewManager creates an empty block manager.
func NewManager() *Manager {
	return &Manager{
		blocks:   map[string]*Block{},
		xobjects: map[string]pdf.Reference{},
	}
}

// Register adds a block to the manager.  A block with the same ID
// replaces the previous one.
func (m *Manager) Register(b *Block) {
	m.blocks[b.ID] = b
	delete(m.xobjects, b.ID)
}

// Get returns the block with the given ID, or nil.
func (m *Manager) Get(id string) *Block {
	return m.blocks[id]
}

// Remove deletes a block and its cached XObject.
func (m *Manager) Remove(id string) {
	delete(m.blocks, id)
	delete(m.xobjects, id)
}

// Has reports whether a block with the given ID is registered.
func (m *Manager) Has(id string) bool {
	_, ok := m.blocks[id]
	return ok
}

// Count returns the number of registered blocks.
func (m *Manager) Count() int {
	return len(m.blocks)
}

// Clear removes all blocks and cached XObjects.
func (m *Manager) Clear() {
	m.blocks = map[string]*Block{}
	m.xobjects = map[string]pdf.Reference{}
	m.numNames = 0
}

// RenderInstance renders one placed block inline, wrapped in q/Q with
// the instance transform.  An instance referring to an unknown block
// renders as the empty stream.
func (m *Manager) RenderInstance(inst Instance) content.Stream {
	b := m.blocks[inst.BlockID]
	if b == nil {
		return nil
	}
	res := make(content.Stream, 0, len(b.Ops)+3)
	res.Append(
		content.PushState(),
		content.ConcatMatrix(inst.Transform.Matrix()),
	)
	res = append(res, b.Ops...)
	res.Append(content.PopState())
	return res
}

// RenderInstances renders several placed blocks inline.
func (m *Manager) RenderInstances(instances []Instance) content.Stream {
	var res content.Stream
	for _, inst := range instances {
		res = append(res, m.RenderInstance(inst)...)
	}
	return res
}

// EmbedXObjects writes a form XObject for every registered block which
// does not have one yet.  The XObjects are cached, so calling this
// repeatedly is cheap.
func (m *Manager) EmbedXObjects(w pdf.Putter) error {
	ids := maps.Keys(m.blocks)
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := m.xobjects[id]; ok {
			continue
		}
		ref, err := m.embedXObject(w, m.blocks[id])
		if err != nil {
			return err
		}
		m.xobjects[id] = ref
	}
	return nil
}

func (m *Manager) embedXObject(w pdf.Putter, b *Block) (pdf.Reference, error) {
	bbox := b.BBox
	if bbox == nil {
		bbox = &pdf.Rectangle{URx: 100, URy: 100}
	}
	dict := pdf.Dict{
		"Type":     pdf.Name("XObject"),
		"Subtype":  pdf.Name("Form"),
		"FormType": pdf.Integer(1),
		"BBox":     bbox,
	}
	if b.Resources != nil {
		dict["Resources"] = b.Resources
	}

	ref := w.Alloc()
	stm, err := w.OpenStream(ref, dict, &pdf.FilterCompress{})
	if err != nil {
		return 0, err
	}
	err = b.Ops.Write(stm)
	if err != nil {
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// RenderInstancesXObjects renders placed blocks as references to form
// XObjects.  The XObjects must have been written using
// [Manager.EmbedXObjects] first.  For each instance a new resource
// name is allocated and registered in the "XObject" sub-dictionary of
// resources.  Instances referring to unknown blocks are skipped.
func (m *Manager) RenderInstancesXObjects(instances []Instance, resources pdf.Dict) content.Stream {
	xDict, _ := resources["XObject"].(pdf.Dict)
	if xDict == nil {
		xDict = pdf.Dict{}
		resources["XObject"] = xDict
	}

	var res content.Stream
	for _, inst := range instances {
		ref, ok := m.xobjects[inst.BlockID]
		if !ok {
			continue
		}
		m.numNames++
		name := pdf.Name(fmt.Sprintf("Blk%d", m.numNames))
		xDict[name] = ref
		res.Append(
			content.PushState(),
			content.ConcatMatrix(inst.Transform.Matrix()),
			content.DrawXObject(name),
			content.PopState(),
		)
	}
	return res
}
