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

// Package layer manages optional content groups (PDF layers).
//
// Each layer corresponds to an optional content group in the document
// catalog.  Content enclosed between the BDC and EMC operators
// emitted by [ContentBuilder] can be shown and hidden interactively
// in PDF viewers.
//
// See section 8.11 of ISO 32000-2:2020 for details.
package layer

import (
	"fmt"

	"seehuhn.de/go/pdf"
)

// A Group describes one layer.
type Group struct {
	// Name is the name shown in the layers panel of PDF viewers.
	Name string

	// Visible is the initial visibility of the layer.
	Visible bool

	ref pdf.Reference
}

// NewGroup creates a layer which is initially visible.
func NewGroup(name string) *Group {
	return &Group{Name: name, Visible: true}
}

// NewHiddenGroup creates a layer which is initially hidden.
func NewHiddenGroup(name string) *Group {
	return &Group{Name: name}
}

// Config controls how the optional content properties dictionary is
// constructed.
type Config struct {
	// BaseState is the default visibility for groups not listed in
	// the ON or OFF arrays.  Must be "ON" or "OFF".
	BaseState pdf.Name

	// PanelUI controls whether viewers show the layers in their
	// layers panel.
	PanelUI bool

	// Intent lists the intended uses of the groups.
	Intent []pdf.Name
}

// DefaultConfig returns the default configuration: base state "ON",
// layers panel enabled, intent "View".
func DefaultConfig() Config {
	return Config{
		BaseState: "ON",
		PanelUI:   true,
		Intent:    []pdf.Name{"View"},
	}
}

// A Manager holds the layers of a document.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	config   Config
	groups   []*Group
	byName   map[string]int
	propsRef pdf.Reference
}

// NewManager creates a layer manager with the default configuration.
func NewManager() *Manager {
	return NewManagerWithConfig(DefaultConfig())
}

// NewManagerWithConfig creates a layer manager.
func NewManagerWithConfig(config Config) *Manager {
	return &Manager{
		config: config,
		byName: map[string]int{},
	}
}

// Add registers a layer and returns its index.
func (m *Manager) Add(g *Group) int {
	idx := len(m.groups)
	m.groups = append(m.groups, g)
	m.byName[g.Name] = idx
	return idx
}

// Get returns the layer with the given name, or nil.
func (m *Manager) Get(name string) *Group {
	idx, ok := m.byName[name]
	if !ok {
		return nil
	}
	return m.groups[idx]
}

// Len returns the number of registered layers.
func (m *Manager) Len() int {
	return len(m.groups)
}

// IsEmpty reports whether no layers are registered.
func (m *Manager) IsEmpty() bool {
	return len(m.groups) == 0
}

// HasProperties reports whether [Manager.Embed] has been called.
func (m *Manager) HasProperties() bool {
	return m.propsRef != 0
}

// Embed writes the optional content groups and the OCProperties
// dictionary to the file, and registers the latter in the document
// catalog.  Layers added after the call are not included.
func (m *Manager) Embed(w pdf.Putter) error {
	var intent pdf.Array
	for _, name := range m.config.Intent {
		intent = append(intent, name)
	}

	ocgs := make(pdf.Array, len(m.groups))
	var on, off pdf.Array
	for i, g := range m.groups {
		ref := w.Alloc()
		dict := pdf.Dict{
			"Type": pdf.Name("OCG"),
			"Name": pdf.TextString(g.Name),
		}
		if intent != nil {
			dict["Intent"] = intent
		}
		err := w.Put(ref, dict)
		if err != nil {
			return err
		}
		g.ref = ref
		ocgs[i] = ref
		if g.Visible {
			on = append(on, ref)
		} else {
			off = append(off, ref)
		}
	}

	baseState := m.config.BaseState
	if baseState == "" {
		baseState = "ON"
	}
	d := pdf.Dict{
		"Order":     ocgs,
		"BaseState": baseState,
		"ON":        on,
		"OFF":       off,
	}
	if intent != nil {
		d["Intent"] = intent
	}
	if m.config.PanelUI {
		d["ListMode"] = pdf.Name("AllPages")
	}
	props := pdf.Dict{
		"OCGs": ocgs,
		"D":    d,
	}

	ref := w.Alloc()
	err := w.Put(ref, props)
	if err != nil {
		return err
	}
	m.propsRef = ref
	w.GetMeta().Catalog.OCProperties = ref
	return nil
}

// PageResources registers all layers in the "Properties"
// sub-dictionary of the given page resources and returns the
// content stream tag for each layer name.  The tags are L0, L1, ...
// in registration order.
//
// [Manager.Embed] must have been called first.
func (m *Manager) PageResources(resources pdf.Dict) (map[string]pdf.Name, error) {
	if m.propsRef == 0 {
		return nil, fmt.Errorf("layer: groups not embedded yet")
	}
	props, _ := resources["Properties"].(pdf.Dict)
	if props == nil {
		props = pdf.Dict{}
		resources["Properties"] = props
	}
	tags := make(map[string]pdf.Name, len(m.groups))
	for i, g := range m.groups {
		tag := pdf.Name(fmt.Sprintf("L%d", i))
		props[tag] = g.ref
		tags[g.Name] = tag
	}
	return tags, nil
}
