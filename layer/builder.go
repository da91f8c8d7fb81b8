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

package layer

import (
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/compose/content"
)

// A ContentBuilder assembles page content where runs of operators are
// assigned to layers.
//
// Content added between [ContentBuilder.Begin] and the next Begin,
// [ContentBuilder.End] or [ContentBuilder.Build] call is wrapped in a
// marked-content sequence for the corresponding optional content
// group.
type ContentBuilder struct {
	ops  content.Stream
	open bool
}

// NewContentBuilder creates an empty builder.
func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{}
}

// Begin starts content for the layer registered under the given tag
// in the page resources.  If a layer is already open, it is closed
// first.
func (b *ContentBuilder) Begin(tag pdf.Name) {
	if b.open {
		b.End()
	}
	b.ops.Append(content.BeginOptionalContent(tag))
	b.open = true
}

// End closes the current layer.  Calling End without an open layer is
// a no-op.
func (b *ContentBuilder) End() {
	if !b.open {
		return
	}
	b.ops.Append(content.EndMarkedContent())
	b.open = false
}

// Add appends operators to the current content.
func (b *ContentBuilder) Add(ops ...content.Operator) {
	b.ops.Append(ops...)
}

// Build closes any open layer and returns the assembled content.
func (b *ContentBuilder) Build() content.Stream {
	b.End()
	return b.ops
}
