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

// Package block manages reusable pieces of page content.
//
// A block is a named list of content stream operators which can be
// placed on pages any number of times, each time with its own
// transform.  Blocks can be rendered inline, or they can be embedded
// as form XObjects so that the content is stored only once in the
// file.
package block

import (
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/compose"
	"seehuhn.de/go/compose/content"
)

// A Block is a reusable piece of content.
type Block struct {
	// ID identifies the block within a Manager.
	ID string

	// Ops is the content of the block.
	Ops content.Stream

	// BBox is the bounding box of the content.  If this is nil, the
	// bounding box [0 0 100 100] is used when the block is embedded
	// as a form XObject.
	BBox *pdf.Rectangle

	// Resources are the PDF resources used by Ops, if any.
	Resources pdf.Dict
}

// New creates an empty block.
func New(id string) *Block {
	return &Block{ID: id}
}

// WithBBox sets the bounding box and returns the block.
func (b *Block) WithBBox(x, y, width, height float64) *Block {
	b.BBox = &pdf.Rectangle{
		LLx: x,
		LLy: y,
		URx: x + width,
		URy: y + height,
	}
	return b
}

// WithResources sets the resource dictionary and returns the block.
func (b *Block) WithResources(res pdf.Dict) *Block {
	b.Resources = res
	return b
}

// Add appends operators to the block content.
func (b *Block) Add(ops ...content.Operator) *Block {
	b.Ops.Append(ops...)
	return b
}

// An Instance places a block on a page.
type Instance struct {
	BlockID   string
	Transform compose.Transform
}

// At places the block with the given ID at position (x, y).
func At(blockID string, x, y float64) Instance {
	return Instance{
		BlockID:   blockID,
		Transform: compose.Translate(x, y),
	}
}

// AtScale places the block at position (x, y), scaled uniformly.
func AtScale(blockID string, x, y, scale float64) Instance {
	return Instance{
		BlockID:   blockID,
		Transform: compose.TranslateScale(x, y, scale),
	}
}

// Merge combines the content of several blocks into a single operator
// list, in the given order.
func Merge(blocks ...*Block) content.Stream {
	streams := make([]content.Stream, len(blocks))
	for i, b := range blocks {
		streams[i] = b.Ops
	}
	return content.Merge(streams...)
}
