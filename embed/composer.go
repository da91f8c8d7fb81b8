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

package embed

import (
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/compose/content"
)

// A Composer accumulates several embed operations into a single
// operator list and resource set, for pages which show content from
// more than one source document.
type Composer struct {
	embedder *Embedder
	ops      content.Stream
	xobjects pdf.Dict
}

// NewComposer creates an empty composer.
func NewComposer() *Composer {
	return &Composer{
		embedder: NewEmbedder(),
		xobjects: pdf.Dict{},
	}
}

// Embedder returns the underlying embedder, for loading sources and
// querying document information.
func (c *Composer) Embedder() *Embedder {
	return c.embedder
}

// LoadFile loads a source document from a file.
func (c *Composer) LoadFile(path string) (string, error) {
	return c.embedder.LoadFile(path)
}

// Add embeds pages from one source and appends the result.
func (c *Composer) Add(w pdf.Putter, id string, opt *Options) error {
	res, err := c.embedder.Embed(w, id, opt)
	if err != nil {
		return err
	}
	c.ops = append(c.ops, res.Ops...)
	for name, ref := range res.XObjects {
		c.xobjects[name] = ref
	}
	return nil
}

// AddThumbnailGallery embeds all pages of a source as a grid of
// thumbnails.  Each page is scaled to fit into a square with the
// given size.
func (c *Composer) AddThumbnailGallery(w pdf.Putter, id string, x, y, thumbSize float64, columns int, gap float64) error {
	opt := NewOptions().
		At(x, y).
		WithMaxSize(thumbSize, thumbSize).
		WithLayout(Grid{
			Columns: columns,
			GapX:    gap,
			GapY:    gap,
			Order:   RowFirst,
		})
	return c.Add(w, id, opt)
}

// AddComparison embeds the first pages of two sources side by side
// in an area of the given width and height.
func (c *Composer) AddComparison(w pdf.Putter, leftID, rightID string, x, y, width, height, gap float64) error {
	halfWidth := (width - gap) / 2

	leftOpt := NewOptions().
		At(x, y).
		WithMaxSize(halfWidth, height).
		WithLayout(FirstPageOnly{})
	err := c.Add(w, leftID, leftOpt)
	if err != nil {
		return err
	}

	rightOpt := NewOptions().
		At(x+halfWidth+gap, y).
		WithMaxSize(halfWidth, height).
		WithLayout(FirstPageOnly{})
	return c.Add(w, rightID, rightOpt)
}

// Result returns the accumulated operators and resources.
func (c *Composer) Result() *Result {
	return &Result{
		Ops:      c.ops,
		XObjects: c.xobjects,
	}
}
