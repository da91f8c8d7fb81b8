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

// A Placement is the computed position and scale for one embedded
// page.  The position is the lower-left corner of the placed page.
type Placement struct {
	Page           int
	X, Y           float64
	ScaleX, ScaleY float64
}

// A Layout arranges the selected pages on the target page.
//
// Layouts may restrict the page selection (for example
// [FirstPageOnly] keeps only the first selected page), and they
// assign a position and scale to every remaining page.
type Layout interface {
	// filter restricts the list of selected page numbers.
	filter(pages []int, numPages int) []int

	// place computes the placement of each selected page.  sizes
	// holds the unscaled page dimensions, parallel to pages.
	place(opt *Options, pages []int, sizes [][2]float64) []Placement
}

// FirstPageOnly places only the first selected page, at the base
// position.  This is the default layout.
type FirstPageOnly struct{}

func (FirstPageOnly) filter(pages []int, numPages int) []int {
	if len(pages) > 1 {
		pages = pages[:1]
	}
	return pages
}

func (FirstPageOnly) place(opt *Options, pages []int, sizes [][2]float64) []Placement {
	return placeAtBase(opt, pages, sizes)
}

// SpecificPage places a single page, selected by its 0-based page
// number.  If the page does not exist, nothing is placed.
type SpecificPage struct {
	Page int
}

func (l SpecificPage) filter(pages []int, numPages int) []int {
	if l.Page < numPages {
		return []int{l.Page}
	}
	return nil
}

func (l SpecificPage) place(opt *Options, pages []int, sizes [][2]float64) []Placement {
	return placeAtBase(opt, pages, sizes)
}

func placeAtBase(opt *Options, pages []int, sizes [][2]float64) []Placement {
	res := make([]Placement, len(pages))
	for i, page := range pages {
		sx, sy := opt.resolveScale(sizes[i][0], sizes[i][1])
		res[i] = Placement{Page: page, X: opt.X, Y: opt.Y, ScaleX: sx, ScaleY: sy}
	}
	return res
}

// Vertical stacks the pages downwards from the base position.
type Vertical struct {
	Gap float64
}

func (Vertical) filter(pages []int, numPages int) []int {
	return pages
}

func (l Vertical) place(opt *Options, pages []int, sizes [][2]float64) []Placement {
	res := make([]Placement, len(pages))
	y := opt.Y
	for i, page := range pages {
		sx, sy := opt.resolveScale(sizes[i][0], sizes[i][1])
		res[i] = Placement{Page: page, X: opt.X, Y: y, ScaleX: sx, ScaleY: sy}
		y -= sizes[i][1]*sy + l.Gap
	}
	return res
}

// Horizontal places the pages in a row, growing to the right from the
// base position.
type Horizontal struct {
	Gap float64
}

func (Horizontal) filter(pages []int, numPages int) []int {
	return pages
}

func (l Horizontal) place(opt *Options, pages []int, sizes [][2]float64) []Placement {
	res := make([]Placement, len(pages))
	x := opt.X
	for i, page := range pages {
		sx, sy := opt.resolveScale(sizes[i][0], sizes[i][1])
		res[i] = Placement{Page: page, X: x, Y: opt.Y, ScaleX: sx, ScaleY: sy}
		x += sizes[i][0]*sx + l.Gap
	}
	return res
}

// GridOrder selects how grid cells are filled.
type GridOrder int

const (
	// RowFirst fills the grid row by row.
	RowFirst GridOrder = iota

	// ColumnFirst distributes consecutive pages across the columns
	// of the grid: page i goes to row i mod columns and column
	// i / columns.
	ColumnFirst
)

// Grid arranges the pages in a grid.  The base position is the
// lower-left corner of the top-left cell; rows grow downwards.
type Grid struct {
	Columns    int
	GapX, GapY float64
	Order      GridOrder
}

func (Grid) filter(pages []int, numPages int) []int {
	return pages
}

func (l Grid) place(opt *Options, pages []int, sizes [][2]float64) []Placement {
	columns := l.Columns
	if columns < 1 {
		columns = 1
	}
	res := make([]Placement, len(pages))
	for i, page := range pages {
		sx, sy := opt.resolveScale(sizes[i][0], sizes[i][1])
		var row, col int
		if l.Order == ColumnFirst {
			row = i % columns
			col = i / columns
		} else {
			row = i / columns
			col = i % columns
		}
		x := opt.X + float64(col)*(sizes[i][0]*sx+l.GapX)
		y := opt.Y - float64(row)*(sizes[i][1]*sy+l.GapY)
		res[i] = Placement{Page: page, X: x, Y: y, ScaleX: sx, ScaleY: sy}
	}
	return res
}

// Custom computes positions and scales using caller-supplied
// functions.  The index passed to the functions is the position of
// the page in the selection, not the page number.
//
// Scales returned by the Scale function are used as given; the
// MaxWidth/MaxHeight constraints of the options do not apply.
type Custom struct {
	// Position returns the offset of page idx from the base
	// position.  The unscaled page size is passed in.  If Position
	// is nil, all pages are placed at the base position.
	Position func(idx int, width, height float64) (dx, dy float64)

	// Scale returns the scale factors for page idx.  If Scale is
	// nil, the scale from the options is resolved as usual.
	Scale func(idx int) (sx, sy float64)
}

func (Custom) filter(pages []int, numPages int) []int {
	return pages
}

func (l Custom) place(opt *Options, pages []int, sizes [][2]float64) []Placement {
	res := make([]Placement, len(pages))
	for i, page := range pages {
		var sx, sy float64
		if l.Scale != nil {
			sx, sy = l.Scale(i)
		} else {
			sx, sy = opt.resolveScale(sizes[i][0], sizes[i][1])
		}
		x, y := opt.X, opt.Y
		if l.Position != nil {
			dx, dy := l.Position(i, sizes[i][0], sizes[i][1])
			x += dx
			y += dy
		}
		res[i] = Placement{Page: page, X: x, Y: y, ScaleX: sx, ScaleY: sy}
	}
	return res
}
