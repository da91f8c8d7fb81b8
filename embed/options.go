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

import "seehuhn.de/go/pdf"

// Options controls how pages are embedded.
//
// The zero value is not useful; use [NewOptions].
type Options struct {
	// X, Y is the base position, the lower-left corner of the first
	// placed page.
	X, Y float64

	// ScaleX, ScaleY are the requested scale factors.
	ScaleX, ScaleY float64

	// Rotation is the rotation angle in degrees.
	Rotation float64

	// Opacity is recorded for the embed but not yet applied; see the
	// package documentation.  The value is clamped to [0, 1].
	Opacity float64

	// Layout arranges the selected pages.
	Layout Layout

	// MaxWidth and MaxHeight limit the scaled page size.  A zero
	// value means no limit.
	MaxWidth, MaxHeight float64

	// KeepAspect couples the two scale factors when a size limit
	// reduces one of them.
	KeepAspect bool

	// Clip restricts drawing of all placed pages to the given
	// rectangle on the target page.
	Clip *pdf.Rectangle

	// Range selects the pages to embed, before the layout's own
	// filtering.
	Range PageRange
}

// NewOptions returns the default options: position (0, 0), scale 1,
// no rotation, full opacity, first page only, aspect ratio preserved.
func NewOptions() *Options {
	return &Options{
		ScaleX:     1,
		ScaleY:     1,
		Opacity:    1,
		Layout:     FirstPageOnly{},
		KeepAspect: true,
		Range:      All,
	}
}

// At sets the base position.
func (o *Options) At(x, y float64) *Options {
	o.X = x
	o.Y = y
	return o
}

// WithScale sets a uniform scale factor.
func (o *Options) WithScale(scale float64) *Options {
	o.ScaleX = scale
	o.ScaleY = scale
	return o
}

// WithScaleXY sets separate scale factors.
func (o *Options) WithScaleXY(sx, sy float64) *Options {
	o.ScaleX = sx
	o.ScaleY = sy
	return o
}

// WithRotation sets the rotation angle in degrees.
func (o *Options) WithRotation(degrees float64) *Options {
	o.Rotation = degrees
	return o
}

// WithOpacity sets the opacity, clamped to [0, 1].
func (o *Options) WithOpacity(opacity float64) *Options {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	o.Opacity = opacity
	return o
}

// WithLayout sets the layout.
func (o *Options) WithLayout(layout Layout) *Options {
	o.Layout = layout
	return o
}

// WithMaxSize limits the scaled page size.
func (o *Options) WithMaxSize(maxWidth, maxHeight float64) *Options {
	o.MaxWidth = maxWidth
	o.MaxHeight = maxHeight
	return o
}

// WithClip sets the clip rectangle.
func (o *Options) WithClip(x, y, width, height float64) *Options {
	o.Clip = &pdf.Rectangle{LLx: x, LLy: y, URx: x + width, URy: y + height}
	return o
}

// WithRange sets the page selection.
func (o *Options) WithRange(r PageRange) *Options {
	o.Range = r
	return o
}

// KeepAspectRatio sets whether size limits preserve the aspect ratio.
func (o *Options) KeepAspectRatio(keep bool) *Options {
	o.KeepAspect = keep
	return o
}

// resolveScale applies the size limits to the requested scale
// factors.  The width limit is applied first; if KeepAspect is set,
// the width-limited scale is copied to the y-axis before the height
// limit is checked, even when the limit does not reduce the scale.
func (o *Options) resolveScale(width, height float64) (float64, float64) {
	sx, sy := o.ScaleX, o.ScaleY
	if o.MaxWidth > 0 {
		if s := o.MaxWidth / width; s < sx {
			sx = s
		}
		if o.KeepAspect {
			sy = sx
		}
	}
	if o.MaxHeight > 0 {
		if s := o.MaxHeight / height; s < sy {
			sy = s
		}
		if o.KeepAspect {
			sx = sy
		}
	}
	return sx, sy
}

func (o *Options) pageRange() PageRange {
	if o.Range == nil {
		return All
	}
	return o.Range
}

func (o *Options) layout() Layout {
	if o.Layout == nil {
		return FirstPageOnly{}
	}
	return o.Layout
}

// WatermarkOptions returns options for a watermark-style embed:
// rotated by 45 degrees at position (100, 100).
func WatermarkOptions(opacity, scale float64) *Options {
	return NewOptions().
		WithOpacity(opacity).
		WithScale(scale).
		At(100, 100).
		WithRotation(45)
}

// ThumbnailOptions returns options which fit the first page into a
// square of the given size.
func ThumbnailOptions(x, y, size float64) *Options {
	return NewOptions().
		At(x, y).
		WithMaxSize(size, size)
}

// FullPageOptions returns options which fit the first page onto a
// target page of the given size.
func FullPageOptions(pageWidth, pageHeight float64) *Options {
	return NewOptions().
		WithMaxSize(pageWidth, pageHeight)
}
