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
	"seehuhn.de/go/compose"
	"seehuhn.de/go/compose/content"
)

// A Custom generates the content of one pattern tile.
type Custom interface {
	// CellOps returns the operators drawing a tile of the given size.
	CellOps(width, height float64) content.Stream
}

// CellFunc allows an ordinary function to be used as a custom tile.
type CellFunc func(width, height float64) content.Stream

// CellOps implements the [Custom] interface.
func (f CellFunc) CellOps(width, height float64) content.Stream {
	return f(width, height)
}

// Params holds the parameters of a parametric tile.
type Params struct {
	Data    map[string]float64
	Colors  [][3]float64
	Strings map[string]string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{
		Data:    map[string]float64{},
		Strings: map[string]string{},
	}
}

// WithParam sets a numeric parameter and returns the set.
func (p *Params) WithParam(key string, value float64) *Params {
	p.Data[key] = value
	return p
}

// WithColor appends a colour and returns the set.
func (p *Params) WithColor(r, g, b float64) *Params {
	p.Colors = append(p.Colors, [3]float64{r, g, b})
	return p
}

// Get returns a numeric parameter, or 0 if it is not set.
func (p *Params) Get(key string) float64 {
	return p.Data[key]
}

// Parametric is a tile drawn by a function which receives a parameter
// set in addition to the tile size.
type Parametric struct {
	Func   func(width, height float64, params *Params) content.Stream
	Params *Params
}

// CellOps implements the [Custom] interface.
func (p Parametric) CellOps(width, height float64) content.Stream {
	return p.Func(width, height, p.Params)
}

// A Sampler decides which grid cells of a procedural tile are marked.
// The coordinates x and y are in tile space, and t varies from 0 to 1
// over the diagonal of the grid.
type Sampler interface {
	Sample(x, y, t float64) bool
}

// SamplerFunc allows an ordinary function to be used as a Sampler.
type SamplerFunc func(x, y, t float64) bool

// Sample implements the [Sampler] interface.
func (f SamplerFunc) Sample(x, y, t float64) bool {
	return f(x, y, t)
}

// Procedural is a tile generated by sampling a function on a square
// grid.  Marked cells are drawn as squares (if Fill is set) or as
// dots.  Generation takes Resolution² samples.
type Procedural struct {
	Sampler    Sampler
	Resolution int
	Fill       bool
}

// CellOps implements the [Custom] interface.
func (p Procedural) CellOps(width, height float64) content.Stream {
	var ops content.Stream
	if p.Sampler == nil || p.Resolution <= 0 {
		return ops
	}
	n := p.Resolution
	step := min(width, height) / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := float64(i) * step
			y := float64(j) * step
			t := (float64(i)/float64(n) + float64(j)/float64(n)) / 2
			if !p.Sampler.Sample(x, y, t) {
				continue
			}
			if p.Fill {
				ops.Append(
					content.Rect(x, y, step, step),
					content.Fill(),
				)
			} else {
				appendCircle(&ops, x+step/2, y+step/2, step*0.3)
				ops.Append(content.Fill())
			}
		}
	}
	return ops
}

// An Element is one layer of a composite tile.
type Element struct {
	Ops       content.Stream
	Transform *compose.Transform

	// Opacity is recorded but not yet applied; elements are drawn
	// fully opaque.
	Opacity float64
}

// Composite is a tile assembled from several elements, drawn in
// order.  Elements with a transform are wrapped in q/Q.
type Composite []Element

// CellOps implements the [Custom] interface.
func (c Composite) CellOps(width, height float64) content.Stream {
	var ops content.Stream
	for _, e := range c {
		if e.Transform != nil {
			ops.Append(
				content.PushState(),
				content.ConcatMatrix(e.Transform.Matrix()),
			)
		}
		ops = append(ops, e.Ops...)
		if e.Transform != nil {
			ops.Append(content.PopState())
		}
	}
	return ops
}

// A Builder assembles the content of a custom tile using a fluent
// API.  Path segments are buffered until a painting method flushes
// them.
type Builder struct {
	ops   content.Stream
	path  content.Stream
	depth int
}

// NewBuilder creates an empty tile builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.path.Append(content.MoveTo(x, y))
	return b
}

// LineTo adds a line segment.
func (b *Builder) LineTo(x, y float64) *Builder {
	b.path.Append(content.LineTo(x, y))
	return b
}

// CurveTo adds a cubic Bézier segment.
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) *Builder {
	b.path.Append(content.CurveTo(x1, y1, x2, y2, x3, y3))
	return b
}

// ClosePath closes the current subpath.
func (b *Builder) ClosePath() *Builder {
	b.path.Append(content.ClosePath())
	return b
}

// Rect adds a rectangle to the current path.
func (b *Builder) Rect(x, y, width, height float64) *Builder {
	b.path.Append(content.Rect(x, y, width, height))
	return b
}

// Circle adds a circle to the current path.
func (b *Builder) Circle(cx, cy, r float64) *Builder {
	appendCircle(&b.path, cx, cy, r)
	return b
}

// Polygon adds a closed polygon to the current path.
func (b *Builder) Polygon(points [][2]float64) *Builder {
	if len(points) == 0 {
		return b
	}
	b.path.Append(content.MoveTo(points[0][0], points[0][1]))
	for _, p := range points[1:] {
		b.path.Append(content.LineTo(p[0], p[1]))
	}
	b.path.Append(content.ClosePath())
	return b
}

// Stroke paints the buffered path.
func (b *Builder) Stroke() *Builder {
	b.flushPath()
	b.ops.Append(content.Stroke())
	return b
}

// Fill fills the buffered path.
func (b *Builder) Fill() *Builder {
	b.flushPath()
	b.ops.Append(content.Fill())
	return b
}

// FillStroke fills and strokes the buffered path.
func (b *Builder) FillStroke() *Builder {
	b.flushPath()
	b.ops.Append(content.FillStroke())
	return b
}

// SetLineWidth sets the stroke width.
func (b *Builder) SetLineWidth(width float64) *Builder {
	b.flushPath()
	b.ops.Append(content.SetLineWidth(width))
	return b
}

// SetStrokeColor sets the stroke colour.
func (b *Builder) SetStrokeColor(r, g, bl float64) *Builder {
	b.flushPath()
	b.ops.Append(content.SetStrokeRGB(r, g, bl))
	return b
}

// SetFillColor sets the fill colour.
func (b *Builder) SetFillColor(r, g, bl float64) *Builder {
	b.flushPath()
	b.ops.Append(content.SetFillRGB(r, g, bl))
	return b
}

// SetDash sets the dash pattern.
func (b *Builder) SetDash(pattern []float64, phase float64) *Builder {
	b.flushPath()
	b.ops.Append(content.SetDash(pattern, phase))
	return b
}

// PushTransform saves the graphics state and applies a transform.
func (b *Builder) PushTransform(t compose.Transform) *Builder {
	b.flushPath()
	b.ops.Append(
		content.PushState(),
		content.ConcatMatrix(t.Matrix()),
	)
	b.depth++
	return b
}

// PopTransform restores the graphics state saved by the last
// [Builder.PushTransform].
func (b *Builder) PopTransform() *Builder {
	if b.depth == 0 {
		return b
	}
	b.flushPath()
	b.ops.Append(content.PopState())
	b.depth--
	return b
}

// Add appends a raw operator.
func (b *Builder) Add(op content.Operator) *Builder {
	b.flushPath()
	b.ops.Append(op)
	return b
}

func (b *Builder) flushPath() {
	b.ops = append(b.ops, b.path...)
	b.path = nil
}

// Ops returns the assembled tile content.  Unpainted path segments
// are flushed, and open transforms are closed.
func (b *Builder) Ops() content.Stream {
	b.flushPath()
	for b.depth > 0 {
		b.ops.Append(content.PopState())
		b.depth--
	}
	return b.ops
}
