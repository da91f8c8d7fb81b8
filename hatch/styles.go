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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/compose/content"
)

// cellOps generates the content of one pattern tile.
func cellOps(cfg Config, width, height float64) content.Stream {
	var ops content.Stream

	if bg := cfg.Background; bg != nil {
		ops.Append(
			content.SetFillRGB(bg[0], bg[1], bg[2]),
			content.Rect(0, 0, width, height),
			content.Fill(),
		)
	}

	if cfg.Custom != nil {
		return append(ops, cfg.Custom.CellOps(width, height)...)
	}

	r, g, b := cfg.Color[0], cfg.Color[1], cfg.Color[2]
	ops.Append(
		content.SetLineWidth(cfg.LineWidth),
		content.SetStrokeRGB(r, g, b),
		content.SetFillRGB(r, g, b),
	)

	if cfg.Angle != 0 {
		theta := cfg.Angle * math.Pi / 180
		sin, cos := math.Sin(theta), math.Cos(theta)
		ops.Append(content.ConcatMatrix(
			matrix.Matrix{cos, sin, -sin, cos, 0, 0}))
	}

	switch cfg.Style {
	case DiagonalRight:
		diagonalRight(&ops, width, height)
	case DiagonalLeft:
		diagonalLeft(&ops, width, height)
	case Horizontal:
		horizontal(&ops, width, height)
	case Vertical:
		vertical(&ops, width, height)
	case Cross:
		horizontal(&ops, width, height)
		vertical(&ops, width, height)
	case DiagonalCross:
		diagonalRight(&ops, width, height)
		diagonalLeft(&ops, width, height)
	case Dots:
		appendCircle(&ops, width/2, height/2, cfg.Spacing*0.2)
		ops.Append(content.Fill())
	case Checkerboard:
		ops.Append(
			content.Rect(0, 0, width/2, height/2),
			content.Rect(width/2, height/2, width/2, height/2),
			content.Fill(),
		)
	case Brick:
		brick(&ops, width, height)
	case Hexagonal:
		hexagon(&ops, width, height)
	case Wave:
		ops.Append(
			content.MoveTo(0, height/2),
			content.CurveTo(width/4, 0, width*3/4, height, width, height/2),
			content.Stroke(),
		)
	case Zigzag:
		ops.Append(
			content.MoveTo(0, height/2),
			content.LineTo(width/4, 0),
			content.LineTo(width/2, height),
			content.LineTo(width*3/4, 0),
			content.LineTo(width, height/2),
			content.Stroke(),
		)
	case Circles:
		appendCircle(&ops, width/2, height/2, math.Min(width, height)*0.3)
		ops.Append(content.Stroke())
	case Triangles:
		ops.Append(
			content.MoveTo(width/2, 0),
			content.LineTo(0, height),
			content.LineTo(width, height),
			content.ClosePath(),
			content.Stroke(),
		)
	case Diamond:
		ops.Append(
			content.MoveTo(width/2, 0),
			content.LineTo(width, height/2),
			content.LineTo(width/2, height),
			content.LineTo(0, height/2),
			content.ClosePath(),
			content.Stroke(),
		)
	case Scales:
		appendArc(&ops, width/2, height, width/2, 0, math.Pi)
		ops.Append(content.Stroke())
	case Spiral:
		spiral(&ops, width, height)
	case DottedGrid:
		horizontal(&ops, width, height)
		vertical(&ops, width, height)
		appendCircle(&ops, width/2, height/2, math.Min(width, height)*0.1)
		ops.Append(content.Fill())
	case ConcentricCircles:
		maxR := math.Min(width, height) / 2
		for i := 1; i <= 3; i++ {
			appendCircle(&ops, width/2, height/2, maxR*float64(i)/3)
			ops.Append(content.Stroke())
		}
	case WoodGrain:
		woodGrain(&ops, width, height)
	}

	return ops
}

func diagonalRight(ops *content.Stream, width, height float64) {
	ops.Append(
		content.MoveTo(0, 0),
		content.LineTo(width, height),
		content.Stroke(),
	)
}

func diagonalLeft(ops *content.Stream, width, height float64) {
	ops.Append(
		content.MoveTo(0, height),
		content.LineTo(width, 0),
		content.Stroke(),
	)
}

func horizontal(ops *content.Stream, width, height float64) {
	ops.Append(
		content.MoveTo(0, height/2),
		content.LineTo(width, height/2),
		content.Stroke(),
	)
}

func vertical(ops *content.Stream, width, height float64) {
	ops.Append(
		content.MoveTo(width/2, 0),
		content.LineTo(width/2, height),
		content.Stroke(),
	)
}

func brick(ops *content.Stream, width, height float64) {
	ops.Append(
		content.MoveTo(0, height/2),
		content.LineTo(width, height/2),
		content.Stroke(),

		content.MoveTo(width/4, 0),
		content.LineTo(width/4, height/2),
		content.Stroke(),

		content.MoveTo(width*3/4, height/2),
		content.LineTo(width*3/4, height),
		content.Stroke(),
	)
}

func hexagon(ops *content.Stream, width, height float64) {
	cx := width / 2
	cy := height / 2
	r := width / 3
	ops.Append(content.MoveTo(cx+r, cy))
	for i := 1; i < 7; i++ {
		phi := float64(i) * math.Pi / 3
		ops.Append(content.LineTo(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	ops.Append(content.Stroke())
}

func spiral(ops *content.Stream, width, height float64) {
	cx := width / 2
	cy := height / 2
	maxR := math.Min(width, height) / 2
	const steps = 20
	ops.Append(content.MoveTo(cx, cy))
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		phi := t * 2 * math.Pi
		r := t * maxR
		ops.Append(content.LineTo(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	ops.Append(content.Stroke())
}

func woodGrain(ops *content.Stream, width, height float64) {
	for i := 0; i < 3; i++ {
		y := height * (float64(i) + 0.5) / 3
		ops.Append(
			content.MoveTo(0, y),
			content.CurveTo(
				width*0.2, y-height*0.1,
				width*0.8, y+height*0.1,
				width, y),
			content.Stroke(),
		)
	}
}

// bezierK is the control point distance for approximating a quarter
// circle with a cubic Bézier curve.
const bezierK = 0.5522848

// appendCircle adds a full circle to the current path.
func appendCircle(ops *content.Stream, cx, cy, r float64) {
	k := bezierK
	ops.Append(
		content.MoveTo(cx+r, cy),
		content.CurveTo(cx+r, cy+k*r, cx+k*r, cy+r, cx, cy+r),
		content.CurveTo(cx-k*r, cy+r, cx-r, cy+k*r, cx-r, cy),
		content.CurveTo(cx-r, cy-k*r, cx-k*r, cy-r, cx, cy-r),
		content.CurveTo(cx+k*r, cy-r, cx+r, cy-k*r, cx+r, cy),
	)
}

// appendArc adds a circular arc as a single cubic Bézier segment.
// The approximation is coarse for large angular ranges.
func appendArc(ops *content.Stream, cx, cy, r, startAngle, endAngle float64) {
	startX := cx + r*math.Cos(startAngle)
	startY := cy + r*math.Sin(startAngle)
	endX := cx + r*math.Cos(endAngle)
	endY := cy + r*math.Sin(endAngle)

	d := r * bezierK
	mid := (startAngle + endAngle) / 2

	ops.Append(
		content.MoveTo(startX, startY),
		content.CurveTo(
			startX+d*math.Cos(mid-math.Pi/2),
			startY+d*math.Sin(mid-math.Pi/2),
			endX+d*math.Cos(mid+math.Pi/2),
			endY+d*math.Sin(mid+math.Pi/2),
			endX, endY),
	)
}
