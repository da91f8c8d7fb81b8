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
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/compose/content"
)

// Shapes assembles page content where shapes are filled with
// patterns from the page resources.
type Shapes struct {
	ops content.Stream
}

// NewShapes creates an empty shape builder.
func NewShapes() *Shapes {
	return &Shapes{}
}

// Rect adds a rectangle filled with the given pattern.
func (s *Shapes) Rect(x, y, width, height float64, pattern pdf.Name) *Shapes {
	s.ops.Append(
		content.FillColorSpacePattern(),
		content.SetFillPattern(pattern),
		content.Rect(x, y, width, height),
		content.Fill(),
	)
	return s
}

// Circle adds a circle filled with the given pattern.
func (s *Shapes) Circle(cx, cy, r float64, pattern pdf.Name) *Shapes {
	s.ops.Append(
		content.FillColorSpacePattern(),
		content.SetFillPattern(pattern),
	)
	appendCircle(&s.ops, cx, cy, r)
	s.ops.Append(content.Fill())
	return s
}

// Triangle adds a triangle filled with the given pattern.
func (s *Shapes) Triangle(x1, y1, x2, y2, x3, y3 float64, pattern pdf.Name) *Shapes {
	s.ops.Append(
		content.FillColorSpacePattern(),
		content.SetFillPattern(pattern),
		content.MoveTo(x1, y1),
		content.LineTo(x2, y2),
		content.LineTo(x3, y3),
		content.ClosePath(),
		content.Fill(),
	)
	return s
}

// Ops returns the assembled content.
func (s *Shapes) Ops() content.Stream {
	return s.ops
}
