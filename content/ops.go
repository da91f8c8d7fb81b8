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

package content

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
)

// Graphics state.

// PushState returns the "q" operator.
func PushState() Operator {
	return Op("q")
}

// PopState returns the "Q" operator.
func PopState() Operator {
	return Op("Q")
}

// ConcatMatrix returns the "cm" operator for the given matrix.
func ConcatMatrix(m matrix.Matrix) Operator {
	return Op("cm",
		pdf.Number(m[0]), pdf.Number(m[1]), pdf.Number(m[2]),
		pdf.Number(m[3]), pdf.Number(m[4]), pdf.Number(m[5]))
}

// SetLineWidth returns the "w" operator.
func SetLineWidth(width float64) Operator {
	return Op("w", pdf.Number(width))
}

// SetDash returns the "d" operator.
func SetDash(pattern []float64, phase float64) Operator {
	arr := make(pdf.Array, len(pattern))
	for i, x := range pattern {
		arr[i] = pdf.Number(x)
	}
	return Op("d", arr, pdf.Number(phase))
}

// Colours.

// SetStrokeRGB returns the "RG" operator.
func SetStrokeRGB(r, g, b float64) Operator {
	return Op("RG", pdf.Number(r), pdf.Number(g), pdf.Number(b))
}

// SetFillRGB returns the "rg" operator.
func SetFillRGB(r, g, b float64) Operator {
	return Op("rg", pdf.Number(r), pdf.Number(g), pdf.Number(b))
}

// SetFillGray returns the "g" operator.
func SetFillGray(gray float64) Operator {
	return Op("g", pdf.Number(gray))
}

// SetStrokeGray returns the "G" operator.
func SetStrokeGray(gray float64) Operator {
	return Op("G", pdf.Number(gray))
}

// FillColorSpacePattern selects the Pattern colour space for filling.
func FillColorSpacePattern() Operator {
	return Op("cs", pdf.Name("Pattern"))
}

// StrokeColorSpacePattern selects the Pattern colour space for
// stroking.
func StrokeColorSpacePattern() Operator {
	return Op("CS", pdf.Name("Pattern"))
}

// SetFillPattern selects a pattern from the page resources for
// filling.
func SetFillPattern(name pdf.Name) Operator {
	return Op("scn", name)
}

// SetStrokePattern selects a pattern from the page resources for
// stroking.
func SetStrokePattern(name pdf.Name) Operator {
	return Op("SCN", name)
}

// Path construction and painting.

// MoveTo returns the "m" operator.
func MoveTo(x, y float64) Operator {
	return Op("m", pdf.Number(x), pdf.Number(y))
}

// LineTo returns the "l" operator.
func LineTo(x, y float64) Operator {
	return Op("l", pdf.Number(x), pdf.Number(y))
}

// CurveTo returns the "c" operator for a cubic Bézier segment.
func CurveTo(x1, y1, x2, y2, x3, y3 float64) Operator {
	return Op("c",
		pdf.Number(x1), pdf.Number(y1),
		pdf.Number(x2), pdf.Number(y2),
		pdf.Number(x3), pdf.Number(y3))
}

// ClosePath returns the "h" operator.
func ClosePath() Operator {
	return Op("h")
}

// Rect returns the "re" operator.
func Rect(x, y, width, height float64) Operator {
	return Op("re",
		pdf.Number(x), pdf.Number(y),
		pdf.Number(width), pdf.Number(height))
}

// Stroke returns the "S" operator.
func Stroke() Operator {
	return Op("S")
}

// Fill returns the "f" operator.
func Fill() Operator {
	return Op("f")
}

// FillStroke returns the "B" operator.
func FillStroke() Operator {
	return Op("B")
}

// Clip returns the "W" operator.
func Clip() Operator {
	return Op("W")
}

// EndPath returns the "n" operator.
func EndPath() Operator {
	return Op("n")
}

// XObjects and marked content.

// DrawXObject returns the "Do" operator.
func DrawXObject(name pdf.Name) Operator {
	return Op("Do", name)
}

// BeginOptionalContent opens a marked-content sequence which belongs
// to the optional content group registered under tag in the page
// resources.
func BeginOptionalContent(tag pdf.Name) Operator {
	return Op("BDC", pdf.Name("OC"), tag)
}

// EndMarkedContent returns the "EMC" operator.
func EndMarkedContent() Operator {
	return Op("EMC")
}

// Text.

// BeginText returns the "BT" operator.
func BeginText() Operator {
	return Op("BT")
}

// EndText returns the "ET" operator.
func EndText() Operator {
	return Op("ET")
}

// SetFont returns the "Tf" operator.
func SetFont(name pdf.Name, size float64) Operator {
	return Op("Tf", name, pdf.Number(size))
}

// TextPosition returns the "Td" operator.
func TextPosition(x, y float64) Operator {
	return Op("Td", pdf.Number(x), pdf.Number(y))
}

// ShowText returns the "Tj" operator.
func ShowText(s string) Operator {
	return Op("Tj", pdf.String(s))
}
