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

// Package compose provides shared types for the composition helpers in
// the sub-packages of seehuhn.de/go/compose.
package compose

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Transform describes how a piece of content is placed on a page.
// Content is first scaled, then rotated, then translated.
//
// The zero value is not useful; use one of the constructors, or set
// ScaleX and ScaleY explicitly.
type Transform struct {
	// ScaleX and ScaleY are the scale factors in x- and y-direction.
	ScaleX, ScaleY float64

	// Rotation is the rotation angle in degrees, counter-clockwise.
	Rotation float64

	// Dx and Dy give the translation, in PDF user space units.
	Dx, Dy float64
}

// Translate returns a transform which moves content by (dx, dy)
// without scaling or rotation.
func Translate(dx, dy float64) Transform {
	return Transform{
		ScaleX: 1,
		ScaleY: 1,
		Dx:     dx,
		Dy:     dy,
	}
}

// TranslateScale returns a transform which scales content uniformly by
// the factor scale and moves it by (dx, dy).
func TranslateScale(dx, dy, scale float64) Transform {
	return Transform{
		ScaleX: scale,
		ScaleY: scale,
		Dx:     dx,
		Dy:     dy,
	}
}

// TranslateScaleXY returns a transform with separate scale factors for
// the x- and y-direction.
func TranslateScaleXY(dx, dy, scaleX, scaleY float64) Transform {
	return Transform{
		ScaleX: scaleX,
		ScaleY: scaleY,
		Dx:     dx,
		Dy:     dy,
	}
}

// Full returns a transform with translation, separate scale factors,
// and a rotation given in degrees.
func Full(dx, dy, scaleX, scaleY, degrees float64) Transform {
	return Transform{
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Rotation: degrees,
		Dx:       dx,
		Dy:       dy,
	}
}

// Matrix returns the PDF transformation matrix
//
//	[sx*cos(θ), sx*sin(θ), -sy*sin(θ), sy*cos(θ), dx, dy]
//
// where θ is the rotation angle in radians.
func (t Transform) Matrix() matrix.Matrix {
	theta := t.Rotation * math.Pi / 180
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	return matrix.Matrix{
		t.ScaleX * cos, t.ScaleX * sin,
		-t.ScaleY * sin, t.ScaleY * cos,
		t.Dx, t.Dy,
	}
}
