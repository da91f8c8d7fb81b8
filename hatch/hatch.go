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

// Package hatch creates tiling patterns for hatching and fills.
//
// A pattern is defined by the content of a single tile which viewers
// repeat across the area being painted.  The package provides a set
// of predefined hatching styles, and several ways to define custom
// tiles.
//
// Tiling patterns are documented in section 8.7.3 of ISO 32000-2:2020.
package hatch

// Style selects one of the predefined hatching styles.
type Style int

// The predefined hatching styles.
const (
	DiagonalRight Style = iota
	DiagonalLeft
	Horizontal
	Vertical
	Cross
	DiagonalCross
	Dots
	Checkerboard
	Brick
	Hexagonal
	Wave
	Zigzag
	Circles
	Triangles
	Diamond
	Scales
	Spiral
	DottedGrid
	ConcentricCircles
	WoodGrain
)

func (s Style) String() string {
	names := []string{
		"DiagonalRight", "DiagonalLeft", "Horizontal", "Vertical",
		"Cross", "DiagonalCross", "Dots", "Checkerboard", "Brick",
		"Hexagonal", "Wave", "Zigzag", "Circles", "Triangles",
		"Diamond", "Scales", "Spiral", "DottedGrid",
		"ConcentricCircles", "WoodGrain",
	}
	if s < 0 || int(s) >= len(names) {
		return "Style(?)"
	}
	return names[s]
}

// Config describes a hatching pattern.
type Config struct {
	// Style selects the predefined tile content.  It is ignored if
	// Custom is set.
	Style Style

	// Custom, if non-nil, provides the tile content instead of Style.
	Custom Custom

	// Spacing is the base tile size in PDF user space units.
	Spacing float64

	// LineWidth is the stroke width for line-based styles.
	LineWidth float64

	// Color is the stroke and fill colour as RGB values in [0, 1].
	Color [3]float64

	// Background, if non-nil, fills the tile with the given RGB
	// colour before the pattern content is drawn.
	Background *[3]float64

	// Angle rotates the tile content, in degrees.
	Angle float64

	// Scale multiplies the tile size.
	Scale float64
}

// New returns the default configuration for the given style:
// spacing 5, line width 0.5, black, no background, no rotation.
func New(style Style) Config {
	return Config{
		Style:     style,
		Spacing:   5,
		LineWidth: 0.5,
		Scale:     1,
	}
}

// NewCustom returns the default configuration for a custom tile.
func NewCustom(custom Custom) Config {
	cfg := New(0)
	cfg.Custom = custom
	return cfg
}

// WithSpacing sets the base tile size.
func (c Config) WithSpacing(spacing float64) Config {
	c.Spacing = spacing
	return c
}

// WithLineWidth sets the stroke width.
func (c Config) WithLineWidth(width float64) Config {
	c.LineWidth = width
	return c
}

// WithColor sets the pattern colour.
func (c Config) WithColor(r, g, b float64) Config {
	c.Color = [3]float64{r, g, b}
	return c
}

// WithBackground sets the tile background colour.
func (c Config) WithBackground(r, g, b float64) Config {
	c.Background = &[3]float64{r, g, b}
	return c
}

// WithAngle sets the rotation angle in degrees.
func (c Config) WithAngle(degrees float64) Config {
	c.Angle = degrees
	return c
}

// WithScale sets the tile scale factor.
func (c Config) WithScale(scale float64) Config {
	c.Scale = scale
	return c
}

// cellSize returns the tile dimensions for the configuration.
func (c Config) cellSize() (float64, float64) {
	base := c.Spacing * c.Scale
	if c.Custom != nil {
		return base, base
	}
	switch c.Style {
	case Checkerboard:
		return base * 2, base * 2
	case Brick:
		return base * 4, base * 2
	case Hexagonal:
		return base * 3, base * 2.6
	case Circles, ConcentricCircles, Diamond, Scales:
		return base * 2, base * 2
	case Triangles:
		return base * 2, base * 1.73
	case Wave:
		return base * 4, base * 2
	case Zigzag:
		return base * 4, base
	case Spiral:
		return base * 4, base * 4
	case WoodGrain:
		return base * 8, base * 2
	default:
		return base, base
	}
}
