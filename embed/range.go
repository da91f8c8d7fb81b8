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

// A PageRange selects pages from a source document.  Page numbers are
// 0-based.
type PageRange interface {
	// Indices returns the selected page numbers, in order, for a
	// document with the given number of pages.  The returned indices
	// are not guaranteed to be valid; [Embedder.Embed] reports an
	// error for out-of-range pages.
	Indices(numPages int) []int
}

// Single selects one page.
type Single int

// Indices implements the [PageRange] interface.
func (s Single) Indices(numPages int) []int {
	return []int{int(s)}
}

// Range selects the pages from Start to End, inclusive.  End values
// past the last page are clamped.
type Range struct {
	Start, End int
}

// Indices implements the [PageRange] interface.
func (r Range) Indices(numPages int) []int {
	end := r.End
	if end > numPages-1 {
		end = numPages - 1
	}
	var res []int
	for i := r.Start; i <= end; i++ {
		res = append(res, i)
	}
	return res
}

// Pages selects an explicit list of pages.
type Pages []int

// Indices implements the [PageRange] interface.
func (p Pages) Indices(numPages int) []int {
	res := make([]int, len(p))
	copy(res, p)
	return res
}

// All selects every page of the document.
var All PageRange = allPages{}

type allPages struct{}

func (allPages) Indices(numPages int) []int {
	res := make([]int, numPages)
	for i := range res {
		res[i] = i
	}
	return res
}
