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
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// Pages without a usable MediaBox are assumed to be A4.
const (
	defaultPageWidth  = 595.0
	defaultPageHeight = 842.0
)

// pageGeometry extracts the media box of a page.  Missing or
// malformed entries fall back to A4.
func pageGeometry(r pdf.Getter, pageDict pdf.Dict) (*pdf.Rectangle, float64, float64) {
	fallback := &pdf.Rectangle{URx: defaultPageWidth, URy: defaultPageHeight}

	box, err := pdf.GetArray(r, pageDict["MediaBox"])
	if err != nil || len(box) < 4 {
		return fallback, defaultPageWidth, defaultPageHeight
	}
	var coord [4]float64
	for i := 0; i < 4; i++ {
		num, err := pdf.GetNumber(r, box[i])
		if err != nil {
			return fallback, defaultPageWidth, defaultPageHeight
		}
		coord[i] = float64(num)
	}
	rect := &pdf.Rectangle{
		LLx: coord[0],
		LLy: coord[1],
		URx: coord[2],
		URy: coord[3],
	}
	width := coord[2] - coord[0]
	if width < 0 {
		width = -width
	}
	height := coord[3] - coord[1]
	if height < 0 {
		height = -height
	}
	return rect, width, height
}

// contentBytes extracts the content stream data of a page.  The
// Contents entry may be a stream or an array of streams; array parts
// are concatenated, each followed by a newline.  Anything that cannot
// be read yields no bytes instead of an error.
func contentBytes(r pdf.Getter, obj pdf.Object) []byte {
	resolved, err := pdf.Resolve(r, obj)
	if err != nil || resolved == nil {
		return nil
	}
	switch x := resolved.(type) {
	case *pdf.Stream:
		body, _ := streamBytes(r, x)
		return body
	case pdf.Array:
		var res []byte
		for _, elem := range x {
			res = append(res, contentBytes(r, elem)...)
			res = append(res, '\n')
		}
		return res
	default:
		return nil
	}
}

// importPage copies one source page into the target document as a
// form XObject and returns its reference.  Imports are cached per
// target document.
func (s *source) importPage(w pdf.Putter, pageNo int) (pdf.Reference, error) {
	key := xoKey{w: w, page: pageNo}
	if ref, ok := s.xobjects[key]; ok {
		return ref, nil
	}

	pageDict, err := pagetree.GetPage(s.r, pageNo)
	if err != nil {
		return 0, fmt.Errorf("page %d: %w", pageNo, err)
	}

	rect, _, _ := pageGeometry(s.r, pageDict)
	body := contentBytes(s.r, pageDict["Contents"])

	dict := pdf.Dict{
		"Type":     pdf.Name("XObject"),
		"Subtype":  pdf.Name("Form"),
		"FormType": pdf.Integer(1),
		"BBox":     rect,
		"Matrix": pdf.Array{
			pdf.Number(1), pdf.Number(0), pdf.Number(0),
			pdf.Number(1), pdf.Number(0), pdf.Number(0),
		},
	}
	if res := pageDict["Resources"]; res != nil {
		copied, err := s.copierFor(w).Copy(res)
		if err != nil {
			return 0, fmt.Errorf("page %d resources: %w", pageNo, err)
		}
		dict["Resources"] = copied
	}

	ref := w.Alloc()
	stm, err := w.OpenStream(ref, dict, &pdf.FilterCompress{})
	if err != nil {
		return 0, err
	}
	_, err = stm.Write(body)
	if err != nil {
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}

	s.xobjects[key] = ref
	return ref, nil
}

func (s *source) copierFor(w pdf.Putter) *copier {
	c, ok := s.copiers[w]
	if !ok {
		c = newCopier(w, s.r)
		s.copiers[w] = c
	}
	return c
}
