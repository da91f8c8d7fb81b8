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
	"io"

	"seehuhn.de/go/pdf"
)

// A copier duplicates objects from a source document into the target
// document, rewriting all references.  Copies are memoized, so that
// shared objects are copied only once and reference cycles
// terminate.
//
// The resulting object tree never contains references into the
// source document.
type copier struct {
	r     pdf.Getter
	w     pdf.Putter
	trans map[pdf.Reference]pdf.Reference
}

func newCopier(w pdf.Putter, r pdf.Getter) *copier {
	return &copier{
		r:     r,
		w:     w,
		trans: map[pdf.Reference]pdf.Reference{},
	}
}

// Copy copies an object from the source to the target document.
func (c *copier) Copy(obj pdf.Object) (pdf.Object, error) {
	switch x := obj.(type) {
	case pdf.Dict:
		return c.copyDict(x)
	case pdf.Array:
		return c.copyArray(x)
	case pdf.Reference:
		return c.copyReference(x)
	case *pdf.Stream:
		// Streams must be indirect objects in the target.
		ref := c.w.Alloc()
		err := c.copyStream(ref, x)
		if err != nil {
			return nil, err
		}
		return ref, nil
	default:
		return obj, nil
	}
}

func (c *copier) copyDict(dict pdf.Dict) (pdf.Dict, error) {
	res := make(pdf.Dict, len(dict))
	for key, val := range dict {
		newVal, err := c.Copy(val)
		if err != nil {
			return nil, err
		}
		res[key] = newVal
	}
	return res, nil
}

func (c *copier) copyArray(arr pdf.Array) (pdf.Array, error) {
	res := make(pdf.Array, len(arr))
	for i, val := range arr {
		newVal, err := c.Copy(val)
		if err != nil {
			return nil, err
		}
		res[i] = newVal
	}
	return res, nil
}

func (c *copier) copyReference(ref pdf.Reference) (pdf.Object, error) {
	if newRef, ok := c.trans[ref]; ok {
		return newRef, nil
	}

	resolved, err := pdf.Resolve(c.r, ref)
	if err != nil || resolved == nil {
		// A dangling reference becomes null in the target.
		return nil, nil
	}

	newRef := c.w.Alloc()
	c.trans[ref] = newRef

	if stm, ok := resolved.(*pdf.Stream); ok {
		err = c.copyStream(newRef, stm)
		if err != nil {
			return nil, err
		}
		return newRef, nil
	}

	newObj, err := c.Copy(resolved)
	if err != nil {
		return nil, err
	}
	err = c.w.Put(newRef, newObj)
	if err != nil {
		return nil, err
	}
	return newRef, nil
}

// copyStream writes a copy of a stream to the target document.  If
// the stream data can be decoded, it is re-compressed in the target;
// otherwise the raw bytes and the original filter chain are kept.
func (c *copier) copyStream(newRef pdf.Reference, stm *pdf.Stream) error {
	body, decoded := streamBytes(c.r, stm)

	dict := make(pdf.Dict, len(stm.Dict))
	for key, val := range stm.Dict {
		switch key {
		case "Length":
			continue
		case "Filter", "DecodeParms":
			if decoded {
				continue
			}
		}
		newVal, err := c.Copy(val)
		if err != nil {
			return err
		}
		dict[key] = newVal
	}

	var filters []pdf.Filter
	if decoded {
		filters = append(filters, &pdf.FilterCompress{})
	}
	out, err := c.w.OpenStream(newRef, dict, filters...)
	if err != nil {
		return err
	}
	_, err = out.Write(body)
	if err != nil {
		return err
	}
	return out.Close()
}

// streamBytes returns the stream contents, preferring the decoded
// form.  The second return value reports whether decoding succeeded.
func streamBytes(r pdf.Getter, stm *pdf.Stream) ([]byte, bool) {
	dec, err := pdf.DecodeStream(r, stm, 0)
	if err == nil {
		body, err := io.ReadAll(dec)
		if err == nil {
			return body, true
		}
	}
	raw, err := io.ReadAll(stm.R)
	if err != nil {
		return nil, false
	}
	return raw, false
}
