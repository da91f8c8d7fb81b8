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

// Package embed places pages from other PDF documents onto pages of
// the document being written.
//
// Source pages are imported as form XObjects, so that each page is
// stored only once in the target file no matter how often it is
// placed.  All objects reachable from an imported page are copied
// into the target document; the output never references the source.
//
// Opacity values in the options are recorded for future use but are
// not applied yet: placed pages are always drawn fully opaque.
package embed

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/compose"
	"seehuhn.de/go/compose/content"
)

var (
	// ErrNotLoaded indicates that no source document is registered
	// under the given ID.
	ErrNotLoaded = errors.New("source document not loaded")

	// ErrPageNotFound indicates that a selected page does not exist
	// in the source document.
	ErrPageNotFound = errors.New("page not found")
)

// Info describes a loaded source document.
type Info struct {
	// PageCount is the number of pages.
	PageCount int

	// PageSizes holds the width and height of each page.
	PageSizes [][2]float64

	// Metadata holds the standard entries of the document
	// information dictionary which are set.
	Metadata map[string]string
}

type xoKey struct {
	w    pdf.Putter
	page int
}

type source struct {
	r        pdf.Getter
	info     *Info
	rects    []*pdf.Rectangle
	copiers  map[pdf.Putter]*copier
	xobjects map[xoKey]pdf.Reference
}

// An Embedder loads source documents and embeds their pages.
//
// Loaded documents are cached by ID, and imported pages are cached
// per target document.  An Embedder is not safe for concurrent use.
type Embedder struct {
	sources     map[string]*source
	numXObjects int
}

// NewEmbedder creates an empty embedder.
func NewEmbedder() *Embedder {
	return &Embedder{
		sources: map[string]*source{},
	}
}

// LoadFile loads a source document from a file.  The file path
// doubles as the source ID.  Loading an already loaded path is a
// no-op.
func (e *Embedder) LoadFile(path string) (string, error) {
	if _, ok := e.sources[path]; ok {
		return path, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return path, e.LoadBytes(path, data)
}

// LoadBytes loads a source document from memory and registers it
// under the given ID.  Loading an already registered ID is a no-op.
func (e *Embedder) LoadBytes(id string, data []byte) error {
	if _, ok := e.sources[id]; ok {
		return nil
	}
	r, err := pdf.Read(bytes.NewReader(data), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}
	return e.Add(id, r)
}

// Add registers an already open document under the given ID.  An
// existing registration with the same ID is replaced.
func (e *Embedder) Add(id string, r pdf.Getter) error {
	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}

	sizes := make([][2]float64, numPages)
	rects := make([]*pdf.Rectangle, numPages)
	for i := 0; i < numPages; i++ {
		rect := &pdf.Rectangle{URx: defaultPageWidth, URy: defaultPageHeight}
		width, height := defaultPageWidth, defaultPageHeight
		pageDict, err := pagetree.GetPage(r, i)
		if err == nil {
			rect, width, height = pageGeometry(r, pageDict)
		}
		rects[i] = rect
		sizes[i] = [2]float64{width, height}
	}

	e.sources[id] = &source{
		r: r,
		info: &Info{
			PageCount: numPages,
			PageSizes: sizes,
			Metadata:  documentMetadata(r),
		},
		rects:    rects,
		copiers:  map[pdf.Putter]*copier{},
		xobjects: map[xoKey]pdf.Reference{},
	}
	return nil
}

func documentMetadata(r pdf.Getter) map[string]string {
	res := map[string]string{}
	meta := r.GetMeta()
	if meta == nil || meta.Info == nil {
		return res
	}
	info := meta.Info
	for key, val := range map[string]string{
		"Title":    info.Title,
		"Author":   info.Author,
		"Subject":  info.Subject,
		"Keywords": info.Keywords,
		"Creator":  info.Creator,
		"Producer": info.Producer,
	} {
		if val != "" {
			res[key] = val
		}
	}
	return res
}

// Info returns information about a loaded source document.
func (e *Embedder) Info(id string) (*Info, error) {
	src, ok := e.sources[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotLoaded)
	}
	return src.info, nil
}

// A Result holds the outcome of an embed operation.
type Result struct {
	// Ops draws the embedded pages.  The operators must be added to
	// the content of a page whose resources include XObjects.
	Ops content.Stream

	// XObjects maps the resource names used in Ops to the imported
	// form XObjects.
	XObjects pdf.Dict
}

// AddToResources registers the XObjects of the result in the
// "XObject" sub-dictionary of the given resource dictionary.
func (res *Result) AddToResources(resources pdf.Dict) {
	xDict, _ := resources["XObject"].(pdf.Dict)
	if xDict == nil {
		xDict = pdf.Dict{}
		resources["XObject"] = xDict
	}
	for name, ref := range res.XObjects {
		xDict[name] = ref
	}
}

// Embed places pages of the source registered under id into the
// target document and returns the operators drawing them.
//
// The options select and arrange the pages; nil means the default
// options.  If a selected page does not exist in the source, no
// content is produced and an error wrapping [ErrPageNotFound] is
// returned.
func (e *Embedder) Embed(w pdf.Putter, id string, opt *Options) (*Result, error) {
	src, ok := e.sources[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotLoaded)
	}
	if opt == nil {
		opt = NewOptions()
	}

	numPages := src.info.PageCount
	layout := opt.layout()
	pages := opt.pageRange().Indices(numPages)
	pages = layout.filter(pages, numPages)
	for _, p := range pages {
		if p < 0 || p >= numPages {
			return nil, fmt.Errorf("%s: page %d: %w", id, p, ErrPageNotFound)
		}
	}

	sizes := make([][2]float64, len(pages))
	for i, p := range pages {
		sizes[i] = src.info.PageSizes[p]
	}
	placements := layout.place(opt, pages, sizes)

	res := &Result{XObjects: pdf.Dict{}}
	if clip := opt.Clip; clip != nil {
		res.Ops.Append(
			content.PushState(),
			content.Rect(clip.LLx, clip.LLy,
				clip.URx-clip.LLx, clip.URy-clip.LLy),
			content.Clip(),
			content.EndPath(),
		)
	}
	for _, p := range placements {
		ref, err := src.importPage(w, p.Page)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		e.numXObjects++
		name := pdf.Name(fmt.Sprintf("XO%d", e.numXObjects))
		res.XObjects[name] = ref

		tr := compose.Transform{
			ScaleX:   p.ScaleX,
			ScaleY:   p.ScaleY,
			Rotation: opt.Rotation,
			Dx:       p.X,
			Dy:       p.Y,
		}
		res.Ops.Append(
			content.PushState(),
			content.ConcatMatrix(tr.Matrix()),
			content.DrawXObject(name),
			content.PopState(),
		)
	}
	if opt.Clip != nil {
		res.Ops.Append(content.PopState())
	}
	return res, nil
}
