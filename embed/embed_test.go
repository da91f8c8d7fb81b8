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
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdf"

	"seehuhn.de/go/compose/content"
)

// newSourceDoc builds an in-memory document with one page per entry
// of pageSizes.  Each page has a small content stream and a resource
// dictionary with an indirectly referenced font.
func newSourceDoc(t *testing.T, pageSizes [][2]float64) *pdf.Data {
	t.Helper()
	doc := pdf.NewData(pdf.V1_7)

	fontRef := doc.Alloc()
	err := doc.Put(fontRef, pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Helvetica"),
	})
	if err != nil {
		t.Fatal(err)
	}

	pagesRef := doc.Alloc()
	kids := make(pdf.Array, len(pageSizes))
	for i, size := range pageSizes {
		contentRef := doc.Alloc()
		stm, err := doc.OpenStream(contentRef, pdf.Dict{})
		if err != nil {
			t.Fatal(err)
		}
		body := content.Stream{
			content.Rect(0, 0, size[0], size[1]),
			content.Fill(),
		}
		err = body.Write(stm)
		if err != nil {
			t.Fatal(err)
		}
		err = stm.Close()
		if err != nil {
			t.Fatal(err)
		}

		pageRef := doc.Alloc()
		err = doc.Put(pageRef, pdf.Dict{
			"Type":   pdf.Name("Page"),
			"Parent": pagesRef,
			"MediaBox": pdf.Array{
				pdf.Integer(0), pdf.Integer(0),
				pdf.Number(size[0]), pdf.Number(size[1]),
			},
			"Contents": contentRef,
			"Resources": pdf.Dict{
				"Font": pdf.Dict{"F1": fontRef},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		kids[i] = pageRef
	}
	err = doc.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(pageSizes)),
	})
	if err != nil {
		t.Fatal(err)
	}
	doc.GetMeta().Catalog.Pages = pagesRef
	return doc
}

func newEmbedderWithSource(t *testing.T, id string, pageSizes [][2]float64) *Embedder {
	t.Helper()
	e := NewEmbedder()
	err := e.Add(id, newSourceDoc(t, pageSizes))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestInfo(t *testing.T) {
	src := newSourceDoc(t, [][2]float64{{595, 842}, {100, 200}})
	src.GetMeta().Info = &pdf.Info{Title: "report", Author: "me"}

	e := NewEmbedder()
	if err := e.Add("src", src); err != nil {
		t.Fatal(err)
	}

	info, err := e.Info("src")
	if err != nil {
		t.Fatal(err)
	}
	if info.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", info.PageCount)
	}
	want := [][2]float64{{595, 842}, {100, 200}}
	if d := cmp.Diff(want, info.PageSizes); d != "" {
		t.Error(d)
	}
	if info.Metadata["Title"] != "report" || info.Metadata["Author"] != "me" {
		t.Errorf("Metadata = %v", info.Metadata)
	}

	_, err = e.Info("other")
	if !errors.Is(err, ErrNotLoaded) {
		t.Errorf("err = %v, want ErrNotLoaded", err)
	}
}

func TestEmbedDefault(t *testing.T) {
	e := newEmbedderWithSource(t, "src", sameSize(10, 595, 842))
	w := pdf.NewData(pdf.V1_7)

	res, err := e.Embed(w, "src", nil)
	if err != nil {
		t.Fatal(err)
	}

	// default layout places only the first page: q, cm, Do, Q
	if len(res.Ops) != 4 {
		t.Fatalf("got %d operators, want 4", len(res.Ops))
	}
	if len(res.XObjects) != 1 {
		t.Fatalf("got %d XObjects, want 1", len(res.XObjects))
	}
	want := content.Stream{
		content.Op("q"),
		content.Op("cm",
			pdf.Number(1), pdf.Number(0), pdf.Number(0),
			pdf.Number(1), pdf.Number(0), pdf.Number(0)),
		content.Op("Do", pdf.Name("XO1")),
		content.Op("Q"),
	}
	if d := cmp.Diff(want, res.Ops); d != "" {
		t.Error(d)
	}
}

func TestEmbedNotLoaded(t *testing.T) {
	e := NewEmbedder()
	w := pdf.NewData(pdf.V1_7)
	_, err := e.Embed(w, "nope", nil)
	if !errors.Is(err, ErrNotLoaded) {
		t.Errorf("err = %v, want ErrNotLoaded", err)
	}
}

func TestEmbedSinglePage(t *testing.T) {
	e := newEmbedderWithSource(t, "src", sameSize(5, 100, 100))
	w := pdf.NewData(pdf.V1_7)

	opt := NewOptions().WithRange(Single(2))
	res, err := e.Embed(w, "src", opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.XObjects) != 1 {
		t.Errorf("got %d XObjects, want 1", len(res.XObjects))
	}

	// a page index past the end fails the whole call
	opt = NewOptions().WithRange(Single(10))
	_, err = e.Embed(w, "src", opt)
	if !errors.Is(err, ErrPageNotFound) {
		t.Errorf("err = %v, want ErrPageNotFound", err)
	}
}

func TestEmbedSpecificPageMissing(t *testing.T) {
	e := newEmbedderWithSource(t, "src", sameSize(3, 100, 100))
	w := pdf.NewData(pdf.V1_7)

	// SpecificPage filters silently, so nothing is placed
	opt := NewOptions().WithLayout(SpecificPage{Page: 7})
	res, err := e.Embed(w, "src", opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Ops) != 0 || len(res.XObjects) != 0 {
		t.Errorf("got %d operators and %d XObjects, want none",
			len(res.Ops), len(res.XObjects))
	}
}

func TestEmbedVertical(t *testing.T) {
	e := newEmbedderWithSource(t, "src", sameSize(3, 100, 200))
	w := pdf.NewData(pdf.V1_7)

	opt := NewOptions().
		At(50, 700).
		WithLayout(Vertical{Gap: 10})
	res, err := e.Embed(w, "src", opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Ops) != 12 || len(res.XObjects) != 3 {
		t.Fatalf("got %d operators and %d XObjects",
			len(res.Ops), len(res.XObjects))
	}

	// the translation part of each cm operator steps down the page
	wantY := []pdf.Object{pdf.Number(700), pdf.Number(490), pdf.Number(280)}
	for i := 0; i < 3; i++ {
		cm := res.Ops[4*i+1]
		if cm.Name != "cm" {
			t.Fatalf("op %d is %q, want cm", 4*i+1, cm.Name)
		}
		if cm.Args[5] != wantY[i] {
			t.Errorf("page %d: ty = %v, want %v", i, cm.Args[5], wantY[i])
		}
	}
}

func TestEmbedClip(t *testing.T) {
	e := newEmbedderWithSource(t, "src", sameSize(1, 100, 100))
	w := pdf.NewData(pdf.V1_7)

	opt := NewOptions().WithClip(10, 20, 200, 100)
	res, err := e.Embed(w, "src", opt)
	if err != nil {
		t.Fatal(err)
	}

	// q re W n  q cm Do Q  Q
	if len(res.Ops) != 9 {
		t.Fatalf("got %d operators, want 9", len(res.Ops))
	}
	names := make([]string, len(res.Ops))
	for i, op := range res.Ops {
		names[i] = op.Name
	}
	want := []string{"q", "re", "W", "n", "q", "cm", "Do", "Q", "Q"}
	if d := cmp.Diff(want, names); d != "" {
		t.Error(d)
	}
	re := res.Ops[1]
	wantArgs := []pdf.Object{
		pdf.Number(10), pdf.Number(20), pdf.Number(200), pdf.Number(100),
	}
	if d := cmp.Diff(wantArgs, re.Args); d != "" {
		t.Error(d)
	}
}

func TestImportedXObject(t *testing.T) {
	e := newEmbedderWithSource(t, "src", [][2]float64{{200, 300}})
	w := pdf.NewData(pdf.V1_7)

	res, err := e.Embed(w, "src", nil)
	if err != nil {
		t.Fatal(err)
	}
	ref, ok := res.XObjects["XO1"].(pdf.Reference)
	if !ok {
		t.Fatal("XO1 is not a reference")
	}

	stm, err := pdf.GetStream(w, ref)
	if err != nil {
		t.Fatal(err)
	}
	if stm == nil {
		t.Fatal("XObject stream is missing")
	}
	if stm.Dict["Subtype"] != pdf.Name("Form") {
		t.Errorf("Subtype = %v", stm.Dict["Subtype"])
	}
	bbox, err := pdf.GetRectangle(w, stm.Dict["BBox"])
	if err != nil {
		t.Fatal(err)
	}
	wantBBox := &pdf.Rectangle{URx: 200, URy: 300}
	if d := cmp.Diff(wantBBox, bbox); d != "" {
		t.Error(d)
	}
	wantMatrix := pdf.Array{
		pdf.Number(1), pdf.Number(0), pdf.Number(0),
		pdf.Number(1), pdf.Number(0), pdf.Number(0),
	}
	if d := cmp.Diff(wantMatrix, stm.Dict["Matrix"]); d != "" {
		t.Error(d)
	}

	// the page content must survive the import
	r, err := pdf.DecodeStream(w, stm, 0)
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	ops, err := content.Decode(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 2 || ops[0].Name != "re" || ops[1].Name != "f" {
		t.Errorf("imported content = %v", ops)
	}

	// resources must be deep copies: the font reference must resolve
	// in the target document
	resources, err := pdf.GetDict(w, stm.Dict["Resources"])
	if err != nil {
		t.Fatal(err)
	}
	fonts, err := pdf.GetDict(w, resources["Font"])
	if err != nil {
		t.Fatal(err)
	}
	font, err := pdf.GetDict(w, fonts["F1"])
	if err != nil {
		t.Fatal(err)
	}
	if font["BaseFont"] != pdf.Name("Helvetica") {
		t.Errorf("BaseFont = %v", font["BaseFont"])
	}
}

func TestImportCaching(t *testing.T) {
	e := newEmbedderWithSource(t, "src", sameSize(1, 100, 100))
	w := pdf.NewData(pdf.V1_7)

	res1, err := e.Embed(w, "src", nil)
	if err != nil {
		t.Fatal(err)
	}
	res2, err := e.Embed(w, "src", nil)
	if err != nil {
		t.Fatal(err)
	}

	// new names, but the same underlying XObject
	if res2.XObjects["XO2"] != res1.XObjects["XO1"] {
		t.Error("page was imported twice")
	}
}

func TestAddToResources(t *testing.T) {
	res := &Result{
		XObjects: pdf.Dict{
			"XO1": pdf.NewReference(5, 0),
		},
	}
	resources := pdf.Dict{}
	res.AddToResources(resources)
	xDict, ok := resources["XObject"].(pdf.Dict)
	if !ok || xDict["XO1"] != pdf.NewReference(5, 0) {
		t.Errorf("resources = %v", resources)
	}
}

func TestLoadBytesRoundTrip(t *testing.T) {
	// write a document out and load it back from its bytes
	src := newSourceDoc(t, sameSize(2, 100, 100))
	buf := &bytes.Buffer{}
	err := src.Write(buf)
	if err != nil {
		t.Fatal(err)
	}

	e := NewEmbedder()
	err = e.LoadBytes("copy", buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	// loading the same ID again is a no-op
	err = e.LoadBytes("copy", nil)
	if err != nil {
		t.Fatal(err)
	}

	info, err := e.Info("copy")
	if err != nil {
		t.Fatal(err)
	}
	if info.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", info.PageCount)
	}

	w := pdf.NewData(pdf.V1_7)
	res, err := e.Embed(w, "copy", NewOptions().WithRange(All).
		WithLayout(Horizontal{Gap: 10}))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.XObjects) != 2 {
		t.Errorf("got %d XObjects, want 2", len(res.XObjects))
	}
}

func TestComposer(t *testing.T) {
	c := NewComposer()
	err := c.Embedder().Add("a", newSourceDoc(t, sameSize(4, 100, 100)))
	if err != nil {
		t.Fatal(err)
	}
	err = c.Embedder().Add("b", newSourceDoc(t, sameSize(1, 200, 100)))
	if err != nil {
		t.Fatal(err)
	}
	w := pdf.NewData(pdf.V1_7)

	err = c.AddThumbnailGallery(w, "a", 50, 700, 64, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	err = c.AddComparison(w, "a", "b", 50, 300, 500, 200, 20)
	if err != nil {
		t.Fatal(err)
	}

	res := c.Result()
	// 4 thumbnails + 2 comparison pages
	if len(res.XObjects) != 6 {
		t.Errorf("got %d XObjects, want 6", len(res.XObjects))
	}
	if len(res.Ops) != 6*4 {
		t.Errorf("got %d operators, want 24", len(res.Ops))
	}

	// thumbnails are scaled to fit the 64 unit square
	cm := res.Ops[1]
	if cm.Name != "cm" {
		t.Fatalf("op 1 is %q", cm.Name)
	}
	if sx, ok := cm.Args[0].(pdf.Number); !ok || float64(sx) != 0.64 {
		t.Errorf("sx = %v, want 0.64", cm.Args[0])
	}
}

func TestEmbedManyLayouts(t *testing.T) {
	e := newEmbedderWithSource(t, "src", sameSize(6, 100, 100))

	layouts := []Layout{
		FirstPageOnly{},
		SpecificPage{Page: 3},
		Vertical{Gap: 4},
		Horizontal{Gap: 4},
		Grid{Columns: 2, GapX: 4, GapY: 4},
		Grid{Columns: 2, Order: ColumnFirst},
		Custom{},
	}
	wantPlaced := []int{1, 1, 6, 6, 6, 6, 6}
	for i, l := range layouts {
		t.Run(fmt.Sprintf("%T", l), func(t *testing.T) {
			w := pdf.NewData(pdf.V1_7)
			res, err := e.Embed(w, "src", NewOptions().WithLayout(l))
			if err != nil {
				t.Fatal(err)
			}
			if len(res.XObjects) != wantPlaced[i] {
				t.Errorf("placed %d pages, want %d",
					len(res.XObjects), wantPlaced[i])
			}
		})
	}
}
