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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
)

func TestEncode(t *testing.T) {
	s := Stream{
		PushState(),
		ConcatMatrix(matrix.Matrix{1, 0, 0, 1, 10, 20}),
		DrawXObject("XO1"),
		PopState(),
	}
	got := string(s.Bytes())
	want := "q\n1 0 0 1 10 20 cm\n/XO1 Do\nQ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeReal(t *testing.T) {
	s := Stream{SetFillRGB(0.25, 0.5, 1)}
	got := string(s.Bytes())
	want := "0.25 0.5 1 rg\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Stream
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "simple",
			in:   "q\n2 0 0 2 0 0 cm\n/XO1 Do\nQ\n",
			want: Stream{
				Op("q"),
				Op("cm",
					pdf.Integer(2), pdf.Integer(0), pdf.Integer(0),
					pdf.Integer(2), pdf.Integer(0), pdf.Integer(0)),
				Op("Do", pdf.Name("XO1")),
				Op("Q"),
			},
		},
		{
			name: "reals",
			in:   "0.5 w\n-1.25 2.5 m\n",
			want: Stream{
				Op("w", pdf.Real(0.5)),
				Op("m", pdf.Real(-1.25), pdf.Real(2.5)),
			},
		},
		{
			name: "array and string",
			in:   "[2 2] 0 d\nBT\n(hello) Tj\nET\n",
			want: Stream{
				Op("d", pdf.Array{pdf.Integer(2), pdf.Integer(2)},
					pdf.Integer(0)),
				Op("BT"),
				Op("Tj", pdf.String("hello")),
				Op("ET"),
			},
		},
		{
			name: "marked content",
			in:   "/OC /L0 BDC\nEMC\n",
			want: Stream{
				Op("BDC", pdf.Name("OC"), pdf.Name("L0")),
				Op("EMC"),
			},
		},
		{
			name: "booleans and comments",
			in:   "% a comment\ntrue false xyz\n",
			want: Stream{
				Op("xyz", pdf.Boolean(true), pdf.Boolean(false)),
			},
		},
		{
			name: "dict operand",
			in:   "/Span <</ActualText (x)>> BDC\nEMC\n",
			want: Stream{
				Op("BDC", pdf.Name("Span"),
					pdf.Dict{"ActualText": pdf.String("x")}),
				Op("EMC"),
			},
		},
		{
			name: "escaped string",
			in:   "(a\\(b\\)c) Tj\n",
			want: Stream{
				Op("Tj", pdf.String("a(b)c")),
			},
		},
		{
			name: "hex string",
			in:   "<48656C6C6F> Tj\n",
			want: Stream{
				Op("Tj", pdf.String("Hello")),
			},
		},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got, err := Decode([]byte(test.in))
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []string{
		"1 2 3",       // operands without an operator
		"(unclosed S", // unterminated string
		"[1 2",        // unterminated array
		"] S",         // stray delimiter
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := Decode([]byte(in))
			if err == nil {
				t.Errorf("Decode(%q): expected error", in)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	s := Stream{
		PushState(),
		SetLineWidth(0.5),
		SetStrokeRGB(0, 0, 0),
		SetDash([]float64{2, 2}, 0),
		MoveTo(0, 0),
		LineTo(10, 10),
		CurveTo(10, 15, 5, 20, 0, 20),
		ClosePath(),
		Stroke(),
		Rect(0, 0, 100, 50),
		Clip(),
		EndPath(),
		BeginOptionalContent("L3"),
		BeginText(),
		SetFont("F1", 12),
		TextPosition(72, 720),
		ShowText("layer text"),
		EndText(),
		EndMarkedContent(),
		PopState(),
	}
	enc := s.Bytes()
	dec, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	enc2 := dec.Bytes()
	if d := cmp.Diff(string(enc), string(enc2)); d != "" {
		t.Error(d)
	}
}

func TestMerge(t *testing.T) {
	a := Stream{Op("q")}
	b := Stream{Op("Q")}
	got := Merge(a, b, nil)
	want := Stream{Op("q"), Op("Q")}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}
