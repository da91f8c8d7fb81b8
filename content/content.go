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

// Package content represents PDF content streams as lists of operators.
//
// Unlike a streaming graphics writer, an operator list can be stored,
// transformed and spliced before it is written to a page or form
// XObject.  This is the representation used by the block, layer, hatch
// and embed packages.
package content

import (
	"bytes"
	"io"

	"seehuhn.de/go/pdf"
)

// Operator is a single content stream operator together with its
// operands.
type Operator struct {
	Name string
	Args []pdf.Object
}

// Op constructs an operator.
func Op(name string, args ...pdf.Object) Operator {
	return Operator{Name: name, Args: args}
}

// PDF writes the operator in content stream syntax, operands first.
func (op Operator) PDF(w io.Writer) error {
	for _, arg := range op.Args {
		if arg == nil {
			_, err := io.WriteString(w, "null ")
			if err != nil {
				return err
			}
			continue
		}
		err := arg.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, op.Name)
	return err
}

// A Stream is a sequence of content stream operators.
type Stream []Operator

// Append adds operators to the end of the stream.
func (s *Stream) Append(ops ...Operator) {
	*s = append(*s, ops...)
}

// Write encodes the stream in content stream syntax, one operator per
// line.
func (s Stream) Write(w io.Writer) error {
	for _, op := range s {
		err := op.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the encoded form of the stream.
func (s Stream) Bytes() []byte {
	buf := &bytes.Buffer{}
	s.Write(buf) // cannot fail on a bytes.Buffer
	return buf.Bytes()
}

// Merge concatenates several streams into one.
func Merge(streams ...Stream) Stream {
	var total int
	for _, s := range streams {
		total += len(s)
	}
	res := make(Stream, 0, total)
	for _, s := range streams {
		res = append(res, s...)
	}
	return res
}
