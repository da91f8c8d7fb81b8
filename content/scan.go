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
	"errors"
	"fmt"
	"strconv"

	"seehuhn.de/go/pdf"
)

var (
	errDanglingOperands = errors.New("operands without operator")
	errUnexpectedEOF    = errors.New("unexpected end of content")
)

// Decode parses a content stream into a list of operators.
//
// The parser covers the object types which occur as operands in
// content streams: numbers, names, strings, arrays, dictionaries,
// booleans and null.  Inline images are not supported.
func Decode(data []byte) (Stream, error) {
	s := &scanner{buf: data}
	var res Stream
	var args []pdf.Object
	for {
		s.skipWhiteSpace()
		if s.pos >= len(s.buf) {
			break
		}
		c := s.buf[s.pos]
		switch {
		case c == '/' || c == '(' || c == '<' || c == '[':
			obj, err := s.readObject()
			if err != nil {
				return nil, err
			}
			args = append(args, obj)
		case c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.':
			obj, err := s.readNumber()
			if err != nil {
				return nil, err
			}
			args = append(args, obj)
		case c == ']' || c == '>' || c == ')' || c == '{' || c == '}':
			return nil, fmt.Errorf("unexpected %q at offset %d", c, s.pos)
		default:
			kw := s.readKeyword()
			switch kw {
			case "true":
				args = append(args, pdf.Boolean(true))
			case "false":
				args = append(args, pdf.Boolean(false))
			case "null":
				args = append(args, nil)
			default:
				res = append(res, Operator{Name: kw, Args: args})
				args = nil
			}
		}
	}
	if len(args) > 0 {
		return nil, errDanglingOperands
	}
	return res, nil
}

type scanner struct {
	buf []byte
	pos int
}

func isWhiteSpace(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func (s *scanner) skipWhiteSpace() {
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if isWhiteSpace(c) {
			s.pos++
		} else if c == '%' {
			for s.pos < len(s.buf) &&
				s.buf[s.pos] != '\n' && s.buf[s.pos] != '\r' {
				s.pos++
			}
		} else {
			return
		}
	}
}

func (s *scanner) readObject() (pdf.Object, error) {
	c := s.buf[s.pos]
	switch c {
	case '/':
		return s.readName()
	case '(':
		return s.readString()
	case '<':
		if s.pos+1 < len(s.buf) && s.buf[s.pos+1] == '<' {
			return s.readDict()
		}
		return s.readHexString()
	case '[':
		return s.readArray()
	}
	if c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.' {
		return s.readNumber()
	}
	kw := s.readKeyword()
	switch kw {
	case "true":
		return pdf.Boolean(true), nil
	case "false":
		return pdf.Boolean(false), nil
	case "null":
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected keyword %q in operand", kw)
}

func (s *scanner) readKeyword() string {
	start := s.pos
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if isWhiteSpace(c) || isDelimiter(c) {
			break
		}
		s.pos++
	}
	return string(s.buf[start:s.pos])
}

func (s *scanner) readNumber() (pdf.Object, error) {
	start := s.pos
	isReal := false
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if c >= '0' && c <= '9' || c == '+' || c == '-' {
			s.pos++
		} else if c == '.' {
			isReal = true
			s.pos++
		} else {
			break
		}
	}
	tok := string(s.buf[start:s.pos])
	if isReal {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed number %q", tok)
		}
		return pdf.Real(x), nil
	}
	x, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed number %q", tok)
	}
	return pdf.Integer(x), nil
}

func (s *scanner) readName() (pdf.Name, error) {
	s.pos++ // the leading slash
	var name []byte
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		if isWhiteSpace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && s.pos+2 < len(s.buf) {
			x, err := strconv.ParseUint(string(s.buf[s.pos+1:s.pos+3]), 16, 8)
			if err == nil {
				name = append(name, byte(x))
				s.pos += 3
				continue
			}
		}
		name = append(name, c)
		s.pos++
	}
	return pdf.Name(name), nil
}

func (s *scanner) readString() (pdf.String, error) {
	s.pos++ // the opening parenthesis
	var res []byte
	level := 1
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		s.pos++
		switch c {
		case '(':
			level++
			res = append(res, c)
		case ')':
			level--
			if level == 0 {
				return pdf.String(res), nil
			}
			res = append(res, c)
		case '\\':
			if s.pos >= len(s.buf) {
				return nil, errUnexpectedEOF
			}
			e := s.buf[s.pos]
			s.pos++
			switch e {
			case 'n':
				res = append(res, '\n')
			case 'r':
				res = append(res, '\r')
			case 't':
				res = append(res, '\t')
			case 'b':
				res = append(res, '\b')
			case 'f':
				res = append(res, '\f')
			case '\n':
				// line continuation
			case '\r':
				if s.pos < len(s.buf) && s.buf[s.pos] == '\n' {
					s.pos++
				}
			default:
				if e >= '0' && e <= '7' {
					x := int(e - '0')
					for k := 0; k < 2 && s.pos < len(s.buf); k++ {
						d := s.buf[s.pos]
						if d < '0' || d > '7' {
							break
						}
						x = x*8 + int(d-'0')
						s.pos++
					}
					res = append(res, byte(x))
				} else {
					res = append(res, e)
				}
			}
		default:
			res = append(res, c)
		}
	}
	return nil, errUnexpectedEOF
}

func (s *scanner) readHexString() (pdf.String, error) {
	s.pos++ // the opening angle bracket
	var digits []byte
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		s.pos++
		if c == '>' {
			if len(digits)%2 == 1 {
				digits = append(digits, '0')
			}
			res := make([]byte, len(digits)/2)
			for i := range res {
				x, err := strconv.ParseUint(string(digits[2*i:2*i+2]), 16, 8)
				if err != nil {
					return nil, fmt.Errorf("malformed hex string")
				}
				res[i] = byte(x)
			}
			return pdf.String(res), nil
		}
		if isWhiteSpace(c) {
			continue
		}
		digits = append(digits, c)
	}
	return nil, errUnexpectedEOF
}

func (s *scanner) readArray() (pdf.Array, error) {
	s.pos++ // the opening bracket
	var res pdf.Array
	for {
		s.skipWhiteSpace()
		if s.pos >= len(s.buf) {
			return nil, errUnexpectedEOF
		}
		if s.buf[s.pos] == ']' {
			s.pos++
			return res, nil
		}
		obj, err := s.readObject()
		if err != nil {
			return nil, err
		}
		res = append(res, obj)
	}
}

func (s *scanner) readDict() (pdf.Dict, error) {
	s.pos += 2 // the opening angle brackets
	res := pdf.Dict{}
	for {
		s.skipWhiteSpace()
		if s.pos+1 >= len(s.buf) {
			return nil, errUnexpectedEOF
		}
		if s.buf[s.pos] == '>' && s.buf[s.pos+1] == '>' {
			s.pos += 2
			return res, nil
		}
		if s.buf[s.pos] != '/' {
			return nil, fmt.Errorf("malformed dictionary at offset %d", s.pos)
		}
		key, err := s.readName()
		if err != nil {
			return nil, err
		}
		s.skipWhiteSpace()
		if s.pos >= len(s.buf) {
			return nil, errUnexpectedEOF
		}
		val, err := s.readObject()
		if err != nil {
			return nil, err
		}
		if val != nil {
			res[key] = val
		}
	}
}
