// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package jitabi

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Text renders v in a debug-friendly indented form. It is intended for
// test failure messages and CLI inspection, not as a wire format.
func Text(v Value) string {
	var buf strings.Builder
	e := textEncoder{w: &buf}
	e.visit(v)
	return buf.String()
}

type textEncoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *textEncoder) line(s string) {
	if e.err != nil {
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	io.WriteString(e.w, "\n")
}

func (e *textEncoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *textEncoder) visit(v Value) {
	switch v := v.(type) {
	case Absent:
		e.line("<absent>")
	case Bool:
		e.line(strconv.FormatBool(bool(v)))
	case Uint:
		e.line(strconv.FormatUint(uint64(v), 10))
	case Int:
		e.line(strconv.FormatInt(int64(v), 10))
	case BigUint:
		e.line(v.V.String())
	case BigInt:
		e.line(v.V.String())
	case Float32:
		e.line(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case Float64:
		e.line(strconv.FormatFloat(float64(v), 'g', -1, 64))
	case String:
		e.line(quoteText(string(v)))
	case Bytes:
		var b strings.Builder
		for i, c := range v {
			if i != 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02X", c)
		}
		e.linef("[%s]", b.String())
	case *Record:
		e.line("{")
		e.indent++
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			e.indent--
			e.linef("%s =", k)
			e.indent++
			e.visit(val)
		}
		e.indent--
		e.line("}")
	case List:
		e.line("[")
		e.indent++
		for _, item := range v {
			e.visit(item)
		}
		e.indent--
		e.line("]")
	default:
		e.linef("<unknown %T>", v)
	}
}

func quoteText(text string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range text {
		switch {
		case c == '\\' || c == '"':
			buf.WriteByte('\\')
			buf.WriteRune(c)
		case c == '\t':
			buf.WriteString("\\t")
		case c == '\n':
			buf.WriteString("\\n")
		case c < 0x20 || c == 0x7F:
			fmt.Fprintf(&buf, "\\x%02X", c)
		default:
			buf.WriteRune(c)
		}
	}
	buf.WriteByte('"')
	return buf.String()
}
