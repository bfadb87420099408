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

// Package errs defines the structured error type shared by every phase of
// the resolver, emitter and dispatch table.
package errs

import (
	"fmt"
	"strings"
)

// Phase identifies which stage of the pipeline raised an error.
type Phase string

const (
	PhaseResolve  Phase = "resolve"
	PhasePack     Phase = "pack"
	PhaseUnpack   Phase = "unpack"
	PhaseDispatch Phase = "dispatch"
)

// Kind is a stable, string-valued discriminant for error branching. Callers
// should never match on Error() text.
type Kind string

const (
	KindUnknownType        Kind = "unknown_type"
	KindCyclicAlias        Kind = "cyclic_alias"
	KindCyclicBase         Kind = "cyclic_base"
	KindUnresolvedCase     Kind = "unresolved_case"
	KindExtensionTail      Kind = "extension_tail"
	KindEmptyVariant       Kind = "empty_variant"
	KindMalformedModifier  Kind = "malformed_modifier"
	KindFieldMissing       Kind = "field_missing"
	KindOutOfRange         Kind = "out_of_range"
	KindWrongHostType      Kind = "wrong_host_type"
	KindUnknownVariant     Kind = "unknown_variant"
	KindBufferTooSmall     Kind = "buffer_too_small"
	KindTruncatedBuffer    Kind = "truncated_buffer"
	KindInvalidUTF8        Kind = "invalid_utf8"
	KindVarintOverflow     Kind = "varint_overflow"
	KindUnknownVariantCase Kind = "unknown_variant_case"
	KindResizeExhausted    Kind = "resize_exhausted"
)

// Error is the structured error type returned by every fallible operation in
// this module.
type Error struct {
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Cause  error
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Phase, e.Kind)
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " at %s", strings.Join(e.Path, "."))
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Phase == other.Phase && e.Kind == other.Kind
}

// Builder constructs an Error through a fluent chain, so that detail, path
// segments and a cause can be attached before Build.
type Builder struct {
	err *Error
}

func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: &Error{Phase: phase, Kind: kind}}
}

func (b *Builder) Detail(format string, args ...any) *Builder {
	b.err.Detail = fmt.Sprintf(format, args...)
	return b
}

func (b *Builder) Path(segment string) *Builder {
	b.err.Path = append(b.err.Path, segment)
	return b
}

func (b *Builder) Cause(cause error) *Builder {
	b.err.Cause = cause
	return b
}

func (b *Builder) Build() *Error {
	return b.err
}

// Is reports whether err is an *Error of the given kind, following Unwrap
// chains.
func Is(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			if e.Kind == kind {
				return true
			}
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
