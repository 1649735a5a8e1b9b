// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

import (
	"errors"
	"fmt"
)

// Errors returned by decoding and header construction. All failures
// are deterministic for a given input and configuration — retrying
// without changing the input cannot succeed.
var (
	// ErrInvalidEncoding reports a body that is not recoverable
	// transport-safe base64: a character outside the alphabet, or a
	// restored length no base64 encoding can produce. Raised only in
	// strict mode; permissive decoding repairs what it can instead.
	ErrInvalidEncoding = errors.New("safe64: body is not valid transport-safe base64")

	// ErrUnsupportedFormat reports a format tag outside the closed
	// Format set, typically a wire header carrying a hex digit no
	// release has assigned.
	ErrUnsupportedFormat = errors.New("safe64: unsupported format tag")

	// ErrUnsupportedType reports a type tag outside the closed Type
	// set, or a type the resolved format cannot produce.
	ErrUnsupportedType = errors.New("safe64: unsupported type tag")

	// ErrHeaderVersion reports a header version outside 0..255 at
	// construction time. Well-formed parse paths cannot produce it.
	ErrHeaderVersion = errors.New("safe64: header version outside 0..255")
)

// SerializationError wraps a failure from the payload serializer or
// deserializer. Callers can use errors.As to extract which format and
// direction failed:
//
//	var serErr *safe64.SerializationError
//	if errors.As(err, &serErr) {
//	    if serErr.Format == safe64.FormatCBOR { ... }
//	}
type SerializationError struct {
	// Format is the serialization format whose codec failed.
	Format Format
	// Op is the failing direction, "serialize" or "deserialize".
	Op string
	// Err is the underlying codec error.
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("safe64: %s %s payload: %v", e.Op, e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
