// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

import "fmt"

// Format identifies the serialization applied to a payload before it
// is base64-encoded. The numeric value is the hex digit carried in the
// header's F field. These values are protocol constants — reassigning
// them breaks decoding of every previously encoded string.
type Format uint8

const (
	// FormatNone means no serialization: the payload is the value's
	// text, byte for byte. Encoding a non-string value with FormatNone
	// stringifies it, which is lossy and not reversible into the
	// original type.
	FormatNone Format = 0

	// FormatJSON serializes the payload as JSON text.
	FormatJSON Format = 1

	// FormatGob serializes the payload as a Go-native gob object
	// graph. Gob streams carry their own type information, so decoding
	// ignores the header's type field entirely.
	FormatGob Format = 2

	// FormatCBOR serializes the payload as deterministic CBOR, the
	// compact binary option.
	FormatCBOR Format = 3
)

// String returns the short name of the format.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatJSON:
		return "json"
	case FormatGob:
		return "gob"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// ParseFormat parses a format from its string name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "none":
		return FormatNone, nil
	case "json":
		return FormatJSON, nil
	case "gob":
		return FormatGob, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("unknown format: %q", name)
	}
}

// Type identifies the shape a decoded payload should take when the
// deserializer supports more than one. The numeric value is the hex
// digit carried in the header's T field; like Format, the values are
// frozen protocol constants.
type Type uint8

const (
	// TypeString returns the decoded payload as text, skipping
	// deserialization. Implied whenever FormatNone is in effect.
	TypeString Type = 0

	// TypeMap decodes the payload into a map[string]any.
	TypeMap Type = 1

	// TypeRecord decodes the payload into a serializer.Record, the
	// fixed-shape record representation.
	TypeRecord Type = 2
)

// String returns the short name of the type.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeMap:
		return "map"
	case TypeRecord:
		return "record"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseType parses a type from its string name.
func ParseType(name string) (Type, error) {
	switch name {
	case "string":
		return TypeString, nil
	case "map":
		return TypeMap, nil
	case "record":
		return TypeRecord, nil
	default:
		return 0, fmt.Errorf("unknown type: %q", name)
	}
}

// hexDigit returns the lowercase hex character for a value 0..15.
func hexDigit(v uint8) byte {
	return "0123456789abcdef"[v&0xf]
}

// hexValue returns the numeric value of a hex character, accepting
// either case. ok is false for non-hex bytes.
func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
