// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

import "fmt"

// Version is the protocol version emitted in every header built by
// this package. Decoding accepts any version 0..255 — the version is
// reported to the caller through Options, not enforced.
const Version = 3

// Header grammar markers. The prefix and field markers are case-exact;
// the hex digits that follow them are case-insensitive on parse and
// lowercase on emit.
const (
	headerPrefix = "SV"
	formatMarker = 'F'
	typeMarker   = 'T'
)

// Header is the parsed or to-be-emitted form of the self-describing
// prefix. It is a value constructed fresh on every encode or decode
// call and discarded afterwards; it carries no state between calls.
//
// Format and Type are meaningful only when the corresponding Has flag
// is set. An absent format field means FormatNone; an absent type
// field means TypeString — the parse fills those defaults in so
// callers never consult the flags for the values themselves. The flags
// exist for the emit direction, where presence is part of the grammar.
type Header struct {
	Version   int // 0..255
	Format    Format
	HasFormat bool
	Type      Type
	HasType   bool
}

// NewHeader builds a header for the current protocol version, applying
// the field-omission rules:
//
//   - the format field is present iff full is set or format is not
//     FormatNone;
//   - the type field is present iff the format field is present AND
//     (full is set, or the type is not TypeString and the format is
//     not FormatGob — gob ignores type on decode, so carrying it
//     wastes two bytes).
func NewHeader(format Format, typ Type, full bool) Header {
	h := Header{Version: Version, Format: format, Type: typ}
	h.HasFormat = full || format != FormatNone
	h.HasType = h.HasFormat && (full || (typ != TypeString && format != FormatGob))
	return h
}

// Encode renders the header to its wire form. Returns ErrHeaderVersion
// if Version is outside 0..255.
func (h Header) Encode() (string, error) {
	if h.Version < 0 || h.Version > 255 {
		return "", fmt.Errorf("%w: %d", ErrHeaderVersion, h.Version)
	}
	buf := make([]byte, 0, 8)
	buf = append(buf, headerPrefix...)
	buf = append(buf, hexDigit(uint8(h.Version>>4)), hexDigit(uint8(h.Version)))
	if h.HasFormat {
		buf = append(buf, formatMarker, hexDigit(uint8(h.Format)))
		if h.HasType {
			buf = append(buf, typeMarker, hexDigit(uint8(h.Type)))
		}
	}
	return string(buf), nil
}

// ParseHeader recognizes a header prefix on s. It returns the parsed
// header, the offset where the payload body begins, and whether a
// header was recognized at all. No header (found == false) means the
// whole string is body at offset 0.
//
// The parse is strictly prefix-driven: each field is consumed only if
// its marker and hex digit sit exactly where the grammar puts them,
// and nothing beyond the last consumed field is interpreted. A marker
// followed by a non-hex byte is not a field — it is the first byte of
// the body.
//
// Detection is an in-band heuristic. The safe alphabet contains 'S',
// 'V', and every hex digit, so a headerless body can begin with a
// valid-looking prefix; instances that never emit headers should set
// Config.OmitHeader so recognition is skipped entirely.
func ParseHeader(s string) (Header, int, bool) {
	if len(s) < 4 || s[0] != headerPrefix[0] || s[1] != headerPrefix[1] {
		return Header{}, 0, false
	}
	hi, ok := hexValue(s[2])
	if !ok {
		return Header{}, 0, false
	}
	lo, ok := hexValue(s[3])
	if !ok {
		return Header{}, 0, false
	}

	h := Header{
		Version: int(hi)<<4 | int(lo),
		Format:  FormatNone,
		Type:    TypeString,
	}
	offset := 4

	if len(s) >= offset+2 && s[offset] == formatMarker {
		if v, ok := hexValue(s[offset+1]); ok {
			h.Format = Format(v)
			h.HasFormat = true
			offset += 2

			if len(s) >= offset+2 && s[offset] == typeMarker {
				if v, ok := hexValue(s[offset+1]); ok {
					h.Type = Type(v)
					h.HasType = true
					offset += 2
				}
			}
		}
	}

	return h, offset, true
}

// StripHeader returns the body of s with any recognized header prefix
// removed. Headerless input comes back unchanged, so applying it to
// its own output is a no-op. Version, format, and type are discarded.
func StripHeader(s string) string {
	if _, offset, found := ParseHeader(s); found {
		return s[offset:]
	}
	return s
}
