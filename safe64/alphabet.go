// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ToSafe converts a standard-alphabet base64 string to the
// transport-safe alphabet: '+' becomes '-', '/' becomes '_'. Padding
// handling depends on the mode: with legacyPadding each trailing '='
// becomes '~' (output length unchanged), otherwise trailing '=' is
// stripped.
func ToSafe(std string, legacyPadding bool) string {
	if !legacyPadding {
		std = strings.TrimRight(std, "=")
	}
	var b strings.Builder
	b.Grow(len(std))
	for i := 0; i < len(std); i++ {
		switch c := std[i]; c {
		case '+':
			b.WriteByte('-')
		case '/':
			b.WriteByte('_')
		case '=':
			b.WriteByte('~')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FromSafe converts a transport-safe string back to standard-alphabet
// base64, restoring '-', '_', and '~' and re-appending the '=' padding
// needed to reach a multiple-of-4 length. A single substitution pass
// suffices because '~' never legitimately appears anywhere but the
// padding positions.
//
// FromSafe has no knowledge of which padding mode produced its input:
// tilde-padded strings restore to a full-length encoding and need no
// re-padding, stripped strings get (4 - len%4) % 4 equals signs. A
// restored length of 1 mod 4 is a length no base64 encoding can
// produce and returns ErrInvalidEncoding.
func FromSafe(safe string) (string, error) {
	var b strings.Builder
	b.Grow(len(safe) + 3)
	for i := 0; i < len(safe); i++ {
		switch c := safe[i]; c {
		case '-':
			b.WriteByte('+')
		case '_':
			b.WriteByte('/')
		case '~':
			b.WriteByte('=')
		default:
			b.WriteByte(c)
		}
	}
	if b.Len()%4 == 1 {
		return "", fmt.Errorf("%w: restored length %d is 1 mod 4", ErrInvalidEncoding, b.Len())
	}
	for b.Len()%4 != 0 {
		b.WriteByte('=')
	}
	return b.String(), nil
}

// EncodeBytes base64-encodes data with the standard alphabet and
// converts the result to the transport-safe alphabet. This is the raw
// entry point for callers who manage their own serialization.
func EncodeBytes(data []byte, legacyPadding bool) string {
	return ToSafe(base64.StdEncoding.EncodeToString(data), legacyPadding)
}

// DecodeBytes reverses EncodeBytes, accepting either padding
// convention on the same input.
//
// In strict mode any byte outside the recoverable alphabet, misplaced
// padding, or an impossible length fails with ErrInvalidEncoding. In
// permissive mode bytes outside the alphabet are dropped, impossible
// trailing lengths are truncated, and whatever remains is decoded —
// corrupt input degrades to partial output rather than an error.
func DecodeBytes(s string, strict bool) ([]byte, error) {
	if strict {
		std, err := FromSafe(s)
		if err != nil {
			return nil, err
		}
		data, err := base64.StdEncoding.Strict().DecodeString(std)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
		}
		return data, nil
	}

	// Permissive: restore the alphabet, keep only legal base64 bytes,
	// and decode without padding. Dropping '=' entirely lets
	// RawStdEncoding handle both padding conventions and arbitrary
	// truncation in one path.
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '-':
			c = '+'
		case '_':
			c = '/'
		case '~', '=':
			continue
		}
		if isBase64Byte(c) {
			clean = append(clean, c)
		}
	}
	if len(clean)%4 == 1 {
		clean = clean[:len(clean)-1]
	}
	data, err := base64.RawStdEncoding.DecodeString(string(clean))
	if err != nil {
		// Unreachable after filtering, kept for defense.
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return data, nil
}

// isBase64Byte reports whether c belongs to the standard base64
// alphabet, padding excluded.
func isBase64Byte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/':
		return true
	default:
		return false
	}
}
