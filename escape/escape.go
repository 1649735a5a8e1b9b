// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

// Package escape renders arbitrary strings and byte slices safely
// printable for log lines and error messages. Control characters and
// backslashes become backslash sequences, invalid UTF-8 bytes become
// \xNN, and printable text — multibyte UTF-8 included — passes through
// untouched.
//
// Unlike strconv.Quote, the output carries no surrounding quotes and
// '"' is not escaped, so escaped text splices into diagnostics without
// extra punctuation. This is display-only: nothing in any wire format
// uses it, and there is no unescape.
package escape

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String returns s with control characters, backslashes, and invalid
// UTF-8 rendered as backslash sequences. Clean input is returned
// as-is with no allocation.
func String(s string) string {
	if clean(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\\':
			b.WriteString(`\\`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

// Bytes is String for byte slices.
func Bytes(b []byte) string {
	return String(string(b))
}

// clean reports whether s needs no escaping.
func clean(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || r < 0x20 || r == 0x7f || r == '\\' {
			return false
		}
		i += size
	}
	return true
}
