// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

// Package base91 implements the basE91 binary-to-text encoding.
//
// basE91 packs bits more densely than base64: input bits accumulate
// little-endian and are emitted two output symbols per 13-bit group
// (14 bits when the low 13 bits would decode below 89, which keeps the
// pair inside the 91*91 symbol space). Overhead is about 23% versus
// base64's 33%. The 91-character alphabet is printable ASCII minus
// space, hyphen, backslash, and apostrophe. The output is not URL-safe
// and has no relation to the safe64 header protocol; use it where size
// matters and the channel tolerates the wider alphabet.
package base91

import (
	"errors"
	"fmt"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""

// ErrInvalidByte reports an input byte outside the basE91 alphabet.
var ErrInvalidByte = errors.New("base91: byte outside the basE91 alphabet")

// decodeTable maps an ASCII byte to its alphabet index, or 0xff for
// bytes outside the alphabet.
var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = 0xff
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = byte(i)
	}
}

// EncodedLen returns an upper bound on the length of an encoding of n
// bytes. The exact length depends on the bit patterns (13- vs 14-bit
// groups), so callers sizing buffers get a bound, not the final size.
func EncodedLen(n int) int {
	return n*16/13 + 2
}

// Encode returns the basE91 encoding of data.
func Encode(data []byte) string {
	var b strings.Builder
	b.Grow(EncodedLen(len(data)))

	var queue, bits uint
	for _, c := range data {
		queue |= uint(c) << bits
		bits += 8
		if bits > 13 {
			v := queue & 8191
			if v > 88 {
				queue >>= 13
				bits -= 13
			} else {
				// The low 13 bits decode below 89, so a 14th bit fits
				// in the same two-symbol pair.
				v = queue & 16383
				queue >>= 14
				bits -= 14
			}
			b.WriteByte(alphabet[v%91])
			b.WriteByte(alphabet[v/91])
		}
	}
	if bits > 0 {
		b.WriteByte(alphabet[queue%91])
		if bits > 7 || queue > 90 {
			b.WriteByte(alphabet[queue/91])
		}
	}
	return b.String()
}

// Decode reverses Encode. Any byte outside the alphabet fails with
// ErrInvalidByte; there is no whitespace skipping or other leniency.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*13/16+3)

	var queue, bits uint
	pair := -1
	for i := 0; i < len(s); i++ {
		d := decodeTable[s[i]]
		if d == 0xff {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidByte, s[i], i)
		}
		if pair < 0 {
			pair = int(d)
			continue
		}
		pair += int(d) * 91
		queue |= uint(pair) << bits
		if uint(pair)&8191 > 88 {
			bits += 13
		} else {
			bits += 14
		}
		for bits > 7 {
			out = append(out, byte(queue))
			queue >>= 8
			bits -= 8
		}
		pair = -1
	}
	if pair >= 0 {
		// A trailing lone symbol carries the final partial group.
		queue |= uint(pair) << bits
		out = append(out, byte(queue))
	}
	return out, nil
}
