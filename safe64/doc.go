// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

// Package safe64 encodes structured data and raw byte strings into a
// URL-safe textual form, optionally prefixed with a compact
// self-describing header, and decodes it back.
//
// The body is standard base64 with the alphabet made transport-safe:
// '+' becomes '-', '/' becomes '_', and trailing '=' padding is either
// stripped (the default) or replaced one-for-one with '~' (legacy
// mode). Decoding accepts either convention on the same input without
// being told which produced it.
//
// The header is a short ASCII prefix recording the protocol version,
// the serialization format of the payload, and the shape the decoded
// value should take:
//
//	header       = "SV" version [ format-field [ type-field ] ]
//	version      = 2 hex digits            ; 0..255
//	format-field = "F" 1 hex digit         ; see Format
//	type-field   = "T" 1 hex digit         ; see Type
//
// Fields with default values are omitted: "SV03" means version 3,
// FormatNone, TypeString; "SV03F1T1" means version 3, JSON payload,
// decode as a map. Hex digits are emitted lowercase and accepted in
// either case; the "SV"/"F"/"T" markers are case-exact.
//
// A [Transcoder] owns the configuration (format, type, padding mode,
// header emission, strictness) and runs the full pipeline:
//
//	t := safe64.New(safe64.Config{Format: safe64.FormatJSON, Type: safe64.TypeMap})
//	s, err := t.Encode(map[string]any{"user": "ada"})
//	v, err := t.Decode(s)
//
// The header travels with the string, so a decoder with a different
// configuration still recovers the value: a recognized header is
// authoritative for format and type unless Config.ForceType is set.
//
// For callers that manage their own serialization, [EncodeBytes],
// [DecodeBytes], and [StripHeader] expose the alphabet and header
// layers directly.
//
// Payload serialization itself lives in the serializer package; this
// package only dispatches to it by format tag.
package safe64
