// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

// Options is the resolved outcome of examining an encoded string
// against a Transcoder's configuration: the format and type to decode
// with, the version read from the header, and where the payload body
// begins. Like Header, it is ephemeral — built per call, never stored.
type Options struct {
	Format  Format
	Type    Type
	Version int

	// BodyOffset is the index where the payload body begins.
	// Zero iff no header was recognized.
	BodyOffset int
}

// resolveOptions merges the configured format/type with whatever the
// string's header claims.
//
// Precedence: a recognized header is authoritative for both format and
// type, except that ForceType makes the configured Type win (format is
// never forced). Without a header, the configured values apply
// unconditionally. OmitHeader disables recognition entirely — an
// instance declared headerless treats every input as body, so a body
// that happens to begin with "SV" cannot be misread as a header.
func resolveOptions(cfg Config, s string) Options {
	opts := Options{Format: cfg.Format, Type: cfg.Type, Version: Version}
	if cfg.OmitHeader {
		return opts
	}
	header, offset, found := ParseHeader(s)
	if !found {
		return opts
	}
	opts.Version = header.Version
	opts.BodyOffset = offset
	opts.Format = header.Format
	if cfg.ForceType {
		opts.Type = cfg.Type
	} else {
		opts.Type = header.Type
	}
	return opts
}
