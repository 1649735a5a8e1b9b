// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

import "fmt"

// Config holds a Transcoder's settings. The zero value is the default
// mode: no serialization, string shape, stripped padding, compact
// header emitted, permissive decoding, strings passed through.
type Config struct {
	// Format selects the payload serialization for Encode and the
	// decode fallback when the input carries no header.
	Format Format

	// Type selects the decoded shape used as the fallback when the
	// input carries no header, and the override shape under ForceType.
	// It is also recorded in emitted headers.
	Type Type

	// LegacyPadding emits '~' in place of each trailing '=' instead of
	// stripping the padding. Decoding accepts both conventions
	// regardless of this setting.
	LegacyPadding bool

	// OmitHeader suppresses the header on Encode and disables header
	// recognition on Decode. A headerless instance round-trips any
	// body exactly, including bodies that begin with "SV".
	OmitHeader bool

	// FullHeader forces emission of header fields that the omission
	// rules would drop, so even default values are spelled out.
	FullHeader bool

	// ForceType makes the configured Type win over the type claimed by
	// a decoded string's header. Format is never forced.
	ForceType bool

	// StrictDecode rejects bodies containing bytes outside the
	// transport-safe alphabet with ErrInvalidEncoding instead of
	// repairing them best-effort.
	StrictDecode bool

	// SerializeStrings routes string and []byte values through the
	// configured serializer on Encode. When false (the default) they
	// pass through as the payload text itself and are headered as
	// FormatNone/TypeString, whatever Format says — the header
	// describes the bytes actually written.
	SerializeStrings bool
}

// Transcoder runs the encode/decode pipeline: serialize, base64,
// alphabet substitution, header. It is stateless with respect to any
// payload — Encode and Decode never mutate the instance, so concurrent
// calls on a shared Transcoder are safe as long as SetConfig is not
// raced with them. Configuration is meant to be set once at
// construction; callers who reconfigure a shared instance must
// serialize that themselves.
type Transcoder struct {
	cfg Config
}

// New returns a Transcoder with the given configuration. Each instance
// owns its own copy; nothing is shared between instances.
func New(cfg Config) *Transcoder {
	return &Transcoder{cfg: cfg}
}

// Config returns the current configuration.
func (t *Transcoder) Config() Config {
	return t.cfg
}

// SetConfig replaces the configuration. Not safe to call concurrently
// with Encode or Decode on the same instance.
func (t *Transcoder) SetConfig(cfg Config) {
	t.cfg = cfg
}

// Encode converts value to its transport-safe string form: serialize
// per the configured format, base64-encode, substitute the safe
// alphabet, and prepend the header unless OmitHeader is set. Encoding
// is single-shot over the whole value; there is no streaming.
func (t *Transcoder) Encode(value any) (string, error) {
	cfg := t.cfg
	format, typ := cfg.Format, cfg.Type

	var payload []byte
	passedThrough := false
	if !cfg.SerializeStrings {
		switch v := value.(type) {
		case string:
			payload = []byte(v)
			passedThrough = true
		case []byte:
			payload = v
			passedThrough = true
		}
	}
	if passedThrough {
		// The payload is the value's own bytes; the header must say
		// so, not repeat the configured format.
		format, typ = FormatNone, TypeString
	} else {
		var err error
		payload, err = serializeFor(format, value)
		if err != nil {
			return "", err
		}
	}

	body := EncodeBytes(payload, cfg.LegacyPadding)
	if cfg.OmitHeader {
		return body, nil
	}
	header, err := NewHeader(format, typ, cfg.FullHeader).Encode()
	if err != nil {
		return "", err
	}
	return header + body, nil
}

// Decode reverses Encode: resolve format/type from the header and the
// configuration, recover the base64 body, and deserialize. A resolved
// format of FormatNone — or a resolved type of TypeString under any
// format except FormatGob, which carries its own type information —
// returns the decoded bytes as a string with no deserialization.
func (t *Transcoder) Decode(encoded string) (any, error) {
	cfg := t.cfg
	opts := resolveOptions(cfg, encoded)

	data, err := DecodeBytes(encoded[opts.BodyOffset:], cfg.StrictDecode)
	if err != nil {
		return nil, err
	}

	if opts.Format == FormatNone || (opts.Type == TypeString && opts.Format != FormatGob) {
		return string(data), nil
	}
	return deserializeFor(opts.Format, opts.Type, data)
}

// DecodeInto decodes the payload into the caller's pointer target,
// using the resolved format but ignoring the resolved type — the
// target supplies the shape. Under FormatNone the target must be a
// *string or *[]byte.
func (t *Transcoder) DecodeInto(encoded string, target any) error {
	cfg := t.cfg
	opts := resolveOptions(cfg, encoded)

	data, err := DecodeBytes(encoded[opts.BodyOffset:], cfg.StrictDecode)
	if err != nil {
		return err
	}

	if opts.Format == FormatNone {
		switch p := target.(type) {
		case *string:
			*p = string(data)
			return nil
		case *[]byte:
			*p = data
			return nil
		default:
			return fmt.Errorf("%w: format none decodes into *string or *[]byte, not %T",
				ErrUnsupportedType, target)
		}
	}
	return deserializeInto(opts.Format, data, target)
}
