// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package safe64

import (
	"fmt"

	"github.com/safewire/safewire/serializer"
)

// serializerFor maps a format tag to its payload codec. FormatNone has
// no codec — callers handle it before dispatching.
func serializerFor(format Format) (serializer.Serializer, error) {
	switch format {
	case FormatJSON:
		return serializer.JSON, nil
	case FormatGob:
		return serializer.Gob, nil
	case FormatCBOR:
		return serializer.CBOR, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, uint8(format))
	}
}

// serializeFor encodes value to payload bytes for the given format.
// FormatNone stringifies the value directly: strings and byte slices
// pass through, fmt.Stringer values render via String, everything else
// via fmt.Sprint — lossy for non-text values, but that is what asking
// for no serialization means.
func serializeFor(format Format, value any) ([]byte, error) {
	if format == FormatNone {
		return stringify(value), nil
	}
	codec, err := serializerFor(format)
	if err != nil {
		return nil, err
	}
	data, err := codec.Serialize(value)
	if err != nil {
		return nil, &SerializationError{Format: format, Op: "serialize", Err: err}
	}
	return data, nil
}

// deserializeFor decodes payload bytes for the given format and
// requested shape. FormatNone returns the bytes as text unchanged,
// FormatGob ignores the type (gob streams carry their own), and the
// remaining formats map TypeMap/TypeRecord to the matching shape.
func deserializeFor(format Format, typ Type, data []byte) (any, error) {
	if format == FormatNone {
		return string(data), nil
	}
	codec, err := serializerFor(format)
	if err != nil {
		return nil, err
	}

	shape := serializer.ShapeAny
	if format != FormatGob {
		switch typ {
		case TypeString, TypeMap:
			// TypeString is terminal in the decode pipeline and never
			// reaches dispatch; map it like TypeMap for defense.
			shape = serializer.ShapeMap
		case TypeRecord:
			shape = serializer.ShapeRecord
		default:
			return nil, fmt.Errorf("%w: %d for format %s", ErrUnsupportedType, uint8(typ), format)
		}
	}

	value, err := codec.Deserialize(data, shape)
	if err != nil {
		return nil, &SerializationError{Format: format, Op: "deserialize", Err: err}
	}
	return value, nil
}

// deserializeInto decodes payload bytes into the caller's pointer
// target, bypassing shape selection.
func deserializeInto(format Format, data []byte, target any) error {
	codec, err := serializerFor(format)
	if err != nil {
		return err
	}
	if err := codec.DeserializeInto(data, target); err != nil {
		return &SerializationError{Format: format, Op: "deserialize", Err: err}
	}
	return nil
}

// stringify renders a value as payload text for FormatNone.
func stringify(value any) []byte {
	switch v := value.(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	case fmt.Stringer:
		return []byte(v.String())
	default:
		return []byte(fmt.Sprint(v))
	}
}
