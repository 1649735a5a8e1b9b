// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package serializer

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// CBOR is the compact-binary codec, backed by fxamacker/cbor with Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. Same logical data
// always produces identical bytes, so encoded strings are comparable.
var CBOR Serializer = cborSerializer{}

// encMode is the CBOR encoder configured for deterministic output.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
// Unknown struct fields are silently ignored for forward
// compatibility.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Types implementing encoding.TextMarshaler serialize as CBOR text
	// strings via MarshalText. Without this, struct fields with
	// unexported data would serialize as empty CBOR maps, losing
	// their content.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("serializer: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// When the decoder's target is any (the dynamic Deserialize
		// path), it must pick a concrete Go map type. The CBOR default
		// is map[interface{}]interface{} (CBOR allows non-string
		// keys), which is incompatible with encoding/json and most Go
		// code expecting map[string]any. This setting only affects
		// any-typed targets — struct field decoding is unaffected.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		// Mirrors the TextMarshaler setting above for round-trip
		// correctness.
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("serializer: CBOR decoder initialization failed: " + err.Error())
	}
}

type cborSerializer struct{}

func (cborSerializer) Name() string { return "cbor" }

func (cborSerializer) ContentType() string { return "application/cbor" }

func (cborSerializer) Serialize(value any) ([]byte, error) {
	return encMode.Marshal(value)
}

func (cborSerializer) Deserialize(data []byte, shape Shape) (any, error) {
	switch shape {
	case ShapeMap:
		var m map[string]any
		if err := decMode.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case ShapeRecord:
		var r Record
		if err := decMode.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return r, nil
	default:
		var v any
		if err := decMode.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (cborSerializer) DeserializeInto(data []byte, target any) error {
	return decMode.Unmarshal(data, target)
}
