// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

// Package serializer provides the payload codecs used by the safe64
// transcoder: JSON text, Go-native gob graphs, and compact CBOR.
//
// The safe64 header protocol never touches these codecs directly — it
// dispatches through the Serializer interface, so the wire format and
// the serialization strategy stay independent. Each implementation is a
// stateless value, safe for concurrent use, exported as a package
// variable (JSON, Gob, CBOR).
//
// Dynamic deserialization is shape-directed: callers that do not know
// the payload's Go type ask for a Shape and receive map[string]any,
// Record, or whatever the codec naturally produces. Callers that do
// know the type use DeserializeInto with a pointer target.
package serializer

// Shape selects the Go representation produced by Deserialize when the
// caller has no concrete target type.
type Shape uint8

const (
	// ShapeAny lets the codec pick its natural dynamic representation
	// for the payload (JSON objects become map[string]any, gob yields
	// whatever concrete type was stored, and so on).
	ShapeAny Shape = iota

	// ShapeMap requests a map[string]any. Codecs whose payload is not
	// a map/object at the top level fail the call.
	ShapeMap

	// ShapeRecord requests a Record. Like ShapeMap, but the distinct
	// type marks the value as a fixed-shape record rather than an
	// open container.
	ShapeRecord
)

// Record is the dynamic stand-in for a fixed-shape record when no
// concrete struct target is available. It is a distinct named type so
// callers (and type switches) can tell a requested record apart from a
// plain map[string]any. Nested containers inside a Record decode as
// ordinary map[string]any and []any values — the shape applies to the
// top level only.
type Record map[string]any

// Serializer converts between Go values and payload bytes. All three
// implementations in this package are safe for concurrent use.
type Serializer interface {
	// Name returns the codec's short identifier ("json", "gob", "cbor").
	Name() string

	// ContentType returns the MIME type describing the payload bytes.
	ContentType() string

	// Serialize encodes value to payload bytes.
	Serialize(value any) ([]byte, error)

	// Deserialize decodes payload bytes into the requested dynamic
	// shape. Codecs that carry their own type information (gob) ignore
	// the shape and reproduce the stored value.
	Deserialize(data []byte, shape Shape) (any, error)

	// DeserializeInto decodes payload bytes into the caller's pointer
	// target.
	DeserializeInto(data []byte, target any) error
}
