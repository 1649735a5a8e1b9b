// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package serializer

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"reflect"
)

// Gob is the Go-native object-graph codec, backed by encoding/gob.
//
// Payloads are encoded through an interface value so Deserialize can
// recover the stored concrete type without a caller-supplied target.
// Gob requires concrete types transmitted through interfaces to be
// registered: the dynamic container types are registered by this
// package's init, and callers serializing their own struct types must
// call gob.Register for them first (standard gob practice).
var Gob Serializer = gobSerializer{}

func init() {
	gob.Register(map[string]any(nil))
	gob.Register([]any(nil))
	gob.Register(Record(nil))
}

type gobSerializer struct{}

func (gobSerializer) Name() string { return "gob" }

func (gobSerializer) ContentType() string { return "application/x-gob" }

func (gobSerializer) Serialize(value any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize ignores the shape: gob streams carry their own type
// information and reproduce the stored value as encoded.
func (gobSerializer) Deserialize(data []byte, _ Shape) (any, error) {
	var value any
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func (gobSerializer) DeserializeInto(data []byte, target any) error {
	// The stream was encoded through an interface value (see
	// Serialize), so it must be decoded the same way before the
	// concrete value is handed to the caller's target.
	var value any
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		return err
	}

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Pointer || targetValue.IsNil() {
		return fmt.Errorf("gob: target must be a non-nil pointer, got %T", target)
	}
	element := targetValue.Elem()
	decoded := reflect.ValueOf(value)
	if !decoded.Type().AssignableTo(element.Type()) {
		return fmt.Errorf("gob: payload holds %T, not assignable to %s", value, element.Type())
	}
	element.Set(decoded)
	return nil
}
