// Copyright 2026 The Safewire Authors
// SPDX-License-Identifier: Apache-2.0

package serializer

import "encoding/json"

// JSON is the text-format codec, backed by encoding/json.
var JSON Serializer = jsonSerializer{}

type jsonSerializer struct{}

func (jsonSerializer) Name() string { return "json" }

func (jsonSerializer) ContentType() string { return "application/json" }

func (jsonSerializer) Serialize(value any) ([]byte, error) {
	return json.Marshal(value)
}

func (jsonSerializer) Deserialize(data []byte, shape Shape) (any, error) {
	switch shape {
	case ShapeMap:
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	case ShapeRecord:
		var r Record
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, err
		}
		return r, nil
	default:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func (jsonSerializer) DeserializeInto(data []byte, target any) error {
	return json.Unmarshal(data, target)
}
