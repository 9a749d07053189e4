package codec

import (
	"encoding/json"
	"fmt"
)

// ContentTypeJSON is the content type produced by the JSON serializer.
const ContentTypeJSON = "application/json"

// JSONSerializer encodes a domain value as UTF-8 JSON text.
type JSONSerializer[T any] struct{}

// Encode marshals value and reports application/json as the content type.
func (JSONSerializer[T]) Encode(value T) ([]byte, string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, "", fmt.Errorf("codec: encode json: %w", err)
	}
	return data, ContentTypeJSON, nil
}

// JSONDeserializer decodes UTF-8 JSON text into a domain value.
// Malformed input and shape mismatches surface as decode errors; empty
// input is malformed too, since the pipeline forwards bodies unchanged.
type JSONDeserializer[T any] struct{}

// Decode unmarshals data into a fresh value of type T.
func (JSONDeserializer[T]) Decode(data []byte, _ string) (T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("codec: decode json: %w", err)
	}
	return value, nil
}
