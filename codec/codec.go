package codec

// Serializer converts a domain value into wire bytes plus a content-type
// hint. The hint may be empty when the codec has no opinion (raw bypass).
// Implementations must be pure and safe for concurrent use.
type Serializer[T any] interface {
	Encode(value T) (data []byte, contentType string, err error)
}

// Deserializer converts wire bytes back into a domain value. The content
// type is advisory; codecs that only speak one format may ignore it.
// Implementations must be pure and safe for concurrent use.
type Deserializer[T any] interface {
	Decode(data []byte, contentType string) (T, error)
}

// BypassSerializer forwards raw bytes unchanged, with no content-type hint.
type BypassSerializer struct{}

// Encode returns the input bytes as-is.
func (BypassSerializer) Encode(value []byte) ([]byte, string, error) {
	return value, "", nil
}

// BypassDeserializer returns raw response bytes unchanged.
type BypassDeserializer struct{}

// Decode returns the input bytes as-is.
func (BypassDeserializer) Decode(data []byte, _ string) ([]byte, error) {
	return data, nil
}

// compile-time assertions
var _ Serializer[[]byte] = BypassSerializer{}
var _ Deserializer[[]byte] = BypassDeserializer{}
