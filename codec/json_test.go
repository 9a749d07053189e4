package codec

import (
	"reflect"
	"testing"
)

type product struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

func TestJSON_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value product
	}{
		{"populated", product{Name: "Alien", Age: "5 month"}},
		{"zero value", product{}},
		{"quoting", product{Name: `with "quotes"`, Age: "ü"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, contentType, err := JSONSerializer[product]{}.Encode(tt.value)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if contentType != ContentTypeJSON {
				t.Errorf("content type = %q, want %q", contentType, ContentTypeJSON)
			}

			got, err := JSONDeserializer[product]{}.Decode(data, contentType)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.value) {
				t.Errorf("round trip = %+v, want %+v", got, tt.value)
			}
		})
	}
}

func TestJSON_RoundTrip_Map(t *testing.T) {
	value := map[string]string{"name": "x", "age": "y"}
	data, _, err := JSONSerializer[map[string]string]{}.Encode(value)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := JSONDeserializer[map[string]string]{}.Decode(data, ContentTypeJSON)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(got, value) {
		t.Errorf("round trip = %v, want %v", got, value)
	}
}

func TestJSONDeserializer_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated", []byte(`{"name":`)},
		{"empty", nil},
		{"shape mismatch", []byte(`[1,2,3]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (JSONDeserializer[product]{}).Decode(tt.data, ContentTypeJSON); err == nil {
				t.Errorf("Decode(%q) should fail", tt.data)
			}
		})
	}
}

func TestJSONSerializer_Unencodable(t *testing.T) {
	if _, _, err := (JSONSerializer[chan int]{}).Encode(make(chan int)); err == nil {
		t.Error("Encode(chan) should fail")
	}
}
