package codec

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

// parseForm decodes a generated multipart body for assertions.
func parseForm(t *testing.T, data []byte, contentType string) (map[string]string, map[string][]byte) {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}
	if params["boundary"] == "" {
		t.Fatal("content type should carry the boundary")
	}

	fields := map[string]string{}
	files := map[string][]byte{}
	mr := multipart.NewReader(bytes.NewReader(data), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		content, _ := io.ReadAll(part)
		if part.FileName() != "" {
			files[part.FormName()] = content
		} else {
			fields[part.FormName()] = string(content)
		}
	}
	return fields, files
}

func TestMultipartSerializer_FieldsOnly(t *testing.T) {
	form := FormData{
		Fields: map[string]string{"name": "Baxter", "age": "1 month"},
	}

	data, contentType, err := MultipartSerializer{}.Encode(form)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	fields, files := parseForm(t, data, contentType)
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
	if len(fields) != 2 || fields["name"] != "Baxter" || fields["age"] != "1 month" {
		t.Errorf("fields = %v", fields)
	}
}

func TestMultipartSerializer_WithFile(t *testing.T) {
	fileData := []byte("file content here")
	form := FormData{
		Fields: map[string]string{"language": "en"},
		Files: []FileField{{
			FieldName: "file",
			FileName:  "notes.txt",
			Data:      fileData,
		}},
	}

	data, contentType, err := MultipartSerializer{}.Encode(form)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	fields, files := parseForm(t, data, contentType)
	if fields["language"] != "en" {
		t.Errorf("fields = %v", fields)
	}
	if !bytes.Equal(files["file"], fileData) {
		t.Errorf("file content = %q", files["file"])
	}
}

func TestMultipartSerializer_FileFromReader(t *testing.T) {
	form := FormData{
		Files: []FileField{{
			FieldName:   "file",
			FileName:    "stream.bin",
			ContentType: "application/octet-stream",
			Reader:      strings.NewReader("streamed"),
		}},
	}

	data, contentType, err := MultipartSerializer{}.Encode(form)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	_, files := parseForm(t, data, contentType)
	if string(files["file"]) != "streamed" {
		t.Errorf("file content = %q", files["file"])
	}
}

func TestMultipartSerializer_CustomContentType(t *testing.T) {
	form := FormData{
		Files: []FileField{{
			FieldName:   "audio",
			FileName:    "clip.wav",
			ContentType: "audio/wav",
			Data:        []byte{1, 2, 3},
		}},
	}

	data, contentType, err := MultipartSerializer{}.Encode(form)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	_, params, _ := mime.ParseMediaType(contentType)
	mr := multipart.NewReader(bytes.NewReader(data), params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart error: %v", err)
	}
	if got := part.Header.Get("Content-Type"); got != "audio/wav" {
		t.Errorf("part Content-Type = %q, want audio/wav", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestMultipartSerializer_ReaderFailure(t *testing.T) {
	form := FormData{
		Files: []FileField{{FieldName: "file", FileName: "f.bin", Reader: failingReader{}}},
	}
	if _, _, err := (MultipartSerializer{}).Encode(form); err == nil {
		t.Error("Encode() should fail when a file reader fails")
	}
}

func TestMultipartSerializer_UniqueBoundaries(t *testing.T) {
	form := FormData{Fields: map[string]string{"a": "b"}}
	_, first, err := MultipartSerializer{}.Encode(form)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	_, second, err := MultipartSerializer{}.Encode(form)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if first == second {
		t.Error("boundaries should be freshly generated per encoding")
	}
}
