package codec

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

// FormData is the domain value accepted by the multipart serializer:
// named text fields plus optional file parts. Decoding multipart responses
// is out of scope; multipart is request-only.
type FormData struct {
	// Fields are simple key-value form fields.
	Fields map[string]string
	// Files are file upload parts.
	Files []FileField
}

// FileField is one file part of a multipart request.
type FileField struct {
	// FieldName is the form field name (e.g., "file", "audio").
	FieldName string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type. If empty, application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data for large files.
	Reader io.Reader
}

// MultipartSerializer encodes FormData as a multipart/form-data body with a
// generated boundary. The returned content type names that boundary.
type MultipartSerializer struct{}

// compile-time assertion
var _ Serializer[FormData] = MultipartSerializer{}

// Encode builds the multipart body.
func (MultipartSerializer) Encode(form FormData) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range form.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("codec: encode multipart field %q: %w", k, err)
		}
	}

	for _, f := range form.Files {
		part, err := createFilePart(w, f)
		if err != nil {
			return nil, "", fmt.Errorf("codec: encode multipart file %q: %w", f.FieldName, err)
		}
		if f.Reader != nil {
			if _, err := io.Copy(part, f.Reader); err != nil {
				return nil, "", fmt.Errorf("codec: encode multipart file %q: %w", f.FieldName, err)
			}
		} else if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("codec: encode multipart file %q: %w", f.FieldName, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("codec: encode multipart: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// createFilePart opens a part for one file field, honoring a custom
// content type when set.
func createFilePart(w *multipart.Writer, f FileField) (io.Writer, error) {
	if f.ContentType == "" {
		return w.CreateFormFile(f.FieldName, f.FileName)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		`form-data; name="`+escapeQuotes(f.FieldName)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
	header.Set("Content-Type", f.ContentType)
	return w.CreatePart(header)
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
