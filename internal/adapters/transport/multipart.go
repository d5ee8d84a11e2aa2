package transport

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/google/uuid"
)

// FilePart is the binary payload of a multipart upload.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Multipart builds a multipart/form-data body with a uuid boundary. Text
// fields with empty values are left out and come before the file.
func Multipart(fields [][2]string, file FilePart) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary("Boundary-" + uuid.NewString()); err != nil {
		return nil, "", err
	}

	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quote(file.Field), quote(file.Filename)))
	h.Set("Content-Type", file.ContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func quote(s string) string {
	return quoteEscaper.Replace(s)
}
