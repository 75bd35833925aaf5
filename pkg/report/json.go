package report

import (
	"bytes"
	"encoding/json"
	"github.com/openswoop/catalog/pkg/scrape"
	"io"
)

// WriteJSON writes courses as one compact JSON array. HTML characters are
// left as is so descriptions read naturally ("A & B" rather than "A \u0026 B").
func WriteJSON(w io.Writer, courses []scrape.Course) error {
	if courses == nil {
		courses = []scrape.Course{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(courses); err != nil {
		return err
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}
