package report

import (
	"fmt"
	"github.com/openswoop/catalog/pkg/scrape"
	"io"
	"os"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// Stdout is the output name that writes to standard output.
const Stdout = "-"

// Write encodes courses to the named file, or to standard output for "" and
// "-". A file that could not be written completely is removed.
func Write(name string, format Format, courses []scrape.Course) error {
	if name == "" || name == Stdout {
		return encode(os.Stdout, format, courses)
	}

	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = encode(file, format, courses)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(name)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func encode(w io.Writer, format Format, courses []scrape.Course) error {
	switch format {
	case FormatCSV:
		return WriteCsv(w, courses)
	case FormatJSON, "":
		return WriteJSON(w, courses)
	}
	return fmt.Errorf("unsupported output format %q", format)
}
