package report

import (
	"github.com/gocarina/gocsv"
	"github.com/openswoop/catalog/pkg/scrape"
	"io"
)

// WriteCsv writes one row per course with a course,text,department,prereq
// header. Multi-line descriptions are quoted.
func WriteCsv(w io.Writer, courses []scrape.Course) error {
	return gocsv.Marshal(courses, w)
}
