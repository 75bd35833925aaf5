package scrape

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"strings"
)

// Fixed offsets of the catalog layout. A change on the site shows up as a
// failure in rows_test.go.
const (
	// HeaderRows are the filter form and column header above the courses.
	HeaderRows = 2
	// FooterRows are the spacer and pagination rows below the courses.
	FooterRows = 2
	// TrailingLines are the bulletin links printed after every course.
	TrailingLines = 2
)

// SegmentRows converts the course rows of a catalog table into plain text,
// one line per <br>-separated block. Rows that reduce to nothing are dropped.
func SegmentRows(table *goquery.Selection) []string {
	table.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n" + br.Text()})
	})

	rows := tableRows(table)
	if rows.Size() <= HeaderRows+FooterRows {
		return nil
	}
	rows = rows.Slice(HeaderRows, rows.Size()-FooterRows)

	var out []string
	rows.Each(func(_ int, s *goquery.Selection) {
		if text := normalizeRow(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// normalizeRow trims every line, drops blank ones along with the trailing
// bulletin links, then unescapes entities and collapses runs of whitespace.
func normalizeRow(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= TrailingLines {
		return ""
	}
	lines = lines[:len(lines)-TrailingLines]

	kept := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(html.UnescapeString(line)), " "); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
