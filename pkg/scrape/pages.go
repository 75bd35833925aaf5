package scrape

import (
	"context"
	"errors"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"strconv"
	"strings"
)

// DiscoverPages reads the page count off the pagination row of page 1: the
// last link of the table's last row is the highest page number.
func DiscoverPages(ctx context.Context, f Fetcher) (int, error) {
	body, err := f.Fetch(ctx, 1)
	if err != nil {
		return 0, &DiscoveryError{Err: err}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return 0, &DiscoveryError{Err: err}
	}
	table, err := LocateTable(doc)
	if err != nil {
		return 0, &DiscoveryError{Err: err}
	}

	rows := tableRows(table)
	if rows.Size() == 0 {
		return 0, &DiscoveryError{Err: &NotFoundError{What: "pagination row"}}
	}
	links := rows.Last().Find("a")
	if links.Size() == 0 {
		return 0, &DiscoveryError{Err: &NotFoundError{What: "pagination link"}}
	}

	label := strings.TrimSpace(links.Last().Text())
	pages, err := strconv.Atoi(label)
	if err != nil {
		return 0, &DiscoveryError{Err: fmt.Errorf("pagination label %q is not a number", label)}
	}
	if pages < 1 {
		return 0, &DiscoveryError{Err: errors.New("pagination label " + label + " is not a positive page count")}
	}
	return pages, nil
}
