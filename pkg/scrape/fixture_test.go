package scrape

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// catalogPage renders a catalog page in the layout of the live site: two
// header rows, one row per course, a closing links row and two footer rows.
func catalogPage(numPages int, courses ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="table_default">`)
	b.WriteString(`<tr><td colspan="2"><form></form></td></tr>`)
	b.WriteString(`<tr><td colspan="2"><strong>Course Descriptions</strong></td></tr>`)
	for _, course := range courses {
		b.WriteString(`<tr><td class="width">`)
		for i, line := range strings.Split(course, "\n") {
			if i > 0 {
				b.WriteString("<br>")
			}
			b.WriteString(line)
		}
		b.WriteString(`<br><a href="#">Catalog chapter</a><br><a href="#">Department website</a>`)
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`<tr><td colspan="2">&nbsp;</td></tr>`)
	b.WriteString(`<tr><td colspan="2">Page: `)
	for p := 1; p <= numPages; p++ {
		fmt.Fprintf(&b, `<a href="?filter%%5Bcpage%%5D=%d">%d</a> `, p, p)
	}
	b.WriteString(`</td></tr></table></body></html>`)
	return b.String()
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return string(b)
}

// fakeFetcher serves canned pages, optionally delayed or failing.
type fakeFetcher struct {
	pages  map[int]string
	delays map[int]time.Duration
	errs   map[int]error
	block  map[int]bool // wait for cancellation

	mu      sync.Mutex
	fetched []int
}

func (f *fakeFetcher) Fetch(ctx context.Context, page int) (string, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, page)
	f.mu.Unlock()

	if f.block[page] {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if d := f.delays[page]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := f.errs[page]; err != nil {
		return "", err
	}
	body, ok := f.pages[page]
	if !ok {
		return "", &FetchError{Page: page, StatusCode: 404, Err: fmt.Errorf("no such page")}
	}
	return body, nil
}
