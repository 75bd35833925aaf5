package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/google/go-cmp/cmp"
	"github.com/openswoop/catalog/pkg/scrape"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const page = `<html><body><table class="table_default">
<tr><td><form></form></td></tr>
<tr><td><strong>Course Descriptions</strong></td></tr>
<tr><td>MATH 015. Calculus I.<br>Prerequisite: MATH 005.<br><a href="#">Catalog chapter</a><br><a href="#">Department website</a></td></tr>
<tr><td>&nbsp;</td></tr>
<tr><td>Page: <a href="?filter%5Bcpage%5D=1">1</a></td></tr>
</table></body></html>`

type stubFetcher struct {
	body string
	err  error
}

func (f stubFetcher) Fetch(ctx context.Context, page int) (string, error) {
	return f.body, f.err
}

func TestHandler(t *testing.T) {
	s := &scrape.Scraper{
		Fetcher:     stubFetcher{body: page},
		Corrections: []scrape.Correction{{Course: "MATH 028S", Text: "MATH 028S. Honors.\nPrerequisite: Placement by examination"}},
	}
	rec := httptest.NewRecorder()
	Handler(s)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var got []scrape.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
	}
	want := []scrape.Course{
		{Name: "MATH 015", Text: "MATH 015. Calculus I.\nPrerequisite: MATH 005.", Department: "MATH", Prereq: "MATH 005."},
		{Name: "MATH 028S", Text: "MATH 028S. Honors.\nPrerequisite: Placement by examination", Department: "MATH", Prereq: "Placement by examination"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("courses mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_Debug(t *testing.T) {
	s := &scrape.Scraper{Fetcher: stubFetcher{body: page}}
	rec := httptest.NewRecorder()
	Handler(s)(rec, httptest.NewRequest(http.MethodGet, "/?debug=true", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "scrape.Course") || !strings.Contains(body, `"MATH 015"`) {
		t.Errorf("debug dump = %q", body)
	}
}

func TestHandler_ScrapeFailure(t *testing.T) {
	log, hook := test.NewNullLogger()
	s := &scrape.Scraper{Fetcher: stubFetcher{err: errors.New("connection refused")}, Log: log}
	rec := httptest.NewRecorder()
	Handler(s)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Message != "scrape failed" {
		t.Errorf("expected the failure on the scraper's logger, got %+v", entry)
	}
}

func TestNewScraper_LogsSkippedRows(t *testing.T) {
	hook := test.NewLocal(logrus.StandardLogger())
	t.Cleanup(hook.Reset)

	s := newScraper(stubFetcher{body: page})
	if s.Log != logrus.StandardLogger() {
		t.Fatalf("Log = %v, want the standard logger", s.Log)
	}
	if len(s.Corrections) != len(scrape.DefaultCorrections) {
		t.Errorf("Corrections = %d entries, want the defaults", len(s.Corrections))
	}

	broken := strings.Replace(page, "MATH 015. Calculus I.", ". Calculus I.", 1)
	if _, err := s.ParsePage(broken); err != nil {
		t.Fatal(err)
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Message != "skipping course row" {
		t.Errorf("expected the skipped row in the standard log, got %+v", entry)
	}
}
