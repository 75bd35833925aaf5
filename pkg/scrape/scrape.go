package scrape

import (
	"context"
	"errors"
	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"runtime"
	"strings"
)

// Scraper collects every course of the catalog.
type Scraper struct {
	Fetcher     Fetcher
	Extractor   Extractor
	Workers     int // pages fetched in parallel, NumCPU when <= 0
	Corrections []Correction
	Log         logrus.FieldLogger
}

// Catalog is the outcome of a complete scrape.
type Catalog struct {
	Pages   int
	Courses []Course
}

// Scrape discovers the page count, parses every page in parallel and returns
// the courses in page order, followed by the corrections. The first failing
// page cancels the rest and no courses are returned.
func (s *Scraper) Scrape(ctx context.Context) ([]Course, error) {
	catalog, err := s.ScrapeCatalog(ctx)
	return catalog.Courses, err
}

// ScrapeCatalog is Scrape that also reports how many pages were read.
func (s *Scraper) ScrapeCatalog(ctx context.Context) (Catalog, error) {
	log := s.logger()

	numPages, err := DiscoverPages(ctx, s.Fetcher)
	if err != nil {
		return Catalog{}, err
	}
	log.Infof("%d pages to parse", numPages)

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Pages finish in any order, each writes only to its own slot
	pages := make([][]Course, numPages)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range pages {
		page := i + 1
		g.Go(func() error {
			body, err := s.Fetcher.Fetch(ctx, page)
			if err != nil {
				return err
			}
			courses, err := s.parse(body, log.WithField("page", page))
			if err != nil {
				return err
			}
			pages[page-1] = courses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	log.Infof("%d pages parsed", numPages)

	var courses []Course
	for _, page := range pages {
		courses = append(courses, page...)
	}
	for _, c := range s.Corrections {
		courses = append(courses, s.Extractor.Enrich(c.Course, c.Text))
	}
	log.Infof("%d course texts parsed", len(courses))
	return Catalog{Pages: numPages, Courses: courses}, nil
}

// ParsePage extracts the courses listed in one catalog page.
func (s *Scraper) ParsePage(body string) ([]Course, error) {
	return s.parse(body, s.logger())
}

func (s *Scraper) parse(body string, log logrus.FieldLogger) ([]Course, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	table, err := LocateTable(doc)
	if err != nil {
		return nil, err
	}

	var courses []Course
	for _, row := range SegmentRows(table) {
		course, err := s.Extractor.Extract(row)
		var malformed *MalformedRowError
		if errors.As(err, &malformed) {
			log.WithField("reason", malformed.Reason).Info("skipping course row")
			continue
		} else if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (s *Scraper) logger() logrus.FieldLogger {
	if s.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		return l
	}
	return s.Log
}
