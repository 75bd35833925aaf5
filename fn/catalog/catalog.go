// Package catalog serves a fresh scrape of the course catalog over HTTP.
package catalog

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/gocolly/colly/v2"
	"github.com/openswoop/catalog/pkg/report"
	"github.com/openswoop/catalog/pkg/scrape"
	"github.com/sirupsen/logrus"
	"net/http"
	"time"
)

const fetchTimeout = 30 * time.Second

// Handler scrapes the catalog on every request and answers with the courses
// as JSON. With ?debug=true the courses are dumped in Go syntax instead.
func Handler(s *scrape.Scraper) http.HandlerFunc {
	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := s.Scrape(r.Context())
		if err != nil {
			log.WithError(err).Error("scrape failed")
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		if r.URL.Query().Get("debug") == "true" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			spew.Fdump(w, courses)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := report.WriteJSON(w, courses); err != nil {
			log.WithError(err).Error("failed to write response")
		}
	}
}

// ServeCatalog is the Cloud Functions entry point.
func ServeCatalog(w http.ResponseWriter, r *http.Request) {
	// Set up colly
	c := colly.NewCollector()
	fetcher, err := scrape.NewCollyFetcher(c, scrape.CatalogUrl, fetchTimeout)
	if err != nil {
		logrus.WithError(err).Error("failed to set up fetcher")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	Handler(newScraper(fetcher))(w, r)
}

// newScraper logs through the standard logger so skipped rows and failures
// end up in the function's log.
func newScraper(f scrape.Fetcher) *scrape.Scraper {
	log := logrus.StandardLogger()
	log.SetLevel(logrus.InfoLevel)
	return &scrape.Scraper{
		Fetcher:     f,
		Corrections: scrape.DefaultCorrections,
		Log:         log,
	}
}
