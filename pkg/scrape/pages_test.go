package scrape

import (
	"context"
	"errors"
	"testing"
)

func TestDiscoverPages(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "fixture", body: readFixture(t, "catalog_page.html"), want: 3},
		{name: "single page", body: catalogPage(1, "HIST 001. Europe."), want: 1},
		{name: "many pages", body: catalogPage(28), want: 28},
		{
			name:    "non-numeric label",
			body:    `<table class="table_default"><tr><td><a href="#">Forward 10</a></td></tr></table>`,
			wantErr: true,
		},
		{
			name:    "empty table",
			body:    `<table class="table_default"></table>`,
			wantErr: true,
		},
		{
			name:    "no pagination links",
			body:    `<table class="table_default"><tr><td>Page: 1</td></tr></table>`,
			wantErr: true,
		},
		{
			name:    "zero pages",
			body:    `<table class="table_default"><tr><td><a href="#">0</a></td></tr></table>`,
			wantErr: true,
		},
		{
			name:    "no table",
			body:    `<html><body><p>Maintenance</p></body></html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{pages: map[int]string{1: tt.body}}
			got, err := DiscoverPages(context.Background(), f)
			if tt.wantErr {
				var discovery *DiscoveryError
				if !errors.As(err, &discovery) {
					t.Fatalf("DiscoverPages() error = %v, want DiscoveryError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DiscoverPages() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DiscoverPages() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDiscoverPages_FetchFailure(t *testing.T) {
	f := &fakeFetcher{}
	_, err := DiscoverPages(context.Background(), f)

	var discovery *DiscoveryError
	if !errors.As(err, &discovery) {
		t.Fatalf("DiscoverPages() error = %v, want DiscoveryError", err)
	}
	var fetch *FetchError
	if !errors.As(err, &fetch) || fetch.Page != 1 {
		t.Errorf("DiscoverPages() should wrap the page 1 FetchError, got %v", err)
	}
}
