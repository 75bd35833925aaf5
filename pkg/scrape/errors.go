package scrape

import "fmt"

// DiscoveryError means the number of catalog pages could not be determined.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to discover page count: %v", e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// FetchError is a network or HTTP failure for a single catalog page.
type FetchError struct {
	Page       int
	Url        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch page %d (HTTP %d): %v", e.Page, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch page %d: %v", e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NotFoundError means an element the parser depends on is missing from the
// page, which usually means the catalog layout changed.
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return e.What + " not found"
}

// MalformedRowError is a course row that has no usable text or course code.
type MalformedRowError struct {
	Row    string
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed course row %q: %s", e.Row, e.Reason)
}
