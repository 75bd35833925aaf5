package scrape

import (
	"fmt"
	"strconv"
	"strings"
)

// CatalogUrl lists every course of the Swarthmore catalog, one printable
// page at a time. {page} is replaced with the 1-based page number.
const CatalogUrl = "http://catalog.swarthmore.edu/content.php?filter%5B27%5D=-1" +
	"&filter%5B29%5D=&filter%5Bcourse_type%5D=-1&filter%5Bkeyword%5D=" +
	"&filter%5B32%5D=1&filter%5Bcpage%5D={page}&cur_cat_oid=7&expand=1" +
	"&navoid=191&print=1&filter%5Bexact_match%5D=1#acalog_template_course_filter"

// PagePlaceholder marks the page number in a catalog URL template.
const PagePlaceholder = "{page}"

// ValidateTemplate ensures the URL template has exactly one page placeholder.
func ValidateTemplate(template string) error {
	switch n := strings.Count(template, PagePlaceholder); n {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("url template %q has no %s placeholder", template, PagePlaceholder)
	default:
		return fmt.Errorf("url template %q has %d %s placeholders, want 1", template, n, PagePlaceholder)
	}
}

// PageUrl maps a page number onto the catalog URL template.
func PageUrl(template string, page int) string {
	return strings.Replace(template, PagePlaceholder, strconv.Itoa(page), 1)
}
