package scrape

import (
	"github.com/PuerkitoBio/goquery"
)

// Catalog listings and some layout wrappers share this class; the course
// listing is always the last one on the page.
const tableSelector = "table.table_default"

// LocateTable returns the catalog data table of a page.
func LocateTable(doc *goquery.Document) (*goquery.Selection, error) {
	tables := doc.Find(tableSelector)
	if tables.Size() == 0 {
		return nil, &NotFoundError{What: "catalog table"}
	}
	return tables.Last(), nil
}

// tableRows selects the rows that belong to table itself, skipping the rows of
// any table nested inside it. The HTML parser wraps bare rows in a tbody.
func tableRows(table *goquery.Selection) *goquery.Selection {
	return table.ChildrenFiltered("thead, tbody, tfoot").ChildrenFiltered("tr").
		AddSelection(table.ChildrenFiltered("tr"))
}
