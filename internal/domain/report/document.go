package report

import (
	"context"

	"github.com/smartsales/backend/internal/domain/ledger"
)

// Media types and attachment names of the two artifact encodings.
const (
	MediaTypePDF   = "application/pdf"
	MediaTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	FilenamePDF   = "reporte_smart_sales.pdf"
	FilenameExcel = "reporte_smart_sales.xlsx"
)

// Stats is the normalized summary band of a report. Fields are plain
// numeric types: renderers rely on primitive encodability and never see
// decimals or absent values here.
type Stats struct {
	TicketCount   int64   `json:"total_ventas"`
	TotalQuantity int64   `json:"cantidad_total"`
	TotalAmount   float64 `json:"monto_total"`
}

// Dataset holds the materialized rows of one report. Exactly one slice is
// populated, matching the plan's grouping dimension.
type Dataset struct {
	Products   []ledger.ProductTotal
	Customers  []ledger.CustomerTotal
	Categories []ledger.CategoryTotal
	Tickets    []ledger.TicketRecord
}

// Len returns the number of rows in the populated slice.
func (d *Dataset) Len() int {
	switch {
	case d.Products != nil:
		return len(d.Products)
	case d.Customers != nil:
		return len(d.Customers)
	case d.Categories != nil:
		return len(d.Categories)
	default:
		return len(d.Tickets)
	}
}

// Document is the renderer input: one plan, its materialized rows and the
// normalized statistics. All fields are request-scoped.
type Document struct {
	Plan  Plan
	Rows  Dataset
	Stats Stats
}

// Artifact is the terminal value of a report generation call.
type Artifact struct {
	Data      []byte
	MediaType string
	Filename  string
}

// DocumentRenderer turns a document into a downloadable artifact. The two
// implementations (paginated PDF, spreadsheet) intentionally differ in
// failure tolerance; see their package documentation.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *Document) (*Artifact, error)
}
