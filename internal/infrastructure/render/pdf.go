package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smartsales/backend/internal/domain/report"
)

// printRowLimit caps the print layout's data table. The spreadsheet
// renderer has no such cap.
const printRowLimit = 100

// placeholder stands in for optional fields a ticket does not carry.
const placeholder = "N/A"

// PDFRenderer renders a report document into a paginated PDF artifact.
type PDFRenderer struct {
	engine    PDFEngine
	templates *TemplateEngine
	logger    *zap.Logger
	now       func() time.Time
}

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer(engine PDFEngine, templates *TemplateEngine, logger *zap.Logger) *PDFRenderer {
	return &PDFRenderer{
		engine:    engine,
		templates: templates,
		logger:    logger,
		now:       time.Now,
	}
}

// Render implements report.DocumentRenderer
func (r *PDFRenderer) Render(ctx context.Context, doc *report.Document) (*report.Artifact, error) {
	total := doc.Rows.Len()
	rows := printRows(doc)

	view := &documentView{
		Title:         doc.Plan.Title,
		GeneratedAt:   formatTimestamp(r.now()),
		TicketCount:   doc.Stats.TicketCount,
		TotalQuantity: fmt.Sprintf("%d", doc.Stats.TotalQuantity),
		TotalAmount:   fmt.Sprintf("%.2f", doc.Stats.TotalAmount),
		Headers:       doc.Plan.Headers,
		ColWidths:     doc.Plan.ColWidths,
		Rows:          rows,
		TotalRows:     total,
		Truncated:     total > len(rows),
	}

	html, err := r.templates.render(view)
	if err != nil {
		r.logger.Error("report template rendering failed", zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "report template rendering failed", err)
	}

	data, err := r.engine.Render(ctx, html, doc.Plan.Title)
	if err != nil {
		return nil, err
	}

	return &report.Artifact{
		Data:      data,
		MediaType: report.MediaTypePDF,
		Filename:  report.FilenamePDF,
	}, nil
}

// printRows maps the document's rows to display cells, one branch per
// grouping dimension, capped at printRowLimit.
func printRows(doc *report.Document) [][]string {
	switch {
	case doc.Rows.Products != nil:
		rows := make([][]string, 0, min(len(doc.Rows.Products), printRowLimit))
		for _, row := range doc.Rows.Products[:min(len(doc.Rows.Products), printRowLimit)] {
			rows = append(rows, []string{row.ProductName, formatQty(row.Quantity), formatMoney(row.Amount)})
		}
		return rows

	case doc.Rows.Customers != nil:
		rows := make([][]string, 0, min(len(doc.Rows.Customers), printRowLimit))
		for _, row := range doc.Rows.Customers[:min(len(doc.Rows.Customers), printRowLimit)] {
			rows = append(rows, []string{row.CustomerEmail, fmt.Sprintf("%d", row.TicketCount), formatMoney(row.Amount)})
		}
		return rows

	case doc.Rows.Categories != nil:
		rows := make([][]string, 0, min(len(doc.Rows.Categories), printRowLimit))
		for _, row := range doc.Rows.Categories[:min(len(doc.Rows.Categories), printRowLimit)] {
			rows = append(rows, []string{row.CategoryName, formatQty(row.Quantity), formatMoney(row.Amount)})
		}
		return rows

	default:
		rows := make([][]string, 0, min(len(doc.Rows.Tickets), printRowLimit))
		for _, t := range doc.Rows.Tickets[:min(len(doc.Rows.Tickets), printRowLimit)] {
			rows = append(rows, []string{
				shortID(t.ID.String()),
				formatTimestamp(t.SoldAt),
				orPlaceholder(t.CustomerEmail),
				orPlaceholder(t.PaymentMethod),
				formatMoney(t.Total),
			})
		}
		return rows
	}
}

// shortID keeps the first UUID segment, full identifiers do not fit the
// narrowest print column.
func shortID(id string) string {
	if i := strings.Index(id, "-"); i > 0 {
		return id[:i]
	}
	return id
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

var _ report.DocumentRenderer = (*PDFRenderer)(nil)
