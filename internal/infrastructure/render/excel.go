package render

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/smartsales/backend/internal/domain/report"
)

const (
	excelSheetName    = "Reporte"
	excelHeaderRow    = 8
	excelFirstDataRow = 9
)

// ExcelRenderer renders a report document into an xlsx artifact. Unlike
// the PDF renderer it never caps the data table, and a row that fails to
// write is logged and skipped instead of aborting the whole workbook.
type ExcelRenderer struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewExcelRenderer creates a new ExcelRenderer
func NewExcelRenderer(logger *zap.Logger) *ExcelRenderer {
	return &ExcelRenderer{
		logger: logger,
		now:    time.Now,
	}
}

// Render implements report.DocumentRenderer
func (r *ExcelRenderer) Render(ctx context.Context, doc *report.Document) (*report.Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return nil, NewRenderError(ErrCodeSpreadsheetFailed, "failed to initialize workbook", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(doc.Plan.Headers))
	if err != nil {
		return nil, NewRenderError(ErrCodeSpreadsheetFailed, "failed to resolve column name", err)
	}

	r.writeBanner(f, doc, lastCol)
	r.writeStats(f, doc)
	r.writeHeaders(f, doc)

	widths := make([]int, len(doc.Plan.Headers))
	for i, h := range doc.Plan.Headers {
		widths[i] = len(h)
	}

	for i, row := range excelRows(doc) {
		rowNum := excelFirstDataRow + i
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = excelCell(v)
			if w := len(displayString(v)); w > widths[j] {
				widths[j] = w
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			r.logger.Warn("skipping spreadsheet row", zap.Int("row", rowNum), zap.Error(err))
			continue
		}
		if err := f.SetSheetRow(excelSheetName, cell, &cells); err != nil {
			r.logger.Warn("skipping spreadsheet row", zap.Int("row", rowNum), zap.Error(err))
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(excelSheetName, col, col, float64(w+2))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		r.logger.Error("spreadsheet serialization failed", zap.Error(err))
		return nil, NewRenderError(ErrCodeSpreadsheetFailed, "failed to serialize workbook", err)
	}

	return &report.Artifact{
		Data:      buf.Bytes(),
		MediaType: report.MediaTypeExcel,
		Filename:  report.FilenameExcel,
	}, nil
}

func (r *ExcelRenderer) writeBanner(f *excelize.File, doc *report.Document, lastCol string) {
	_ = f.MergeCell(excelSheetName, "A1", lastCol+"1")
	_ = f.SetCellValue(excelSheetName, "A1", doc.Plan.Title)
	_ = f.SetCellValue(excelSheetName, "A2", "Generado: "+formatTimestamp(r.now()))

	if style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "1D4ED8"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err == nil {
		_ = f.SetCellStyle(excelSheetName, "A1", lastCol+"1", style)
	}
}

func (r *ExcelRenderer) writeStats(f *excelize.File, doc *report.Document) {
	_ = f.SetCellValue(excelSheetName, "A4", "Total de Ventas")
	_ = f.SetCellValue(excelSheetName, "B4", doc.Stats.TicketCount)
	_ = f.SetCellValue(excelSheetName, "A5", "Cantidad Total")
	_ = f.SetCellValue(excelSheetName, "B5", doc.Stats.TotalQuantity)
	_ = f.SetCellValue(excelSheetName, "A6", "Monto Total (Bs)")
	_ = f.SetCellValue(excelSheetName, "B6", doc.Stats.TotalAmount)

	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = f.SetCellStyle(excelSheetName, "A4", "A6", style)
	}
}

func (r *ExcelRenderer) writeHeaders(f *excelize.File, doc *report.Document) {
	for i, h := range doc.Plan.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, excelHeaderRow)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(excelSheetName, cell, h)
	}

	if style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1D4ED8"}},
	}); err == nil {
		first, _ := excelize.CoordinatesToCellName(1, excelHeaderRow)
		last, _ := excelize.CoordinatesToCellName(len(doc.Plan.Headers), excelHeaderRow)
		_ = f.SetCellStyle(excelSheetName, first, last, style)
	}
}

// excelRows maps the document's rows to cell values, one branch per
// grouping dimension. Values stay typed, coercion happens per cell.
func excelRows(doc *report.Document) [][]interface{} {
	switch {
	case doc.Rows.Products != nil:
		rows := make([][]interface{}, 0, len(doc.Rows.Products))
		for _, row := range doc.Rows.Products {
			rows = append(rows, []interface{}{row.ProductName, row.Quantity, row.Amount})
		}
		return rows

	case doc.Rows.Customers != nil:
		rows := make([][]interface{}, 0, len(doc.Rows.Customers))
		for _, row := range doc.Rows.Customers {
			rows = append(rows, []interface{}{row.CustomerEmail, row.TicketCount, row.Amount})
		}
		return rows

	case doc.Rows.Categories != nil:
		rows := make([][]interface{}, 0, len(doc.Rows.Categories))
		for _, row := range doc.Rows.Categories {
			rows = append(rows, []interface{}{row.CategoryName, row.Quantity, row.Amount})
		}
		return rows

	default:
		rows := make([][]interface{}, 0, len(doc.Rows.Tickets))
		for _, t := range doc.Rows.Tickets {
			rows = append(rows, []interface{}{
				t.ID.String(),
				t.SoldAt,
				orPlaceholder(t.CustomerEmail),
				orPlaceholder(t.PaymentMethod),
				t.Total,
			})
		}
		return rows
	}
}

// excelCell coerces a row value into something excelize encodes natively.
// Times lose their zone so the cell shows the wall clock of the sale.
func excelCell(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		f, _ := val.Float64()
		return f
	case time.Time:
		return time.Date(val.Year(), val.Month(), val.Day(), val.Hour(), val.Minute(), val.Second(), 0, time.UTC)
	default:
		return val
	}
}

// displayString approximates the rendered width of a cell for column
// autosizing.
func displayString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case decimal.Decimal:
		return val.StringFixed(2)
	case time.Time:
		return formatTimestamp(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}

var _ report.DocumentRenderer = (*ExcelRenderer)(nil)
