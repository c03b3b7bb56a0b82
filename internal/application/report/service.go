package report

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smartsales/backend/internal/domain/ledger"
	"github.com/smartsales/backend/internal/domain/report"
	"github.com/smartsales/backend/internal/domain/shared"
)

// ReportService turns a free-text prompt into a rendered report artifact.
// Each call is self-contained: parse, query, normalize, render.
type ReportService struct {
	ledger ledger.SalesLedger
	pdf    report.DocumentRenderer
	excel  report.DocumentRenderer
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(salesLedger ledger.SalesLedger, pdf, excel report.DocumentRenderer, logger *zap.Logger) *ReportService {
	return &ReportService{
		ledger: salesLedger,
		pdf:    pdf,
		excel:  excel,
		logger: logger,
		now:    time.Now,
	}
}

// Generate interprets the prompt, runs the matching aggregation plan and
// renders the result in the requested format. An empty row set returns
// shared.ErrNoReportData.
func (s *ReportService) Generate(ctx context.Context, prompt string) (*report.Artifact, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, shared.ErrInvalidInput
	}

	intent := ParsePrompt(prompt, s.now())
	plan := report.PlanFor(intent.GroupBy)
	dateRange := ledger.DateRange{From: intent.From, To: intent.To}

	doc, err := s.buildDocument(ctx, plan, dateRange)
	if err != nil {
		return nil, err
	}

	s.logger.Info("generating report",
		zap.String("group_by", string(plan.GroupBy)),
		zap.String("format", string(intent.Format)),
		zap.Int("rows", doc.Rows.Len()),
		zap.Bool("bounded", dateRange.IsBounded()),
	)

	renderer := s.pdf
	if intent.Format == report.FormatExcel {
		renderer = s.excel
	}

	artifact, err := renderer.Render(ctx, doc)
	if err != nil {
		s.logger.Error("report rendering failed",
			zap.String("format", string(intent.Format)),
			zap.Error(err),
		)
		return nil, err
	}
	return artifact, nil
}

func (s *ReportService) buildDocument(ctx context.Context, plan report.Plan, r ledger.DateRange) (*report.Document, error) {
	switch plan.GroupBy {
	case report.GroupByProduct:
		rows, err := s.ledger.ProductTotals(ctx, r)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, shared.ErrNoReportData
		}
		quantity, amount := decimal.Zero, decimal.Zero
		for _, row := range rows {
			quantity = quantity.Add(row.Quantity)
			amount = amount.Add(row.Amount)
		}
		return &report.Document{
			Plan:  plan,
			Rows:  report.Dataset{Products: rows},
			Stats: NormalizeStats(int64(len(rows)), quantity, amount),
		}, nil

	case report.GroupByCustomer:
		rows, err := s.ledger.CustomerTotals(ctx, r)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, shared.ErrNoReportData
		}
		// The sales count sums each customer's distinct tickets, not the
		// number of grouped rows.
		var tickets int64
		quantity, amount := decimal.Zero, decimal.Zero
		for _, row := range rows {
			tickets += row.TicketCount
			quantity = quantity.Add(row.Quantity)
			amount = amount.Add(row.Amount)
		}
		return &report.Document{
			Plan:  plan,
			Rows:  report.Dataset{Customers: rows},
			Stats: NormalizeStats(tickets, quantity, amount),
		}, nil

	case report.GroupByCategory:
		rows, err := s.ledger.CategoryTotals(ctx, r)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, shared.ErrNoReportData
		}
		quantity, amount := decimal.Zero, decimal.Zero
		for _, row := range rows {
			quantity = quantity.Add(row.Quantity)
			amount = amount.Add(row.Amount)
		}
		return &report.Document{
			Plan:  plan,
			Rows:  report.Dataset{Categories: rows},
			Stats: NormalizeStats(int64(len(rows)), quantity, amount),
		}, nil

	default:
		tickets, err := s.ledger.ListTickets(ctx, r)
		if err != nil {
			return nil, err
		}
		if len(tickets) == 0 {
			return nil, shared.ErrNoReportData
		}
		// Ticket rows carry no line quantities, so the quantity KPI needs
		// its own aggregate over the same range.
		quantity, err := s.ledger.LineQuantitySum(ctx, r)
		if err != nil {
			return nil, err
		}
		amount := decimal.Zero
		for _, t := range tickets {
			amount = amount.Add(t.Total)
		}
		return &report.Document{
			Plan:  plan,
			Rows:  report.Dataset{Tickets: tickets},
			Stats: NormalizeStats(int64(len(tickets)), quantity, amount),
		}, nil
	}
}
