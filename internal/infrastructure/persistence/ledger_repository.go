package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smartsales/backend/internal/domain/ledger"
)

// GormSalesLedger implements ledger.SalesLedger using GORM
type GormSalesLedger struct {
	db *gorm.DB
}

// NewGormSalesLedger creates a new GormSalesLedger
func NewGormSalesLedger(db *gorm.DB) *GormSalesLedger {
	return &GormSalesLedger{db: db}
}

// inRange filters ticket timestamps by the date range. Bounds are dates, the
// upper bound covers the whole day, so the filter is half-open on to+24h.
func inRange(query *gorm.DB, column string, r ledger.DateRange) *gorm.DB {
	if r.From != nil {
		query = query.Where(column+" >= ?", *r.From)
	}
	if r.To != nil {
		query = query.Where(column+" < ?", r.To.AddDate(0, 0, 1))
	}
	return query
}

// ProductTotals returns per-product line item aggregates, highest amount first
func (repo *GormSalesLedger) ProductTotals(ctx context.Context, r ledger.DateRange) ([]ledger.ProductTotal, error) {
	type productResult struct {
		ProductName string
		Quantity    decimal.Decimal
		Amount      decimal.Decimal
	}

	var results []productResult

	query := repo.db.WithContext(ctx).
		Table("ticket_lines tl").
		Select(`
			p.name as product_name,
			COALESCE(SUM(tl.quantity), 0) as quantity,
			COALESCE(SUM(tl.subtotal), 0) as amount
		`).
		Joins("JOIN tickets t ON t.id = tl.ticket_id").
		Joins("JOIN products p ON p.id = tl.product_id").
		Group("p.name").
		Order("amount DESC")

	if err := inRange(query, "t.sold_at", r).Scan(&results).Error; err != nil {
		return nil, err
	}

	totals := make([]ledger.ProductTotal, len(results))
	for i, res := range results {
		totals[i] = ledger.ProductTotal{
			ProductName: res.ProductName,
			Quantity:    res.Quantity,
			Amount:      res.Amount,
		}
	}
	return totals, nil
}

// CustomerTotals returns per-customer line item aggregates, highest amount first.
// The per-customer ticket count is over distinct tickets, not line items.
func (repo *GormSalesLedger) CustomerTotals(ctx context.Context, r ledger.DateRange) ([]ledger.CustomerTotal, error) {
	type customerResult struct {
		CustomerEmail string
		Quantity      decimal.Decimal
		Amount        decimal.Decimal
		TicketCount   int64
	}

	var results []customerResult

	query := repo.db.WithContext(ctx).
		Table("ticket_lines tl").
		Select(`
			c.email as customer_email,
			COALESCE(SUM(tl.quantity), 0) as quantity,
			COALESCE(SUM(tl.subtotal), 0) as amount,
			COUNT(DISTINCT t.id) as ticket_count
		`).
		Joins("JOIN tickets t ON t.id = tl.ticket_id").
		Joins("JOIN customers c ON c.id = t.customer_id").
		Group("c.email").
		Order("amount DESC")

	if err := inRange(query, "t.sold_at", r).Scan(&results).Error; err != nil {
		return nil, err
	}

	totals := make([]ledger.CustomerTotal, len(results))
	for i, res := range results {
		totals[i] = ledger.CustomerTotal{
			CustomerEmail: res.CustomerEmail,
			Quantity:      res.Quantity,
			Amount:        res.Amount,
			TicketCount:   res.TicketCount,
		}
	}
	return totals, nil
}

// CategoryTotals returns per-category line item aggregates, highest amount first
func (repo *GormSalesLedger) CategoryTotals(ctx context.Context, r ledger.DateRange) ([]ledger.CategoryTotal, error) {
	type categoryResult struct {
		CategoryName string
		Quantity     decimal.Decimal
		Amount       decimal.Decimal
	}

	var results []categoryResult

	query := repo.db.WithContext(ctx).
		Table("ticket_lines tl").
		Select(`
			cat.name as category_name,
			COALESCE(SUM(tl.quantity), 0) as quantity,
			COALESCE(SUM(tl.subtotal), 0) as amount
		`).
		Joins("JOIN tickets t ON t.id = tl.ticket_id").
		Joins("JOIN products p ON p.id = tl.product_id").
		Joins("JOIN categories cat ON cat.id = p.category_id").
		Group("cat.name").
		Order("amount DESC")

	if err := inRange(query, "t.sold_at", r).Scan(&results).Error; err != nil {
		return nil, err
	}

	totals := make([]ledger.CategoryTotal, len(results))
	for i, res := range results {
		totals[i] = ledger.CategoryTotal{
			CategoryName: res.CategoryName,
			Quantity:     res.Quantity,
			Amount:       res.Amount,
		}
	}
	return totals, nil
}

// ListTickets returns ticket-level records, newest first
func (repo *GormSalesLedger) ListTickets(ctx context.Context, r ledger.DateRange) ([]ledger.TicketRecord, error) {
	type ticketResult struct {
		ID            uuid.UUID
		SoldAt        time.Time
		CustomerEmail string
		PaymentMethod string
		Total         decimal.Decimal
	}

	var results []ticketResult

	query := repo.db.WithContext(ctx).
		Table("tickets t").
		Select(`
			t.id,
			t.sold_at,
			COALESCE(c.email, '') as customer_email,
			t.payment_method,
			t.total
		`).
		Joins("LEFT JOIN customers c ON c.id = t.customer_id").
		Order("t.sold_at DESC")

	if err := inRange(query, "t.sold_at", r).Scan(&results).Error; err != nil {
		return nil, err
	}

	records := make([]ledger.TicketRecord, len(results))
	for i, res := range results {
		records[i] = ledger.TicketRecord{
			ID:            res.ID,
			SoldAt:        res.SoldAt,
			CustomerEmail: res.CustomerEmail,
			PaymentMethod: res.PaymentMethod,
			Total:         res.Total,
		}
	}
	return records, nil
}

// LineQuantitySum returns the total line item quantity across tickets in the range
func (repo *GormSalesLedger) LineQuantitySum(ctx context.Context, r ledger.DateRange) (decimal.Decimal, error) {
	type sumResult struct {
		Quantity decimal.Decimal
	}

	var result sumResult

	query := repo.db.WithContext(ctx).
		Table("ticket_lines tl").
		Select("COALESCE(SUM(tl.quantity), 0) as quantity").
		Joins("JOIN tickets t ON t.id = tl.ticket_id")

	if err := inRange(query, "t.sold_at", r).Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Quantity, nil
}
