package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketRecord is a read model for one completed sale transaction.
// CustomerEmail and PaymentMethod are optional: walk-in sales carry neither.
type TicketRecord struct {
	ID            uuid.UUID       `json:"id"`
	SoldAt        time.Time       `json:"sold_at"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Total         decimal.Decimal `json:"total"`
}

// ProductTotal is one grouped aggregate row: line items summed per product.
type ProductTotal struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// CustomerTotal is one grouped aggregate row: line items summed per customer.
// TicketCount is the number of distinct tickets the customer appears in.
type CustomerTotal struct {
	CustomerEmail string          `json:"customer_email"`
	Quantity      decimal.Decimal `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
	TicketCount   int64           `json:"ticket_count"`
}

// CategoryTotal is one grouped aggregate row: line items summed per category.
type CategoryTotal struct {
	CategoryName string          `json:"category_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
}

// DateRange bounds a ledger query by the date component of the ticket
// timestamp, both ends inclusive. Nil bounds mean the full ledger history.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsBounded reports whether both ends of the range are set.
func (r DateRange) IsBounded() bool {
	return r.From != nil && r.To != nil
}

// SalesLedger is the query interface over the sales ledger. Every method
// returns a fully materialized slice: the caller checks emptiness once and
// reuses the same data for rendering without re-querying.
type SalesLedger interface {
	// ProductTotals returns per-product line item aggregates, highest amount first.
	ProductTotals(ctx context.Context, r DateRange) ([]ProductTotal, error)

	// CustomerTotals returns per-customer line item aggregates, highest amount first.
	CustomerTotals(ctx context.Context, r DateRange) ([]CustomerTotal, error)

	// CategoryTotals returns per-category line item aggregates, highest amount first.
	CategoryTotals(ctx context.Context, r DateRange) ([]CategoryTotal, error)

	// ListTickets returns ticket-level records, newest first.
	ListTickets(ctx context.Context, r DateRange) ([]TicketRecord, error)

	// LineQuantitySum returns the total line item quantity across all tickets
	// in the range. Used by the ungrouped report, whose rows are ticket-level
	// and carry no per-line quantities.
	LineQuantitySum(ctx context.Context, r DateRange) (decimal.Decimal, error)
}
