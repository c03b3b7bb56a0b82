package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smartsales/backend/internal/domain/ledger"
	"github.com/smartsales/backend/internal/infrastructure/persistence/models"
)

func setupLedgerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.CustomerModel{},
		&models.TicketModel{},
		&models.TicketLineModel{},
	)
	require.NoError(t, err)

	return db
}

type ledgerFixture struct {
	db *gorm.DB
	t  *testing.T
}

func (f *ledgerFixture) category(name string) models.CategoryModel {
	c := models.CategoryModel{Name: name}
	require.NoError(f.t, f.db.Create(&c).Error)
	return c
}

func (f *ledgerFixture) product(name string, category models.CategoryModel, price float64) models.ProductModel {
	p := models.ProductModel{
		Name:       name,
		CategoryID: category.ID,
		SalePrice:  decimal.NewFromFloat(price),
		Active:     true,
	}
	require.NoError(f.t, f.db.Create(&p).Error)
	return p
}

func (f *ledgerFixture) customer(email string) models.CustomerModel {
	c := models.CustomerModel{Email: email}
	require.NoError(f.t, f.db.Create(&c).Error)
	return c
}

func (f *ledgerFixture) ticket(soldAt time.Time, customer *models.CustomerModel, total float64) models.TicketModel {
	ticket := models.TicketModel{
		SoldAt:        soldAt,
		PaymentMethod: "Mostrador",
		Total:         decimal.NewFromFloat(total),
	}
	if customer != nil {
		ticket.CustomerID = &customer.ID
	}
	require.NoError(f.t, f.db.Create(&ticket).Error)
	return ticket
}

func (f *ledgerFixture) line(ticket models.TicketModel, product models.ProductModel, quantity, subtotal float64) {
	l := models.TicketLineModel{
		TicketID:  ticket.ID,
		ProductID: product.ID,
		Quantity:  decimal.NewFromFloat(quantity),
		UnitPrice: product.SalePrice,
		Subtotal:  decimal.NewFromFloat(subtotal),
	}
	require.NoError(f.t, f.db.Create(&l).Error)
}

func seededDay(d int) time.Time {
	return time.Date(2024, time.March, d, 14, 30, 0, 0, time.UTC)
}

// seedLedger inserts two categories, three products, two customers and three
// tickets on March 10, 12 and 20. The March 20 ticket is a walk-in sale.
func seedLedger(t *testing.T, db *gorm.DB) *ledgerFixture {
	f := &ledgerFixture{db: db, t: t}

	drinks := f.category("Bebidas")
	snacks := f.category("Snacks")

	soda := f.product("Refresco", drinks, 10)
	juice := f.product("Jugo", drinks, 15)
	chips := f.product("Papas", snacks, 8)

	ana := f.customer("ana@mail.com")
	luis := f.customer("luis@mail.com")

	t1 := f.ticket(seededDay(10), &ana, 65)
	f.line(t1, soda, 2, 20)
	f.line(t1, juice, 3, 45)

	t2 := f.ticket(seededDay(12), &luis, 24)
	f.line(t2, chips, 3, 24)

	t3 := f.ticket(seededDay(20), nil, 30)
	f.line(t3, soda, 3, 30)

	return f
}

func boundedRange(fromDay, toDay int) ledger.DateRange {
	from := time.Date(2024, time.March, fromDay, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, toDay, 0, 0, 0, 0, time.UTC)
	return ledger.DateRange{From: &from, To: &to}
}

func TestGormSalesLedger_ProductTotals(t *testing.T) {
	db := setupLedgerTestDB(t)
	seedLedger(t, db)
	repo := NewGormSalesLedger(db)
	ctx := context.Background()

	t.Run("aggregates per product ordered by amount", func(t *testing.T) {
		totals, err := repo.ProductTotals(ctx, ledger.DateRange{})
		require.NoError(t, err)
		require.Len(t, totals, 3)

		assert.Equal(t, "Refresco", totals[0].ProductName)
		assert.True(t, totals[0].Quantity.Equal(decimal.NewFromInt(5)))
		assert.True(t, totals[0].Amount.Equal(decimal.NewFromInt(50)))

		assert.Equal(t, "Jugo", totals[1].ProductName)
		assert.Equal(t, "Papas", totals[2].ProductName)
	})

	t.Run("filters by date range inclusive of the last day", func(t *testing.T) {
		totals, err := repo.ProductTotals(ctx, boundedRange(10, 12))
		require.NoError(t, err)
		require.Len(t, totals, 3)

		// The March 20 walk-in sale is outside the range, so the soda
		// quantity drops to the March 10 lines only.
		for _, total := range totals {
			if total.ProductName == "Refresco" {
				assert.True(t, total.Quantity.Equal(decimal.NewFromInt(2)))
			}
		}
	})

	t.Run("upper bound covers the whole day", func(t *testing.T) {
		// Tickets are sold at 14:30, a date-only upper bound must include them.
		totals, err := repo.ProductTotals(ctx, boundedRange(20, 20))
		require.NoError(t, err)
		require.Len(t, totals, 1)
		assert.Equal(t, "Refresco", totals[0].ProductName)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		totals, err := repo.ProductTotals(ctx, boundedRange(1, 2))
		require.NoError(t, err)
		assert.Empty(t, totals)
	})
}

func TestGormSalesLedger_CustomerTotals(t *testing.T) {
	db := setupLedgerTestDB(t)
	seedLedger(t, db)
	repo := NewGormSalesLedger(db)
	ctx := context.Background()

	t.Run("aggregates per customer with distinct ticket counts", func(t *testing.T) {
		totals, err := repo.CustomerTotals(ctx, ledger.DateRange{})
		require.NoError(t, err)
		require.Len(t, totals, 2)

		assert.Equal(t, "ana@mail.com", totals[0].CustomerEmail)
		assert.True(t, totals[0].Amount.Equal(decimal.NewFromInt(65)))
		assert.Equal(t, int64(1), totals[0].TicketCount)

		assert.Equal(t, "luis@mail.com", totals[1].CustomerEmail)
	})

	t.Run("walk-in sales have no customer and are excluded", func(t *testing.T) {
		totals, err := repo.CustomerTotals(ctx, boundedRange(20, 20))
		require.NoError(t, err)
		assert.Empty(t, totals)
	})
}

func TestGormSalesLedger_CategoryTotals(t *testing.T) {
	db := setupLedgerTestDB(t)
	seedLedger(t, db)
	repo := NewGormSalesLedger(db)
	ctx := context.Background()

	totals, err := repo.CategoryTotals(ctx, ledger.DateRange{})
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, "Bebidas", totals[0].CategoryName)
	assert.True(t, totals[0].Quantity.Equal(decimal.NewFromInt(8)))
	assert.True(t, totals[0].Amount.Equal(decimal.NewFromInt(95)))

	assert.Equal(t, "Snacks", totals[1].CategoryName)
	assert.True(t, totals[1].Amount.Equal(decimal.NewFromInt(24)))
}

func TestGormSalesLedger_ListTickets(t *testing.T) {
	db := setupLedgerTestDB(t)
	seedLedger(t, db)
	repo := NewGormSalesLedger(db)
	ctx := context.Background()

	t.Run("returns tickets newest first", func(t *testing.T) {
		tickets, err := repo.ListTickets(ctx, ledger.DateRange{})
		require.NoError(t, err)
		require.Len(t, tickets, 3)

		assert.True(t, tickets[0].SoldAt.After(tickets[1].SoldAt))
		assert.True(t, tickets[1].SoldAt.After(tickets[2].SoldAt))
		assert.NotEqual(t, uuid.Nil, tickets[0].ID)
	})

	t.Run("walk-in tickets carry an empty customer label", func(t *testing.T) {
		tickets, err := repo.ListTickets(ctx, boundedRange(20, 20))
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "", tickets[0].CustomerEmail)
		assert.True(t, tickets[0].Total.Equal(decimal.NewFromInt(30)))
	})
}

func TestGormSalesLedger_LineQuantitySum(t *testing.T) {
	db := setupLedgerTestDB(t)
	seedLedger(t, db)
	repo := NewGormSalesLedger(db)
	ctx := context.Background()

	t.Run("sums all line quantities in range", func(t *testing.T) {
		sum, err := repo.LineQuantitySum(ctx, boundedRange(10, 12))
		require.NoError(t, err)
		assert.True(t, sum.Equal(decimal.NewFromInt(8)), "got %s", sum)
	})

	t.Run("empty range sums to zero", func(t *testing.T) {
		sum, err := repo.LineQuantitySum(ctx, boundedRange(1, 2))
		require.NoError(t, err)
		assert.True(t, sum.IsZero())
	})
}
