package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for a product category.
type CategoryModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the persistence model for a sellable product.
type ProductModel struct {
	BaseModel
	Name       string          `gorm:"type:varchar(200);not null;index"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category   CategoryModel   `gorm:"foreignKey:CategoryID;references:ID"`
	SalePrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Active     bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// CustomerModel is the persistence model for a registered customer.
// Email is the customer's public label on reports.
type CustomerModel struct {
	BaseModel
	Email    string `gorm:"type:varchar(200);not null;uniqueIndex"`
	FullName string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// TicketModel is the persistence model for one completed sale.
// CustomerID is null for walk-in sales.
type TicketModel struct {
	BaseModel
	SoldAt        time.Time         `gorm:"not null;index"`
	CustomerID    *uuid.UUID        `gorm:"type:uuid;index"`
	Customer      *CustomerModel    `gorm:"foreignKey:CustomerID;references:ID"`
	PaymentMethod string            `gorm:"type:varchar(50)"`
	Total         decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Lines         []TicketLineModel `gorm:"foreignKey:TicketID;references:ID"`
}

// TableName returns the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}

// TicketLineModel is the persistence model for one product line within a ticket.
type TicketLineModel struct {
	BaseModel
	TicketID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Product   ProductModel    `gorm:"foreignKey:ProductID;references:ID"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (TicketLineModel) TableName() string {
	return "ticket_lines"
}
