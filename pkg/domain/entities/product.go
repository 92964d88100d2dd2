package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Quantity represents an integer quantity of discrete stock units
type Quantity int64

// Product represents an immutable catalog entry. Two products are the
// same entity iff their IDs match.
type Product struct {
	Name     string
	Category string
	ID       int
}

// NewProduct creates a validated Product
func NewProduct(name, category string, id int) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if category == "" {
		return nil, fmt.Errorf("product category cannot be empty")
	}
	if id <= 0 {
		return nil, fmt.Errorf("product id must be positive, got %d", id)
	}

	return &Product{
		Name:     name,
		Category: category,
		ID:       id,
	}, nil
}

// Same reports whether two products are the same catalog entity
func (p Product) Same(other Product) bool {
	return p.ID == other.ID
}

// PricedProduct is a Product plus a unit price. It is used only inside
// purchase orders and never feeds back into the catalog.
type PricedProduct struct {
	Product
	UnitPrice decimal.Decimal
}

// NewPricedProduct creates a validated PricedProduct
func NewPricedProduct(product Product, unitPrice decimal.Decimal) (*PricedProduct, error) {
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}

	return &PricedProduct{
		Product:   product,
		UnitPrice: unitPrice,
	}, nil
}

// Total returns the price of qty units
func (p PricedProduct) Total(qty Quantity) decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
}
