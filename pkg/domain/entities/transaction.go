package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SalesTransaction is an immutable record of a (fully or partially)
// fulfilled order. It exists iff the selling actor's inventory was
// decremented by Amount.
type SalesTransaction struct {
	OrderID    string
	BuyerID    string
	Product    Product
	Amount     Quantity
	TotalValue decimal.Decimal
}

// NewSalesTransaction creates a validated SalesTransaction
func NewSalesTransaction(orderID, buyerID string, product Product, amount Quantity, totalValue decimal.Decimal) (*SalesTransaction, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if buyerID == "" {
		return nil, fmt.Errorf("buyer id cannot be empty")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("transaction amount must be positive, got %d", amount)
	}

	return &SalesTransaction{
		OrderID:    orderID,
		BuyerID:    buyerID,
		Product:    product,
		Amount:     amount,
		TotalValue: totalValue,
	}, nil
}
