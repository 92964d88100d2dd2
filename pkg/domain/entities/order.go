package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderStatus represents the terminal outcome of processing an order
type OrderStatus int

const (
	Pending OrderStatus = iota
	Fulfilled
	PartiallyFulfilled
	Rejected
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Fulfilled:
		return "Fulfilled"
	case PartiallyFulfilled:
		return "PartiallyFulfilled"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// PurchaseOrder is a request for a quantity of a priced product. It is
// queued at a fulfiller and removed from the queue once processed; the
// outcome lives in the FulfillmentResult, not on the order.
type PurchaseOrder struct {
	ID        string
	Requester *Actor
	Product   PricedProduct
	Quantity  Quantity
}

// NewPurchaseOrder creates a validated PurchaseOrder with a generated ID
func NewPurchaseOrder(requester *Actor, product PricedProduct, quantity Quantity) (*PurchaseOrder, error) {
	if requester == nil {
		return nil, fmt.Errorf("requester cannot be nil")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: order quantity must be positive, got %d", ErrInvalidQuantity, quantity)
	}

	return &PurchaseOrder{
		ID:        "ORD-" + uuid.NewString(),
		Requester: requester,
		Product:   product,
		Quantity:  quantity,
	}, nil
}

// FulfillmentResult is the terminal outcome of processing one order.
// Filled may be any value in [0, Requested]; zero-filled partials are a
// normal result, not an error.
type FulfillmentResult struct {
	OrderID   string
	Product   PricedProduct
	Requested Quantity
	Filled    Quantity
	Status    OrderStatus
}
