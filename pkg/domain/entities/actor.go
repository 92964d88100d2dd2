package entities

import "fmt"

// Role represents the position an actor plays in the chain
type Role int

const (
	Retailer Role = iota
	WarehouseOperator
	ProductSupplier
)

// Roles lists all recognized roles in report order
var Roles = []Role{Retailer, WarehouseOperator, ProductSupplier}

// String method for Role enum
func (r Role) String() string {
	switch r {
	case Retailer:
		return "Retailer"
	case WarehouseOperator:
		return "WarehouseOperator"
	case ProductSupplier:
		return "ProductSupplier"
	default:
		return "Unknown"
	}
}

// StockEntry is one (product, on-hand quantity) row of a ledger snapshot
type StockEntry struct {
	Product  Product
	Quantity Quantity
}

// InventoryLedger tracks per-product on-hand quantity for a single
// actor. Quantity never goes negative: an Adjust that would breach that
// fails atomically with ErrInsufficientStock. Adjustments for one
// product are linearizable with respect to concurrent callers.
type InventoryLedger interface {
	QuantityOf(product Product) Quantity
	Adjust(product Product, delta Quantity) error
	Replenish(product Product, amount Quantity) error
	Snapshot() []StockEntry
}

// TransactionLog is the append-only, ordered record of an actor's sales
type TransactionLog interface {
	Append(tx SalesTransaction)
	History() []SalesTransaction
}

// Actor is any party in the chain. Role-specific data hangs off the
// shared fields and is dispatched on Role with explicit branches, so
// the pipeline state machine stays exhaustive.
type Actor struct {
	Name         string
	ID           int
	Role         Role
	Catalog      []Product
	Ledger       InventoryLedger
	Transactions TransactionLog

	// Retailer only: the warehouse operator orders go to.
	Warehouse *Actor

	// WarehouseOperator only: escalation targets, tried in order, and
	// the FIFO order queue.
	Suppliers []*Actor
	queue     []*PurchaseOrder
}

// NewActor creates a validated Actor with its owned ledger and log
func NewActor(name string, id int, role Role, catalog []Product, ledger InventoryLedger, log TransactionLog) (*Actor, error) {
	if name == "" {
		return nil, fmt.Errorf("actor name cannot be empty")
	}
	if id <= 0 {
		return nil, fmt.Errorf("actor id must be positive, got %d", id)
	}
	if ledger == nil {
		return nil, fmt.Errorf("actor ledger cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("actor transaction log cannot be nil")
	}

	return &Actor{
		Name:         name,
		ID:           id,
		Role:         role,
		Catalog:      catalog,
		Ledger:       ledger,
		Transactions: log,
	}, nil
}

// Stocks reports whether the product is part of this actor's catalog
func (a *Actor) Stocks(product Product) bool {
	for _, p := range a.Catalog {
		if p.Same(product) {
			return true
		}
	}
	return false
}

// Enqueue appends an order to the actor's FIFO queue
func (a *Actor) Enqueue(order *PurchaseOrder) {
	a.queue = append(a.queue, order)
}

// Dequeue removes and returns the oldest queued order, or nil
func (a *Actor) Dequeue() *PurchaseOrder {
	if len(a.queue) == 0 {
		return nil
	}
	order := a.queue[0]
	a.queue = a.queue[1:]
	return order
}

// QueueLen returns the number of unprocessed orders
func (a *Actor) QueueLen() int {
	return len(a.queue)
}
