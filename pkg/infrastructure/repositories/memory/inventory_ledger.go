package memory

import (
	"fmt"
	"sync"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// InventoryLedger provides in-memory per-actor inventory storage.
// Entries keep first-seen product order so snapshots are deterministic.
// One mutex guards the whole ledger; a ledger belongs to a single
// actor, so this serializes adjustments per (actor, product).
type InventoryLedger struct {
	mu      sync.Mutex
	entries []entities.StockEntry
	index   map[int]int // product ID -> entries offset
}

// NewInventoryLedger creates an empty in-memory inventory ledger
func NewInventoryLedger() *InventoryLedger {
	return &InventoryLedger{
		index: make(map[int]int),
	}
}

// Verify interface compliance
var _ entities.InventoryLedger = (*InventoryLedger)(nil)

// Seed loads initial quantities for products, in catalog order
func (l *InventoryLedger) Seed(products []entities.Product, quantities []entities.Quantity) error {
	if len(products) != len(quantities) {
		return fmt.Errorf("seed mismatch: %d products, %d quantities", len(products), len(quantities))
	}
	for i, p := range products {
		if quantities[i] < 0 {
			return fmt.Errorf("seed quantity cannot be negative, got %d for %s", quantities[i], p.Name)
		}
		l.mu.Lock()
		l.entryFor(p).Quantity = quantities[i]
		l.mu.Unlock()
	}
	return nil
}

// entryFor returns the entry for a product, creating it at quantity 0.
// Caller must hold mu.
func (l *InventoryLedger) entryFor(product entities.Product) *entities.StockEntry {
	if i, ok := l.index[product.ID]; ok {
		return &l.entries[i]
	}
	l.index[product.ID] = len(l.entries)
	l.entries = append(l.entries, entities.StockEntry{Product: product})
	return &l.entries[len(l.entries)-1]
}

// QuantityOf returns the on-hand quantity, zero for untracked products
func (l *InventoryLedger) QuantityOf(product entities.Product) entities.Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i, ok := l.index[product.ID]; ok {
		return l.entries[i].Quantity
	}
	return 0
}

// Adjust applies a signed delta in one atomic step. A delta that would
// drive the quantity below zero fails with ErrInsufficientStock and
// leaves the entry untouched.
func (l *InventoryLedger) Adjust(product entities.Product, delta entities.Quantity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entryFor(product)
	if entry.Quantity+delta < 0 {
		return fmt.Errorf("%w: %s has %d, adjustment %d", entities.ErrInsufficientStock, product.Name, entry.Quantity, delta)
	}
	entry.Quantity += delta
	return nil
}

// Replenish adds a strictly positive amount
func (l *InventoryLedger) Replenish(product entities.Product, amount entities.Quantity) error {
	if amount <= 0 {
		return fmt.Errorf("%w: replenish amount must be positive, got %d", entities.ErrInvalidQuantity, amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entryFor(product).Quantity += amount
	return nil
}

// Snapshot returns a copy of all entries in first-seen order
func (l *InventoryLedger) Snapshot() []entities.StockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]entities.StockEntry, len(l.entries))
	copy(snapshot, l.entries)
	return snapshot
}
