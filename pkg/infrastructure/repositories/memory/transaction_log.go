package memory

import (
	"sync"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// TransactionLog provides in-memory append-only transaction storage.
// Records are never mutated or deleted; History returns them in append
// order.
type TransactionLog struct {
	mu  sync.RWMutex
	txs []entities.SalesTransaction
}

// NewTransactionLog creates an empty in-memory transaction log
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Verify interface compliance
var _ entities.TransactionLog = (*TransactionLog)(nil)

// Append records a transaction
func (l *TransactionLog) Append(tx entities.SalesTransaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txs = append(l.txs, tx)
}

// History returns a copy of all transactions in append order
func (l *TransactionLog) History() []entities.SalesTransaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := make([]entities.SalesTransaction, len(l.txs))
	copy(history, l.txs)
	return history
}
