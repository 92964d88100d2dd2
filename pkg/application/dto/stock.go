package dto

import (
	"fmt"
	"strings"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// ActorStock is one actor's stock summary at snapshot time
type ActorStock struct {
	ActorName string
	Stock     []entities.StockEntry
}

// Format renders the summary as product-name-aligned rows
func (s ActorStock) Format() string {
	var b strings.Builder
	for _, entry := range s.Stock {
		fmt.Fprintf(&b, "%-15s | %d\n", entry.Product.Name, entry.Quantity)
	}
	return b.String()
}

// RoleStock groups actor summaries under a role, in insertion order
type RoleStock struct {
	Role   entities.Role
	Actors []ActorStock
}

// LowStockAlert flags an (actor, product) pair below a threshold
type LowStockAlert struct {
	ActorName string
	Product   entities.Product
	Quantity  entities.Quantity
}

func (a LowStockAlert) String() string {
	return fmt.Sprintf("LOW STOCK ALERT: %s (%d units) for %s", a.Product.Name, a.Quantity, a.ActorName)
}
