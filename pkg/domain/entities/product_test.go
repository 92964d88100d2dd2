package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewProduct_Validation(t *testing.T) {
	valid, err := NewProduct("Laptop", "Electronics", 1)
	if err != nil {
		t.Fatalf("Expected valid product creation to succeed: %v", err)
	}
	if valid.Name != "Laptop" {
		t.Errorf("Expected name Laptop, got %s", valid.Name)
	}

	testCases := []struct {
		name        string
		productName string
		category    string
		id          int
		expectError string
	}{
		{"empty name", "", "Electronics", 1, "product name cannot be empty"},
		{"empty category", "Laptop", "", 1, "product category cannot be empty"},
		{"zero id", "Laptop", "Electronics", 0, "product id must be positive, got 0"},
		{"negative id", "Laptop", "Electronics", -3, "product id must be positive, got -3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewProduct(tc.productName, tc.category, tc.id)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestProduct_Same(t *testing.T) {
	a, _ := NewProduct("Laptop", "Electronics", 1)
	b, _ := NewProduct("Renamed Laptop", "Computers", 1)
	c, _ := NewProduct("Laptop", "Electronics", 2)

	if !a.Same(*b) {
		t.Error("Expected products with equal IDs to be the same entity")
	}
	if a.Same(*c) {
		t.Error("Expected products with different IDs to be distinct entities")
	}
}

func TestNewPricedProduct(t *testing.T) {
	product, _ := NewProduct("Laptop", "Electronics", 1)

	priced, err := NewPricedProduct(*product, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("Expected valid priced product creation to succeed: %v", err)
	}
	if got := priced.Total(5); !got.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Expected total 5000 for 5 units, got %s", got)
	}

	if _, err := NewPricedProduct(*product, decimal.NewFromInt(-1)); err == nil {
		t.Error("Expected negative unit price to be rejected")
	}
}

func TestNewSalesTransaction_Validation(t *testing.T) {
	product, _ := NewProduct("Laptop", "Electronics", 1)

	tx, err := NewSalesTransaction("Order1", "Retailer1", *product, 5, decimal.NewFromInt(5500))
	if err != nil {
		t.Fatalf("Expected valid transaction creation to succeed: %v", err)
	}
	if tx.Amount != 5 {
		t.Errorf("Expected amount 5, got %d", tx.Amount)
	}

	testCases := []struct {
		name    string
		orderID string
		buyerID string
		amount  Quantity
	}{
		{"empty order id", "", "Retailer1", 5},
		{"empty buyer id", "Order1", "", 5},
		{"zero amount", "Order1", "Retailer1", 0},
		{"negative amount", "Order1", "Retailer1", -2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSalesTransaction(tc.orderID, tc.buyerID, *product, tc.amount, decimal.Zero)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
		})
	}
}

func TestNewPurchaseOrder(t *testing.T) {
	product, _ := NewProduct("Laptop", "Electronics", 1)
	priced, _ := NewPricedProduct(*product, decimal.NewFromInt(1000))
	retailer := &Actor{Name: "Retailer1", ID: 101, Role: Retailer}

	order, err := NewPurchaseOrder(retailer, *priced, 5)
	if err != nil {
		t.Fatalf("Expected valid order creation to succeed: %v", err)
	}
	if order.ID == "" {
		t.Error("Expected order to get a generated ID")
	}

	_, err = NewPurchaseOrder(retailer, *priced, 0)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity for zero quantity, got %v", err)
	}
}

func TestActorQueue_FIFO(t *testing.T) {
	product, _ := NewProduct("Laptop", "Electronics", 1)
	priced, _ := NewPricedProduct(*product, decimal.NewFromInt(1000))
	retailer := &Actor{Name: "Retailer1", ID: 101, Role: Retailer}
	warehouse := &Actor{Name: "Warehouse1", ID: 201, Role: WarehouseOperator}

	first, _ := NewPurchaseOrder(retailer, *priced, 1)
	second, _ := NewPurchaseOrder(retailer, *priced, 2)
	warehouse.Enqueue(first)
	warehouse.Enqueue(second)

	if warehouse.QueueLen() != 2 {
		t.Fatalf("Expected queue length 2, got %d", warehouse.QueueLen())
	}
	if got := warehouse.Dequeue(); got.ID != first.ID {
		t.Errorf("Expected first order out first, got %s", got.ID)
	}
	if got := warehouse.Dequeue(); got.ID != second.ID {
		t.Errorf("Expected second order out second, got %s", got.ID)
	}
	if got := warehouse.Dequeue(); got != nil {
		t.Errorf("Expected empty queue to yield nil, got %v", got)
	}
}
