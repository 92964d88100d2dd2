package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// FulfillmentService runs the retailer -> warehouse -> supplier order
// pipeline. Orders are queued at a warehouse operator and processed in
// arrival order in a single pass: own stock first, then each configured
// supplier for the shortfall. Shortfalls never fail an order; they
// degrade it to a partial (possibly zero-filled) result.
//
// Transaction convention: every supplier that ships appends one
// supplier->warehouse transaction for its portion, and the warehouse
// appends one retailer-facing transaction for the full delivered
// quantity. Zero-quantity deliveries append nothing.
type FulfillmentService struct {
	logger *zap.Logger
}

// NewFulfillmentService creates a fulfillment service
func NewFulfillmentService(logger *zap.Logger) *FulfillmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FulfillmentService{logger: logger}
}

// SubmitOrder creates an order on behalf of a retailer and enqueues it
// at the retailer's assigned warehouse. Submission always succeeds
// apart from structural misuse: a non-positive quantity is rejected
// immediately and never enqueued.
func (s *FulfillmentService) SubmitOrder(retailer *entities.Actor, product entities.PricedProduct, quantity entities.Quantity) (*entities.FulfillmentResult, error) {
	if retailer.Role != entities.Retailer {
		return nil, fmt.Errorf("actor %s has role %s, only retailers submit orders", retailer.Name, retailer.Role)
	}
	if retailer.Warehouse == nil {
		return nil, fmt.Errorf("retailer %s has no assigned warehouse", retailer.Name)
	}
	if quantity <= 0 {
		result := &entities.FulfillmentResult{
			Product:   product,
			Requested: quantity,
			Status:    entities.Rejected,
		}
		return result, fmt.Errorf("%w: order quantity must be positive, got %d", entities.ErrInvalidQuantity, quantity)
	}

	order, err := entities.NewPurchaseOrder(retailer, product, quantity)
	if err != nil {
		return nil, err
	}
	retailer.Warehouse.Enqueue(order)

	s.logger.Info("order submitted",
		zap.String("order_id", order.ID),
		zap.String("retailer", retailer.Name),
		zap.String("product", product.Name),
		zap.Int64("quantity", int64(quantity)))

	return &entities.FulfillmentResult{
		OrderID:   order.ID,
		Product:   product,
		Requested: quantity,
		Status:    entities.Pending,
	}, nil
}

// FillOrders processes every queued order at a warehouse operator, in
// arrival order, and returns one terminal result per order.
func (s *FulfillmentService) FillOrders(warehouse *entities.Actor) ([]entities.FulfillmentResult, error) {
	if warehouse.Role != entities.WarehouseOperator {
		return nil, fmt.Errorf("actor %s has role %s, only warehouse operators fill orders", warehouse.Name, warehouse.Role)
	}

	var results []entities.FulfillmentResult
	for order := warehouse.Dequeue(); order != nil; order = warehouse.Dequeue() {
		result, err := s.fill(warehouse, order)
		if err != nil {
			return results, err
		}
		results = append(results, *result)
	}
	return results, nil
}

// fill satisfies one order from warehouse stock, escalating the
// shortfall to suppliers in configured order. Supplier-sourced stock
// passes through the warehouse ledger before shipping, and the
// delivered quantity lands in the requester's ledger.
func (s *FulfillmentService) fill(warehouse *entities.Actor, order *entities.PurchaseOrder) (*entities.FulfillmentResult, error) {
	product := order.Product
	own := warehouse.Ledger.QuantityOf(product.Product)

	var sourced entities.Quantity
	if own < order.Quantity {
		shortfall := order.Quantity - own
		for _, supplier := range warehouse.Suppliers {
			if shortfall == 0 {
				break
			}
			granted, err := s.provide(supplier, warehouse, order, shortfall)
			if err != nil {
				return nil, err
			}
			sourced += granted
			shortfall -= granted
		}
		if sourced > 0 {
			if err := warehouse.Ledger.Replenish(product.Product, sourced); err != nil {
				return nil, fmt.Errorf("restocking %s at %s: %w", product.Name, warehouse.Name, err)
			}
		}
	}

	delivered := own + sourced
	if delivered > order.Quantity {
		delivered = order.Quantity
	}

	if delivered > 0 {
		if err := warehouse.Ledger.Adjust(product.Product, -delivered); err != nil {
			return nil, fmt.Errorf("shipping %s from %s: %w", product.Name, warehouse.Name, err)
		}
		tx, err := entities.NewSalesTransaction(order.ID, order.Requester.Name, product.Product, delivered, product.Total(delivered))
		if err != nil {
			return nil, err
		}
		warehouse.Transactions.Append(*tx)

		if err := order.Requester.Ledger.Replenish(product.Product, delivered); err != nil {
			return nil, fmt.Errorf("delivering %s to %s: %w", product.Name, order.Requester.Name, err)
		}
	}

	status := entities.PartiallyFulfilled
	if delivered == order.Quantity {
		status = entities.Fulfilled
	}

	s.logger.Info("order processed",
		zap.String("order_id", order.ID),
		zap.String("warehouse", warehouse.Name),
		zap.Int64("requested", int64(order.Quantity)),
		zap.Int64("filled", int64(delivered)),
		zap.String("status", status.String()))

	return &entities.FulfillmentResult{
		OrderID:   order.ID,
		Product:   product,
		Requested: order.Quantity,
		Filled:    delivered,
		Status:    status,
	}, nil
}

// provide asks a supplier for up to ask units. The supplier has no
// further upstream: it grants min(own stock, ask), decrements its own
// ledger, and records its own transaction for the granted portion.
// A shortfall is never an error; the caller aggregates.
func (s *FulfillmentService) provide(supplier, buyer *entities.Actor, order *entities.PurchaseOrder, ask entities.Quantity) (entities.Quantity, error) {
	if supplier.Role != entities.ProductSupplier {
		return 0, fmt.Errorf("actor %s has role %s, only suppliers serve escalations", supplier.Name, supplier.Role)
	}

	granted := supplier.Ledger.QuantityOf(order.Product.Product)
	if granted > ask {
		granted = ask
	}
	if granted == 0 {
		return 0, nil
	}

	if err := supplier.Ledger.Adjust(order.Product.Product, -granted); err != nil {
		return 0, fmt.Errorf("sourcing %s from %s: %w", order.Product.Name, supplier.Name, err)
	}
	tx, err := entities.NewSalesTransaction(order.ID, buyer.Name, order.Product.Product, granted, order.Product.Total(granted))
	if err != nil {
		return 0, err
	}
	supplier.Transactions.Append(*tx)

	return granted, nil
}
