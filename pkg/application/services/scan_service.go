package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// BarcodeDecoder resolves a scanned image to a product id. The decoder
// itself is an external collaborator; this package only consumes it.
type BarcodeDecoder interface {
	Decode(imagePath string) (int, error)
}

// ScanService restocks an actor's inventory from a barcode scan
type ScanService struct {
	decoder BarcodeDecoder
	logger  *zap.Logger
}

// NewScanService creates a scan service over a decoder
func NewScanService(decoder BarcodeDecoder, logger *zap.Logger) *ScanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScanService{decoder: decoder, logger: logger}
}

// Restock decodes the product id from the scanned image and adds
// quantity units to the actor's ledger. The product must be in the
// actor's catalog.
func (s *ScanService) Restock(actor *entities.Actor, imagePath string, quantity entities.Quantity) (*entities.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive, got %d", entities.ErrInvalidQuantity, quantity)
	}

	id, err := s.decoder.Decode(imagePath)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", imagePath, err)
	}

	for _, product := range actor.Catalog {
		if product.ID == id {
			if err := actor.Ledger.Replenish(product, quantity); err != nil {
				return nil, err
			}
			s.logger.Info("stock added from scan",
				zap.String("actor", actor.Name),
				zap.String("product", product.Name),
				zap.Int64("quantity", int64(quantity)))
			return &product, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d not in %s's catalog", entities.ErrNotFound, id, actor.Name)
}
