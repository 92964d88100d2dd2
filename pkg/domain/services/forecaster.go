package services

import (
	"fmt"

	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// PredictSMA forecasts weekly demand per product name as a simple
// moving average over the last windowSize transaction amounts recorded
// by retailer-role actors. Histories are scanned in actor order, each
// in log order, so equal inputs give bit-for-bit equal results: sums
// accumulate left to right and divide once. Products with no
// transactions are absent from the result.
func PredictSMA(actors []*entities.Actor, windowSize int) (map[string]float64, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be >= 1, got %d", entities.ErrInvalidParameter, windowSize)
	}

	history := make(map[string][]entities.Quantity)
	for _, actor := range actors {
		if actor.Role != entities.Retailer {
			continue
		}
		for _, tx := range actor.Transactions.History() {
			name := tx.Product.Name
			history[name] = append(history[name], tx.Amount)
		}
	}

	predicted := make(map[string]float64, len(history))
	for name, amounts := range history {
		start := len(amounts) - windowSize
		if start < 0 {
			start = 0
		}
		window := amounts[start:]

		var sum float64
		for _, amount := range window {
			sum += float64(amount)
		}
		predicted[name] = sum / float64(len(window))
	}

	return predicted, nil
}
