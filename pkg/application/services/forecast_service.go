package services

import (
	"fmt"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/akarpov/supplychain/pkg/domain/entities"
	domain "github.com/akarpov/supplychain/pkg/domain/services"
)

// ForecastService computes demand predictions over actor transaction
// histories. Concurrent calls with the same actor list and window
// collapse into one computation; each caller still gets its own copy
// of the result.
type ForecastService struct {
	group singleflight.Group
}

// NewForecastService creates a forecast service
func NewForecastService() *ForecastService {
	return &ForecastService{}
}

// Predict returns the simple-moving-average weekly demand per product
// name across the retailers in actors
func (s *ForecastService) Predict(actors []*entities.Actor, windowSize int) (map[string]float64, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: window size must be >= 1, got %d", entities.ErrInvalidParameter, windowSize)
	}

	shared, err, _ := s.group.Do(forecastKey(actors, windowSize), func() (interface{}, error) {
		return domain.PredictSMA(actors, windowSize)
	})
	if err != nil {
		return nil, err
	}

	predicted := make(map[string]float64)
	for name, demand := range shared.(map[string]float64) {
		predicted[name] = demand
	}
	return predicted, nil
}

// forecastKey identifies a prediction by window and the actor list in
// order, so only calls over the same actors collapse together
func forecastKey(actors []*entities.Actor, windowSize int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "sma-%d", windowSize)
	for _, actor := range actors {
		fmt.Fprintf(&b, ":%d", actor.ID)
	}
	return b.String()
}
