package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/akarpov/supplychain/pkg/application/dto"
)

// PrintStockLevels writes every actor's stock summary grouped by role
func PrintStockLevels(w io.Writer, levels []dto.RoleStock) {
	for _, group := range levels {
		fmt.Fprintf(w, "-- %s --\n", group.Role)
		for _, actor := range group.Actors {
			fmt.Fprintf(w, "%s's Stock:\n%s", actor.ActorName, actor.Format())
		}
	}
}

// PrintStockGraph writes a bar per product, one '*' per on-hand unit
func PrintStockGraph(w io.Writer, levels []dto.RoleStock) {
	for _, group := range levels {
		fmt.Fprintf(w, "-- %s --\n", group.Role)
		for _, actor := range group.Actors {
			fmt.Fprintf(w, "%s's Stock:\n", actor.ActorName)
			for _, entry := range actor.Stock {
				fmt.Fprintf(w, "%-15s | %s\n", entry.Product.Name, strings.Repeat("*", int(entry.Quantity)))
			}
		}
	}
}

// PrintForecast writes predicted weekly demand per product, sorted by
// product name for stable output
func PrintForecast(w io.Writer, predictions map[string]float64) {
	if len(predictions) == 0 {
		fmt.Fprintln(w, "Not enough sales data to make a prediction.")
		return
	}

	names := make([]string, 0, len(predictions))
	for name := range predictions {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Predicted weekly demand:")
	for _, name := range names {
		fmt.Fprintf(w, "- %s: %.2f units/week\n", name, predictions[name])
	}
}
