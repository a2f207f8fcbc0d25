package relevance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/openhire/matchengine/internal/types"
)

// explain builds the top-level summary: the three factors with the highest
// weighted contributions, followed by any pending improvement hints.
func explain(factors []types.Factor) string {
	ranked := make([]types.Factor, len(factors))
	copy(ranked, factors)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Contribution() > ranked[j].Contribution()
	})

	top := len(ranked)
	if top > 3 {
		top = 3
	}
	names := make([]string, 0, top)
	for _, f := range ranked[:top] {
		names = append(names, f.Name)
	}

	summary := fmt.Sprintf("Strongest signals: %s.", strings.Join(names, ", "))

	var hints []string
	for _, f := range factors {
		if f.Improvement != "" {
			hints = append(hints, f.Improvement)
		}
	}
	if len(hints) > 0 {
		summary += " To improve: " + strings.Join(hints, "; ") + "."
	}
	return summary
}
