package insights

import (
	"fmt"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

const (
	colorSaturation = 70
	colorLightness  = 55
)

// ColorMap assigns every category an hsl() token keyed by its rank among the
// full-period totals: hue = 360 * rank / count at fixed saturation and
// lightness. Because the ranking always uses all months, a category keeps the
// same color whether the caller is rendering a single month or the whole
// period.
func ColorMap(months []domain.MonthlyExpense) map[string]string {
	ranked := rankedCategories(AggregateAmounts(months))
	colors := make(map[string]string, len(ranked))
	for rank, name := range ranked {
		hue := 360 * rank / len(ranked)
		colors[name] = fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, colorSaturation, colorLightness)
	}
	return colors
}
