package insights

import (
	"sort"
	"time"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// OtherCategory is the synthetic series that absorbs spending from categories
// outside the topN selection.
const OtherCategory = "Other"

const monthLabelLayout = "Jan 2006"

// Chronological returns the months reordered oldest to newest. Month labels
// follow the "Jan 2006" display convention; when every label parses the
// months sort by parsed time, otherwise the input order is reversed (the
// snapshot convention is newest first). The input slice is never mutated.
func Chronological(months []domain.MonthlyExpense) []domain.MonthlyExpense {
	ordered := make([]domain.MonthlyExpense, len(months))
	copy(ordered, months)

	parsed := make(map[string]time.Time, len(months))
	for _, m := range months {
		t, err := time.Parse(monthLabelLayout, m.Month)
		if err != nil {
			for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
			return ordered
		}
		parsed[m.Month] = t
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return parsed[ordered[i].Month].Before(parsed[ordered[j].Month])
	})
	return ordered
}

// CategoryTrends builds one chronological spending series per topN category,
// plus an "Other" series absorbing the rest. Every series is aligned 1:1 with
// the chronological month sequence: a month without data for a category
// contributes 0, not a gap, so all series share one x-axis. Series that are
// zero everywhere (including "Other") are dropped.
func CategoryTrends(months []domain.MonthlyExpense, topN int) []domain.CategoryTrend {
	ordered := Chronological(months)
	ranked := rankedCategories(AggregateAmounts(ordered))

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	top := ranked[:topN]

	index := make(map[string]int, len(top))
	series := make([][]float64, topN+1)
	for i := range series {
		series[i] = make([]float64, len(ordered))
	}
	for i, name := range top {
		index[name] = i
	}
	other := topN

	for mi, m := range ordered {
		for cat, amt := range MonthCategoryAmounts(m) {
			if si, ok := index[cat]; ok {
				series[si][mi] += amt
			} else {
				series[other][mi] += amt
			}
		}
	}

	var out []domain.CategoryTrend
	for i, name := range top {
		if allZero(series[i]) {
			continue
		}
		out = append(out, domain.CategoryTrend{Category: name, Series: series[i]})
	}
	if !allZero(series[other]) {
		out = append(out, domain.CategoryTrend{Category: OtherCategory, Series: series[other]})
	}
	return out
}

func allZero(series []float64) bool {
	for _, v := range series {
		if v != 0 {
			return false
		}
	}
	return true
}
