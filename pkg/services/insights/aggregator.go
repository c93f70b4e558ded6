package insights

import (
	"sort"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// MonthCategoryAmounts flattens one month into an amount-per-category map.
// A month without categories yields an empty map.
func MonthCategoryAmounts(month domain.MonthlyExpense) map[string]float64 {
	amounts := make(map[string]float64, len(month.Categories))
	for name, info := range month.Categories {
		amounts[name] = info.Amount
	}
	return amounts
}

// AggregateAmounts sums per-category amounts across the given months. The
// caller picks the subset: a single selected month or the whole period.
func AggregateAmounts(months []domain.MonthlyExpense) map[string]float64 {
	totals := make(map[string]float64)
	for _, m := range months {
		for name, amt := range MonthCategoryAmounts(m) {
			totals[name] += amt
		}
	}
	return totals
}

// PercentageRows turns aggregated totals into ranked share-of-spend rows.
// Non-positive totals (refund-dominated categories) are dropped, and each
// percent is taken against the grand total of the retained rows only. Rows
// order by total descending; equal totals order by ascending category name.
func PercentageRows(amounts map[string]float64) []domain.CategoryPercentageRow {
	var rows []domain.CategoryPercentageRow
	var grand float64
	for name, total := range amounts {
		if total <= 0 {
			continue
		}
		rows = append(rows, domain.CategoryPercentageRow{Category: name, Total: total})
		grand += total
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Category < rows[j].Category
	})

	if grand > 0 {
		for i := range rows {
			rows[i].Percent = rows[i].Total / grand * 100
		}
	}
	return rows
}

// rankedCategories orders category names by total descending, ties by
// ascending name. This is the single ranking used for both percentage rows
// and color assignment, so the two never disagree.
func rankedCategories(totals map[string]float64) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if totals[names[i]] != totals[names[j]] {
			return totals[names[i]] > totals[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
