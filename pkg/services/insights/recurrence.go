package insights

import (
	"math"
	"slices"
	"sort"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/services/amount"
)

// sortedKeys returns the map's keys in ascending order. Equivalent to
// slices.Sorted(maps.Keys(m)), which needs a newer Go stdlib.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// merchantGroup accumulates scan state for one grouping key.
type merchantGroup struct {
	name  string
	count int
	total float64
	tally map[string]int // category -> occurrences
}

func (g *merchantGroup) add(category string, amt float64) {
	g.count++
	g.total += amt
	g.tally[category]++
}

// dominantCategory is the category with the highest tally. Equal tallies
// break by ascending category name, which makes the result independent of
// map iteration order.
func (g *merchantGroup) dominantCategory() string {
	best := ""
	bestCount := -1
	for _, cat := range sortedKeys(g.tally) {
		if g.tally[cat] > bestCount {
			best = cat
			bestCount = g.tally[cat]
		}
	}
	return best
}

// scanSummaries visits every parseable transaction line across all months and
// categories. Iteration order is contractual: months in snapshot order,
// category names sorted, transaction keys sorted. The reserved average row
// and lines that fail to parse are skipped silently.
func scanSummaries(months []domain.MonthlyExpense, visit func(category string, s amount.Summary)) {
	for _, m := range months {
		for _, cat := range sortedKeys(m.Categories) {
			info := m.Categories[cat]
			for _, key := range sortedKeys(info.Transactions) {
				if key == domain.AverageRowKey {
					continue
				}
				s, ok := amount.ParseSummaryLine(info.Transactions[key])
				if !ok {
					continue
				}
				s.Name = amount.Normalize(s.Name)
				visit(cat, s)
			}
		}
	}
}

// TopRecurring groups transaction lines by normalized merchant name alone and
// reports the topN merchants ordered by occurrence count descending, then
// average amount descending, then name ascending.
func TopRecurring(months []domain.MonthlyExpense, topN int) []domain.RecurringTransaction {
	groups := make(map[string]*merchantGroup)
	scanSummaries(months, func(category string, s amount.Summary) {
		g, ok := groups[s.Name]
		if !ok {
			g = &merchantGroup{name: s.Name, tally: make(map[string]int)}
			groups[s.Name] = g
		}
		g.add(category, s.Amount)
	})

	out := make([]domain.RecurringTransaction, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.RecurringTransaction{
			Name:        g.name,
			Category:    g.dominantCategory(),
			Count:       g.count,
			AvgAmount:   g.total / float64(g.count),
			TotalAmount: g.total,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].AvgAmount != out[j].AvgAmount {
			return out[i].AvgAmount > out[j].AvgAmount
		}
		return out[i].Name < out[j].Name
	})
	return truncate(out, topN)
}

// IdenticalRecurring groups transaction lines by the pair (normalized
// merchant name, amount rounded to the nearest cent) and keeps only groups
// seen at least twice; a single charge is not recurring. Results order by
// count descending, then amount descending, then name ascending.
func IdenticalRecurring(months []domain.MonthlyExpense, topN int) []domain.IdenticalRecurringTransaction {
	type chargeKey struct {
		name  string
		cents int64
	}

	groups := make(map[chargeKey]*merchantGroup)
	scanSummaries(months, func(category string, s amount.Summary) {
		key := chargeKey{name: s.Name, cents: int64(math.Round(s.Amount * 100))}
		g, ok := groups[key]
		if !ok {
			g = &merchantGroup{name: s.Name, tally: make(map[string]int)}
			groups[key] = g
		}
		g.add(category, s.Amount)
	})

	var out []domain.IdenticalRecurringTransaction
	for key, g := range groups {
		if g.count < 2 {
			continue
		}
		amt := float64(key.cents) / 100
		out = append(out, domain.IdenticalRecurringTransaction{
			Name:        g.name,
			Category:    g.dominantCategory(),
			Amount:      amt,
			Count:       g.count,
			TotalAmount: amt * float64(g.count),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return truncate(out, topN)
}

func truncate[T any](items []T, topN int) []T {
	if topN >= 0 && len(items) > topN {
		return items[:topN]
	}
	return items
}
