package insights

import (
	"context"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/services/amount"
)

// Service is the analytics engine facade consumed by the HTTP and terminal
// layers. It holds no state: every method is a pure function of the snapshot
// plus its explicit parameters, so calling one twice on the same input yields
// identical output.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Summary reports the headline numbers of a snapshot. The grand total sums
// each month's formatted total; the average falls back to grand/months when
// the analyzer did not supply averageMonthExpenses.
func (s *Service) Summary(_ context.Context, res domain.AnalysisResult) domain.Summary {
	var grand float64
	for _, m := range res.MonthlyExpenses {
		grand += amount.Parse(m.Sum)
	}

	avg := amount.Parse(res.AverageMonthExpenses)
	if res.AverageMonthExpenses == "" && len(res.MonthlyExpenses) > 0 {
		avg = grand / float64(len(res.MonthlyExpenses))
	}

	return domain.Summary{
		Months:       len(res.MonthlyExpenses),
		GrandTotal:   grand,
		AverageMonth: avg,
	}
}

// CategoryBreakdown returns ranked share-of-spend rows. An empty monthLabel
// selects the whole period; an unknown label falls back to the first month.
func (s *Service) CategoryBreakdown(_ context.Context, res domain.AnalysisResult, monthLabel string) []domain.CategoryPercentageRow {
	months := res.MonthlyExpenses
	if monthLabel != "" {
		if m, ok := SelectMonth(res, monthLabel); ok {
			months = []domain.MonthlyExpense{m}
		} else {
			months = nil
		}
	}
	return PercentageRows(AggregateAmounts(months))
}

func (s *Service) CategoryTrends(_ context.Context, res domain.AnalysisResult, topN int) []domain.CategoryTrend {
	return CategoryTrends(res.MonthlyExpenses, topN)
}

func (s *Service) TopRecurring(_ context.Context, res domain.AnalysisResult, topN int) []domain.RecurringTransaction {
	return TopRecurring(res.MonthlyExpenses, topN)
}

func (s *Service) IdenticalRecurring(_ context.Context, res domain.AnalysisResult, topN int) []domain.IdenticalRecurringTransaction {
	return IdenticalRecurring(res.MonthlyExpenses, topN)
}

func (s *Service) ColorMap(_ context.Context, res domain.AnalysisResult) map[string]string {
	return ColorMap(res.MonthlyExpenses)
}

// SelectMonth finds the month with the given label. An unknown label falls
// back to the first month of the snapshot; ok is false only when the snapshot
// has no months at all.
func SelectMonth(res domain.AnalysisResult, label string) (domain.MonthlyExpense, bool) {
	for _, m := range res.MonthlyExpenses {
		if m.Month == label {
			return m, true
		}
	}
	if len(res.MonthlyExpenses) > 0 {
		return res.MonthlyExpenses[0], true
	}
	return domain.MonthlyExpense{}, false
}
