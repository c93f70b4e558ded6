package adapters

import (
	"maps"

	"github.com/fin-tools/expense-atlas/pkg/models/api"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

func MapAnalysisResultApiToDomain(res api.AnalysisResult) domain.AnalysisResult {
	out := domain.AnalysisResult{
		AverageMonthExpenses: res.AverageMonthExpenses,
	}
	for _, m := range res.MonthlyExpenses {
		out.MonthlyExpenses = append(out.MonthlyExpenses, MapMonthlyExpenseApiToDomain(m))
	}
	return out
}

func MapMonthlyExpenseApiToDomain(m api.MonthlyExpense) domain.MonthlyExpense {
	out := domain.MonthlyExpense{
		Month: m.Month,
		Sum:   m.Sum,
	}
	if len(m.Categories) > 0 {
		out.Categories = make(map[string]domain.CategoryInfo, len(m.Categories))
		for name, info := range m.Categories {
			out.Categories[name] = domain.CategoryInfo{
				Amount:       float64(info.Amount),
				Percentage:   float64(info.Percentage),
				Transactions: maps.Clone(info.Transactions),
			}
		}
	}
	return out
}

func MapPercentageRowDomainToApi(row domain.CategoryPercentageRow) api.CategoryPercentageRow {
	return api.CategoryPercentageRow{
		Category: row.Category,
		Total:    row.Total,
		Percent:  row.Percent,
	}
}

func MapRecurringDomainToApi(tx domain.RecurringTransaction) api.RecurringTransaction {
	return api.RecurringTransaction{
		Name:        tx.Name,
		Category:    tx.Category,
		Count:       tx.Count,
		AvgAmount:   tx.AvgAmount,
		TotalAmount: tx.TotalAmount,
	}
}

func MapIdenticalRecurringDomainToApi(tx domain.IdenticalRecurringTransaction) api.IdenticalRecurringTransaction {
	return api.IdenticalRecurringTransaction{
		Name:        tx.Name,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Count:       tx.Count,
		TotalAmount: tx.TotalAmount,
	}
}

func MapTrendDomainToApi(trend domain.CategoryTrend) api.CategoryTrend {
	series := make([]float64, len(trend.Series))
	copy(series, trend.Series)
	return api.CategoryTrend{
		Category: trend.Category,
		Series:   series,
	}
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		Months:       s.Months,
		GrandTotal:   s.GrandTotal,
		AverageMonth: s.AverageMonth,
	}
}
