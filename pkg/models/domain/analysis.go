package domain

// AnalysisResult is the categorized monthly expense dataset produced by the
// external statement analyzer. The engine treats it as an immutable snapshot:
// every derived structure is recomputed fresh from it and discarded when a new
// snapshot arrives.
type AnalysisResult struct {
	AverageMonthExpenses string
	// MonthlyExpenses keeps the caller-defined order. The observed convention
	// is newest first; chronological display requires reordering.
	MonthlyExpenses []MonthlyExpense
}

// MonthlyExpense is one month of pre-aggregated spending.
type MonthlyExpense struct {
	Month      string // display label, unique within a result, e.g. "Dec 2025"
	Sum        string // formatted total, e.g. "1330.84 euros"
	Categories map[string]CategoryInfo
}

// CategoryInfo carries the analyzer's per-category aggregate plus the raw
// transaction summary lines it was derived from.
type CategoryInfo struct {
	Amount float64
	// Percentage comes from the analyzer and is not trusted; shares are
	// recomputed independently by the aggregator.
	Percentage   float64
	Transactions map[string]string
}

// AverageRowKey marks the synthetic per-category average row the analyzer
// injects into the transactions map. It is excluded from every grouping.
const AverageRowKey = "on average"
