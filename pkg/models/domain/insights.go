package domain

// CategoryPercentageRow is one category's share of the retained (positive)
// spending total.
type CategoryPercentageRow struct {
	Category string
	Total    float64
	Percent  float64
}

// RecurringTransaction is a merchant grouped by normalized name alone,
// regardless of the charged amounts.
type RecurringTransaction struct {
	Name        string
	Category    string
	Count       int
	AvgAmount   float64
	TotalAmount float64
}

// IdenticalRecurringTransaction is a merchant charging the exact same
// cents-rounded amount at least twice, a proxy for a subscription.
type IdenticalRecurringTransaction struct {
	Name        string
	Category    string
	Amount      float64
	Count       int
	TotalAmount float64
}

// CategoryTrend is one category's spending series aligned 1:1 with the
// chronological month sequence of the snapshot.
type CategoryTrend struct {
	Category string
	Series   []float64
}

// Summary is the headline view of a snapshot.
type Summary struct {
	Months       int
	GrandTotal   float64
	AverageMonth float64
}
