package api

type CategoryPercentageRow struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Percent  float64 `json:"percent"`
}

type RecurringTransaction struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	AvgAmount   float64 `json:"avgAmount"`
	TotalAmount float64 `json:"totalAmount"`
}

type IdenticalRecurringTransaction struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

type CategoryTrend struct {
	Category string    `json:"category"`
	Series   []float64 `json:"series"`
}

type Summary struct {
	Months       int     `json:"months"`
	GrandTotal   float64 `json:"grandTotal"`
	AverageMonth float64 `json:"averageMonth"`
}
