package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AnalysisResult mirrors the analyzer's JSON output. Field names are
// load-bearing: they form the wire contract with the external analyzer.
type AnalysisResult struct {
	AverageMonthExpenses string           `json:"averageMonthExpenses,omitempty"`
	MonthlyExpenses      []MonthlyExpense `json:"monthlyExpenses"`
}

type MonthlyExpense struct {
	Month      string                  `json:"month"`
	Sum        string                  `json:"sum"`
	Categories map[string]CategoryInfo `json:"categories,omitempty"`
}

type CategoryInfo struct {
	Amount       Amount            `json:"amount"`
	Percentage   Amount            `json:"percentage"`
	Transactions map[string]string `json:"transactions,omitempty"`
}

// Amount is a tolerant numeric field: JSON numbers and numeric strings decode
// normally, anything else coerces to zero. One malformed record must not fail
// an otherwise valid snapshot.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Amount(f)
			return nil
		}
	}

	*a = 0
	return nil
}
