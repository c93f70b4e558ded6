package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// Reporter renders derived analytics as formatted text tables.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) render(name, tmpl string, data any) error {
	funcMap := template.FuncMap{
		"row": func(cols ...any) string {
			parts := make([]string, len(cols))
			for i, col := range cols {
				parts[i] = fmt.Sprintf("%-24v", col)
			}
			return "| " + strings.Join(parts, " | ") + " |"
		},
		"amount": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}

	t, err := template.New(name).Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	return t.Execute(r.writer, data)
}

func (r *Reporter) Summary(s domain.Summary) error {
	tmpl := `
Expense summary
Months analyzed: {{.Months}}
Total spend:     {{amount .GrandTotal}} euros
Monthly average: {{amount .AverageMonth}} euros
`
	return r.render("summary", tmpl, s)
}

func (r *Reporter) PercentageRows(rows []domain.CategoryPercentageRow) error {
	tmpl := `
Spending by category
{{row "Category" "Total" "Share"}}
{{range .}}{{row .Category (amount .Total) (printf "%.1f%%" .Percent)}}
{{end}}`
	return r.render("categories", tmpl, rows)
}

func (r *Reporter) Recurring(txs []domain.RecurringTransaction) error {
	tmpl := `
Recurring merchants
{{row "Merchant" "Category" "Count" "Average" "Total"}}
{{range .}}{{row .Name .Category .Count (amount .AvgAmount) (amount .TotalAmount)}}
{{end}}`
	return r.render("recurring", tmpl, txs)
}

func (r *Reporter) Subscriptions(txs []domain.IdenticalRecurringTransaction) error {
	tmpl := `
Fixed-amount subscriptions
{{row "Merchant" "Category" "Amount" "Count" "Total"}}
{{range .}}{{row .Name .Category (amount .Amount) .Count (amount .TotalAmount)}}
{{end}}`
	return r.render("subscriptions", tmpl, txs)
}

// Trends prints one line per category series, aligned to the chronological
// month labels passed alongside.
func (r *Reporter) Trends(labels []string, trends []domain.CategoryTrend) error {
	data := struct {
		Labels []string
		Trends []domain.CategoryTrend
	}{Labels: labels, Trends: trends}

	tmpl := `
Category trends ({{range $i, $l := .Labels}}{{if $i}} -> {{end}}{{$l}}{{end}})
{{range .Trends}}{{.Category}}: {{range $i, $v := .Series}}{{if $i}}, {{end}}{{amount $v}}{{end}}
{{end}}`
	return r.render("trends", tmpl, data)
}
