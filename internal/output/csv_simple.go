package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CSVSummarizer writes the report as Section,Item,Value rows
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("report has no result")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	r := report.Result

	rows := [][]string{
		{"Section", "Item", "Value"},
		{"Summary", "Profile", report.ProfileName},
		{"Summary", "Score", strconv.Itoa(r.Score)},
		{"Summary", "RiskLevel", r.RiskLevel.String()},
		{"Summary", "SavingsRatio", r.SavingsRatio.StringFixed(4)},
		{"Summary", "DebtRatio", r.DebtRatio.StringFixed(4)},
		{"Summary", "ExpenseRatio", r.ExpenseRatio.StringFixed(4)},
		{"Breakdown", "TotalIncome", r.IncomeTotal.StringFixed(2)},
		{"Breakdown", "TotalExpenses", r.TotalExpenses.StringFixed(2)},
		{"Breakdown", "Savings", r.Savings().StringFixed(2)},
	}
	for _, cat := range report.Data.Expenses.Categories() {
		rows = append(rows, []string{"Expenses", cat.Name, cat.Amount.StringFixed(2)})
	}
	for i, s := range r.Suggestions {
		rows = append(rows, []string{"Suggestion", strconv.Itoa(i + 1), s})
	}
	for _, step := range r.Roadmap {
		rows = append(rows, []string{"Roadmap", step.Month, step.Action})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
