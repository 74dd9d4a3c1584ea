package output

import (
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartPoint is one labelled value in a chart
type ChartPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// ChartData holds the dashboard chart series derived from a result
type ChartData struct {
	CashFlow     []ChartPoint `json:"cashFlow"`
	Distribution []ChartPoint `json:"distribution"`
}

// NewChartData derives the cash-flow bars and ratio distribution. The savings
// slice is clamped at zero for display; the result itself is not changed.
func NewChartData(result *domain.FinancialResult) ChartData {
	if result == nil {
		return ChartData{}
	}
	return ChartData{
		CashFlow: []ChartPoint{
			{Label: "In", Value: result.IncomeTotal},
			{Label: "Out", Value: result.TotalExpenses},
		},
		Distribution: []ChartPoint{
			{Label: "Savings", Value: decimal.Max(decimal.Zero, result.SavingsRatio)},
			{Label: "Expenses", Value: result.ExpenseRatio},
			{Label: "Debt", Value: result.DebtRatio},
		},
	}
}
