package domain

import (
	"github.com/shopspring/decimal"
)

// RiskLevel is the discrete tier derived from the health score
type RiskLevel string

const (
	RiskExcellent RiskLevel = "Excellent"
	RiskModerate  RiskLevel = "Moderate"
	RiskHigh      RiskLevel = "High Risk"
)

// String returns the display form of the tier
func (r RiskLevel) String() string {
	return string(r)
}

// RoadmapStep is one month of the six-month action plan
type RoadmapStep struct {
	Month  string `yaml:"month" json:"month"`
	Action string `yaml:"action" json:"action"`
}

// FinancialResult is the evaluated health of a FinancialData snapshot.
// It is produced once per submission and treated as read-only by consumers.
type FinancialResult struct {
	Score         int             `yaml:"score" json:"score"`
	RiskLevel     RiskLevel       `yaml:"riskLevel" json:"riskLevel"`
	IncomeTotal   decimal.Decimal `yaml:"incomeTotal" json:"incomeTotal"`
	TotalExpenses decimal.Decimal `yaml:"totalExpenses" json:"totalExpenses"`
	SavingsRatio  decimal.Decimal `yaml:"savingsRatio" json:"savingsRatio"`
	DebtRatio     decimal.Decimal `yaml:"debtRatio" json:"debtRatio"`
	ExpenseRatio  decimal.Decimal `yaml:"expenseRatio" json:"expenseRatio"`
	Suggestions   []string        `yaml:"suggestions" json:"suggestions"`
	Roadmap       []RoadmapStep   `yaml:"roadmap" json:"roadmap"`
}

// Clone creates a deep copy of the result so holders never share slices
func (r *FinancialResult) Clone() *FinancialResult {
	if r == nil {
		return nil
	}
	c := *r
	if r.Suggestions != nil {
		c.Suggestions = append([]string(nil), r.Suggestions...)
	}
	if r.Roadmap != nil {
		c.Roadmap = append([]RoadmapStep(nil), r.Roadmap...)
	}
	return &c
}

// Savings returns income minus living expenses, the figure shown in the
// report breakdown. Debt service is not subtracted here.
func (r *FinancialResult) Savings() decimal.Decimal {
	return r.IncomeTotal.Sub(r.TotalExpenses)
}
