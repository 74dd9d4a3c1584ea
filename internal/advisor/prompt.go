package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary carries the result figures quoted to the advisor
type Summary struct {
	Score         int              `json:"score"`
	RiskLevel     domain.RiskLevel `json:"riskLevel"`
	IncomeTotal   decimal.Decimal  `json:"incomeTotal"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses"`
	SavingsRatio  decimal.Decimal  `json:"savingsRatio"`
	DebtRatio     decimal.Decimal  `json:"debtRatio"`
}

// NewSummary copies the quoted figures out of a result
func NewSummary(result *domain.FinancialResult) Summary {
	if result == nil {
		return Summary{}
	}
	return Summary{
		Score:         result.Score,
		RiskLevel:     result.RiskLevel,
		IncomeTotal:   result.IncomeTotal,
		TotalExpenses: result.TotalExpenses,
		SavingsRatio:  result.SavingsRatio,
		DebtRatio:     result.DebtRatio,
	}
}

var hundred = decimal.NewFromInt(100)

// BuildSystemPrompt renders the advisor's system message
func BuildSystemPrompt(data domain.FinancialData, result *domain.FinancialResult) string {
	s := NewSummary(result)

	raw, err := json.Marshal(data)
	if err != nil {
		raw = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("You are an expert AI Financial Advisor. You have access to the user's financial data:\n")
	fmt.Fprintf(&b, "Score: %d/100\n", s.Score)
	fmt.Fprintf(&b, "Risk Level: %s\n", s.RiskLevel)
	fmt.Fprintf(&b, "Total Income: ₹%s\n", s.IncomeTotal.String())
	fmt.Fprintf(&b, "Total Expenses: ₹%s\n", s.TotalExpenses.String())
	fmt.Fprintf(&b, "Savings Ratio: %s%%\n", s.SavingsRatio.Mul(hundred).StringFixed(1))
	fmt.Fprintf(&b, "Debt Ratio: %s%%\n", s.DebtRatio.Mul(hundred).StringFixed(1))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Raw Data: %s\n", raw)
	b.WriteString("\n")
	b.WriteString("Provide concise, professional, and actionable financial advice. Be encouraging but realistic.")
	return b.String()
}
