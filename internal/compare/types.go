package compare

import (
	"fmt"

	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single evaluated profile with its deltas from the base
type ComparisonResult struct {
	ProfileName string                  `json:"profileName"`
	Description string                  `json:"description,omitempty"`
	Result      *domain.FinancialResult `json:"result"`

	// Key Metrics
	Score        int              `json:"score"`
	RiskLevel    domain.RiskLevel `json:"riskLevel"`
	SavingsRatio decimal.Decimal  `json:"savingsRatio"`
	DebtRatio    decimal.Decimal  `json:"debtRatio"`
	ExpenseRatio decimal.Decimal  `json:"expenseRatio"`

	// Comparison to Base
	ScoreDiffFromBase int             `json:"scoreDiffFromBase"`
	SavingsRatioDiff  decimal.Decimal `json:"savingsRatioDiff"`
	DebtRatioDiff     decimal.Decimal `json:"debtRatioDiff"`
	ExpenseRatioDiff  decimal.Decimal `json:"expenseRatioDiff"`
	RiskChange        string          `json:"riskChange,omitempty"` // e.g. "Moderate -> Excellent"
}

// ComparisonSet represents a base profile and its alternatives
type ComparisonSet struct {
	BaseProfileName    string             `json:"baseProfileName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// NewComparisonResult extracts the comparison metrics from a result
func NewComparisonResult(profile domain.Profile, result *domain.FinancialResult) ComparisonResult {
	return ComparisonResult{
		ProfileName:  profile.Name,
		Description:  profile.Description,
		Result:       result,
		Score:        result.Score,
		RiskLevel:    result.RiskLevel,
		SavingsRatio: result.SavingsRatio,
		DebtRatio:    result.DebtRatio,
		ExpenseRatio: result.ExpenseRatio,
	}
}

// CalculateComparison fills in an alternative's deltas against the base
func CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.ScoreDiffFromBase = alt.Score - base.Score
	alt.SavingsRatioDiff = alt.SavingsRatio.Sub(base.SavingsRatio)
	alt.DebtRatioDiff = alt.DebtRatio.Sub(base.DebtRatio)
	alt.ExpenseRatioDiff = alt.ExpenseRatio.Sub(base.ExpenseRatio)
	if alt.RiskLevel != base.RiskLevel {
		alt.RiskChange = fmt.Sprintf("%s -> %s", base.RiskLevel, alt.RiskLevel)
	} else {
		alt.RiskChange = ""
	}
	return alt
}

var hundred = decimal.NewFromInt(100)

// points renders a ratio delta in percentage points
func points(d decimal.Decimal) string {
	return d.Abs().Mul(hundred).StringFixed(1)
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Find best score
	bestScore := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Score > bestScore.Score {
			bestScore = alt
		}
	}
	if bestScore != base {
		recommendations = append(recommendations, fmt.Sprintf(
			"Best Score: %s scores %d points higher than %s (%d/100)",
			bestScore.ProfileName, bestScore.Score-base.Score, base.ProfileName, bestScore.Score))
	}

	// Find highest savings ratio
	bestSavings := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.SavingsRatio.GreaterThan(bestSavings.SavingsRatio) {
			bestSavings = alt
		}
	}
	if bestSavings != base {
		recommendations = append(recommendations, fmt.Sprintf(
			"Highest Savings: %s saves %s percentage points more of income",
			bestSavings.ProfileName, points(bestSavings.SavingsRatio.Sub(base.SavingsRatio))))
	}

	// Find lowest debt burden
	lowestDebt := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.DebtRatio.LessThan(lowestDebt.DebtRatio) {
			lowestDebt = alt
		}
	}
	if lowestDebt != base {
		recommendations = append(recommendations, fmt.Sprintf(
			"Lowest Debt: %s cuts debt-to-income by %s percentage points",
			lowestDebt.ProfileName, points(base.DebtRatio.Sub(lowestDebt.DebtRatio))))
	}

	for _, alt := range compSet.AlternativeResults {
		if alt.ScoreDiffFromBase < 0 && alt.RiskChange != "" {
			recommendations = append(recommendations, fmt.Sprintf(
				"Risk Warning: %s moves risk from %s", alt.ProfileName, alt.RiskChange))
		}
	}

	return recommendations
}
