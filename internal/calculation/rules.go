package calculation

import (
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

// Scoring thresholds. Comparisons against these are strict unless noted;
// a ratio sitting exactly on a threshold earns nothing.
var (
	SavingsRatioTarget     = decimal.NewFromFloat(0.30)
	DebtRatioLimit         = decimal.NewFromFloat(0.20)
	ExpenseRatioLimit      = decimal.NewFromFloat(0.60)
	DebtConsolidationRatio = decimal.NewFromFloat(0.40)
	DiscretionaryRatio     = decimal.NewFromFloat(0.70)
	EmergencyFundMonths    = decimal.NewFromInt(6)
)

// Score bonuses. They sum to MaxScore.
const (
	SavingsBonus       = 30
	DebtBonus          = 30
	ExpenseBonus       = 20
	EmergencyFundBonus = 20

	MaxScore = SavingsBonus + DebtBonus + ExpenseBonus + EmergencyFundBonus
)

// Risk tier cut-offs (inclusive lower bounds)
const (
	ExcellentThreshold = 80
	ModerateThreshold  = 50
)

// Suggestion texts, in evaluation order
const (
	SuggestionSavingsRate   = "Increase your savings rate by 10% monthly."
	SuggestionEmergencyFund = "Build emergency fund covering 6 months expenses."
	SuggestionSIP           = "Start SIP investments for long-term wealth."
	SuggestionConsolidate   = "Consider consolidating high-interest loans."
	SuggestionDiscretionary = "Review discretionary spending (Entertainment, Shopping)."
)

// evaluation carries the derived figures shared by every rule
type evaluation struct {
	data domain.FinancialData

	incomeTotal           decimal.Decimal
	totalExpenses         decimal.Decimal
	safeIncome            decimal.Decimal
	monthlySavings        decimal.Decimal
	monthlyNeeds          decimal.Decimal
	requiredEmergencyFund decimal.Decimal

	savingsRatio decimal.Decimal
	debtRatio    decimal.Decimal
	expenseRatio decimal.Decimal

	score int
}

// scoreRule awards a fixed bonus when its predicate holds. No partial credit.
type scoreRule struct {
	name    string
	bonus   int
	applies func(e *evaluation) bool
}

// suggestionRule appends advice when its predicate holds
type suggestionRule struct {
	name    string
	text    string
	applies func(e *evaluation) bool
}

var scoreRules = []scoreRule{
	{
		name:    "savings_ratio",
		bonus:   SavingsBonus,
		applies: func(e *evaluation) bool { return e.savingsRatio.GreaterThan(SavingsRatioTarget) },
	},
	{
		name:    "debt_ratio",
		bonus:   DebtBonus,
		applies: func(e *evaluation) bool { return e.debtRatio.LessThan(DebtRatioLimit) },
	},
	{
		name:    "expense_ratio",
		bonus:   ExpenseBonus,
		applies: func(e *evaluation) bool { return e.expenseRatio.LessThan(ExpenseRatioLimit) },
	},
	{
		name:    "emergency_fund",
		bonus:   EmergencyFundBonus,
		applies: func(e *evaluation) bool { return e.data.Savings.EmergencyFund.GreaterThan(e.requiredEmergencyFund) },
	},
}

// suggestionRules run after scoring; their order is the order users see.
var suggestionRules = []suggestionRule{
	{
		name:    "savings_rate",
		text:    SuggestionSavingsRate,
		applies: func(e *evaluation) bool { return e.savingsRatio.LessThan(SavingsRatioTarget) },
	},
	{
		name:    "emergency_fund",
		text:    SuggestionEmergencyFund,
		applies: func(e *evaluation) bool { return e.data.Savings.EmergencyFund.LessThan(e.requiredEmergencyFund) },
	},
	{
		name:    "sip",
		text:    SuggestionSIP,
		applies: func(e *evaluation) bool { return e.score >= ExcellentThreshold },
	},
	{
		name:    "consolidate_loans",
		text:    SuggestionConsolidate,
		applies: func(e *evaluation) bool { return e.debtRatio.GreaterThan(DebtConsolidationRatio) },
	},
	{
		name:    "discretionary_spending",
		text:    SuggestionDiscretionary,
		applies: func(e *evaluation) bool { return e.expenseRatio.GreaterThan(DiscretionaryRatio) },
	},
}

// RiskLevelForScore maps a score to its tier
func RiskLevelForScore(score int) domain.RiskLevel {
	switch {
	case score >= ExcellentThreshold:
		return domain.RiskExcellent
	case score >= ModerateThreshold:
		return domain.RiskModerate
	default:
		return domain.RiskHigh
	}
}

// BuildRoadmap returns the six-month plan. Only month 3 depends on the score.
func BuildRoadmap(score int) []domain.RoadmapStep {
	month3 := "Clear high interest debt"
	if score >= ExcellentThreshold {
		month3 = "Start SIP & Diversify"
	}
	return []domain.RoadmapStep{
		{Month: "Month 1", Action: "Track spending & Reduce entertainment expenses"},
		{Month: "Month 2", Action: "Build emergency fund buffer"},
		{Month: "Month 3", Action: month3},
		{Month: "Month 4", Action: "Increase savings by 5%"},
		{Month: "Month 5", Action: "Reduce EMI burden by prepaying if possible"},
		{Month: "Month 6", Action: "Review financial goals & Diversify investments"},
	}
}
