package calculation

import (
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

// HealthEvaluator scores FinancialData snapshots. It holds no per-evaluation
// state and is safe for concurrent use.
type HealthEvaluator struct {
	Logger Logger
	Debug  bool // log intermediate figures for every evaluation
}

// NewHealthEvaluator creates an evaluator with a no-op logger
func NewHealthEvaluator() *HealthEvaluator {
	return &HealthEvaluator{Logger: NopLogger{}}
}

// SetLogger replaces the evaluator's logger; nil restores the no-op logger
func (he *HealthEvaluator) SetLogger(l Logger) {
	if l == nil {
		he.Logger = NopLogger{}
		return
	}
	he.Logger = l
}

// Breakdown exposes the intermediate figures behind a result
type Breakdown struct {
	SafeIncome            decimal.Decimal `json:"safeIncome"`
	MonthlySavings        decimal.Decimal `json:"monthlySavings"`
	MonthlyNeeds          decimal.Decimal `json:"monthlyNeeds"`
	RequiredEmergencyFund decimal.Decimal `json:"requiredEmergencyFund"`
	ScoreRules            []string        `json:"scoreRules"`      // names of bonuses awarded
	SuggestionRules       []string        `json:"suggestionRules"` // names of suggestions emitted
}

// Evaluate scores a snapshot
func (he *HealthEvaluator) Evaluate(data domain.FinancialData) *domain.FinancialResult {
	result, _ := he.EvaluateWithBreakdown(data)
	return result
}

// EvaluateWithBreakdown scores a snapshot and reports how the score was reached
func (he *HealthEvaluator) EvaluateWithBreakdown(data domain.FinancialData) (*domain.FinancialResult, Breakdown) {
	result, bd := evaluate(data)

	if he.Debug && he.Logger != nil {
		he.Logger.Debugf("income=%s expenses=%s emi=%s safeIncome=%s",
			result.IncomeTotal, result.TotalExpenses, data.Loans.EMI, bd.SafeIncome)
		he.Logger.Debugf("monthlySavings=%s savingsRatio=%s debtRatio=%s expenseRatio=%s",
			bd.MonthlySavings, result.SavingsRatio, result.DebtRatio, result.ExpenseRatio)
		he.Logger.Debugf("monthlyNeeds=%s requiredEmergencyFund=%s emergencyFund=%s",
			bd.MonthlyNeeds, bd.RequiredEmergencyFund, data.Savings.EmergencyFund)
		he.Logger.Debugf("score=%d risk=%s rules=%v suggestions=%v",
			result.Score, result.RiskLevel, bd.ScoreRules, bd.SuggestionRules)
	}

	return result, bd
}

// Evaluate is the pure scoring function: FinancialData in, FinancialResult out.
// It never fails; degenerate input (zero income, negative amounts) is
// carried through the arithmetic unchanged.
func Evaluate(data domain.FinancialData) *domain.FinancialResult {
	result, _ := evaluate(data)
	return result
}

func evaluate(data domain.FinancialData) (*domain.FinancialResult, Breakdown) {
	e := &evaluation{data: data}

	e.incomeTotal = data.Income.Total()
	e.totalExpenses = data.Expenses.Total()

	// Zero income divides by one, so the ratios become raw amounts
	e.safeIncome = e.incomeTotal
	if e.incomeTotal.IsZero() {
		e.safeIncome = decimal.NewFromInt(1)
	}

	e.monthlySavings = e.incomeTotal.Sub(e.totalExpenses).Sub(data.Loans.EMI)
	e.savingsRatio = e.monthlySavings.Div(e.safeIncome)
	e.debtRatio = data.Loans.EMI.Div(e.safeIncome)
	e.expenseRatio = e.totalExpenses.Div(e.safeIncome)

	e.monthlyNeeds = e.totalExpenses.Add(data.Loans.EMI)
	e.requiredEmergencyFund = e.monthlyNeeds.Mul(EmergencyFundMonths)

	bd := Breakdown{
		SafeIncome:            e.safeIncome,
		MonthlySavings:        e.monthlySavings,
		MonthlyNeeds:          e.monthlyNeeds,
		RequiredEmergencyFund: e.requiredEmergencyFund,
		ScoreRules:            []string{},
		SuggestionRules:       []string{},
	}

	for _, rule := range scoreRules {
		if rule.applies(e) {
			e.score += rule.bonus
			bd.ScoreRules = append(bd.ScoreRules, rule.name)
		}
	}

	suggestions := []string{}
	for _, rule := range suggestionRules {
		if rule.applies(e) {
			suggestions = append(suggestions, rule.text)
			bd.SuggestionRules = append(bd.SuggestionRules, rule.name)
		}
	}

	return &domain.FinancialResult{
		Score:         e.score,
		RiskLevel:     RiskLevelForScore(e.score),
		IncomeTotal:   e.incomeTotal,
		TotalExpenses: e.totalExpenses,
		SavingsRatio:  e.savingsRatio,
		DebtRatio:     e.debtRatio,
		ExpenseRatio:  e.expenseRatio,
		Suggestions:   suggestions,
		Roadmap:       BuildRoadmap(e.score),
	}, bd
}
