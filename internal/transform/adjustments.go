package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// expenseFields maps a category name to the expense lines it covers
var expenseFields = map[string]func(e *domain.Expenses) []*decimal.Decimal{
	"rent":          func(e *domain.Expenses) []*decimal.Decimal { return []*decimal.Decimal{&e.Rent} },
	"food":          func(e *domain.Expenses) []*decimal.Decimal { return []*decimal.Decimal{&e.Food} },
	"transport":     func(e *domain.Expenses) []*decimal.Decimal { return []*decimal.Decimal{&e.Transport} },
	"utilities":     func(e *domain.Expenses) []*decimal.Decimal { return []*decimal.Decimal{&e.Utilities} },
	"entertainment": func(e *domain.Expenses) []*decimal.Decimal { return []*decimal.Decimal{&e.Entertainment} },
	"others":        func(e *domain.Expenses) []*decimal.Decimal { return []*decimal.Decimal{&e.Others} },
	"discretionary": func(e *domain.Expenses) []*decimal.Decimal {
		return []*decimal.Decimal{&e.Entertainment, &e.Others}
	},
	"all": func(e *domain.Expenses) []*decimal.Decimal {
		return []*decimal.Decimal{&e.Rent, &e.Food, &e.Transport, &e.Utilities, &e.Entertainment, &e.Others}
	},
}

// ExpenseCategories lists the category names ScaleExpense accepts
func ExpenseCategories() []string {
	names := make([]string, 0, len(expenseFields))
	for name := range expenseFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScaleExpense multiplies one expense category by Factor.
// "discretionary" covers entertainment and others; "all" covers every line.
type ScaleExpense struct {
	Category string
	Factor   decimal.Decimal
}

func (t *ScaleExpense) Name() string { return "scale_expense" }

func (t *ScaleExpense) Description() string {
	return fmt.Sprintf("Scale %s expenses to %s%%", t.Category, t.Factor.Mul(decimal.NewFromInt(100)).StringFixed(0))
}

func (t *ScaleExpense) Validate(domain.FinancialData) error {
	if _, ok := expenseFields[strings.ToLower(t.Category)]; !ok {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("unknown category %q (available: %s)", t.Category, strings.Join(ExpenseCategories(), ", ")), nil)
	}
	if t.Factor.IsNegative() {
		return NewTransformError(t.Name(), "validate", "factor cannot be negative", nil)
	}
	return nil
}

func (t *ScaleExpense) Apply(base domain.FinancialData) (domain.FinancialData, error) {
	out := base
	for _, field := range expenseFields[strings.ToLower(t.Category)](&out.Expenses) {
		*field = field.Mul(t.Factor)
	}
	return out, nil
}

// ScaleIncome multiplies both income lines by Factor
type ScaleIncome struct {
	Factor decimal.Decimal
}

func (t *ScaleIncome) Name() string { return "scale_income" }

func (t *ScaleIncome) Description() string {
	return fmt.Sprintf("Change income by %s%%", t.Factor.Sub(one).Mul(decimal.NewFromInt(100)).StringFixed(0))
}

func (t *ScaleIncome) Validate(domain.FinancialData) error {
	if t.Factor.IsNegative() {
		return NewTransformError(t.Name(), "validate", "factor cannot be negative", nil)
	}
	return nil
}

func (t *ScaleIncome) Apply(base domain.FinancialData) (domain.FinancialData, error) {
	out := base
	out.Income.Monthly = out.Income.Monthly.Mul(t.Factor)
	out.Income.Other = out.Income.Other.Mul(t.Factor)
	return out, nil
}

// PrepayLoan pays down Fraction of the outstanding loan, cutting the EMI in
// proportion. With FromSavings the payment comes out of current savings.
type PrepayLoan struct {
	Fraction    decimal.Decimal
	FromSavings bool
}

func (t *PrepayLoan) Name() string { return "prepay_loan" }

func (t *PrepayLoan) Description() string {
	desc := fmt.Sprintf("Prepay %s%% of the outstanding loan", t.Fraction.Mul(decimal.NewFromInt(100)).StringFixed(0))
	if t.FromSavings {
		desc += " from savings"
	}
	return desc
}

func (t *PrepayLoan) Validate(base domain.FinancialData) error {
	if t.Fraction.LessThanOrEqual(decimal.Zero) || t.Fraction.GreaterThan(one) {
		return NewTransformError(t.Name(), "validate", "fraction must be in (0, 1]", nil)
	}
	if t.FromSavings {
		payment := base.Loans.Outstanding.Mul(t.Fraction)
		if payment.GreaterThan(base.Savings.Current) {
			return NewTransformError(t.Name(), "validate",
				fmt.Sprintf("payment %s exceeds current savings %s", payment.StringFixed(2), base.Savings.Current.StringFixed(2)), nil)
		}
	}
	return nil
}

func (t *PrepayLoan) Apply(base domain.FinancialData) (domain.FinancialData, error) {
	out := base
	remaining := one.Sub(t.Fraction)
	payment := base.Loans.Outstanding.Mul(t.Fraction)

	out.Loans.Outstanding = base.Loans.Outstanding.Mul(remaining)
	out.Loans.EMI = base.Loans.EMI.Mul(remaining)
	if t.FromSavings {
		out.Savings.Current = base.Savings.Current.Sub(payment)
	}
	return out, nil
}

// FundEmergency sets the emergency fund to Months of expenses plus EMI.
// With FromSavings the shortfall moves out of current savings, as far as they go.
// A fund already above the target is left alone.
type FundEmergency struct {
	Months      int
	FromSavings bool
}

func (t *FundEmergency) Name() string { return "fund_emergency" }

func (t *FundEmergency) Description() string {
	desc := fmt.Sprintf("Grow the emergency fund to %d months of outgoings", t.Months)
	if t.FromSavings {
		desc += " from savings"
	}
	return desc
}

func (t *FundEmergency) Validate(domain.FinancialData) error {
	if t.Months <= 0 {
		return NewTransformError(t.Name(), "validate", "months must be positive", nil)
	}
	return nil
}

func (t *FundEmergency) Apply(base domain.FinancialData) (domain.FinancialData, error) {
	out := base
	target := base.Expenses.Total().Add(base.Loans.EMI).Mul(decimal.NewFromInt(int64(t.Months)))
	shortfall := target.Sub(base.Savings.EmergencyFund)
	if !shortfall.IsPositive() {
		return out, nil
	}

	if t.FromSavings {
		shortfall = decimal.Min(shortfall, decimal.Max(base.Savings.Current, decimal.Zero))
		out.Savings.Current = base.Savings.Current.Sub(shortfall)
	}
	out.Savings.EmergencyFund = base.Savings.EmergencyFund.Add(shortfall)
	return out, nil
}
