package domain

import (
	"github.com/shopspring/decimal"
)

// Income holds the household's recurring earnings for one period
type Income struct {
	Monthly decimal.Decimal `yaml:"monthly" json:"monthly"`
	Other   decimal.Decimal `yaml:"other" json:"other"` // bonus, freelance, rental
}

// Expenses holds spending for one period, split by category
type Expenses struct {
	Rent          decimal.Decimal `yaml:"rent" json:"rent"`
	Food          decimal.Decimal `yaml:"food" json:"food"`
	Transport     decimal.Decimal `yaml:"transport" json:"transport"`
	Utilities     decimal.Decimal `yaml:"utilities" json:"utilities"`
	Entertainment decimal.Decimal `yaml:"entertainment" json:"entertainment"`
	Others        decimal.Decimal `yaml:"others" json:"others"`
}

// Loans holds debt obligations. Outstanding is informational only.
type Loans struct {
	EMI         decimal.Decimal `yaml:"emi" json:"emi"`
	Outstanding decimal.Decimal `yaml:"outstanding" json:"outstanding"`
}

// Savings holds accumulated reserves
type Savings struct {
	Current       decimal.Decimal `yaml:"current" json:"current"`
	EmergencyFund decimal.Decimal `yaml:"emergencyFund" json:"emergencyFund"`
}

// FinancialData is one self-reported snapshot of a household's finances.
// Values are taken as entered: nothing here is checked for sign or range.
type FinancialData struct {
	Income   Income   `yaml:"income" json:"income"`
	Expenses Expenses `yaml:"expenses" json:"expenses"`
	Loans    Loans    `yaml:"loans" json:"loans"`
	Savings  Savings  `yaml:"savings" json:"savings"`
}

// Total returns monthly plus other income
func (i Income) Total() decimal.Decimal {
	return i.Monthly.Add(i.Other)
}

// Total returns the sum of all six expense categories
func (e Expenses) Total() decimal.Decimal {
	return e.Rent.
		Add(e.Food).
		Add(e.Transport).
		Add(e.Utilities).
		Add(e.Entertainment).
		Add(e.Others)
}

// ExpenseCategory pairs a display label with an amount
type ExpenseCategory struct {
	Name   string
	Amount decimal.Decimal
}

// Categories lists the expense categories in form order
func (e Expenses) Categories() []ExpenseCategory {
	return []ExpenseCategory{
		{Name: "Rent / Housing", Amount: e.Rent},
		{Name: "Food & Groceries", Amount: e.Food},
		{Name: "Transport", Amount: e.Transport},
		{Name: "Utilities", Amount: e.Utilities},
		{Name: "Entertainment", Amount: e.Entertainment},
		{Name: "Others", Amount: e.Others},
	}
}
