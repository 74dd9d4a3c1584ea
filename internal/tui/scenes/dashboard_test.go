package scenes

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/rgehrsitz/finhealth/internal/output"
)

func healthySnapshot() domain.FinancialData {
	return domain.FinancialData{
		Income:   domain.Income{Monthly: decimal.NewFromInt(100000)},
		Expenses: domain.Expenses{Rent: decimal.NewFromInt(20000), Food: decimal.NewFromInt(15000)},
		Loans:    domain.Loans{EMI: decimal.NewFromInt(10000)},
		Savings:  domain.Savings{EmergencyFund: decimal.NewFromInt(300000)},
	}
}

func TestDashboardEmptyState(t *testing.T) {
	d := NewDashboardModel()

	assert.Nil(t, d.Result())
	assert.Contains(t, d.View(), "No analysis yet")
}

func TestDashboardContent(t *testing.T) {
	data := healthySnapshot()
	result := calculation.Evaluate(data)

	d := NewDashboardModel()
	d.SetSize(120, 40)
	d.SetResult("Base", data, result)
	content := d.Content()

	assert.Contains(t, content, "Financial Health: Base")
	assert.Contains(t, content, "100")
	assert.Contains(t, content, "Excellent")
	assert.Contains(t, content, "₹100000.00")
	assert.Contains(t, content, "Cash Flow")
	assert.Contains(t, content, "Where Income Goes")
	assert.Contains(t, content, calculation.SuggestionSIP)
	assert.Contains(t, content, "Start SIP & Diversify")
	assert.Contains(t, content, "Month 6")
	assert.Same(t, result, d.Result())
}

func TestDashboardNoSuggestions(t *testing.T) {
	result := &domain.FinancialResult{
		Score:     80,
		RiskLevel: domain.RiskExcellent,
		Roadmap:   calculation.BuildRoadmap(80),
	}

	d := NewDashboardModel()
	d.SetResult("", domain.FinancialData{}, result)

	assert.Contains(t, d.Content(), output.NoSuggestionsMessage)
	assert.Contains(t, d.Content(), "Financial Health")
}

func TestDashboardDoesNotChangeResult(t *testing.T) {
	data := domain.FinancialData{
		Income:   domain.Income{Monthly: decimal.NewFromInt(1000)},
		Expenses: domain.Expenses{Rent: decimal.NewFromInt(5000)},
	}
	result := calculation.Evaluate(data)
	before := result.Clone()

	d := NewDashboardModel()
	d.SetResult("Overspent", data, result)
	_ = d.Content()

	assert.Equal(t, before, result)
	assert.True(t, result.SavingsRatio.IsNegative())
}

func TestLayoutHelpers(t *testing.T) {
	assert.Equal(t, 10, chartWidth(12))
	assert.Equal(t, 30, chartWidth(90))
	assert.Equal(t, 40, chartWidth(300))

	assert.Equal(t, 1, gridColumns(40))
	assert.Equal(t, 2, gridColumns(80))
	assert.Equal(t, 3, gridColumns(120))
}
