package output

import (
	"time"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ReportTitle = "FinHealth Report"

	// NoSuggestionsMessage replaces an empty recommendations list
	NoSuggestionsMessage = "Great job! Your financial health looks solid. Keep monitoring your expenses."
)

// Report bundles one evaluated snapshot for rendering
type Report struct {
	ProfileName string                  `json:"profile"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Data        domain.FinancialData    `json:"data"`
	Result      *domain.FinancialResult `json:"result"`
	Breakdown   *calculation.Breakdown  `json:"breakdown,omitempty"`
	Charts      ChartData               `json:"charts"`
}

// NewReport builds a report stamped with the current time
func NewReport(profileName string, data domain.FinancialData, result *domain.FinancialResult) *Report {
	return &Report{
		ProfileName: profileName,
		GeneratedAt: time.Now(),
		Data:        data,
		Result:      result,
		Charts:      NewChartData(result),
	}
}

// WithBreakdown attaches the evaluator's intermediate figures
func (r *Report) WithBreakdown(bd calculation.Breakdown) *Report {
	r.Breakdown = &bd
	return r
}

// Recommendations returns the suggestions, or the all-clear message when
// there are none
func (r *Report) Recommendations() []string {
	if r.Result == nil || len(r.Result.Suggestions) == 0 {
		return []string{NoSuggestionsMessage}
	}
	return r.Result.Suggestions
}

// Title returns the report heading, naming the profile when there is one
func (r *Report) Title() string {
	if r.ProfileName == "" {
		return ReportTitle
	}
	return ReportTitle + ": " + r.ProfileName
}

// ScoreBand classifies a score for coloring: good, fair or poor
func ScoreBand(score int) string {
	switch {
	case score >= calculation.ExcellentThreshold:
		return "good"
	case score >= calculation.ModerateThreshold:
		return "fair"
	default:
		return "poor"
	}
}

// FormatCurrency formats an amount in rupees with two decimals
func FormatCurrency(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

var hundred = decimal.NewFromInt(100)

// FormatPercentage formats a ratio as a percentage with one decimal
func FormatPercentage(ratio decimal.Decimal) string {
	return ratio.Mul(hundred).StringFixed(1) + "%"
}
