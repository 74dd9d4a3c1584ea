package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sampleData() domain.FinancialData {
	return domain.FinancialData{
		Income: domain.Income{Monthly: d(100000)},
		Expenses: domain.Expenses{
			Rent:          d(20000),
			Food:          d(5000),
			Transport:     d(3000),
			Utilities:     d(2000),
			Entertainment: d(2000),
			Others:        d(3000),
		},
		Loans:   domain.Loans{EMI: d(10000), Outstanding: d(200000)},
		Savings: domain.Savings{Current: d(50000), EmergencyFund: d(300000)},
	}
}

func buildTestReport() *Report {
	data := sampleData()
	report := NewReport("Base", data, calculation.Evaluate(data))
	report.GeneratedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return report
}

// buildZeroIncomeReport has no income, so ratios are raw amounts and savings is negative
func buildZeroIncomeReport() *Report {
	data := domain.FinancialData{
		Expenses: domain.Expenses{Rent: d(1500)},
		Loans:    domain.Loans{EMI: d(500)},
	}
	return NewReport("", data, calculation.Evaluate(data))
}

// buildCleanReport produces a result with no suggestions
func buildCleanReport() *Report {
	result := calculation.Evaluate(sampleData())
	result.Suggestions = []string{}
	return NewReport("Clean", sampleData(), result)
}

func TestFormatterFunc(t *testing.T) {
	called := false
	var received *Report

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			called = true
			received = report
			return []byte("test output"), nil
		},
	}

	report := buildTestReport()
	out, err := formatter.Format(report)

	assert.NoError(t, err)
	assert.True(t, called, "Should call the function")
	assert.Same(t, report, received, "Should pass the report")
	assert.Equal(t, []byte("test output"), out)
	assert.Equal(t, "test-formatter", formatter.Name())
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")

	assert.NoError(t, err)
	assert.Contains(t, filename, "health_report_")
	assert.Contains(t, filename, ".txt")

	content, err := os.ReadFile(filename)
	assert.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(report *Report) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")

	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestConsoleFormatter_Format(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "FINHEALTH REPORT: BASE")
	assert.Contains(t, content, "Generated on: 2025-03-01")
	assert.Contains(t, content, "Financial Score:       100/100 (good)")
	assert.Contains(t, content, "Monthly Savings Ratio: 55.0%")
	assert.Contains(t, content, "Debt-to-Income Ratio:  10.0%")
	assert.Contains(t, content, "₹65000.00", "Savings is income minus expenses")
	assert.Contains(t, content, "• "+calculation.SuggestionSIP)
	assert.Contains(t, content, "Month 3:")
	assert.Contains(t, content, "Start SIP & Diversify")
}

func TestConsoleFormatter_NoSuggestions(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildCleanReport())
	require.NoError(t, err)
	assert.Contains(t, string(out), NoSuggestionsMessage)
}

func TestConsoleFormatter_NilResult(t *testing.T) {
	_, err := ConsoleFormatter{}.Format(&Report{})
	assert.Error(t, err)
}

func TestConsoleVerboseFormatter_Format(t *testing.T) {
	data := sampleData()
	result, bd := calculation.NewHealthEvaluator().EvaluateWithBreakdown(data)
	report := NewReport("Base", data, result).WithBreakdown(bd)

	out, err := ConsoleVerboseFormatter{}.Format(report)
	require.NoError(t, err)

	content := string(out)
	assert.Equal(t, "console-verbose", ConsoleVerboseFormatter{}.Name())
	assert.Contains(t, content, "INPUTS")
	assert.Contains(t, content, "Rent / Housing")
	assert.Contains(t, content, "Expense Ratio:         35.0%")
	assert.Contains(t, content, "CALCULATION DETAILS")
	assert.Contains(t, content, "Required Emergency Fund: ₹270000.00")
	assert.Contains(t, content, "savings_ratio, debt_ratio, expense_ratio, emergency_fund")
	assert.Contains(t, content, "CASH FLOW")
	assert.Contains(t, content, "DISTRIBUTION")
}

func TestConsoleVerboseFormatter_ZeroIncome(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildZeroIncomeReport())
	require.NoError(t, err)

	content := string(out)
	assert.NotContains(t, content, "CALCULATION DETAILS", "no breakdown attached")
	assert.Contains(t, content, "Monthly Savings Ratio: -200000.0%", "stored ratio shown unclamped")
}

func TestCSVSummarizer_Format(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Section", "Item", "Value"}, rows[0])
	assert.Contains(t, rows, []string{"Summary", "Score", "100"})
	assert.Contains(t, rows, []string{"Summary", "RiskLevel", "Excellent"})
	assert.Contains(t, rows, []string{"Summary", "SavingsRatio", "0.5500"})
	assert.Contains(t, rows, []string{"Breakdown", "Savings", "65000.00"})
	assert.Contains(t, rows, []string{"Suggestion", "1", calculation.SuggestionSIP})
	assert.Contains(t, rows, []string{"Roadmap", "Month 6", "Review financial goals & Diversify investments"})
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Base", decoded["profile"])
	assert.Contains(t, decoded, "result")
	assert.Contains(t, decoded, "charts")
	assert.NotContains(t, decoded, "breakdown")

	pretty, err := JSONFormatter{Pretty: true}.Format(buildTestReport())
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"profile\": \"Base\"")
}

func TestJSONFormatter_ResultRoundTrip(t *testing.T) {
	report := buildTestReport()
	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, report.Result.Score, decoded.Result.Score)
	assert.True(t, report.Result.SavingsRatio.Equal(decoded.Result.SavingsRatio))
	assert.True(t, report.Result.DebtRatio.Equal(decoded.Result.DebtRatio))
	assert.Equal(t, report.Result.Roadmap, decoded.Result.Roadmap)
}

func TestMarkdownFormatter_Format(t *testing.T) {
	out, err := MarkdownFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "# FinHealth Report: Base")
	assert.Contains(t, content, "| Savings | ₹65000.00 |")
	assert.Contains(t, content, "## 6-Month Roadmap")
	assert.Contains(t, content, "1. **Month 1:**")
}

func TestHTMLFormatter_Format(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "<!DOCTYPE html>")
	assert.Contains(t, content, "<title>FinHealth Report: Base</title>")
	assert.Contains(t, content, `class="score good"`)
	assert.Contains(t, content, "Start SIP investments for long-term wealth.")

	out, err = HTMLFormatter{}.Format(buildCleanReport())
	require.NoError(t, err)
	assert.Contains(t, string(out), "Great job!")
}

func TestNewChartData(t *testing.T) {
	charts := buildTestReport().Charts

	require.Len(t, charts.CashFlow, 2)
	assert.Equal(t, "In", charts.CashFlow[0].Label)
	assert.True(t, charts.CashFlow[0].Value.Equal(d(100000)))
	assert.True(t, charts.CashFlow[1].Value.Equal(d(35000)))

	require.Len(t, charts.Distribution, 3)
	assert.Equal(t, []string{"Savings", "Expenses", "Debt"},
		[]string{charts.Distribution[0].Label, charts.Distribution[1].Label, charts.Distribution[2].Label})
	assert.True(t, charts.Distribution[0].Value.Equal(decimal.NewFromFloat(0.55)))
}

func TestNewChartData_ClampsOnlyTheSavingsSlice(t *testing.T) {
	report := buildZeroIncomeReport()

	assert.True(t, report.Charts.Distribution[0].Value.IsZero(), "savings slice clamped")
	assert.True(t, report.Charts.Distribution[2].Value.Equal(d(500)), "debt slice untouched")
	assert.True(t, report.Result.SavingsRatio.Equal(d(-2000)), "stored ratio untouched")
	assert.Empty(t, NewChartData(nil).CashFlow)
}

func TestScoreBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "good"}, {80, "good"}, {70, "fair"}, {50, "fair"}, {40, "poor"}, {0, "poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreBand(tt.score), "score %d", tt.score)
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "₹1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "₹-2000.00", FormatCurrency(d(-2000)))
	assert.Equal(t, "55.0%", FormatPercentage(decimal.NewFromFloat(0.55)))
	assert.Equal(t, "33.3%", FormatPercentage(d(1).Div(d(3))))
}

func TestTextBar(t *testing.T) {
	assert.Equal(t, "", TextBar(d(0), d(10), 10))
	assert.Equal(t, "", TextBar(d(-5), d(10), 10))
	assert.Equal(t, "", TextBar(d(5), d(0), 10))
	assert.Equal(t, strings.Repeat("█", 5), TextBar(d(5), d(10), 10))
	assert.Equal(t, strings.Repeat("█", 10), TextBar(d(10), d(10), 10))
	assert.Equal(t, "█", TextBar(d(1), d(1000), 10), "tiny values still show")
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-verbose", "csv", "html", "json", "markdown"}, AvailableFormatterNames())
	assert.Equal(t, []string{"md", "text", "verbose"}, AvailableFormatAliases())
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range AvailableFormatterNames() {
		f := GetFormatterByName(name)
		require.NotNil(t, f, name)
		assert.Equal(t, name, f.Name())
	}
	assert.Equal(t, "console-verbose", GetFormatterByName("verbose").Name())
	assert.Equal(t, "markdown", GetFormatterByName("md").Name())
	assert.Nil(t, GetFormatterByName("non-existent"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", ContentType("json"))
	assert.Equal(t, "text/html; charset=utf-8", ContentType("html"))
	assert.Equal(t, "text/plain; charset=utf-8", ContentType("console"))
}
