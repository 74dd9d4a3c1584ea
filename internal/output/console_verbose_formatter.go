package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter adds the inputs, the evaluator breakdown and text
// charts to the console report
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

const barWidth = 40

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("report has no result")
	}
	var buf bytes.Buffer

	writeHeader(&buf, report)
	writeInputs(&buf, report)
	writeExecutiveSummary(&buf, report)
	fmt.Fprintf(&buf, "Expense Ratio:         %s\n\n", FormatPercentage(report.Result.ExpenseRatio))

	if bd := report.Breakdown; bd != nil {
		fmt.Fprintln(&buf, "CALCULATION DETAILS")
		fmt.Fprintln(&buf, "-------------------")
		fmt.Fprintf(&buf, "Divisor (income or 1):   %s\n", bd.SafeIncome.String())
		fmt.Fprintf(&buf, "Monthly Savings:         %s\n", FormatCurrency(bd.MonthlySavings))
		fmt.Fprintf(&buf, "Monthly Needs:           %s\n", FormatCurrency(bd.MonthlyNeeds))
		fmt.Fprintf(&buf, "Required Emergency Fund: %s\n", FormatCurrency(bd.RequiredEmergencyFund))
		fmt.Fprintf(&buf, "Score rules met:         %s\n", listOrNone(bd.ScoreRules))
		fmt.Fprintf(&buf, "Suggestion rules fired:  %s\n", listOrNone(bd.SuggestionRules))
		fmt.Fprintln(&buf)
	}

	writeFinancialBreakdown(&buf, report)
	writeCharts(&buf, report.Charts)
	writeRecommendations(&buf, report)
	writeRoadmap(&buf, report)

	return buf.Bytes(), nil
}

func writeInputs(buf *bytes.Buffer, report *Report) {
	d := report.Data
	fmt.Fprintln(buf, "INPUTS")
	fmt.Fprintln(buf, "------")
	fmt.Fprintf(buf, "  %-20s %16s\n", "Monthly Income", FormatCurrency(d.Income.Monthly))
	fmt.Fprintf(buf, "  %-20s %16s\n", "Other Income", FormatCurrency(d.Income.Other))
	for _, cat := range d.Expenses.Categories() {
		fmt.Fprintf(buf, "  %-20s %16s\n", cat.Name, FormatCurrency(cat.Amount))
	}
	fmt.Fprintf(buf, "  %-20s %16s\n", "Loan EMI", FormatCurrency(d.Loans.EMI))
	fmt.Fprintf(buf, "  %-20s %16s\n", "Outstanding Loans", FormatCurrency(d.Loans.Outstanding))
	fmt.Fprintf(buf, "  %-20s %16s\n", "Current Savings", FormatCurrency(d.Savings.Current))
	fmt.Fprintf(buf, "  %-20s %16s\n", "Emergency Fund", FormatCurrency(d.Savings.EmergencyFund))
	fmt.Fprintln(buf)
}

func writeCharts(buf *bytes.Buffer, charts ChartData) {
	fmt.Fprintln(buf, "CASH FLOW")
	writeBars(buf, charts.CashFlow, FormatCurrency)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "DISTRIBUTION")
	writeBars(buf, charts.Distribution, FormatPercentage)
	fmt.Fprintln(buf)
}

func writeBars(buf *bytes.Buffer, points []ChartPoint, label func(decimal.Decimal) string) {
	peak := decimal.Zero
	for _, p := range points {
		if p.Value.GreaterThan(peak) {
			peak = p.Value
		}
	}
	for _, p := range points {
		bar := TextBar(p.Value, peak, barWidth)
		fmt.Fprintf(buf, "  %-9s %s%s %s\n", p.Label, bar, strings.Repeat(" ", barWidth-utf8.RuneCountInString(bar)), label(p.Value))
	}
}

// TextBar draws value as a bar of up to width blocks, scaled against peak.
// Non-positive values draw nothing.
func TextBar(value, peak decimal.Decimal, width int) string {
	if width <= 0 || !peak.IsPositive() || !value.IsPositive() {
		return ""
	}
	n := value.Div(peak).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart()
	if n > int64(width) {
		n = int64(width)
	}
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", int(n))
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
