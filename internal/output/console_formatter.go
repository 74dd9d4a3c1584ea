package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter renders the dashboard sections as plain text
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("report has no result")
	}
	var buf bytes.Buffer
	writeHeader(&buf, report)
	writeExecutiveSummary(&buf, report)
	writeFinancialBreakdown(&buf, report)
	writeRecommendations(&buf, report)
	writeRoadmap(&buf, report)
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, report *Report) {
	rule := strings.Repeat("=", 64)
	fmt.Fprintln(buf, rule)
	fmt.Fprintln(buf, strings.ToUpper(report.Title()))
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "Generated on: %s\n", report.GeneratedAt.Format("2006-01-02"))
	fmt.Fprintf(buf, "Risk Level: %s\n", report.Result.RiskLevel)
	fmt.Fprintln(buf)
}

func writeExecutiveSummary(buf *bytes.Buffer, report *Report) {
	r := report.Result
	fmt.Fprintln(buf, "EXECUTIVE SUMMARY")
	fmt.Fprintln(buf, "-----------------")
	fmt.Fprintf(buf, "Financial Score:       %d/100 (%s)\n", r.Score, ScoreBand(r.Score))
	fmt.Fprintf(buf, "Monthly Savings Ratio: %s\n", FormatPercentage(r.SavingsRatio))
	fmt.Fprintf(buf, "Debt-to-Income Ratio:  %s\n", FormatPercentage(r.DebtRatio))
	fmt.Fprintln(buf)
}

func writeFinancialBreakdown(buf *bytes.Buffer, report *Report) {
	r := report.Result
	fmt.Fprintln(buf, "FINANCIAL BREAKDOWN")
	fmt.Fprintln(buf, "-------------------")
	fmt.Fprintf(buf, "%-16s %16s\n", "Total Income", FormatCurrency(r.IncomeTotal))
	fmt.Fprintf(buf, "%-16s %16s\n", "Total Expenses", FormatCurrency(r.TotalExpenses))
	fmt.Fprintf(buf, "%-16s %16s\n", "Savings", FormatCurrency(r.Savings()))
	fmt.Fprintln(buf)
}

func writeRecommendations(buf *bytes.Buffer, report *Report) {
	fmt.Fprintln(buf, "RECOMMENDATIONS")
	fmt.Fprintln(buf, "---------------")
	for _, s := range report.Recommendations() {
		fmt.Fprintf(buf, "• %s\n", s)
	}
	fmt.Fprintln(buf)
}

func writeRoadmap(buf *bytes.Buffer, report *Report) {
	fmt.Fprintln(buf, "6-MONTH ROADMAP")
	fmt.Fprintln(buf, "---------------")
	for _, step := range report.Result.Roadmap {
		fmt.Fprintf(buf, "%-8s %s\n", step.Month+":", step.Action)
	}
}
