package output

import (
	"bytes"
	"fmt"
)

// MarkdownFormatter renders the report as a Markdown document
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(report *Report) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("report has no result")
	}
	r := report.Result
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", report.Title())
	fmt.Fprintf(&buf, "_Generated on %s_ | **Risk Level:** %s\n\n", report.GeneratedAt.Format("2006-01-02"), r.RiskLevel)

	fmt.Fprintln(&buf, "## Executive Summary")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "- Financial Score: **%d/100**\n", r.Score)
	fmt.Fprintf(&buf, "- Monthly Savings Ratio: %s\n", FormatPercentage(r.SavingsRatio))
	fmt.Fprintf(&buf, "- Debt-to-Income Ratio: %s\n\n", FormatPercentage(r.DebtRatio))

	fmt.Fprintln(&buf, "## Financial Breakdown")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "| Category | Amount |")
	fmt.Fprintln(&buf, "|---|---:|")
	fmt.Fprintf(&buf, "| Total Income | %s |\n", FormatCurrency(r.IncomeTotal))
	fmt.Fprintf(&buf, "| Total Expenses | %s |\n", FormatCurrency(r.TotalExpenses))
	fmt.Fprintf(&buf, "| Savings | %s |\n\n", FormatCurrency(r.Savings()))

	fmt.Fprintln(&buf, "## Recommendations")
	fmt.Fprintln(&buf)
	for _, s := range report.Recommendations() {
		fmt.Fprintf(&buf, "- %s\n", s)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "## 6-Month Roadmap")
	fmt.Fprintln(&buf)
	for i, step := range r.Roadmap {
		fmt.Fprintf(&buf, "%d. **%s:** %s\n", i+1, step.Month, step.Action)
	}
	return buf.Bytes(), nil
}
