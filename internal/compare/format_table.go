package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing profiles
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("FINANCIAL HEALTH COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Profile: %s\n", compSet.BaseProfileName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Profile",
		6, "Score",
		numWidth, "Risk",
		numWidth, "Savings",
		numWidth, "Debt",
		numWidth, "Expenses"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ProfileName))
			sb.WriteString(fmt.Sprintf("  Score:          %s%d points\n", tf.intSymbol(alt.ScoreDiffFromBase), alt.ScoreDiffFromBase))
			sb.WriteString(fmt.Sprintf("  Savings Ratio:  %s%s pp\n", tf.deltaSymbol(alt.SavingsRatioDiff), tf.formatPoints(alt.SavingsRatioDiff)))
			sb.WriteString(fmt.Sprintf("  Debt Ratio:     %s%s pp\n", tf.deltaSymbol(alt.DebtRatioDiff), tf.formatPoints(alt.DebtRatioDiff)))
			sb.WriteString(fmt.Sprintf("  Expense Ratio:  %s%s pp\n", tf.deltaSymbol(alt.ExpenseRatioDiff), tf.formatPoints(alt.ExpenseRatioDiff)))
			if alt.RiskChange != "" {
				sb.WriteString(fmt.Sprintf("  Risk:           %s\n", alt.RiskChange))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single profile row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ProfileName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*d %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		6, result.Score,
		numWidth, result.RiskLevel,
		numWidth, tf.formatPercent(result.SavingsRatio),
		numWidth, tf.formatPercent(result.DebtRatio),
		numWidth, tf.formatPercent(result.ExpenseRatio))
}

func (tf *TableFormatter) formatPercent(ratio decimal.Decimal) string {
	return ratio.Mul(hundred).StringFixed(1) + "%"
}

func (tf *TableFormatter) formatPoints(delta decimal.Decimal) string {
	return delta.Mul(hundred).StringFixed(1)
}

// deltaSymbol returns "+" for positive deltas; negatives carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) intSymbol(delta int) string {
	if delta > 0 {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each profile
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseProfileName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		scoreChange := "="
		if alt.ScoreDiffFromBase != 0 {
			scoreChange = fmt.Sprintf("%s%d", tf.intSymbol(alt.ScoreDiffFromBase), alt.ScoreDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ProfileName, scoreChange))
	}

	return sb.String()
}
