package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Profile",
		"Type",
		"Score",
		"Risk Level",
		"Savings Ratio",
		"Debt Ratio",
		"Expense Ratio",
		"Score Diff from Base",
		"Savings Ratio Diff",
		"Debt Ratio Diff",
		"Expense Ratio Diff",
		"Risk Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, profileType string) []string {
	return []string{
		result.ProfileName,
		profileType,
		strconv.Itoa(result.Score),
		result.RiskLevel.String(),
		result.SavingsRatio.StringFixed(4),
		result.DebtRatio.StringFixed(4),
		result.ExpenseRatio.StringFixed(4),
		strconv.Itoa(result.ScoreDiffFromBase),
		result.SavingsRatioDiff.StringFixed(4),
		result.DebtRatioDiff.StringFixed(4),
		result.ExpenseRatioDiff.StringFixed(4),
		result.RiskChange,
	}
}
