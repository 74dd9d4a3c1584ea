package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/shopspring/decimal"
)

func testComparisonSet() *ComparisonSet {
	base := testResult("Base", 100, domain.RiskExcellent, 0.55, 0.10, 0.35)
	alt := CalculateComparison(testResult("Stretched", 20, domain.RiskHigh, 0.0476, 0.2381, 0.619), base)
	return &ComparisonSet{
		BaseProfileName:    "Base",
		ConfigPath:         "/path/to/profiles.yaml",
		BaseResult:         &base,
		AlternativeResults: []ComparisonResult{alt},
		Recommendations:    []string{"Risk Warning: Stretched moves risk from Excellent -> High Risk"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}

	result := formatter.Format(testComparisonSet())

	for _, want := range []string{
		"FINANCIAL HEALTH COMPARISON",
		"Base Profile: Base",
		"Configuration: /path/to/profiles.yaml",
		"Base (base)",
		"Stretched",
		"55.0%",
		"Score:          -80 points",
		"Savings Ratio:  -50.2 pp",
		"Debt Ratio:     +13.8 pp",
		"Risk:           Excellent -> High Risk",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}
	base := testResult("Only", 50, domain.RiskModerate, 0.2, 0.1, 0.5)

	result := formatter.Format(&ComparisonSet{BaseProfileName: "Only", BaseResult: &base})

	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Did not expect comparison section without alternatives")
	}
	if strings.Contains(result, "Configuration:") {
		t.Error("Did not expect configuration line without a path")
	}
	if !strings.Contains(result, "Only (base)") {
		t.Error("Expected base row")
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	result := (&TableFormatter{}).FormatCompact(testComparisonSet())
	if result != "Base: Base | Stretched: -80" {
		t.Errorf("Unexpected compact output %q", result)
	}
}

func TestTableFormatter_truncate(t *testing.T) {
	tf := &TableFormatter{}
	if got := tf.truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}
	if got := tf.truncate("a very long profile name indeed", 10); got != "a very ..." {
		t.Errorf("Expected truncated string, got %q", got)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	out, err := formatter.Format(testComparisonSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Profile" || len(rows[0]) != 12 {
		t.Errorf("Unexpected header %v", rows[0])
	}
	if rows[1][0] != "Base" || rows[1][1] != "base" || rows[1][2] != "100" {
		t.Errorf("Unexpected base row %v", rows[1])
	}
	if rows[2][1] != "alternative" || rows[2][7] != "-80" || rows[2][11] != "Excellent -> High Risk" {
		t.Errorf("Unexpected alternative row %v", rows[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	set := testComparisonSet()

	compact, err := (&JSONFormatter{}).Format(set)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(compact, "\n") {
		t.Error("Expected compact JSON on one line")
	}

	pretty, err := (&JSONFormatter{Pretty: true}).Format(set)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(pretty, "\n  \"baseProfileName\": \"Base\"") {
		t.Errorf("Expected indented JSON, got %s", pretty)
	}

	var decoded ComparisonSet
	if err := json.Unmarshal([]byte(pretty), &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if decoded.AlternativeResults[0].ScoreDiffFromBase != -80 {
		t.Errorf("Expected score diff to survive round trip, got %d", decoded.AlternativeResults[0].ScoreDiffFromBase)
	}
	if !decoded.BaseResult.SavingsRatio.Equal(decimal.NewFromFloat(0.55)) {
		t.Errorf("Expected savings ratio to survive round trip, got %s", decoded.BaseResult.SavingsRatio)
	}
}

func TestFormatComparison(t *testing.T) {
	set := testComparisonSet()
	for _, format := range []string{"", "table", "csv", "json"} {
		out, err := FormatComparison(set, format)
		if err != nil || out == "" {
			t.Errorf("format %q: expected output, got err=%v", format, err)
		}
	}
	if _, err := FormatComparison(set, "xml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
