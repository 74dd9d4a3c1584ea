package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/rgehrsitz/finhealth/internal/output"
	"github.com/shopspring/decimal"
)

// Palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorInfo      = lipgloss.Color("#3B82F6")

	ColorBackground = lipgloss.Color("#1E1E2E")
	ColorForeground = lipgloss.Color("#E5E7EB")
	ColorMuted      = lipgloss.Color("#6B7280")
	ColorBorder     = lipgloss.Color("#4B5563")

	ColorChartLine1 = lipgloss.Color("#10B981")
	ColorChartLine2 = lipgloss.Color("#EF4444")
	ColorChartLine3 = lipgloss.Color("#3B82F6")
	ColorChartLine4 = lipgloss.Color("#F59E0B")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(ColorBackground).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Width(24)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)

	UserBubbleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	AdvisorBubbleStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)
)

// MetricTrendStyle colors a trend green when positive, red otherwise
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "↑"
	}
	return "↓"
}

// ScoreColor maps a score to the band color used across the dashboard
func ScoreColor(score int) lipgloss.Color {
	switch output.ScoreBand(score) {
	case "good":
		return ColorSuccess
	case "fair":
		return ColorAccent
	default:
		return ColorDanger
	}
}

// RiskBadgeStyle renders the risk level as a filled badge
func RiskBadgeStyle(score int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(ScoreColor(score)).
		Bold(true).
		Padding(0, 1)
}

// RiskBadge renders a result's risk level
func RiskBadge(result *domain.FinancialResult) string {
	if result == nil {
		return ""
	}
	return RiskBadgeStyle(result.Score).Render(result.RiskLevel.String())
}

// FormatCurrency formats an amount for the dashboard
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}
