package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/domain"
	"github.com/rgehrsitz/finhealth/internal/output"
	"github.com/rgehrsitz/finhealth/internal/tui/components"
	"github.com/rgehrsitz/finhealth/internal/tui/tuistyles"
)

// DashboardModel shows an evaluated snapshot. It only reads the result.
type DashboardModel struct {
	profileName string
	data        domain.FinancialData
	result      *domain.FinancialResult
	viewport    viewport.Model
	width       int
	height      int
}

func NewDashboardModel() *DashboardModel {
	return &DashboardModel{
		viewport: viewport.New(80, 20),
		width:    80,
		height:   20,
	}
}

// SetResult replaces the displayed snapshot and scrolls to the top
func (m *DashboardModel) SetResult(profileName string, data domain.FinancialData, result *domain.FinancialResult) {
	m.profileName = profileName
	m.data = data
	m.result = result
	m.viewport.SetContent(m.Content())
	m.viewport.GotoTop()
}

func (m *DashboardModel) Result() *domain.FinancialResult { return m.result }

func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.Content())
}

// Update scrolls the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (*DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DashboardModel) View() string {
	if m.result == nil {
		return renderNoResultsState()
	}
	return m.viewport.View()
}

func renderNoResultsState() string {
	return `No analysis yet.

Complete the form to see your financial health.`
}

// Content renders the whole dashboard without scrolling
func (m *DashboardModel) Content() string {
	if m.result == nil {
		return renderNoResultsState()
	}
	r := m.result

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		renderScoreCard(r),
		"  ",
		lipgloss.JoinVertical(
			lipgloss.Left,
			tuistyles.TitleStyle.Render(dashboardTitle(m.profileName)),
			tuistyles.RiskBadge(r),
		),
	)

	charts := lipgloss.JoinVertical(
		lipgloss.Left,
		components.NewBarChart("Cash Flow").
			AddPoints(output.NewChartData(r).CashFlow).
			WithWidth(chartWidth(m.width)).
			Render(),
		"",
		components.NewBarChart("Where Income Goes").
			AddPoints(output.NewChartData(r).Distribution).
			WithWidth(chartWidth(m.width)).
			WithFormat(output.FormatPercentage).
			Render(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		components.MetricGrid(metricCards(m.data, r), gridColumns(m.width)),
		"",
		charts,
		"",
		renderRecommendations(r),
		"",
		renderRoadmap(r),
	)
}

func dashboardTitle(profile string) string {
	if profile == "" {
		return "Financial Health"
	}
	return "Financial Health: " + profile
}

func renderScoreCard(r *domain.FinancialResult) string {
	score := lipgloss.NewStyle().
		Foreground(tuistyles.ScoreColor(r.Score)).
		Bold(true).
		Render(fmt.Sprintf("%d", r.Score))

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(tuistyles.ScoreColor(r.Score)).
		Padding(0, 2).
		Align(lipgloss.Center).
		Render(score + "\n" + tuistyles.MetricLabelStyle.Render("/ 100"))
}

func metricCards(data domain.FinancialData, r *domain.FinancialResult) []*components.MetricCard {
	required := data.Expenses.Total().Add(data.Loans.EMI).Mul(calculation.EmergencyFundMonths)

	return []*components.MetricCard{
		components.NewMetricCard("Total Income", output.FormatCurrency(r.IncomeTotal)),
		components.NewMetricCard("Total Expenses", output.FormatCurrency(r.TotalExpenses)),
		components.NewMetricCard("Savings", output.FormatCurrency(r.Savings())),
		components.NewMetricCard("Savings Ratio", output.FormatPercentage(r.SavingsRatio)).
			WithTrend(r.SavingsRatio.GreaterThan(calculation.SavingsRatioTarget),
				"target > "+output.FormatPercentage(calculation.SavingsRatioTarget)),
		components.NewMetricCard("Debt Ratio", output.FormatPercentage(r.DebtRatio)).
			WithTrend(r.DebtRatio.LessThan(calculation.DebtRatioLimit),
				"limit < "+output.FormatPercentage(calculation.DebtRatioLimit)),
		components.NewMetricCard("Emergency Fund", output.FormatCurrency(data.Savings.EmergencyFund)).
			WithTrend(data.Savings.EmergencyFund.GreaterThan(required),
				"need > "+output.FormatCurrency(required)),
	}
}

func renderRecommendations(r *domain.FinancialResult) string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Recommendations"))
	if len(r.Suggestions) == 0 {
		b.WriteString("\n" + tuistyles.InfoStyle.Render(output.NoSuggestionsMessage))
		return b.String()
	}
	for _, s := range r.Suggestions {
		b.WriteString("\n• " + s)
	}
	return b.String()
}

func renderRoadmap(r *domain.FinancialResult) string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("6-Month Roadmap"))
	for _, step := range r.Roadmap {
		b.WriteString("\n")
		b.WriteString(tuistyles.HelpKeyStyle.Render(fmt.Sprintf("%-8s", step.Month)))
		b.WriteString(" " + step.Action)
	}
	return b.String()
}

func chartWidth(width int) int {
	w := width / 3
	if w < 10 {
		return 10
	}
	if w > 40 {
		return 40
	}
	return w
}

func gridColumns(width int) int {
	if width >= 100 {
		return 3
	}
	if width >= 60 {
		return 2
	}
	return 1
}
