package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/finhealth/internal/tui/tuistyles"
)

// ProgressBar shows how far through a multi-step flow the user is
type ProgressBar struct {
	Current     int
	Total       int
	Width       int
	Label       string
	ShowPercent bool
	ShowCount   bool
}

func NewProgressBar(total int) *ProgressBar {
	return &ProgressBar{
		Total:     total,
		Width:     40,
		ShowCount: true,
	}
}

func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Update sets the current position, clamped to [0, Total]
func (p *ProgressBar) Update(current int) {
	switch {
	case current < 0:
		p.Current = 0
	case current > p.Total:
		p.Current = p.Total
	default:
		p.Current = current
	}
}

// Percentage returns completion in [0, 100]
func (p *ProgressBar) Percentage() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total) * 100
}

func (p *ProgressBar) IsComplete() bool {
	return p.Total > 0 && p.Current >= p.Total
}

// Filled returns the number of filled cells
func (p *ProgressBar) Filled() int {
	if p.Total <= 0 || p.Width <= 0 {
		return 0
	}
	filled := p.Current * p.Width / p.Total
	if filled > p.Width {
		filled = p.Width
	}
	return filled
}

// Render draws the bar with its label and counters
func (p *ProgressBar) Render() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(p.Label))
		b.WriteString(" ")
	}

	filled := p.Filled()
	fillStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	b.WriteString("[")
	b.WriteString(fillStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", p.Width-filled)))
	b.WriteString("]")

	var stats []string
	if p.ShowPercent {
		stats = append(stats, lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true).
			Render(fmt.Sprintf("%.0f%%", p.Percentage())))
	}
	if p.ShowCount {
		stats = append(stats, lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).
			Render(fmt.Sprintf("%d/%d", p.Current, p.Total)))
	}
	if len(stats) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(stats, " • "))
	}

	return b.String()
}
