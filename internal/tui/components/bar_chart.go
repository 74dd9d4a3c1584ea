package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/finhealth/internal/output"
	"github.com/rgehrsitz/finhealth/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// BarSeries is one labelled bar
type BarSeries struct {
	Label string
	Value decimal.Decimal
	Color lipgloss.Color
}

// BarChart draws horizontal bars scaled to the largest value
type BarChart struct {
	Title  string
	Series []BarSeries
	Width  int
	// Format renders the value shown after each bar
	Format func(decimal.Decimal) string
}

func NewBarChart(title string) *BarChart {
	return &BarChart{
		Title:  title,
		Width:  30,
		Format: output.FormatCurrency,
	}
}

// AddBar appends a bar; the palette cycles when color is empty
func (c *BarChart) AddBar(label string, value decimal.Decimal, color lipgloss.Color) *BarChart {
	if color == "" {
		color = seriesColor(len(c.Series))
	}
	c.Series = append(c.Series, BarSeries{Label: label, Value: value, Color: color})
	return c
}

// AddPoints appends one bar per chart point
func (c *BarChart) AddPoints(points []output.ChartPoint) *BarChart {
	for _, p := range points {
		c.AddBar(p.Label, p.Value, "")
	}
	return c
}

func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

func (c *BarChart) WithFormat(f func(decimal.Decimal) string) *BarChart {
	c.Format = f
	return c
}

// Render draws the chart. Non-positive values draw an empty bar but still
// print their value.
func (c *BarChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(tuistyles.TitleStyle.Render(c.Title))
		b.WriteString("\n")
	}

	peak := decimal.Zero
	labelWidth := 0
	for _, s := range c.Series {
		peak = decimal.Max(peak, s.Value)
		if w := lipgloss.Width(s.Label); w > labelWidth {
			labelWidth = w
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(labelWidth)
	for i, s := range c.Series {
		bar := output.TextBar(s.Value, peak, c.Width)
		pad := strings.Repeat(" ", c.Width-lipgloss.Width(bar))
		fmt.Fprintf(&b, "%s │ %s%s %s",
			labelStyle.Render(s.Label),
			lipgloss.NewStyle().Foreground(s.Color).Render(bar),
			pad,
			c.Format(s.Value))
		if i < len(c.Series)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func seriesColor(index int) lipgloss.Color {
	palette := []lipgloss.Color{
		tuistyles.ColorChartLine1,
		tuistyles.ColorChartLine2,
		tuistyles.ColorChartLine3,
		tuistyles.ColorChartLine4,
	}
	return palette[index%len(palette)]
}
