package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/finhealth/internal/output"
)

func TestProgressBar(t *testing.T) {
	p := NewProgressBar(4).WithWidth(20)

	p.Update(1)
	assert.Equal(t, 25.0, p.Percentage())
	assert.Equal(t, 5, p.Filled())
	assert.False(t, p.IsComplete())
	assert.Contains(t, p.Render(), "1/4")

	p.Update(9)
	assert.Equal(t, 4, p.Current)
	assert.True(t, p.IsComplete())
	assert.Equal(t, 20, p.Filled())

	p.Update(-3)
	assert.Equal(t, 0, p.Current)
}

func TestProgressBarZeroTotal(t *testing.T) {
	p := NewProgressBar(0)

	assert.Equal(t, 0.0, p.Percentage())
	assert.Equal(t, 0, p.Filled())
	assert.False(t, p.IsComplete())
}

func TestBarChartScalesToPeak(t *testing.T) {
	chart := NewBarChart("Cash Flow").WithWidth(10).
		AddBar("In", decimal.NewFromInt(1000), "").
		AddBar("Out", decimal.NewFromInt(500), "")

	lines := strings.Split(chart.Render(), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Cash Flow")
	assert.Equal(t, 10, strings.Count(lines[1], "█"))
	assert.Equal(t, 5, strings.Count(lines[2], "█"))
	assert.Contains(t, lines[2], "₹500.00")
}

func TestBarChartNonPositiveValues(t *testing.T) {
	chart := NewBarChart("").WithWidth(10).
		WithFormat(output.FormatPercentage).
		AddPoints([]output.ChartPoint{
			{Label: "Savings", Value: decimal.Zero},
			{Label: "Debt", Value: decimal.NewFromFloat(-0.5)},
		})

	out := chart.Render()
	assert.NotContains(t, out, "█")
	assert.Contains(t, out, "0.0%")
	assert.Contains(t, out, "-50.0%")
}

func TestBarChartEmpty(t *testing.T) {
	assert.Contains(t, NewBarChart("x").Render(), "No data")
}

func TestMetricCard(t *testing.T) {
	card := NewMetricCard("Debt Ratio", "10.0%").WithTrend(true, "limit < 20.0%")

	assert.Contains(t, card.Render(), "Debt Ratio")
	assert.Contains(t, card.Render(), "↑ limit < 20.0%")
	assert.Contains(t, card.RenderCompact(), "Debt Ratio:")
	assert.Contains(t, card.RenderCompact(), "10.0%")
}

func TestMetricGrid(t *testing.T) {
	cards := []*MetricCard{
		NewMetricCard("A", "1").WithWidth(10),
		NewMetricCard("B", "2").WithWidth(10),
		NewMetricCard("C", "3").WithWidth(10),
	}

	assert.Empty(t, MetricGrid(nil, 2))

	grid := MetricGrid(cards, 2)
	for _, label := range []string{"A", "B", "C"} {
		assert.Contains(t, grid, label)
	}
	assert.Equal(t, 3, strings.Count(grid, "╭"))
}
