package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVisualization(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected VisualizationType
	}{
		{"table", "table", VisualizationTable},
		{"bar chart", "bar_chart", VisualizationBarChart},
		{"line chart", "line_chart", VisualizationLineChart},
		{"pie chart", "pie_chart", VisualizationPieChart},
		{"uppercase", "TABLE", VisualizationTable},
		{"mixed case", "Bar_Chart", VisualizationBarChart},
		{"surrounding whitespace", "  line_chart\n", VisualizationLineChart},
		{"unknown value", "scatter_plot", VisualizationTable},
		{"empty", "", VisualizationTable},
		{"sentence answer", "I would suggest a bar_chart for this.", VisualizationTable},
		{"hyphenated variant", "bar-chart", VisualizationTable},
		{"garbage", "\x00\xff", VisualizationTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeVisualization(tt.raw))
		})
	}
}

func FuzzNormalizeVisualization(f *testing.F) {
	f.Add("table")
	f.Add("bar_chart")
	f.Add("PIE_CHART ")
	f.Add("drop table students")
	f.Fuzz(func(t *testing.T, raw string) {
		got := NormalizeVisualization(raw)
		switch got {
		case VisualizationTable, VisualizationBarChart, VisualizationLineChart, VisualizationPieChart:
		default:
			t.Fatalf("normalized value %q outside closed set", got)
		}
	})
}
