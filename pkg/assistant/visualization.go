package assistant

import "strings"

// VisualizationType is the closed set of chart categories the UI knows
// how to render.
type VisualizationType string

const (
	VisualizationTable     VisualizationType = "table"
	VisualizationBarChart  VisualizationType = "bar_chart"
	VisualizationLineChart VisualizationType = "line_chart"
	VisualizationPieChart  VisualizationType = "pie_chart"
)

// NormalizeVisualization maps raw classifier output onto the closed set.
// Anything unrecognized collapses to the table default, so a confused
// model can never produce an invalid category.
func NormalizeVisualization(raw string) VisualizationType {
	switch v := VisualizationType(strings.ToLower(strings.TrimSpace(raw))); v {
	case VisualizationTable, VisualizationBarChart, VisualizationLineChart, VisualizationPieChart:
		return v
	default:
		return VisualizationTable
	}
}
