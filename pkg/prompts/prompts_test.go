package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/b1query/b1query-engine/pkg/catalog"
)

func TestBuildGenerationPrompt(t *testing.T) {
	cat := catalog.New("SBOTEST")
	prompt := BuildGenerationPrompt("Show me the top 5 selling products", cat)

	assert.Contains(t, prompt, "Show me the top 5 selling products")
	assert.Contains(t, prompt, "the provided schema: SBOTEST")
	assert.Contains(t, prompt, RefusalSentinel)
	assert.Contains(t, prompt, `"JDT1"`)
	assert.Contains(t, prompt, `"Closed"`)
	assert.Contains(t, prompt, `"SBOTEST"."OINV": Sales Invoices`)
	assert.Contains(t, prompt, `"SBOTEST"."JDT1": Journal Entry Lines`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Return only the SQL query."))
}

func TestBuildGenerationPrompt_SchemaInjectedEverywhere(t *testing.T) {
	cat := catalog.New("OTHERCO")
	prompt := BuildGenerationPrompt("total sales by month", cat)

	assert.NotContains(t, prompt, catalog.DefaultSchema)
	assert.Contains(t, prompt, `"OTHERCO"."OCRD": Business Partners`)
}

func TestBuildClassificationPrompt(t *testing.T) {
	prompt := BuildClassificationPrompt("sales trend over the last year")

	assert.Contains(t, prompt, "sales trend over the last year")
	assert.Contains(t, prompt, "table, bar_chart, line_chart, pie_chart")
	for _, rule := range []string{"line_chart", "bar_chart", "pie_chart"} {
		assert.Contains(t, prompt, "Use "+rule)
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Return only the visualization type."))
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := BuildSummaryPrompt("top customers", `SELECT "CardName" FROM "SBODEMOUS"."OCRD"`)

	assert.Contains(t, prompt, "top customers")
	assert.Contains(t, prompt, `SELECT "CardName" FROM "SBODEMOUS"."OCRD"`)
	assert.Contains(t, prompt, "no more than 2 sentences")
}
