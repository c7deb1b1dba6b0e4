// Package prompts builds the three completion prompts used by the query
// assistant: SQL generation, visualization classification, and result
// summarization.
package prompts

import (
	"fmt"
	"strings"

	"github.com/b1query/b1query-engine/pkg/catalog"
)

// RefusalSentinel is the exact response the model is instructed to return
// in place of SQL when asked for a mutating operation. Downstream code
// compares against this string, so it must never change casually.
const RefusalSentinel = "ERROR: Operation not allowed. This assistant only supports read-only SELECT queries."

// BuildGenerationPrompt creates the SQL generation prompt for a business
// question. The table list is injected from the catalog so the model only
// sees tables that exist in the configured schema.
func BuildGenerationPrompt(question string, cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("Convert the following business question into a valid SAP Business One SQL query:\n")
	fmt.Fprintf(&b, "Question: %s\n\n", question)

	b.WriteString("Requirements:\n")
	b.WriteString("1. Use proper SAP B1 table names and their documented relationships.\n")
	b.WriteString("2. Always include necessary JOINs between related tables (e.g., OINV with INV1, OCRD, etc.).\n")
	b.WriteString("3. Apply appropriate WHERE clauses based on user input or use-case.\n")
	b.WriteString("4. Prefer JOINs over subqueries; avoid unnecessary subqueries.\n")
	fmt.Fprintf(&b, "5. Always prefix all table names with the provided schema: %s\n", cat.Schema())
	b.WriteString("6. Strictly enclose all identifiers (table names, column names) in double quotes to maintain case sensitivity.\n")
	b.WriteString("7. NEVER create procedures or queries that perform CREATE, UPDATE, DELETE, or INSERT operations.\n")
	b.WriteString("8. If asked to perform create, update, delete, or insert operations, return the response:\n")
	fmt.Fprintf(&b, "   %s\n", RefusalSentinel)
	b.WriteString("9. If the question is related to cancelled or closed journal entries, check the \"JDT1\" table and the \"Closed\" column.\n\n")

	b.WriteString("Common tables:\n")
	for _, td := range cat.TableDescriptions() {
		fmt.Fprintf(&b, "- \"%s\".\"%s\": %s\n", cat.Schema(), td.Code, td.Description)
	}

	b.WriteString("\nReturn only the SQL query.\n")
	return b.String()
}

// BuildClassificationPrompt creates the visualization classification
// prompt. The model must answer with one of the four category names; the
// caller normalizes and defaults anything else.
func BuildClassificationPrompt(question string) string {
	var b strings.Builder

	b.WriteString("Based on the following business query, determine the most appropriate visualization type:\n")
	fmt.Fprintf(&b, "Query: %s\n\n", question)
	b.WriteString("Choose from: table, bar_chart, line_chart, pie_chart\n\n")

	b.WriteString("Consider these specific rules:\n")
	b.WriteString("1. Use line_chart when the query mentions:\n")
	b.WriteString("   - Time periods (days, months, years)\n")
	b.WriteString("   - Trends, growth, or changes over time\n")
	b.WriteString("   - Historical data\n")
	b.WriteString("   - Words like 'trend', 'over time', 'history', 'growth'\n\n")

	b.WriteString("2. Use bar_chart when the query mentions:\n")
	b.WriteString("   - Comparisons between categories\n")
	b.WriteString("   - Rankings or top/bottom items\n")
	b.WriteString("   - Aggregations by category\n")
	b.WriteString("   - Words like 'top', 'bottom', 'compare', 'by category'\n\n")

	b.WriteString("3. Use pie_chart when the query mentions:\n")
	b.WriteString("   - Proportions or percentages\n")
	b.WriteString("   - Distribution of a whole\n")
	b.WriteString("   - Market share\n")
	b.WriteString("   - Words like 'distribution', 'percentage', 'share', 'proportion'\n\n")

	b.WriteString("4. Use table when:\n")
	b.WriteString("   - Detailed data is needed\n")
	b.WriteString("   - Multiple dimensions are involved\n")
	b.WriteString("   - No clear visualization preference\n")
	b.WriteString("   - Raw data is requested\n\n")

	b.WriteString("Return only the visualization type.\n")
	return b.String()
}

// BuildSummaryPrompt creates the prompt for a short business summary of
// what the generated SQL will show.
func BuildSummaryPrompt(question, sqlQuery string) string {
	var b strings.Builder

	b.WriteString("Create a concise, business-friendly summary of what the following SQL query will show:\n")
	fmt.Fprintf(&b, "Query: %s\n\n", sqlQuery)
	fmt.Fprintf(&b, "Original question: %s\n\n", question)

	b.WriteString("The summary should:\n")
	b.WriteString("1. Be clear and non-technical\n")
	b.WriteString("2. Focus on business insights\n")
	b.WriteString("3. Be no more than 2 sentences\n\n")

	b.WriteString("Return only the summary.\n")
	return b.String()
}
