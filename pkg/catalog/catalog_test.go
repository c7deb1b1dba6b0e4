package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultSchema(t *testing.T) {
	c := New("")

	assert.Equal(t, DefaultSchema, c.Schema())
	assert.Equal(t, []string{DefaultSchema + ".OINV", DefaultSchema + ".INV1", DefaultSchema + ".OITM", DefaultSchema + ".ORIN", DefaultSchema + ".RIN1"}, c.Tables("sales"))
}

func TestNew_Idempotent(t *testing.T) {
	a := New("SBOPROD")
	b := New("SBOPROD")

	require.Equal(t, a.Concepts(), b.Concepts())
	for _, concept := range a.Concepts() {
		assert.Equal(t, a.Tables(concept), b.Tables(concept), "concept %s", concept)
	}
	assert.Equal(t, a.TableDescriptions(), b.TableDescriptions())
}

func TestNew_SchemaChangesEveryPrefix(t *testing.T) {
	c := New("SBOTEST")

	for _, concept := range c.Concepts() {
		for _, table := range c.Tables(concept) {
			assert.True(t, strings.HasPrefix(table, "SBOTEST."), "table %s not prefixed", table)
		}
	}
	for _, td := range c.TableDescriptions() {
		assert.Equal(t, "SBOTEST."+td.Code, td.Qualified)
	}
}

func TestTables_UnknownConcept(t *testing.T) {
	c := New("")
	assert.Nil(t, c.Tables("timesheets"))
}

func TestTables_ReturnsCopy(t *testing.T) {
	c := New("")
	tables := c.Tables("inventory")
	require.NotEmpty(t, tables)

	tables[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Tables("inventory")[0])
}

func TestTableDescriptions_CoverJournalLines(t *testing.T) {
	c := New("")

	var found bool
	for _, td := range c.TableDescriptions() {
		if td.Code == "JDT1" {
			found = true
			assert.Equal(t, "Journal Entry Lines", td.Description)
		}
	}
	assert.True(t, found, "JDT1 missing from descriptions")
}
