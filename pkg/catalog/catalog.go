// Package catalog maps SAP Business One business concepts to the
// company-schema tables that back them. The catalog is built once at
// startup and is read-only afterwards; it exists to enrich prompts, not
// to validate generated SQL.
package catalog

import "fmt"

// DefaultSchema is the SAP B1 demo company schema used when no schema is
// configured.
const DefaultSchema = "SBODEMOUS"

// TableDescription pairs a B1 table code with its qualified name and a
// short human-readable meaning for prompt injection.
type TableDescription struct {
	Code        string
	Qualified   string
	Description string
}

// Catalog exposes concept-to-table mappings qualified by a single schema.
type Catalog struct {
	schema       string
	concepts     []string
	tablesByName map[string][]string
	descriptions []TableDescription
}

// conceptTables lists the B1 table codes behind each business concept.
// Order within a concept is meaningful: primary document tables first,
// then their line and dimension tables.
var conceptTables = []struct {
	concept string
	codes   []string
}{
	{"sales", []string{"OINV", "INV1", "OITM", "ORIN", "RIN1"}},
	{"inventory", []string{"OITM", "OITW", "OITB"}},
	{"customers", []string{"OCRD", "OCPR"}},
	{"purchases", []string{"OPOR", "POR1"}},
	{"financial", []string{"OJDT", "JDT1"}},
	{"brands", []string{"OITB"}},
	{"item_categories", []string{"OITC"}},
	{"item_groups", []string{"OITG"}},
	{"item_locations", []string{"OITL"}},
	{"items", []string{"OITM"}},
	{"warehouses", []string{"OITW"}},
	{"employees", []string{"OHEM"}},
	{"projects", []string{"OPRJ"}},
	{"journal_entries", []string{"OJDT"}},
	{"journal_entry_lines", []string{"JDT1"}},
	{"business_partners", []string{"OCRD"}},
}

// tableMeanings gives the short description shown to the model for each
// table code, in the order they appear in the generation prompt.
var tableMeanings = []struct {
	code, meaning string
}{
	{"OINV", "Sales Invoices"},
	{"ORIN", "Credit Memos"},
	{"INV1", "Invoice Lines"},
	{"RIN1", "Credit Memo Lines"},
	{"OITM", "Items"},
	{"OCRD", "Business Partners"},
	{"OCPR", "Business Partner Contacts"},
	{"OPOR", "Purchase Orders"},
	{"POR1", "Purchase Order Lines"},
	{"OPRJ", "Projects"},
	{"OJDT", "Journal Entries"},
	{"JDT1", "Journal Entry Lines"},
	{"OITB", "Brands"},
	{"OITW", "Warehouses"},
	{"OITC", "Item Categories"},
	{"OITG", "Item Groups"},
	{"OITL", "Item Locations"},
	{"OHEM", "Employees"},
}

// New builds a catalog with every table qualified by the given schema.
// An empty schema falls back to DefaultSchema. Construction cannot fail.
func New(schema string) *Catalog {
	if schema == "" {
		schema = DefaultSchema
	}

	c := &Catalog{
		schema:       schema,
		tablesByName: make(map[string][]string, len(conceptTables)),
	}

	for _, ct := range conceptTables {
		qualified := make([]string, len(ct.codes))
		for i, code := range ct.codes {
			qualified[i] = fmt.Sprintf("%s.%s", schema, code)
		}
		c.concepts = append(c.concepts, ct.concept)
		c.tablesByName[ct.concept] = qualified
	}

	c.descriptions = make([]TableDescription, len(tableMeanings))
	for i, tm := range tableMeanings {
		c.descriptions[i] = TableDescription{
			Code:        tm.code,
			Qualified:   fmt.Sprintf("%s.%s", schema, tm.code),
			Description: tm.meaning,
		}
	}

	return c
}

// Schema returns the configured schema name.
func (c *Catalog) Schema() string {
	return c.schema
}

// Concepts returns all known concept names in declaration order.
func (c *Catalog) Concepts() []string {
	out := make([]string, len(c.concepts))
	copy(out, c.concepts)
	return out
}

// Tables returns the qualified table names for a concept, or nil when the
// concept is unknown. Callers receive a copy; the catalog never mutates.
func (c *Catalog) Tables(concept string) []string {
	tables, ok := c.tablesByName[concept]
	if !ok {
		return nil
	}
	out := make([]string, len(tables))
	copy(out, tables)
	return out
}

// TableDescriptions returns every table with its qualified name and
// meaning, in stable prompt order.
func (c *Catalog) TableDescriptions() []TableDescription {
	out := make([]TableDescription, len(c.descriptions))
	copy(out, c.descriptions)
	return out
}
