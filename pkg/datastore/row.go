package datastore

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is one result row as ordered (column, value) pairs. encoding/json
// serializes map keys in sorted order, which would scramble the query's
// declared column order, so Row keeps the pairs in parallel slices and
// marshals them itself.
type Row struct {
	columns []string
	values  []any
}

// NewRow builds a row from parallel column and value slices.
func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

// Get returns the value for a column name, or nil if the row has no such
// column.
func (r Row) Get(column string) any {
	for i, col := range r.columns {
		if col == column {
			return r.values[i]
		}
	}
	return nil
}

// Columns returns the row's column names in declared order.
func (r Row) Columns() []string {
	return r.columns
}

// MarshalJSON emits a JSON object whose keys follow the declared column
// order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, fmt.Errorf("marshal column %q: %w", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("marshal value for column %q: %w", col, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording keys in the order they
// appear in the document.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("row must be a JSON object, got %v", tok)
	}

	r.columns = nil
	r.values = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("row key must be a string, got %v", keyTok)
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return fmt.Errorf("decode value for column %q: %w", key, err)
		}
		r.columns = append(r.columns, key)
		r.values = append(r.values, val)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
