// Package load holds the input boundary of the generator: the schema
// model produced by the external DDL parser and the project configuration
// supplied per generation request. Nothing here re-parses DDL or
// re-derives junction-table classification; the model is trusted as given.
package load

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SchemaModel is the fully resolved relational model produced by the
// external DDL parser. It is decoded once per generation request and
// treated as immutable afterwards.
type SchemaModel struct {
	Tables []*Table `json:"tables"`
}

// Table describes one relational table as delivered by the parser.
type Table struct {
	Name        string        `json:"name"`
	Columns     []*Column     `json:"columns,omitempty"`
	ForeignKeys []*ForeignKey `json:"foreign_keys,omitempty"`
	Indexes     []*Index      `json:"indexes,omitempty"`
	// Junction marks tables that exist purely to join two other tables.
	// The classification happens upstream and is never re-derived here.
	Junction bool `json:"junction,omitempty"`
	// Routines holds names of stored procedures or functions the parser
	// associated with this table.
	Routines []string `json:"routines,omitempty"`
}

// Column describes one table column. Type is a symbolic source type
// independent of any target ecosystem ("String", "Long", "UUID", ...).
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Nullable   bool   `json:"nullable,omitempty"`
	Unique     bool   `json:"unique,omitempty"`
	Length     int    `json:"length,omitempty"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
}

// ForeignKey describes an outgoing reference. References holds the
// referenced table name and is matched case-insensitively downstream.
type ForeignKey struct {
	Column     string `json:"column"`
	References string `json:"references"`
	// FieldName optionally overrides the derived navigation-property name.
	FieldName string `json:"field_name,omitempty"`
}

// Index describes a table index with its ordered column list.
type Index struct {
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique,omitempty"`
}

// DecodeSchema decodes a parser-produced schema model from r.
func DecodeSchema(r io.Reader) (*SchemaModel, error) {
	var m SchemaModel
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("load: decode schema model: %w", err)
	}
	for i, t := range m.Tables {
		if t == nil || t.Name == "" {
			return nil, fmt.Errorf("load: table %d has no name", i)
		}
		for j, c := range t.Columns {
			if c == nil || c.Name == "" {
				return nil, fmt.Errorf("load: table %q column %d has no name", t.Name, j)
			}
		}
		for j, fk := range t.ForeignKeys {
			if fk == nil || fk.Column == "" || fk.References == "" {
				return nil, fmt.Errorf("load: table %q foreign key %d is incomplete", t.Name, j)
			}
		}
	}
	return &m, nil
}

// ReadSchema reads and decodes a schema model from a JSON file.
func ReadSchema(path string) (*SchemaModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: open schema model: %w", err)
	}
	defer f.Close()
	return DecodeSchema(f)
}
