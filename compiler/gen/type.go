package gen

import (
	"strings"

	"github.com/JNZader/apigen-sub011/compiler/load"
	"github.com/JNZader/apigen-sub011/naming"
)

// The following types and their exported methods are consumed by the
// target generators to render the assets.
type (
	// Graph holds the immutable view of the schema model for one
	// generation request: every table with its derived identifiers plus
	// the relationship index. It is fully built before any generator
	// runs and never mutated afterwards.
	Graph struct {
		// Config of the current generation request.
		Config *Config
		// Tables in parser declaration order.
		Tables []*Table
		byName map[string]*Table
		// relationships in declaration order, and the same entries
		// indexed by source table. Built once, reused for every lookup.
		relationships []*Relationship
		bySource      map[string][]*Relationship
		diags         []Diagnostic
	}

	// Table represents one relational table with the identifiers derived
	// for code generation. Derivation is a pure function of the table
	// name, so two graphs built from the same model always agree.
	Table struct {
		def *load.Table
		// Name is the table name as delivered by the parser.
		Name string
		// EntityName is the derived PascalCase singular type name.
		EntityName string
		// ModuleName is the derived lowercase package/module segment.
		ModuleName string
		// Columns in declaration order.
		Columns []*Column
		// ForeignKeys in declaration order.
		ForeignKeys []*ForeignKey
		// Indexes in declaration order.
		Indexes []*Index
		// Junction marks a pure join table, as classified upstream.
		Junction bool
	}

	// Column represents one table column.
	Column struct {
		// Name is the column name in the database schema.
		Name string
		// Type is the symbolic source type ("String", "Long", "UUID"...).
		Type string
		// Nullable indicates the column accepts NULL.
		Nullable bool
		// Unique indicates a unique constraint on the column.
		Unique bool
		// Length is the optional declared length (0 when absent).
		Length int
		// PrimaryKey indicates the column is part of the primary key.
		PrimaryKey bool
	}

	// ForeignKey holds one outgoing reference of a table.
	ForeignKey struct {
		// Column is the owning column name.
		Column string
		// References is the referenced table name. Matching against
		// candidate tables is case-insensitive.
		References string
		// FieldName optionally overrides the derived navigation-property
		// name.
		FieldName string
	}

	// Index represents a database index with its ordered column list.
	Index struct {
		Columns []string
		Unique  bool
	}
)

// moduleReserved holds lowercase segments that cannot be used as module
// directories in any of the supported targets.
var moduleReserved = naming.KeywordSet("internal", "main", "test", "vendor", "type")

// NewGraph builds the immutable graph for one generation request. The
// relationship index is computed here, before any generator can observe
// the graph. Dangling foreign keys and unmatched junction sides are
// recorded as diagnostics and skipped, never raised.
func NewGraph(c *Config, model *load.SchemaModel) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if model == nil {
		return nil, NewSchemaError("", "", "schema model cannot be nil", nil)
	}
	g := &Graph{
		Config: c,
		Tables: make([]*Table, 0, len(model.Tables)),
		byName: make(map[string]*Table, len(model.Tables)),
	}
	for _, def := range model.Tables {
		t := newTable(def)
		g.Tables = append(g.Tables, t)
		if _, ok := g.byName[strings.ToLower(t.Name)]; !ok {
			// First declaration wins on ambiguous names.
			g.byName[strings.ToLower(t.Name)] = t
		}
	}
	g.buildRelationships()
	return g, nil
}

// newTable wraps a parser table and derives its generation identifiers.
func newTable(def *load.Table) *Table {
	entity := naming.Pascal(naming.Singular(def.Name))
	t := &Table{
		def:        def,
		Name:       def.Name,
		EntityName: entity,
		ModuleName: naming.EscapeKeyword(strings.ToLower(entity), moduleReserved),
		Junction:   def.Junction,
	}
	for _, c := range def.Columns {
		t.Columns = append(t.Columns, &Column{
			Name:       c.Name,
			Type:       c.Type,
			Nullable:   c.Nullable,
			Unique:     c.Unique,
			Length:     c.Length,
			PrimaryKey: c.PrimaryKey,
		})
	}
	for _, fk := range def.ForeignKeys {
		t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{
			Column:     fk.Column,
			References: fk.References,
			FieldName:  fk.FieldName,
		})
	}
	for _, ix := range def.Indexes {
		t.Indexes = append(t.Indexes, &Index{
			Columns: append([]string(nil), ix.Columns...),
			Unique:  ix.Unique,
		})
	}
	return t
}

// Lookup returns the table with the given name. The match is
// case-insensitive; the first declared table wins on ambiguity.
func (g *Graph) Lookup(name string) (*Table, bool) {
	t, ok := g.byName[strings.ToLower(name)]
	return t, ok
}

// EntityTables returns the tables that produce entities, junction tables
// excluded, in declaration order.
func (g *Graph) EntityTables() []*Table {
	tables := make([]*Table, 0, len(g.Tables))
	for _, t := range g.Tables {
		if !t.Junction {
			tables = append(tables, t)
		}
	}
	return tables
}

// Diagnostics returns the diagnostics recorded while the relationship
// index was built.
func (g *Graph) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), g.diags...)
}

// VarName returns the camelCase variable name of the entity.
func (t *Table) VarName() string {
	return naming.Camel(t.EntityName)
}

// PluralVarName returns the pluralized variable name of the entity,
// used for inverse and many-to-many collection fields.
func (t *Table) PluralVarName() string {
	return naming.Plural(t.VarName())
}

// BusinessColumns returns the columns eligible for field generation:
// everything outside the fixed audit set, in declaration order.
func (t *Table) BusinessColumns() []*Column {
	cols := make([]*Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !naming.IsAuditField(c.Name) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Column returns the column with the given name, matched
// case-insensitively.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}

// PrimaryKey returns the first primary-key column, or the column named
// "id" when the parser marked none.
func (t *Table) PrimaryKey() (*Column, bool) {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c, true
		}
	}
	return t.Column("id")
}

// HasIndexes reports if the table carries index metadata. Generators
// branch on this: index metadata renders a grouped annotation block,
// its absence the simple single-line declaration.
func (t *Table) HasIndexes() bool {
	return len(t.Indexes) > 0
}

// Routines returns the stored-procedure names the parser associated
// with the table.
func (t *Table) Routines() []string {
	if t.def == nil {
		return nil
	}
	return t.def.Routines
}

// IsAudit reports if the column belongs to the fixed audit set.
func (c *Column) IsAudit() bool {
	return naming.IsAuditField(c.Name)
}

// PropertyName returns the derived navigation-property name of the
// foreign key: the explicit override when present, otherwise the owning
// column with its "_id" suffix stripped.
func (fk *ForeignKey) PropertyName() string {
	if fk.FieldName != "" {
		return fk.FieldName
	}
	return naming.PropertyName(fk.Column)
}
