package gen

import (
	"fmt"
	"sort"

	"github.com/JNZader/apigen-sub011/naming"
)

// EntityPlan is the target-neutral description of everything a renderer
// emits for one table: mapped fields, navigation relations and index
// metadata. Building the plan is where relationship resolution and type
// mapping meet; renderers only decide how the plan looks as source text.
type (
	EntityPlan struct {
		// Table the plan was built from.
		Table *Table
		// Entity is the PascalCase type name.
		Entity string
		// Module is the lowercase module segment.
		Module string
		// VarName is the camelCase variable name.
		VarName string
		// PluralVar is the pluralized variable name.
		PluralVar string
		// Namespace is the configured base namespace.
		Namespace string
		// PrimaryKeyType is the target's identifier type.
		PrimaryKeyType string
		// Fields holds one entry per business column, declaration order.
		Fields []*FieldPlan
		// Outgoing holds the single-valued navigation fields (O2O, M2O).
		Outgoing []*RelationPlan
		// Inverse holds the collection fields mirroring incoming
		// non-junction relations.
		Inverse []*RelationPlan
		// Joins holds the many-to-many collection fields.
		Joins []*JoinPlan
		// Indexes holds the table index metadata, declaration order.
		Indexes []*IndexPlan
		// Imports holds the module references required by the mapped
		// field types, deduplicated and sorted.
		Imports []string
	}

	// FieldPlan is one generated business field.
	FieldPlan struct {
		// Column the field was derived from.
		Column *Column
		// Name is the escaped camelCase identifier.
		Name string
		// Type is the mapped target type, nullable-aware.
		Type string
		// Default is the zero-value literal for the mapped type.
		Default string
		// Nullable mirrors the column.
		Nullable bool
		// Unique mirrors the column.
		Unique bool
		// Length mirrors the column (0 when absent).
		Length int
	}

	// RelationPlan is one navigation field derived from a foreign key.
	RelationPlan struct {
		// Name is the escaped navigation-property identifier. Outgoing
		// relations derive it from the owning column; inverse relations
		// use the pluralized source entity variable name.
		Name string
		// Entity is the related entity type name.
		Entity string
		// Module is the related entity module segment.
		Module string
		// Rel is O2O or M2O, from the owning side's perspective.
		Rel Rel
		// FKColumn is the owning foreign-key column name.
		FKColumn string
		// MappedBy is the owning side's navigation-property name, set
		// for inverse relations only.
		MappedBy string
		// Unique is true for O2O: the owning column carries a
		// uniqueness constraint.
		Unique bool
		// Collection is true for inverse relations; CollectionType then
		// holds the target's navigation-collection type.
		Collection     bool
		CollectionType string
	}

	// JoinPlan is one many-to-many collection field. Join table and
	// column names pass through verbatim from the resolved relation.
	JoinPlan struct {
		// Name is the pluralized variable name of the other entity.
		Name string
		// Entity is the other entity type name.
		Entity string
		// Module is the other entity module segment.
		Module string
		// JoinTable, SourceColumn and TargetColumn name the junction.
		JoinTable    string
		SourceColumn string
		TargetColumn string
		// CollectionType is the target's navigation-collection type.
		CollectionType string
	}

	// IndexPlan is one index annotation entry.
	IndexPlan struct {
		// Name is a deterministic index identifier.
		Name string
		// Columns is the ordered column list.
		Columns []string
		// Unique marks a unique index.
		Unique bool
	}
)

// HasIndexes reports if the plan carries index metadata; renderers
// branch between the grouped annotation block and the single-line form.
func (p *EntityPlan) HasIndexes() bool {
	return len(p.Indexes) > 0
}

// NewPlan builds the plan for one table against one type mapper. It is
// a pure function of (graph, table, mapper): calling it twice yields
// identical plans. Unmapped source types are reported as diagnostics
// while the fallback type is planned in their place.
func NewPlan(g *Graph, t *Table, mapper TypeMapper) (*EntityPlan, []Diagnostic) {
	var diags []Diagnostic
	p := &EntityPlan{
		Table:          t,
		Entity:         t.EntityName,
		Module:         t.ModuleName,
		VarName:        naming.Camel(t.EntityName),
		PluralVar:      t.PluralVarName(),
		Namespace:      g.Config.Namespace,
		PrimaryKeyType: mapper.PrimaryKeyType(),
	}
	imports := make(map[string]struct{})
	for _, c := range t.BusinessColumns() {
		mapped := mapper.Map(c.Type, c.Nullable)
		if !mapper.Known(c.Type) {
			diags = append(diags, Diagnostic{
				Kind:   DiagUnmappedType,
				Table:  t.Name,
				Column: c.Name,
				Detail: fmt.Sprintf("source type %q not mapped for target %q, using %q", c.Type, mapper.Target(), mapper.Fallback()),
			})
		}
		if imp := mapper.Import(c.Type, c.Nullable); imp != "" {
			imports[imp] = struct{}{}
		}
		p.Fields = append(p.Fields, &FieldPlan{
			Column:   c,
			Name:     mapper.EscapeIdentifier(naming.Camel(c.Name)),
			Type:     mapped,
			Default:  mapper.Default(mapped),
			Nullable: c.Nullable,
			Unique:   c.Unique,
			Length:   c.Length,
		})
	}
	for _, rel := range g.Outgoing(t) {
		p.Outgoing = append(p.Outgoing, &RelationPlan{
			Name:     mapper.EscapeIdentifier(naming.Camel(rel.FK.PropertyName())),
			Entity:   rel.Target.EntityName,
			Module:   rel.Target.ModuleName,
			Rel:      rel.Type,
			FKColumn: rel.FK.Column,
			Unique:   rel.Type == O2O,
		})
	}
	for _, rel := range g.Inverse(t) {
		p.Inverse = append(p.Inverse, &RelationPlan{
			Name:           mapper.EscapeIdentifier(rel.Source.PluralVarName()),
			Entity:         rel.Source.EntityName,
			Module:         rel.Source.ModuleName,
			Rel:            rel.Type,
			FKColumn:       rel.FK.Column,
			MappedBy:       mapper.EscapeIdentifier(naming.Camel(rel.FK.PropertyName())),
			Collection:     true,
			CollectionType: mapper.CollectionType(rel.Source.EntityName),
		})
	}
	for _, join := range g.ManyToMany(t) {
		p.Joins = append(p.Joins, &JoinPlan{
			Name:           mapper.EscapeIdentifier(join.Other.PluralVarName()),
			Entity:         join.Other.EntityName,
			Module:         join.Other.ModuleName,
			JoinTable:      join.JunctionTable,
			SourceColumn:   join.SourceColumn,
			TargetColumn:   join.TargetColumn,
			CollectionType: mapper.CollectionType(join.Other.EntityName),
		})
	}
	for i, ix := range t.Indexes {
		p.Indexes = append(p.Indexes, &IndexPlan{
			Name:    fmt.Sprintf("idx_%s_%d", naming.Snake(t.Name), i),
			Columns: ix.Columns,
			Unique:  ix.Unique,
		})
	}
	p.Imports = sortedImports(imports)
	return p, diags
}

func sortedImports(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	imports := make([]string, 0, len(set))
	for imp := range set {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}
