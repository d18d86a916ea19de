package gen

import (
	"fmt"
	"strings"
)

// Rel is an edge type between two tables.
type Rel int

// Relation types. Junction-derived many-to-many relations are modeled
// separately (see ManyToMany); they never appear as a Relationship.
const (
	// O2O is a one-to-one relation: the owning foreign-key column
	// carries a unique constraint.
	O2O Rel = iota + 1
	// M2O is a many-to-one relation.
	M2O
)

// String returns the relation-type name.
func (r Rel) String() string {
	switch r {
	case O2O:
		return "ONE_TO_ONE"
	case M2O:
		return "MANY_TO_ONE"
	default:
		return fmt.Sprintf("Rel(%d)", int(r))
	}
}

type (
	// Relationship is one resolved foreign-key edge between two tables.
	// Computed from the schema model, never stored on the table.
	Relationship struct {
		// Source is the table owning the foreign key.
		Source *Table
		// Target is the referenced table.
		Target *Table
		// FK is the foreign key the relationship was derived from.
		FK *ForeignKey
		// Type is O2O when the owning column is unique, M2O otherwise.
		Type Rel
	}

	// ManyToMany is one side of a relation that exists only through a
	// junction table.
	ManyToMany struct {
		// JunctionTable is the join table name, passed through verbatim
		// to the generated mapping.
		JunctionTable string
		// SourceColumn is the join column referencing "this" side.
		SourceColumn string
		// TargetColumn is the join column referencing the other side.
		TargetColumn string
		// Other is the resolved table on the far side of the join.
		Other *Table
	}
)

// buildRelationships derives every foreign-key edge once and indexes it
// by source table. Junction tables do not contribute edges; their
// foreign keys surface only through ManyToMany. Dangling references are
// recorded and skipped.
func (g *Graph) buildRelationships() {
	g.bySource = make(map[string][]*Relationship, len(g.Tables))
	for _, t := range g.Tables {
		if t.Junction {
			continue
		}
		for _, fk := range t.ForeignKeys {
			target, ok := g.Lookup(fk.References)
			if !ok {
				g.diags = append(g.diags, Diagnostic{
					Kind:   DiagDanglingForeignKey,
					Table:  t.Name,
					Column: fk.Column,
					Detail: fmt.Sprintf("referenced table %q not in schema", fk.References),
				})
				continue
			}
			rel := &Relationship{Source: t, Target: target, FK: fk, Type: M2O}
			if col, ok := t.Column(fk.Column); ok && col.Unique {
				rel.Type = O2O
			}
			g.relationships = append(g.relationships, rel)
			key := strings.ToLower(t.Name)
			g.bySource[key] = append(g.bySource[key], rel)
		}
	}
}

// Outgoing returns the relations owned by the table, in foreign-key
// declaration order. Lookup is O(1) against the prebuilt index.
func (g *Graph) Outgoing(t *Table) []*Relationship {
	return g.bySource[strings.ToLower(t.Name)]
}

// Inverse returns the incoming relations of the table whose source is
// not a junction table. Relations that exist only because of a join
// table are handled by ManyToMany instead.
func (g *Graph) Inverse(t *Table) []*Relationship {
	var rels []*Relationship
	for _, rel := range g.relationships {
		if rel.Target == t && !rel.Source.Junction {
			rels = append(rels, rel)
		}
	}
	return rels
}

// ManyToMany returns the relations the table participates in through
// junction tables, in junction declaration order.
//
// A junction must carry exactly two foreign keys to produce a relation;
// anything else yields none. When both foreign keys reference the same
// table (a self-join), the first one in declaration order is treated as
// "this" side. Junctions whose far side cannot be resolved are skipped
// with a diagnostic.
func (g *Graph) ManyToMany(t *Table) []*ManyToMany {
	var rels []*ManyToMany
	for _, j := range g.Tables {
		if !j.Junction {
			continue
		}
		if len(j.ForeignKeys) != 2 {
			g.diags = appendOnce(g.diags, Diagnostic{
				Kind:   DiagUnmatchedJunction,
				Table:  j.Name,
				Detail: fmt.Sprintf("junction table has %d foreign keys, want 2", len(j.ForeignKeys)),
			})
			continue
		}
		var this, other *ForeignKey
		switch {
		case strings.EqualFold(j.ForeignKeys[0].References, t.Name):
			this, other = j.ForeignKeys[0], j.ForeignKeys[1]
		case strings.EqualFold(j.ForeignKeys[1].References, t.Name):
			this, other = j.ForeignKeys[1], j.ForeignKeys[0]
		default:
			continue
		}
		otherTable, ok := g.Lookup(other.References)
		if !ok {
			g.diags = appendOnce(g.diags, Diagnostic{
				Kind:   DiagUnmatchedJunction,
				Table:  j.Name,
				Column: other.Column,
				Detail: fmt.Sprintf("referenced table %q not in schema", other.References),
			})
			continue
		}
		rels = append(rels, &ManyToMany{
			JunctionTable: j.Name,
			SourceColumn:  this.Column,
			TargetColumn:  other.Column,
			Other:         otherTable,
		})
	}
	return rels
}

// appendOnce records a diagnostic unless an identical one exists.
// ManyToMany is called once per table, so a broken junction would
// otherwise be reported for every entity in the schema.
func appendOnce(diags []Diagnostic, d Diagnostic) []Diagnostic {
	for _, have := range diags {
		if have == d {
			return diags
		}
	}
	return append(diags, d)
}
