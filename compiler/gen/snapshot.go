package gen

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the deterministic wire form of a resolved graph. Field
// order is fixed; two runs over the same schema encode byte-identically.
type (
	snapshot struct {
		Tables    []snapshotTable    `msgpack:"tables"`
		Relations []snapshotRelation `msgpack:"relations"`
		Joins     []snapshotJoin     `msgpack:"joins"`
	}

	snapshotTable struct {
		Name     string   `msgpack:"name"`
		Entity   string   `msgpack:"entity"`
		Module   string   `msgpack:"module"`
		Junction bool     `msgpack:"junction"`
		Columns  []string `msgpack:"columns"`
	}

	snapshotRelation struct {
		Source string `msgpack:"source"`
		Target string `msgpack:"target"`
		Column string `msgpack:"column"`
		Type   string `msgpack:"type"`
	}

	snapshotJoin struct {
		Table        string `msgpack:"table"`
		Junction     string `msgpack:"junction"`
		SourceColumn string `msgpack:"source_column"`
		TargetColumn string `msgpack:"target_column"`
		Other        string `msgpack:"other"`
	}
)

// EncodeSnapshot encodes the resolved graph and its relationship index
// so callers can diff two runs without comparing every generated file.
func (g *Graph) EncodeSnapshot() ([]byte, error) {
	snap := snapshot{}
	for _, t := range g.Tables {
		st := snapshotTable{
			Name:     t.Name,
			Entity:   t.EntityName,
			Module:   t.ModuleName,
			Junction: t.Junction,
		}
		for _, c := range t.Columns {
			st.Columns = append(st.Columns, c.Name+":"+c.Type)
		}
		snap.Tables = append(snap.Tables, st)
	}
	for _, rel := range g.relationships {
		snap.Relations = append(snap.Relations, snapshotRelation{
			Source: rel.Source.Name,
			Target: rel.Target.Name,
			Column: rel.FK.Column,
			Type:   rel.Type.String(),
		})
	}
	for _, t := range g.EntityTables() {
		for _, join := range g.ManyToMany(t) {
			snap.Joins = append(snap.Joins, snapshotJoin{
				Table:        t.Name,
				Junction:     join.JunctionTable,
				SourceColumn: join.SourceColumn,
				TargetColumn: join.TargetColumn,
				Other:        join.Other.Name,
			})
		}
	}
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, fmt.Errorf("apigen: encode snapshot: %w", err)
	}
	return data, nil
}
