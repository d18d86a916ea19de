package golang

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/naming"
)

// GenEntity renders the GORM model struct for an entity plan.
func (g *Generator) GenEntity(p *gen.EntityPlan) (*gen.File, error) {
	f := jen.NewFile("model")
	f.HeaderComment(header)

	f.Commentf("%s is the model mapped to the %s table.", p.Entity, p.Table.Name)
	f.Type().Id(p.Entity).StructFunc(func(grp *jen.Group) {
		grp.Id("ID").Int64().Tag(map[string]string{
			"json": "id",
			"gorm": "column:id;primaryKey;autoIncrement",
		})
		for _, fld := range p.Fields {
			grp.Id(naming.Pascal(fld.Name)).Add(goType(fld)).Tag(columnTag(fld))
		}
		for _, rel := range p.Outgoing {
			fk := naming.Pascal(rel.Name) + "ID"
			gormTag := "column:" + rel.FKColumn
			if rel.Unique {
				gormTag += ";uniqueIndex"
			}
			grp.Id(fk).Op("*").Int64().Tag(map[string]string{
				"json": naming.Snake(rel.Name) + "_id",
				"gorm": gormTag,
			})
			grp.Id(naming.Pascal(rel.Name)).Op("*").Id(rel.Entity).Tag(map[string]string{
				"json": naming.Snake(rel.Name) + ",omitempty",
				"gorm": "foreignKey:" + fk,
			})
		}
		for _, rel := range p.Inverse {
			grp.Id(naming.Pascal(rel.Name)).Index().Op("*").Id(rel.Entity).Tag(map[string]string{
				"json": naming.Snake(rel.Name) + ",omitempty",
				"gorm": "foreignKey:" + naming.Pascal(rel.MappedBy) + "ID",
			})
		}
		for _, j := range p.Joins {
			tag := fmt.Sprintf("many2many:%s;joinForeignKey:%s;joinReferences:%s",
				j.JoinTable, j.SourceColumn, j.TargetColumn)
			grp.Id(naming.Pascal(j.Name)).Index().Op("*").Id(j.Entity).Tag(map[string]string{
				"json": naming.Snake(j.Name) + ",omitempty",
				"gorm": tag,
			})
		}
	})

	f.Comment("TableName overrides the table GORM derives from the struct name.")
	f.Func().Params(jen.Id(p.Entity)).Id("TableName").Params().String().Block(
		jen.Return(jen.Lit(p.Table.Name)),
	)

	if p.HasIndexes() {
		f.Commentf("%sIndexes lists the secondary indexes declared on %s.", p.Entity, p.Table.Name)
		f.Var().Id(p.Entity + "Indexes").Op("=").Index().Id("EntityIndex").ValuesFunc(func(grp *jen.Group) {
			for _, idx := range p.Indexes {
				grp.Values(jen.Dict{
					jen.Id("Name"):    jen.Lit(idx.Name),
					jen.Id("Columns"): jen.Index().String().ValuesFunc(func(cols *jen.Group) {
						for _, c := range idx.Columns {
							cols.Lit(c)
						}
					}),
					jen.Id("Unique"): jen.Lit(idx.Unique),
				})
			}
		})
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("golang: render entity %s: %w", p.Entity, err)
	}
	return &gen.File{Path: modelPath(p.Module + ".go"), Content: buf.String()}, nil
}

// goType returns the jennifer expression for a field's Go type,
// pointer-wrapped when the column is nullable.
func goType(f *gen.FieldPlan) jen.Code {
	base := baseType(f.Column.Type)
	if f.Nullable {
		return jen.Op("*").Add(base)
	}
	return base
}

func baseType(source string) jen.Code {
	switch source {
	case gen.SourceString, gen.SourceText:
		return jen.String()
	case gen.SourceInteger:
		return jen.Int()
	case gen.SourceLong:
		return jen.Int64()
	case gen.SourceShort:
		return jen.Int16()
	case gen.SourceFloat:
		return jen.Float32()
	case gen.SourceDouble, gen.SourceBigDecimal:
		return jen.Float64()
	case gen.SourceBoolean:
		return jen.Bool()
	case gen.SourceUUID:
		return jen.Qual("github.com/google/uuid", "UUID")
	case gen.SourceInstant, gen.SourceLocalDate, gen.SourceLocalDateTime, gen.SourceLocalTime:
		return jen.Qual("time", "Time")
	case gen.SourceBytes:
		return jen.Index().Byte()
	default:
		return jen.Id(fallback)
	}
}

func columnTag(f *gen.FieldPlan) map[string]string {
	var parts []string
	parts = append(parts, "column:"+f.Column.Name)
	if f.Unique {
		parts = append(parts, "uniqueIndex")
	}
	if f.Length > 0 {
		parts = append(parts, fmt.Sprintf("size:%d", f.Length))
	}
	if !f.Nullable {
		parts = append(parts, "not null")
	}
	return map[string]string{
		"json": naming.Snake(f.Name),
		"gorm": strings.Join(parts, ";"),
	}
}
