package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JNZader/apigen-sub011/compiler/load"
)

// shopModel is the reference schema used across the relation tests:
// categories 1..n products, products n..m tags via product_tags.
func shopModel() *load.SchemaModel {
	return &load.SchemaModel{
		Tables: []*load.Table{
			{
				Name: "categories",
				Columns: []*load.Column{
					{Name: "id", Type: SourceLong, PrimaryKey: true},
					{Name: "name", Type: SourceString},
				},
			},
			{
				Name: "products",
				Columns: []*load.Column{
					{Name: "id", Type: SourceLong, PrimaryKey: true},
					{Name: "name", Type: SourceString},
					{Name: "category_id", Type: SourceLong, Nullable: true},
				},
				ForeignKeys: []*load.ForeignKey{
					{Column: "category_id", References: "categories"},
				},
			},
			{
				Name: "tags",
				Columns: []*load.Column{
					{Name: "id", Type: SourceLong, PrimaryKey: true},
					{Name: "label", Type: SourceString},
				},
			},
			{
				Name:     "product_tags",
				Junction: true,
				Columns: []*load.Column{
					{Name: "product_id", Type: SourceLong},
					{Name: "tag_id", Type: SourceLong},
				},
				ForeignKeys: []*load.ForeignKey{
					{Column: "product_id", References: "products"},
					{Column: "tag_id", References: "tags"},
				},
			},
		},
	}
}

func TestOutgoingManyToOne(t *testing.T) {
	g, err := NewGraph(testConfig(t), shopModel())
	require.NoError(t, err)

	products, ok := g.Lookup("products")
	require.True(t, ok)

	rels := g.Outgoing(products)
	require.Len(t, rels, 1)
	assert.Equal(t, M2O, rels[0].Type)
	assert.Equal(t, "categories", rels[0].Target.Name)
	assert.Equal(t, "category_id", rels[0].FK.Column)
	assert.Empty(t, g.Diagnostics())
}

func TestOutgoingOneToOneOnUniqueColumn(t *testing.T) {
	g, err := NewGraph(testConfig(t), &load.SchemaModel{
		Tables: []*load.Table{
			{Name: "users", Columns: []*load.Column{{Name: "id", Type: SourceLong, PrimaryKey: true}}},
			{
				Name: "profiles",
				Columns: []*load.Column{
					{Name: "id", Type: SourceLong, PrimaryKey: true},
					{Name: "user_id", Type: SourceLong, Unique: true},
				},
				ForeignKeys: []*load.ForeignKey{{Column: "user_id", References: "users"}},
			},
		},
	})
	require.NoError(t, err)

	profiles, _ := g.Lookup("profiles")
	rels := g.Outgoing(profiles)
	require.Len(t, rels, 1)
	assert.Equal(t, O2O, rels[0].Type)
	assert.Equal(t, "ONE_TO_ONE", rels[0].Type.String())
}

func TestInverseSkipsJunctionSources(t *testing.T) {
	g, err := NewGraph(testConfig(t), shopModel())
	require.NoError(t, err)

	categories, _ := g.Lookup("categories")
	inverse := g.Inverse(categories)
	require.Len(t, inverse, 1)
	assert.Equal(t, "products", inverse[0].Source.Name)

	// The junction references products and tags, but only plain tables
	// contribute inverse relations.
	products, _ := g.Lookup("products")
	assert.Empty(t, g.Inverse(products))
	tags, _ := g.Lookup("tags")
	assert.Empty(t, g.Inverse(tags))
}

func TestDanglingForeignKeySkippedWithDiagnostic(t *testing.T) {
	g, err := NewGraph(testConfig(t), &load.SchemaModel{
		Tables: []*load.Table{
			{
				Name: "orders",
				ForeignKeys: []*load.ForeignKey{
					{Column: "customer_id", References: "customers"},
				},
			},
		},
	})
	require.NoError(t, err)

	orders, _ := g.Lookup("orders")
	assert.Empty(t, g.Outgoing(orders))

	diags := g.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, DiagDanglingForeignKey, diags[0].Kind)
	assert.Equal(t, "orders", diags[0].Table)
	assert.Equal(t, "customer_id", diags[0].Column)
}

func TestManyToManyTwoSides(t *testing.T) {
	g, err := NewGraph(testConfig(t), shopModel())
	require.NoError(t, err)

	products, _ := g.Lookup("products")
	joins := g.ManyToMany(products)
	require.Len(t, joins, 1)
	assert.Equal(t, "product_tags", joins[0].JunctionTable)
	assert.Equal(t, "product_id", joins[0].SourceColumn)
	assert.Equal(t, "tag_id", joins[0].TargetColumn)
	assert.Equal(t, "tags", joins[0].Other.Name)

	tags, _ := g.Lookup("tags")
	joins = g.ManyToMany(tags)
	require.Len(t, joins, 1)
	assert.Equal(t, "tag_id", joins[0].SourceColumn)
	assert.Equal(t, "product_id", joins[0].TargetColumn)
	assert.Equal(t, "products", joins[0].Other.Name)
}

func TestManyToManySelfJoinFirstKeyWins(t *testing.T) {
	g, err := NewGraph(testConfig(t), &load.SchemaModel{
		Tables: []*load.Table{
			{Name: "users", Columns: []*load.Column{{Name: "id", Type: SourceLong, PrimaryKey: true}}},
			{
				Name:     "friendships",
				Junction: true,
				ForeignKeys: []*load.ForeignKey{
					{Column: "user_id", References: "users"},
					{Column: "friend_id", References: "users"},
				},
			},
		},
	})
	require.NoError(t, err)

	users, _ := g.Lookup("users")
	joins := g.ManyToMany(users)
	require.Len(t, joins, 1)
	assert.Equal(t, "user_id", joins[0].SourceColumn)
	assert.Equal(t, "friend_id", joins[0].TargetColumn)
	assert.Equal(t, "users", joins[0].Other.Name)
}

func TestManyToManyWrongKeyCountSkipped(t *testing.T) {
	g, err := NewGraph(testConfig(t), &load.SchemaModel{
		Tables: []*load.Table{
			{Name: "products"},
			{
				Name:     "product_audit",
				Junction: true,
				ForeignKeys: []*load.ForeignKey{
					{Column: "product_id", References: "products"},
				},
			},
		},
	})
	require.NoError(t, err)

	products, _ := g.Lookup("products")
	assert.Empty(t, g.ManyToMany(products))

	diags := g.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnmatchedJunction, diags[0].Kind)
	assert.Equal(t, "product_audit", diags[0].Table)

	// Repeated resolution reports the broken junction once.
	g.ManyToMany(products)
	assert.Len(t, g.Diagnostics(), 1)
}

func TestManyToManyDanglingFarSideSkipped(t *testing.T) {
	g, err := NewGraph(testConfig(t), &load.SchemaModel{
		Tables: []*load.Table{
			{Name: "products"},
			{
				Name:     "product_tags",
				Junction: true,
				ForeignKeys: []*load.ForeignKey{
					{Column: "product_id", References: "products"},
					{Column: "tag_id", References: "tags"},
				},
			},
		},
	})
	require.NoError(t, err)

	products, _ := g.Lookup("products")
	assert.Empty(t, g.ManyToMany(products))

	diags := g.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnmatchedJunction, diags[0].Kind)
	assert.Equal(t, "tag_id", diags[0].Column)
}
