package golang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/compiler/load"
)

func testPlan(t *testing.T) *gen.EntityPlan {
	t.Helper()
	config := gen.MustNewConfig(
		gen.WithTarget(Name),
		gen.WithProject("shop"),
		gen.WithNamespace("github.com/example/shop"),
	)
	graph, err := gen.NewGraph(config, &load.SchemaModel{
		Tables: []*load.Table{
			{
				Name: "categories",
				Columns: []*load.Column{
					{Name: "id", Type: gen.SourceLong, PrimaryKey: true},
					{Name: "name", Type: gen.SourceString},
				},
			},
			{
				Name: "products",
				Columns: []*load.Column{
					{Name: "id", Type: gen.SourceLong, PrimaryKey: true},
					{Name: "name", Type: gen.SourceString, Unique: true, Length: 200},
					{Name: "stocked_at", Type: gen.SourceInstant, Nullable: true},
					{Name: "category_id", Type: gen.SourceLong, Nullable: true},
				},
				ForeignKeys: []*load.ForeignKey{
					{Column: "category_id", References: "categories"},
				},
				Indexes: []*load.Index{{Columns: []string{"name"}, Unique: true}},
			},
		},
	})
	require.NoError(t, err)

	products, ok := graph.Lookup("products")
	require.True(t, ok)
	plan, diags := gen.NewPlan(graph, products, Mapper{})
	require.Empty(t, diags)
	return plan
}

func TestGenEntity(t *testing.T) {
	f, err := New().GenEntity(testPlan(t))
	require.NoError(t, err)

	assert.Equal(t, "internal/model/product.go", f.Path)
	assert.Contains(t, f.Content, "package model")
	assert.Contains(t, f.Content, "type Product struct")
	assert.Contains(t, f.Content, "ID int64")
	assert.Contains(t, f.Content, "`gorm:\"column:name;uniqueIndex;size:200;not null\" json:\"name\"`")
	assert.Contains(t, f.Content, "StockedAt *time.Time")
	assert.Contains(t, f.Content, "CategoryID *int64")
	assert.Contains(t, f.Content, "Category *Category")
	assert.Contains(t, f.Content, `"time"`)
	assert.Contains(t, f.Content, "func (Product) TableName() string")
	assert.Contains(t, f.Content, "ProductIndexes")
	assert.Contains(t, f.Content, `"idx_products_0"`)
}

func TestGenRepositoryAndService(t *testing.T) {
	g := New()
	plan := testPlan(t)

	repo, err := g.GenRepository(plan)
	require.NoError(t, err)
	assert.Equal(t, "internal/repository/product.go", repo.Path)
	assert.Contains(t, repo.Content, "type ProductRepository struct")
	assert.Contains(t, repo.Content, "gorm.io/gorm")
	assert.Contains(t, repo.Content, "github.com/example/shop/internal/model")

	svc, err := g.GenService(plan)
	require.NoError(t, err)
	assert.Contains(t, svc.Content, "func (s *ProductService) Update(ctx context.Context, id int64")
	assert.Contains(t, svc.Content, "row.Name = req.Name")
	assert.Contains(t, svc.Content, "row.CategoryID = req.CategoryID")
}

func TestGenControllerRoutes(t *testing.T) {
	f, err := New().GenController(testPlan(t))
	require.NoError(t, err)
	assert.Equal(t, "internal/handler/product.go", f.Path)
	assert.Contains(t, f.Content, `r.Group("/api/products")`)
	assert.Contains(t, f.Content, "func RegisterProductRoutes")
	assert.Contains(t, f.Content, "gorm.ErrRecordNotFound")
}
