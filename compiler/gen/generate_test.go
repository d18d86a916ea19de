package gen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	_ "github.com/JNZader/apigen-sub011/compiler/gen/dotnet"
	_ "github.com/JNZader/apigen-sub011/compiler/gen/golang"
	_ "github.com/JNZader/apigen-sub011/compiler/gen/kotlin"
	"github.com/JNZader/apigen-sub011/compiler/gen/packs"
	"github.com/JNZader/apigen-sub011/compiler/load"
)

// shopSchema is a schema with every relation flavor: a many-to-one
// (products to categories), its inverse, and a many-to-many through a
// junction table.
func shopSchema() *load.SchemaModel {
	return &load.SchemaModel{
		Tables: []*load.Table{
			{
				Name: "categories",
				Columns: []*load.Column{
					{Name: "id", Type: gen.SourceLong, PrimaryKey: true},
					{Name: "name", Type: gen.SourceString, Length: 120},
					{Name: "created_at", Type: gen.SourceInstant},
				},
				Indexes: []*load.Index{{Columns: []string{"name"}, Unique: true}},
			},
			{
				Name: "products",
				Columns: []*load.Column{
					{Name: "id", Type: gen.SourceLong, PrimaryKey: true},
					{Name: "name", Type: gen.SourceString, Unique: true},
					{Name: "price", Type: gen.SourceBigDecimal},
					{Name: "description", Type: gen.SourceText, Nullable: true},
					{Name: "category_id", Type: gen.SourceLong, Nullable: true},
				},
				ForeignKeys: []*load.ForeignKey{
					{Column: "category_id", References: "categories"},
				},
			},
			{
				Name: "tags",
				Columns: []*load.Column{
					{Name: "id", Type: gen.SourceLong, PrimaryKey: true},
					{Name: "label", Type: gen.SourceString},
				},
			},
			{
				Name:     "product_tags",
				Junction: true,
				Columns: []*load.Column{
					{Name: "product_id", Type: gen.SourceLong},
					{Name: "tag_id", Type: gen.SourceLong},
				},
				ForeignKeys: []*load.ForeignKey{
					{Column: "product_id", References: "products"},
					{Column: "tag_id", References: "tags"},
				},
			},
		},
	}
}

func assemble(t *testing.T, target string, opts ...gen.Option) *gen.Result {
	t.Helper()
	ns := map[string]string{
		"kotlin": "com.example.shop",
		"dotnet": "Example.Shop",
		"go":     "github.com/example/shop",
	}[target]
	config := gen.MustNewConfig(append([]gen.Option{
		gen.WithTarget(target),
		gen.WithProject("shop"),
		gen.WithNamespace(ns),
	}, opts...)...)
	graph, err := gen.NewGraph(config, shopSchema())
	require.NoError(t, err)
	assembler, err := gen.NewAssembler(graph)
	require.NoError(t, err)
	result, err := assembler.WithPacks(packs.All()...).Assemble(context.Background())
	require.NoError(t, err)
	return result
}

func TestTargetsRegistered(t *testing.T) {
	assert.Equal(t, []string{"dotnet", "go", "kotlin"}, gen.Targets())

	_, err := gen.LookupTarget("cobol")
	assert.ErrorIs(t, err, gen.ErrUnknownTarget)
}

// Every registered mapper covers the full canonical type set, with a
// structurally different representation for nullable columns.
func TestRegisteredMappersAreTotal(t *testing.T) {
	for _, name := range gen.Targets() {
		t.Run(name, func(t *testing.T) {
			tg, err := gen.LookupTarget(name)
			require.NoError(t, err)
			mapper := tg.Mapper()

			assert.NotEmpty(t, mapper.Fallback())
			assert.NotEmpty(t, mapper.PrimaryKeyType())
			for _, source := range gen.SourceTypes() {
				assert.True(t, mapper.Known(source), source)
				plain := mapper.Map(source, false)
				optional := mapper.Map(source, true)
				assert.NotEmpty(t, plain, source)
				assert.NotEqual(t, plain, optional, source)
				assert.NotEmpty(t, mapper.Default(plain), source)
			}

			assert.False(t, mapper.Known("Geometry"))
			assert.Equal(t, mapper.Fallback(), mapper.Map("Geometry", false))
		})
	}
}

func TestAssembleKotlin(t *testing.T) {
	result := assemble(t, "kotlin")
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, 3, result.Report.Entities)
	assert.NotEmpty(t, result.Report.RunID)
	assert.Equal(t, result.Files.Len(), result.Report.Files)

	paths := result.Files.Paths()
	assert.Contains(t, paths, "src/main/kotlin/com/example/shop/entity/Category.kt")
	assert.Contains(t, paths, "src/main/kotlin/com/example/shop/repository/ProductRepository.kt")
	assert.Contains(t, paths, "src/test/kotlin/com/example/shop/entity/TagTest.kt")
	assert.Contains(t, paths, "src/main/kotlin/com/example/shop/Application.kt")
	assert.NotContains(t, paths, "src/main/kotlin/com/example/shop/entity/ProductTag.kt")

	product, ok := result.Files.Get("src/main/kotlin/com/example/shop/entity/Product.kt")
	require.True(t, ok)
	assert.Contains(t, product, "@ManyToOne(fetch = FetchType.LAZY)")
	assert.Contains(t, product, `@JoinColumn(name = "category_id")`)
	assert.Contains(t, product, `name = "product_tags"`)
	assert.Contains(t, product, `joinColumns = [JoinColumn(name = "product_id")]`)
	assert.Contains(t, product, `inverseJoinColumns = [JoinColumn(name = "tag_id")]`)
	assert.Contains(t, product, "var description: String? = null")
	assert.NotContains(t, product, "created_at")

	category, ok := result.Files.Get("src/main/kotlin/com/example/shop/entity/Category.kt")
	require.True(t, ok)
	assert.Contains(t, category, `@OneToMany(mappedBy = "category"`)
	assert.Contains(t, category, "var products: MutableSet<Product>")
	assert.Contains(t, category, `Index(name = "idx_categories_0", columnList = "name", unique = true)`)

	tag, ok := result.Files.Get("src/main/kotlin/com/example/shop/entity/Tag.kt")
	require.True(t, ok)
	assert.Contains(t, tag, `name = "product_tags"`)
	assert.Contains(t, tag, `joinColumns = [JoinColumn(name = "tag_id")]`)
	assert.Contains(t, tag, "var products: MutableSet<Product>")
}

func TestAssembleDotnet(t *testing.T) {
	result := assemble(t, "dotnet")
	assert.Empty(t, result.Diagnostics)

	paths := result.Files.Paths()
	assert.Contains(t, paths, "Models/Product.cs")
	assert.Contains(t, paths, "Controllers/CategoryController.cs")
	assert.Contains(t, paths, "Data/AppDbContext.cs")
	assert.Contains(t, paths, "Program.cs")

	dbContext, ok := result.Files.Get("Data/AppDbContext.cs")
	require.True(t, ok)
	assert.Contains(t, dbContext, "DbSet<Product>")
	assert.Contains(t, dbContext, `"product_tags"`)
}

func TestAssembleGo(t *testing.T) {
	result := assemble(t, "go")
	assert.Empty(t, result.Diagnostics)

	paths := result.Files.Paths()
	assert.Contains(t, paths, "internal/model/product.go")
	assert.Contains(t, paths, "internal/handler/category.go")
	assert.Contains(t, paths, "internal/model/model.go")
	assert.Contains(t, paths, "go.mod")
	assert.Contains(t, paths, "cmd/server/main.go")

	product, ok := result.Files.Get("internal/model/product.go")
	require.True(t, ok)
	assert.Contains(t, product, "type Product struct")
	assert.Contains(t, product, "many2many:product_tags;joinForeignKey:product_id;joinReferences:tag_id")
	assert.Contains(t, product, "Description *string")
	assert.Contains(t, product, `return "products"`)
}

// Per-table rendering fans out across workers, but recombination follows
// schema declaration order, so two runs agree byte for byte.
func TestAssembleIsIdempotent(t *testing.T) {
	first := assemble(t, "kotlin", gen.WithWorkers(4), gen.WithFeatures(gen.FeatureSnapshot))
	second := assemble(t, "kotlin", gen.WithWorkers(1), gen.WithFeatures(gen.FeatureSnapshot))

	require.Equal(t, first.Files.Paths(), second.Files.Paths())
	for _, path := range first.Files.Paths() {
		a, _ := first.Files.Get(path)
		b, _ := second.Files.Get(path)
		assert.Equal(t, a, b, path)
	}

	require.NotEmpty(t, first.Snapshot)
	assert.Equal(t, first.Snapshot, second.Snapshot)
}

func TestAssemblePacks(t *testing.T) {
	result := assemble(t, "kotlin",
		gen.WithFeatures(gen.FeatureSocialLogin, gen.FeatureMail, gen.FeatureFileStorage, gen.FeaturePasswordReset),
		gen.WithProviders("google", "github"),
		gen.WithStorageBackend("s3"),
		gen.WithResetTokenTTL(15),
	)

	paths := result.Files.Paths()
	assert.Contains(t, paths, "src/main/kotlin/com/example/shop/config/OAuthSecurityConfig.kt")
	assert.Contains(t, paths, "src/main/resources/application-oauth.yml")
	assert.Contains(t, paths, "src/main/kotlin/com/example/shop/mail/MailService.kt")
	assert.Contains(t, paths, "src/main/kotlin/com/example/shop/storage/FileStorage.kt")
	assert.Contains(t, paths, "src/main/kotlin/com/example/shop/auth/PasswordResetService.kt")

	oauth, ok := result.Files.Get("src/main/resources/application-oauth.yml")
	require.True(t, ok)
	assert.Contains(t, oauth, "google:")
	assert.Contains(t, oauth, "${GITHUB_CLIENT_SECRET}")

	storage, _ := result.Files.Get("src/main/kotlin/com/example/shop/storage/FileStorage.kt")
	assert.Contains(t, storage, "S3Client")

	reset, _ := result.Files.Get("src/main/kotlin/com/example/shop/auth/PasswordResetService.kt")
	assert.Contains(t, reset, "Duration.ofMinutes(15)")

	// Disabled features contribute nothing.
	bare := assemble(t, "kotlin")
	assert.NotContains(t, bare.Files.Paths(), "src/main/kotlin/com/example/shop/mail/MailService.kt")
}

func TestAssembleSurfacesDanglingForeignKey(t *testing.T) {
	config := gen.MustNewConfig(
		gen.WithTarget("kotlin"),
		gen.WithProject("shop"),
		gen.WithNamespace("com.example.shop"),
	)
	graph, err := gen.NewGraph(config, &load.SchemaModel{
		Tables: []*load.Table{{
			Name: "orders",
			Columns: []*load.Column{
				{Name: "id", Type: gen.SourceLong, PrimaryKey: true},
				{Name: "total", Type: gen.SourceBigDecimal},
			},
			ForeignKeys: []*load.ForeignKey{
				{Column: "customer_id", References: "customers"},
			},
		}},
	})
	require.NoError(t, err)
	assembler, err := gen.NewAssembler(graph)
	require.NoError(t, err)
	result, err := assembler.Assemble(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, gen.DiagDanglingForeignKey, result.Diagnostics[0].Kind)

	// Generation degraded instead of failing: the entity exists, the
	// navigation field does not.
	order, ok := result.Files.Get("src/main/kotlin/com/example/shop/entity/Order.kt")
	require.True(t, ok)
	assert.NotContains(t, order, "customer")
}

func TestNewAssemblerUnknownTarget(t *testing.T) {
	config := gen.MustNewConfig(
		gen.WithTarget("fortran"),
		gen.WithNamespace("com.example.shop"),
	)
	graph, err := gen.NewGraph(config, shopSchema())
	require.NoError(t, err)
	_, err = gen.NewAssembler(graph)
	assert.ErrorIs(t, err, gen.ErrUnknownTarget)
}
