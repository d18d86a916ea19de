package dotnet

import (
	"strings"
	"text/template"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/naming"
)

func init() {
	gen.Register(New())
}

// Generator implements gen.TargetGenerator for C# + ASP.NET Core.
type Generator struct {
	mapper Mapper
}

// New creates the .NET target generator.
func New() *Generator {
	return &Generator{}
}

// Target returns the target identifier.
func (g *Generator) Target() string { return Name }

// Mapper returns the C# type mapper.
func (g *Generator) Mapper() gen.TypeMapper { return g.mapper }

// data wraps a plan with the route name used by controllers.
type data struct {
	*gen.EntityPlan
	Plural string
}

func newData(p *gen.EntityPlan) *data {
	return &data{
		EntityPlan: p,
		Plural:     naming.Pascal(naming.Plural(p.Table.EntityName)),
	}
}

func render(t *template.Template, d any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

// GenEntity renders the EF Core entity class.
func (g *Generator) GenEntity(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(entityTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: "Models/" + p.Entity + ".cs", Content: content}, nil
}

// GenDTO renders the request and response records.
func (g *Generator) GenDTO(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(dtoTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: "DTOs/" + p.Entity + "Dto.cs", Content: content}, nil
}

// GenRepository renders the repository class.
func (g *Generator) GenRepository(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(repositoryTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: "Repositories/" + p.Entity + "Repository.cs", Content: content}, nil
}

// GenService renders the service class.
func (g *Generator) GenService(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(serviceTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: "Services/" + p.Entity + "Service.cs", Content: content}, nil
}

// GenController renders the API controller.
func (g *Generator) GenController(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(controllerTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: "Controllers/" + p.Entity + "Controller.cs", Content: content}, nil
}

// GenTest renders the xUnit test scaffold.
func (g *Generator) GenTest(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(testTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: "Tests/" + p.Entity + "Tests.cs", Content: content}, nil
}

// projectData carries everything the DbContext and entrypoint templates
// need: the entity set plus one join configuration per junction table.
type projectData struct {
	Namespace string
	Project   string
	Entities  []string
	Joins     []joinConfig
}

type joinConfig struct {
	Left, Right string
	JoinTable   string
	LeftColumn  string
	RightColumn string
}

// GenProject renders Program.cs and the DbContext, including the
// explicit join-table configuration for every junction.
func (g *Generator) GenProject(graph *gen.Graph) ([]*gen.File, error) {
	d := projectData{Namespace: graph.Config.Namespace, Project: graph.Config.Project}
	for _, t := range graph.EntityTables() {
		d.Entities = append(d.Entities, t.EntityName)
	}
	for _, t := range graph.Tables {
		if !t.Junction || len(t.ForeignKeys) != 2 {
			continue
		}
		left, okL := graph.Lookup(t.ForeignKeys[0].References)
		right, okR := graph.Lookup(t.ForeignKeys[1].References)
		if !okL || !okR {
			continue
		}
		d.Joins = append(d.Joins, joinConfig{
			Left:        left.EntityName,
			Right:       right.EntityName,
			JoinTable:   t.Name,
			LeftColumn:  t.ForeignKeys[0].Column,
			RightColumn: t.ForeignKeys[1].Column,
		})
	}
	ctx, err := render(dbContextTmpl, d)
	if err != nil {
		return nil, err
	}
	program, err := render(programTmpl, d)
	if err != nil {
		return nil, err
	}
	return []*gen.File{
		{Path: "Data/AppDbContext.cs", Content: ctx},
		{Path: "Program.cs", Content: program},
	}, nil
}

var funcs = template.FuncMap{
	"join":   strings.Join,
	"pascal": naming.Pascal,
	"plural": naming.Plural,
}

var entityTmpl = template.Must(template.New("entity").Funcs(funcs).Parse(`using System;
using System.Collections.Generic;
using System.ComponentModel.DataAnnotations;
using System.ComponentModel.DataAnnotations.Schema;
using Microsoft.EntityFrameworkCore;

namespace {{.Namespace}}.Models;

[Table("{{.Table.Name}}")]
{{- if .HasIndexes}}
{{- range .Indexes}}
[Index({{range $i, $c := .Columns}}{{if $i}}, {{end}}nameof({{pascal $c}}){{end}}{{if .Unique}}, IsUnique = true{{end}}, Name = "{{.Name}}")]
{{- end}}
{{- end}}
public class {{.Entity}}
{
    [Key]
    public {{.PrimaryKeyType}} Id { get; set; }
{{range .Fields}}
    [Column("{{.Column.Name}}")]{{if gt .Length 0}}
    [MaxLength({{.Length}})]{{end}}
    public {{.Type}} {{pascal .Name}} { get; set; } = {{.Default}};
{{end}}
{{- range .Outgoing}}
    [Column("{{.FKColumn}}")]
    public {{$.PrimaryKeyType}}? {{pascal .Name}}Id { get; set; }

    [ForeignKey(nameof({{pascal .Name}}Id))]
    public {{.Entity}}? {{pascal .Name}} { get; set; }
{{end}}
{{- range .Inverse}}
    public {{.CollectionType}} {{pascal .Name}} { get; set; } = new List<{{.Entity}}>();
{{end}}
{{- range .Joins}}
    public {{.CollectionType}} {{pascal .Name}} { get; set; } = new List<{{.Entity}}>();
{{end -}}
}
`))

var dtoTmpl = template.Must(template.New("dto").Funcs(funcs).Parse(`using System;

namespace {{.Namespace}}.DTOs;

public record {{.Entity}}Request(
{{- range $i, $f := .Fields}}{{if $i}},{{end}}
    {{$f.Type}} {{pascal $f.Name}}
{{- end}}
);

public record {{.Entity}}Response(
    {{.PrimaryKeyType}} Id
{{- range .Fields}},
    {{.Type}} {{pascal .Name}}
{{- end}}
);
`))

var repositoryTmpl = template.Must(template.New("repository").Funcs(funcs).Parse(`using Microsoft.EntityFrameworkCore;
using {{.Namespace}}.Data;
using {{.Namespace}}.Models;

namespace {{.Namespace}}.Repositories;

public class {{.Entity}}Repository(AppDbContext context)
{
    public Task<List<{{.Entity}}>> FindAllAsync() =>
        context.Set<{{.Entity}}>().AsNoTracking().ToListAsync();

    public ValueTask<{{.Entity}}?> FindByIdAsync({{.PrimaryKeyType}} id) =>
        context.Set<{{.Entity}}>().FindAsync(id);

    public async Task<{{.Entity}}> SaveAsync({{.Entity}} entity)
    {
        context.Update(entity);
        await context.SaveChangesAsync();
        return entity;
    }

    public async Task DeleteByIdAsync({{.PrimaryKeyType}} id)
    {
        var entity = await FindByIdAsync(id);
        if (entity is not null)
        {
            context.Remove(entity);
            await context.SaveChangesAsync();
        }
    }
}
`))

var serviceTmpl = template.Must(template.New("service").Funcs(funcs).Parse(`using {{.Namespace}}.Models;
using {{.Namespace}}.Repositories;

namespace {{.Namespace}}.Services;

public class {{.Entity}}Service({{.Entity}}Repository repository)
{
    public Task<List<{{.Entity}}>> FindAllAsync() => repository.FindAllAsync();

    public ValueTask<{{.Entity}}?> FindByIdAsync({{.PrimaryKeyType}} id) => repository.FindByIdAsync(id);

    public Task<{{.Entity}}> SaveAsync({{.Entity}} entity) => repository.SaveAsync(entity);

    public Task DeleteByIdAsync({{.PrimaryKeyType}} id) => repository.DeleteByIdAsync(id);
}
`))

var controllerTmpl = template.Must(template.New("controller").Funcs(funcs).Parse(`using Microsoft.AspNetCore.Mvc;
using {{.Namespace}}.Models;
using {{.Namespace}}.Services;

namespace {{.Namespace}}.Controllers;

[ApiController]
[Route("api/{{.Plural}}")]
public class {{.Entity}}Controller({{.Entity}}Service service) : ControllerBase
{
    [HttpGet]
    public Task<List<{{.Entity}}>> FindAll() => service.FindAllAsync();

    [HttpGet("{id:long}")]
    public async Task<ActionResult<{{.Entity}}>> FindById({{.PrimaryKeyType}} id) =>
        await service.FindByIdAsync(id) is { } entity ? Ok(entity) : NotFound();

    [HttpPost]
    public async Task<ActionResult<{{.Entity}}>> Create({{.Entity}} entity) =>
        CreatedAtAction(nameof(FindById), new { id = entity.Id }, await service.SaveAsync(entity));

    [HttpPut("{id:long}")]
    public Task<{{.Entity}}> Update({{.PrimaryKeyType}} id, {{.Entity}} entity)
    {
        entity.Id = id;
        return service.SaveAsync(entity);
    }

    [HttpDelete("{id:long}")]
    public Task Delete({{.PrimaryKeyType}} id) => service.DeleteByIdAsync(id);
}
`))

var testTmpl = template.Must(template.New("test").Funcs(funcs).Parse(`using {{.Namespace}}.Models;
using Xunit;

namespace {{.Namespace}}.Tests;

public class {{.Entity}}Tests
{
    [Fact]
    public void NewEntityHasDefaultValues()
    {
        var entity = new {{.Entity}}();
        Assert.Equal(0L, entity.Id);
    }
}
`))

var dbContextTmpl = template.Must(template.New("dbcontext").Funcs(funcs).Parse(`using Microsoft.EntityFrameworkCore;
using {{.Namespace}}.Models;

namespace {{.Namespace}}.Data;

public class AppDbContext(DbContextOptions<AppDbContext> options) : DbContext(options)
{
{{- range .Entities}}
    public DbSet<{{.}}> {{plural .}} => Set<{{.}}>();
{{- end}}
{{- if .Joins}}

    protected override void OnModelCreating(ModelBuilder modelBuilder)
    {
{{- range .Joins}}
        modelBuilder.Entity<{{.Left}}>()
            .HasMany<{{.Right}}>()
            .WithMany()
            .UsingEntity("{{.JoinTable}}",
                l => l.HasOne(typeof({{.Right}})).WithMany().HasForeignKey("{{.RightColumn}}"),
                r => r.HasOne(typeof({{.Left}})).WithMany().HasForeignKey("{{.LeftColumn}}"));
{{- end}}
    }
{{- end}}
}
`))

var programTmpl = template.Must(template.New("program").Parse(`using Microsoft.EntityFrameworkCore;
using {{.Namespace}}.Data;

var builder = WebApplication.CreateBuilder(args);

builder.Services.AddControllers();
builder.Services.AddDbContext<AppDbContext>(options =>
    options.UseNpgsql(builder.Configuration.GetConnectionString("Default")));

var app = builder.Build();

app.MapControllers();
app.Run();
`))
