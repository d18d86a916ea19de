package kotlin

import (
	"strings"
	"text/template"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/naming"
)

func init() {
	gen.Register(New())
}

// Generator implements gen.TargetGenerator for Kotlin + Spring Boot.
type Generator struct {
	mapper Mapper
}

// New creates the Kotlin target generator.
func New() *Generator {
	return &Generator{}
}

// Target returns the target identifier.
func (g *Generator) Target() string { return Name }

// Mapper returns the Kotlin type mapper.
func (g *Generator) Mapper() gen.TypeMapper { return g.mapper }

// data wraps a plan with the path helpers the templates need.
type data struct {
	*gen.EntityPlan
	// Plural is the kebab-cased plural resource name for routes.
	Plural string
}

func newData(p *gen.EntityPlan) *data {
	return &data{
		EntityPlan: p,
		Plural:     naming.Kebab(naming.Plural(p.Table.EntityName)),
	}
}

func (g *Generator) srcPath(p *gen.EntityPlan, layer, file string) string {
	return "src/main/kotlin/" + nsPath(p.Namespace) + "/" + layer + "/" + file
}

func (g *Generator) testPath(p *gen.EntityPlan, layer, file string) string {
	return "src/test/kotlin/" + nsPath(p.Namespace) + "/" + layer + "/" + file
}

func nsPath(ns string) string {
	return strings.ReplaceAll(ns, ".", "/")
}

func render(t *template.Template, d any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, d); err != nil {
		return "", err
	}
	return b.String(), nil
}

// GenEntity renders the JPA entity class.
func (g *Generator) GenEntity(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(entityTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: g.srcPath(p, "entity", p.Entity+".kt"), Content: content}, nil
}

// GenDTO renders the request and response transfer objects.
func (g *Generator) GenDTO(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(dtoTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: g.srcPath(p, "dto", p.Entity+"DTO.kt"), Content: content}, nil
}

// GenRepository renders the Spring Data repository interface.
func (g *Generator) GenRepository(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(repositoryTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: g.srcPath(p, "repository", p.Entity+"Repository.kt"), Content: content}, nil
}

// GenService renders the transactional service.
func (g *Generator) GenService(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(serviceTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: g.srcPath(p, "service", p.Entity+"Service.kt"), Content: content}, nil
}

// GenController renders the REST controller.
func (g *Generator) GenController(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(controllerTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: g.srcPath(p, "controller", p.Entity+"Controller.kt"), Content: content}, nil
}

// GenTest renders the entity test scaffold.
func (g *Generator) GenTest(p *gen.EntityPlan) (*gen.File, error) {
	content, err := render(testTmpl, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: g.testPath(p, "entity", p.Entity+"Test.kt"), Content: content}, nil
}

// GenProject renders the application entrypoint and base configuration.
func (g *Generator) GenProject(graph *gen.Graph) ([]*gen.File, error) {
	d := struct {
		Namespace string
		Project   string
	}{Namespace: graph.Config.Namespace, Project: graph.Config.Project}
	app, err := render(applicationTmpl, d)
	if err != nil {
		return nil, err
	}
	cfg, err := render(applicationYAMLTmpl, d)
	if err != nil {
		return nil, err
	}
	return []*gen.File{
		{Path: "src/main/kotlin/" + nsPath(d.Namespace) + "/Application.kt", Content: app},
		{Path: "src/main/resources/application.yml", Content: cfg},
	}, nil
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

var entityTmpl = template.Must(template.New("entity").Funcs(funcs).Parse(`package {{.Namespace}}.entity

import jakarta.persistence.*
{{- range .Imports}}
import {{.}}
{{- end}}

@Entity
{{- if .HasIndexes}}
@Table(
    name = "{{.Table.Name}}",
    indexes = [
{{- range .Indexes}}
        Index(name = "{{.Name}}", columnList = "{{join .Columns ","}}"{{if .Unique}}, unique = true{{end}}),
{{- end}}
    ],
)
{{- else}}
@Table(name = "{{.Table.Name}}")
{{- end}}
class {{.Entity}} {
    @Id
    @GeneratedValue(strategy = GenerationType.IDENTITY)
    var id: {{.PrimaryKeyType}} = 0
{{range .Fields}}
    @Column(name = "{{.Column.Name}}"{{if not .Nullable}}, nullable = false{{end}}{{if .Unique}}, unique = true{{end}}{{if gt .Length 0}}, length = {{.Length}}{{end}})
    var {{.Name}}: {{.Type}} = {{.Default}}
{{end}}
{{- range .Outgoing}}
{{- if .Unique}}
    @OneToOne(fetch = FetchType.LAZY)
    @JoinColumn(name = "{{.FKColumn}}", unique = true)
{{- else}}
    @ManyToOne(fetch = FetchType.LAZY)
    @JoinColumn(name = "{{.FKColumn}}")
{{- end}}
    var {{.Name}}: {{.Entity}}? = null
{{end}}
{{- range .Inverse}}
    @OneToMany(mappedBy = "{{.MappedBy}}", cascade = [CascadeType.PERSIST, CascadeType.MERGE])
    var {{.Name}}: {{.CollectionType}} = mutableSetOf()
{{end}}
{{- range .Joins}}
    @ManyToMany
    @JoinTable(
        name = "{{.JoinTable}}",
        joinColumns = [JoinColumn(name = "{{.SourceColumn}}")],
        inverseJoinColumns = [JoinColumn(name = "{{.TargetColumn}}")],
    )
    var {{.Name}}: {{.CollectionType}} = mutableSetOf()
{{end -}}
}
`))

var dtoTmpl = template.Must(template.New("dto").Funcs(funcs).Parse(`package {{.Namespace}}.dto

{{- if .Imports}}
{{range .Imports}}
import {{.}}
{{- end}}
{{- end}}

data class {{.Entity}}Request(
{{- range .Fields}}
    val {{.Name}}: {{.Type}}{{if .Nullable}} = null{{end}},
{{- end}}
)

data class {{.Entity}}Response(
    val id: {{.PrimaryKeyType}},
{{- range .Fields}}
    val {{.Name}}: {{.Type}},
{{- end}}
)
`))

var repositoryTmpl = template.Must(template.New("repository").Parse(`package {{.Namespace}}.repository

import {{.Namespace}}.entity.{{.Entity}}
import org.springframework.data.jpa.repository.JpaRepository
import org.springframework.stereotype.Repository

@Repository
interface {{.Entity}}Repository : JpaRepository<{{.Entity}}, {{.PrimaryKeyType}}>
`))

var serviceTmpl = template.Must(template.New("service").Parse(`package {{.Namespace}}.service

import {{.Namespace}}.entity.{{.Entity}}
import {{.Namespace}}.repository.{{.Entity}}Repository
import org.springframework.data.repository.findByIdOrNull
import org.springframework.stereotype.Service
import org.springframework.transaction.annotation.Transactional

@Service
@Transactional
class {{.Entity}}Service(private val repository: {{.Entity}}Repository) {

    fun findAll(): List<{{.Entity}}> = repository.findAll()

    fun findById(id: {{.PrimaryKeyType}}): {{.Entity}}? = repository.findByIdOrNull(id)

    fun save({{.VarName}}: {{.Entity}}): {{.Entity}} = repository.save({{.VarName}})

    fun deleteById(id: {{.PrimaryKeyType}}) = repository.deleteById(id)
}
`))

var controllerTmpl = template.Must(template.New("controller").Parse(`package {{.Namespace}}.controller

import {{.Namespace}}.entity.{{.Entity}}
import {{.Namespace}}.service.{{.Entity}}Service
import org.springframework.http.HttpStatus
import org.springframework.http.ResponseEntity
import org.springframework.web.bind.annotation.*

@RestController
@RequestMapping("/api/{{.Plural}}")
class {{.Entity}}Controller(private val service: {{.Entity}}Service) {

    @GetMapping
    fun findAll(): List<{{.Entity}}> = service.findAll()

    @GetMapping("/{id}")
    fun findById(@PathVariable id: {{.PrimaryKeyType}}): ResponseEntity<{{.Entity}}> =
        service.findById(id)?.let { ResponseEntity.ok(it) }
            ?: ResponseEntity.notFound().build()

    @PostMapping
    @ResponseStatus(HttpStatus.CREATED)
    fun create(@RequestBody {{.VarName}}: {{.Entity}}): {{.Entity}} = service.save({{.VarName}})

    @PutMapping("/{id}")
    fun update(@PathVariable id: {{.PrimaryKeyType}}, @RequestBody {{.VarName}}: {{.Entity}}): {{.Entity}} {
        {{.VarName}}.id = id
        return service.save({{.VarName}})
    }

    @DeleteMapping("/{id}")
    @ResponseStatus(HttpStatus.NO_CONTENT)
    fun delete(@PathVariable id: {{.PrimaryKeyType}}) = service.deleteById(id)
}
`))

var testTmpl = template.Must(template.New("test").Parse(`package {{.Namespace}}.entity

import org.junit.jupiter.api.Assertions.assertEquals
import org.junit.jupiter.api.Test

class {{.Entity}}Test {

    @Test
    fun ` + "`new {{.VarName}} has default values`" + `() {
        val {{.VarName}} = {{.Entity}}()
        assertEquals(0L, {{.VarName}}.id)
    }
}
`))

var applicationTmpl = template.Must(template.New("application").Parse(`package {{.Namespace}}

import org.springframework.boot.autoconfigure.SpringBootApplication
import org.springframework.boot.runApplication

@SpringBootApplication
class Application

fun main(args: Array<String>) {
    runApplication<Application>(*args)
}
`))

var applicationYAMLTmpl = template.Must(template.New("applicationYAML").Parse(`spring:
  application:
    name: {{.Project}}
  jpa:
    hibernate:
      ddl-auto: validate
    open-in-view: false
`))
