package golang

import (
	"bytes"
	"fmt"
	"path"
	"text/template"

	goimports "golang.org/x/tools/imports"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/naming"
)

func init() {
	gen.Register(New())
}

// header is placed at the top of every generated Go source file.
const header = "Code generated by apigen. DO NOT EDIT."

// Generator emits a Gin + GORM project layout.
type Generator struct {
	mapper Mapper
}

// New returns the Go target generator.
func New() *Generator { return &Generator{} }

// Target returns the target identifier.
func (g *Generator) Target() string { return Name }

// Mapper returns the Go type mapper.
func (g *Generator) Mapper() gen.TypeMapper { return g.mapper }

func modelPath(file string) string   { return path.Join("internal", "model", file) }
func dtoPath(file string) string     { return path.Join("internal", "dto", file) }
func repoPath(file string) string    { return path.Join("internal", "repository", file) }
func servicePath(file string) string { return path.Join("internal", "service", file) }
func handlerPath(file string) string { return path.Join("internal", "handler", file) }

// data augments an entity plan with target-specific accessors used by
// the templates.
type data struct {
	*gen.EntityPlan

	// Route is the kebab-case plural URL segment of the entity.
	Route string
}

func newData(p *gen.EntityPlan) *data {
	return &data{EntityPlan: p, Route: naming.Kebab(naming.Plural(p.Entity))}
}

// render executes a template and runs the result through the imports
// tool, which both formats and fixes the import block.
func (g *Generator) render(t *template.Template, file string, d any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("golang: execute %s: %w", t.Name(), err)
	}
	src, err := goimports.Process(file, buf.Bytes(), nil)
	if err != nil {
		return "", fmt.Errorf("golang: format %s: %w", file, err)
	}
	return string(src), nil
}

// GenDTO renders the request and response transfer types.
func (g *Generator) GenDTO(p *gen.EntityPlan) (*gen.File, error) {
	file := dtoPath(p.Module + ".go")
	src, err := g.render(dtoTmpl, file, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: file, Content: src}, nil
}

// GenRepository renders the GORM repository.
func (g *Generator) GenRepository(p *gen.EntityPlan) (*gen.File, error) {
	file := repoPath(p.Module + ".go")
	src, err := g.render(repositoryTmpl, file, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: file, Content: src}, nil
}

// GenService renders the service layer.
func (g *Generator) GenService(p *gen.EntityPlan) (*gen.File, error) {
	file := servicePath(p.Module + ".go")
	src, err := g.render(serviceTmpl, file, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: file, Content: src}, nil
}

// GenController renders the Gin handler.
func (g *Generator) GenController(p *gen.EntityPlan) (*gen.File, error) {
	file := handlerPath(p.Module + ".go")
	src, err := g.render(handlerTmpl, file, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: file, Content: src}, nil
}

// GenTest renders the model round-trip test.
func (g *Generator) GenTest(p *gen.EntityPlan) (*gen.File, error) {
	file := modelPath(p.Module + "_test.go")
	src, err := g.render(testTmpl, file, newData(p))
	if err != nil {
		return nil, err
	}
	return &gen.File{Path: file, Content: src}, nil
}

// GenProject renders the project scaffolding shared by all entities:
// the module file, the server entrypoint and the model support file.
func (g *Generator) GenProject(graph *gen.Graph) ([]*gen.File, error) {
	d := struct {
		Namespace string
		Project   string
		Entities  []*gen.Table
	}{
		Namespace: graph.Config.Namespace,
		Project:   graph.Config.Project,
		Entities:  graph.EntityTables(),
	}
	var files []*gen.File
	for _, t := range []struct {
		tmpl *template.Template
		path string
		raw  bool
	}{
		{gomodTmpl, "go.mod", true},
		{mainTmpl, path.Join("cmd", "server", "main.go"), false},
		{modelSupportTmpl, modelPath("model.go"), false},
	} {
		var buf bytes.Buffer
		if err := t.tmpl.Execute(&buf, d); err != nil {
			return nil, fmt.Errorf("golang: execute %s: %w", t.tmpl.Name(), err)
		}
		content := buf.String()
		if !t.raw {
			src, err := goimports.Process(t.path, buf.Bytes(), nil)
			if err != nil {
				return nil, fmt.Errorf("golang: format %s: %w", t.path, err)
			}
			content = string(src)
		}
		files = append(files, &gen.File{Path: t.path, Content: content})
	}
	return files, nil
}

var funcs = template.FuncMap{
	"pascal": naming.Pascal,
	"camel":  naming.Camel,
	"kebab":  naming.Kebab,
	"plural": naming.Plural,
}

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}
