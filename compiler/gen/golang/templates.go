package golang

var dtoTmpl = parse("dto", `// Code generated by apigen. DO NOT EDIT.

// Package dto carries the request and response shapes of the HTTP API.
package dto

import (
	"time"

	"github.com/google/uuid"

	"{{.Namespace}}/internal/model"
)

// {{.Entity}}Request is the create and update payload for {{.Route}}.
type {{.Entity}}Request struct {
{{- range .Fields}}
	{{pascal .Name}} {{.Type}} ` + "`" + `json:"{{.Column.Name}}"{{if not .Nullable}} binding:"required"{{end}}` + "`" + `
{{- end}}
{{- range .Outgoing}}
	{{pascal .Name}}ID *int64 ` + "`" + `json:"{{.FKColumn}}"` + "`" + `
{{- end}}
}

// {{.Entity}}Response is the read shape of a single {{camel .Entity}}.
type {{.Entity}}Response struct {
	ID int64 ` + "`" + `json:"id"` + "`" + `
{{- range .Fields}}
	{{pascal .Name}} {{.Type}} ` + "`" + `json:"{{.Column.Name}}"` + "`" + `
{{- end}}
{{- range .Outgoing}}
	{{pascal .Name}}ID *int64 ` + "`" + `json:"{{.FKColumn}}"` + "`" + `
{{- end}}
}

// New{{.Entity}}Response maps a model to its response shape.
func New{{.Entity}}Response(m *model.{{.Entity}}) *{{.Entity}}Response {
	return &{{.Entity}}Response{
		ID: m.ID,
{{- range .Fields}}
		{{pascal .Name}}: m.{{pascal .Name}},
{{- end}}
{{- range .Outgoing}}
		{{pascal .Name}}ID: m.{{pascal .Name}}ID,
{{- end}}
	}
}

// New{{.Entity}}ResponseList maps a model slice to response shapes.
func New{{.Entity}}ResponseList(ms []*model.{{.Entity}}) []*{{.Entity}}Response {
	out := make([]*{{.Entity}}Response, 0, len(ms))
	for _, m := range ms {
		out = append(out, New{{.Entity}}Response(m))
	}
	return out
}
`)

var repositoryTmpl = parse("repository", `// Code generated by apigen. DO NOT EDIT.

package repository

import (
	"context"

	"gorm.io/gorm"

	"{{.Namespace}}/internal/model"
)

// {{.Entity}}Repository persists {{.Entity}} rows.
type {{.Entity}}Repository struct {
	db *gorm.DB
}

// New{{.Entity}}Repository returns a repository bound to db.
func New{{.Entity}}Repository(db *gorm.DB) *{{.Entity}}Repository {
	return &{{.Entity}}Repository{db: db}
}

// List returns all rows.
func (r *{{.Entity}}Repository) List(ctx context.Context) ([]*model.{{.Entity}}, error) {
	var rows []*model.{{.Entity}}
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

// Get returns the row with the given id.
func (r *{{.Entity}}Repository) Get(ctx context.Context, id int64) (*model.{{.Entity}}, error) {
	var row model.{{.Entity}}
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the row and fills its id.
func (r *{{.Entity}}Repository) Create(ctx context.Context, row *model.{{.Entity}}) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update saves all fields of the row.
func (r *{{.Entity}}Repository) Update(ctx context.Context, row *model.{{.Entity}}) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// Delete removes the row with the given id.
func (r *{{.Entity}}Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.{{.Entity}}{}, id).Error
}
`)

var serviceTmpl = parse("service", `// Code generated by apigen. DO NOT EDIT.

package service

import (
	"context"

	"{{.Namespace}}/internal/dto"
	"{{.Namespace}}/internal/model"
	"{{.Namespace}}/internal/repository"
)

// {{.Entity}}Service implements the business operations on {{.Route}}.
type {{.Entity}}Service struct {
	repo *repository.{{.Entity}}Repository
}

// New{{.Entity}}Service returns a service backed by repo.
func New{{.Entity}}Service(repo *repository.{{.Entity}}Repository) *{{.Entity}}Service {
	return &{{.Entity}}Service{repo: repo}
}

// List returns all {{.Route}}.
func (s *{{.Entity}}Service) List(ctx context.Context) ([]*model.{{.Entity}}, error) {
	return s.repo.List(ctx)
}

// Get returns the {{camel .Entity}} with the given id.
func (s *{{.Entity}}Service) Get(ctx context.Context, id int64) (*model.{{.Entity}}, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new {{camel .Entity}} from the request payload.
func (s *{{.Entity}}Service) Create(ctx context.Context, req *dto.{{.Entity}}Request) (*model.{{.Entity}}, error) {
	row := &model.{{.Entity}}{
{{- range .Fields}}
		{{pascal .Name}}: req.{{pascal .Name}},
{{- end}}
{{- range .Outgoing}}
		{{pascal .Name}}ID: req.{{pascal .Name}}ID,
{{- end}}
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Update overwrites the {{camel .Entity}} with the given id.
func (s *{{.Entity}}Service) Update(ctx context.Context, id int64, req *dto.{{.Entity}}Request) (*model.{{.Entity}}, error) {
	row, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
{{- range .Fields}}
	row.{{pascal .Name}} = req.{{pascal .Name}}
{{- end}}
{{- range .Outgoing}}
	row.{{pascal .Name}}ID = req.{{pascal .Name}}ID
{{- end}}
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes the {{camel .Entity}} with the given id.
func (s *{{.Entity}}Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
`)

var handlerTmpl = parse("handler", `// Code generated by apigen. DO NOT EDIT.

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"{{.Namespace}}/internal/dto"
	"{{.Namespace}}/internal/service"
)

// {{.Entity}}Handler exposes {{.Route}} over HTTP.
type {{.Entity}}Handler struct {
	svc *service.{{.Entity}}Service
}

// Register{{.Entity}}Routes mounts the {{.Route}} endpoints on r.
func Register{{.Entity}}Routes(r gin.IRouter, svc *service.{{.Entity}}Service) {
	h := &{{.Entity}}Handler{svc: svc}
	grp := r.Group("/api/{{.Route}}")
	grp.GET("", h.list)
	grp.GET("/:id", h.get)
	grp.POST("", h.create)
	grp.PUT("/:id", h.update)
	grp.DELETE("/:id", h.delete)
}

func (h *{{.Entity}}Handler) list(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.New{{.Entity}}ResponseList(rows))
}

func (h *{{.Entity}}Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	row, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.New{{.Entity}}Response(row))
}

func (h *{{.Entity}}Handler) create(c *gin.Context) {
	var req dto.{{.Entity}}Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dto.New{{.Entity}}Response(row))
}

func (h *{{.Entity}}Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.{{.Entity}}Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := h.svc.Update(c.Request.Context(), id, &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.New{{.Entity}}Response(row))
}

func (h *{{.Entity}}Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
`)

var testTmpl = parse("test", `// Code generated by apigen. DO NOT EDIT.

package model

import "testing"

func Test{{.Entity}}TableName(t *testing.T) {
	if got := ({{.Entity}}{}).TableName(); got != "{{.Table.Name}}" {
		t.Fatalf("TableName() = %q, want %q", got, "{{.Table.Name}}")
	}
}

func Test{{.Entity}}ZeroID(t *testing.T) {
	var m {{.Entity}}
	if m.ID != 0 {
		t.Fatalf("zero value ID = %d, want 0", m.ID)
	}
}
`)

var gomodTmpl = parse("gomod", `module {{.Namespace}}

go 1.24

require (
	github.com/gin-gonic/gin v1.10.0
	github.com/google/uuid v1.6.0
	gorm.io/driver/sqlite v1.5.7
	gorm.io/gorm v1.25.12
)
`)

var mainTmpl = parse("main", `// Code generated by apigen. DO NOT EDIT.

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"{{.Namespace}}/internal/handler"
	"{{.Namespace}}/internal/model"
	"{{.Namespace}}/internal/repository"
	"{{.Namespace}}/internal/service"
)

func main() {
	db, err := gorm.Open(sqlite.Open("{{.Project}}.db"), &gorm.Config{})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	r := gin.Default()
{{- range .Entities}}
	handler.Register{{.EntityName}}Routes(r, service.New{{.EntityName}}Service(repository.New{{.EntityName}}Repository(db)))
{{- end}}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
`)

var modelSupportTmpl = parse("modelsupport", `// Code generated by apigen. DO NOT EDIT.

// Package model holds the persistence structs mapped to the source schema.
package model

// EntityIndex describes a secondary index declared in the source schema.
type EntityIndex struct {
	Name    string
	Columns []string
	Unique  bool
}

// AllModels lists every generated model, in schema declaration order.
func AllModels() []any {
	return []any{
{{- range .Entities}}
		&{{.EntityName}}{},
{{- end}}
	}
}
`)
