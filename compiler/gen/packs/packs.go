// Package packs bundles the optional feature generators. Each pack is
// an independent generator gated by a feature flag and emits its files
// under a path namespace no other pack or target writes to.
package packs

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/JNZader/apigen-sub011/compiler/gen"
)

// All returns every built-in pack, in merge order.
func All() []gen.Pack {
	return []gen.Pack{
		SocialLogin{},
		Mail{},
		FileStorage{},
		PasswordReset{},
	}
}

// packData is the template context shared by all packs.
type packData struct {
	Project   string
	Namespace string

	// NsDir is the namespace as a directory path, for JVM-style source
	// trees.
	NsDir string

	Providers []string
	Backend   string

	// TTLMinutes is the password reset token lifetime.
	TTLMinutes int
}

func newPackData(c *gen.Config) *packData {
	return &packData{
		Project:    c.Project,
		Namespace:  c.Namespace,
		NsDir:      strings.ReplaceAll(c.Namespace, ".", "/"),
		Providers:  c.Providers,
		Backend:    c.StorageBackend,
		TTLMinutes: c.ResetTokenTTL,
	}
}

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
}

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

// render executes tmpl into a file at path and adds it to fm.
func render(fm *gen.FileMap, tmpl *template.Template, path string, d *packData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return fmt.Errorf("packs: execute %s: %w", tmpl.Name(), err)
	}
	fm.Add(&gen.File{Path: path, Content: buf.String()})
	return nil
}
