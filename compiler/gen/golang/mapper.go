// Package golang generates a Go + Gin + GORM project: model structs,
// transfer objects, repositories, services, HTTP handlers and tests.
// Entities are emitted with jennifer; the remaining artifacts are
// template-rendered and cleaned up with the imports tool.
package golang

import (
	"strings"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/naming"
)

// Name is the target-ecosystem identifier.
const Name = "go"

// fallback is the placeholder type emitted for unmapped source types.
const fallback = "any"

// types maps source types to Go types. Optionality is structural:
// nullable columns map to pointer types, so the nullable table differs
// for every entry.
var types = map[string]string{
	gen.SourceString:        "string",
	gen.SourceText:          "string",
	gen.SourceInteger:       "int",
	gen.SourceLong:          "int64",
	gen.SourceShort:         "int16",
	gen.SourceFloat:         "float32",
	gen.SourceDouble:        "float64",
	gen.SourceBigDecimal:    "float64",
	gen.SourceBoolean:       "bool",
	gen.SourceUUID:          "uuid.UUID",
	gen.SourceInstant:       "time.Time",
	gen.SourceLocalDate:     "time.Time",
	gen.SourceLocalDateTime: "time.Time",
	gen.SourceLocalTime:     "time.Time",
	gen.SourceBytes:         "[]byte",
}

// imports maps source types to the module of the mapped type.
var imports = map[string]string{
	gen.SourceUUID:          "github.com/google/uuid",
	gen.SourceInstant:       "time",
	gen.SourceLocalDate:     "time",
	gen.SourceLocalDateTime: "time",
	gen.SourceLocalTime:     "time",
}

// defaults maps non-pointer Go types to a zero-value literal.
var defaults = map[string]string{
	"string":    `""`,
	"int":       "0",
	"int16":     "0",
	"int64":     "0",
	"float32":   "0",
	"float64":   "0",
	"bool":      "false",
	"uuid.UUID": "uuid.Nil",
	"time.Time": "time.Time{}",
	"[]byte":    "nil",
	fallback:    "nil",
}

// keywords are Go keywords and predeclared identifiers that would
// shadow badly as field or variable names.
var keywords = naming.KeywordSet(
	"break", "case", "chan", "const", "continue", "default", "defer",
	"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
	"interface", "map", "package", "range", "return", "select", "struct",
	"switch", "type", "var",
	"any", "append", "cap", "copy", "error", "len", "make", "new", "nil",
)

// Mapper implements gen.TypeMapper for the Go ecosystem.
type Mapper struct{}

// Target returns the target identifier.
func (Mapper) Target() string { return Name }

// Map returns the Go type for a source type: the plain type for
// non-nullable columns, the pointer form for nullable ones.
func (Mapper) Map(source string, nullable bool) string {
	t, ok := types[source]
	if !ok {
		t = fallback
	}
	if nullable {
		return "*" + t
	}
	return t
}

// Known reports if the source type is present in the mapping table.
func (Mapper) Known(source string) bool {
	_, ok := types[source]
	return ok
}

// Fallback returns the placeholder type for unmapped source types.
func (Mapper) Fallback() string { return fallback }

// Default returns the zero-value literal for a mapped type. Pointer
// types default to nil.
func (Mapper) Default(mapped string) string {
	if strings.HasPrefix(mapped, "*") {
		return "nil"
	}
	if d, ok := defaults[mapped]; ok {
		return d
	}
	return "nil"
}

// Import returns the module needed for the mapped type.
func (Mapper) Import(source string, _ bool) string {
	return imports[source]
}

// PrimaryKeyType returns the identifier type of generated entities.
func (Mapper) PrimaryKeyType() string { return "int64" }

// ListType returns the slice type for an element type.
func (Mapper) ListType(elem string) string { return "[]" + elem }

// CollectionType returns the navigation-collection type of relation
// fields.
func (Mapper) CollectionType(elem string) string { return "[]*" + elem }

// EscapeIdentifier suffixes identifiers colliding with Go keywords and
// predeclared names.
func (Mapper) EscapeIdentifier(name string) string {
	return naming.EscapeKeyword(name, keywords)
}
