// Package dotnet generates a C# + ASP.NET Core project: EF Core
// entities, transfer objects, repositories, services, API controllers
// and xUnit test scaffolds.
package dotnet

import (
	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/naming"
)

// Name is the target-ecosystem identifier.
const Name = "dotnet"

// fallback is the placeholder type emitted for unmapped source types.
const fallback = "object"

// types maps source types to non-nullable C# types. With nullable
// reference types enabled the nullable table differs for every entry,
// value and reference types alike.
var types = map[string]string{
	gen.SourceString:        "string",
	gen.SourceText:          "string",
	gen.SourceInteger:       "int",
	gen.SourceLong:          "long",
	gen.SourceShort:         "short",
	gen.SourceFloat:         "float",
	gen.SourceDouble:        "double",
	gen.SourceBigDecimal:    "decimal",
	gen.SourceBoolean:       "bool",
	gen.SourceUUID:          "Guid",
	gen.SourceInstant:       "DateTimeOffset",
	gen.SourceLocalDate:     "DateOnly",
	gen.SourceLocalDateTime: "DateTime",
	gen.SourceLocalTime:     "TimeOnly",
	gen.SourceBytes:         "byte[]",
}

var nullableTypes = map[string]string{
	gen.SourceString:        "string?",
	gen.SourceText:          "string?",
	gen.SourceInteger:       "int?",
	gen.SourceLong:          "long?",
	gen.SourceShort:         "short?",
	gen.SourceFloat:         "float?",
	gen.SourceDouble:        "double?",
	gen.SourceBigDecimal:    "decimal?",
	gen.SourceBoolean:       "bool?",
	gen.SourceUUID:          "Guid?",
	gen.SourceInstant:       "DateTimeOffset?",
	gen.SourceLocalDate:     "DateOnly?",
	gen.SourceLocalDateTime: "DateTime?",
	gen.SourceLocalTime:     "TimeOnly?",
	gen.SourceBytes:         "byte[]?",
}

// imports maps source types to the namespace of the mapped type.
// Everything here lives in System, which generated files always use.
var imports = map[string]string{
	gen.SourceUUID:          "System",
	gen.SourceInstant:       "System",
	gen.SourceLocalDate:     "System",
	gen.SourceLocalDateTime: "System",
	gen.SourceLocalTime:     "System",
}

// defaults maps non-nullable C# types to a safe zero-value literal.
var defaults = map[string]string{
	"string":         "string.Empty",
	"int":            "0",
	"long":           "0L",
	"short":          "0",
	"float":          "0f",
	"double":         "0d",
	"decimal":        "0m",
	"bool":           "false",
	"Guid":           "Guid.Empty",
	"DateTimeOffset": "DateTimeOffset.MinValue",
	"DateOnly":       "DateOnly.MinValue",
	"DateTime":       "DateTime.MinValue",
	"TimeOnly":       "TimeOnly.MinValue",
	"byte[]":         "Array.Empty<byte>()",
	fallback:         "new object()",
}

// keywords are C# reserved words that cannot name a member directly.
var keywords = naming.KeywordSet(
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
	"char", "checked", "class", "const", "continue", "decimal", "default",
	"delegate", "do", "double", "else", "enum", "event", "explicit",
	"extern", "false", "finally", "fixed", "float", "for", "foreach",
	"goto", "if", "implicit", "in", "int", "interface", "internal", "is",
	"lock", "long", "namespace", "new", "null", "object", "operator",
	"out", "override", "params", "private", "protected", "public",
	"readonly", "ref", "return", "sbyte", "sealed", "short", "sizeof",
	"stackalloc", "static", "string", "struct", "switch", "this", "throw",
	"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe",
	"ushort", "using", "virtual", "void", "volatile", "while",
)

// Mapper implements gen.TypeMapper for the .NET ecosystem.
type Mapper struct{}

// Target returns the target identifier.
func (Mapper) Target() string { return Name }

// Map returns the C# type for a source type. Unmapped types degrade to
// the fallback.
func (Mapper) Map(source string, nullable bool) string {
	table := types
	if nullable {
		table = nullableTypes
	}
	if t, ok := table[source]; ok {
		return t
	}
	if nullable {
		return fallback + "?"
	}
	return fallback
}

// Known reports if the source type is present in the mapping table.
func (Mapper) Known(source string) bool {
	_, ok := types[source]
	return ok
}

// Fallback returns the placeholder type for unmapped source types.
func (Mapper) Fallback() string { return fallback }

// Default returns the zero-value literal for a mapped type.
func (Mapper) Default(mapped string) string {
	if len(mapped) > 0 && mapped[len(mapped)-1] == '?' {
		return "null"
	}
	if d, ok := defaults[mapped]; ok {
		return d
	}
	return "new object()"
}

// Import returns the namespace needed for the mapped type.
func (Mapper) Import(source string, _ bool) string {
	return imports[source]
}

// PrimaryKeyType returns the identifier type of generated entities.
func (Mapper) PrimaryKeyType() string { return "long" }

// ListType returns the ordered-collection type.
func (Mapper) ListType(elem string) string { return "List<" + elem + ">" }

// CollectionType returns the navigation-collection type of relation
// fields.
func (Mapper) CollectionType(elem string) string { return "ICollection<" + elem + ">" }

// EscapeIdentifier suffixes identifiers colliding with C# keywords.
func (Mapper) EscapeIdentifier(name string) string {
	return naming.EscapeKeyword(name, keywords)
}
