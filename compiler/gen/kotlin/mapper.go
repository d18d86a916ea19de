// Package kotlin generates a Kotlin + Spring Boot project: JPA entities,
// transfer objects, Spring Data repositories, services, REST controllers
// and JUnit test scaffolds.
package kotlin

import (
	"github.com/JNZader/apigen-sub011/compiler/gen"
	"github.com/JNZader/apigen-sub011/naming"
)

// Name is the target-ecosystem identifier.
const Name = "kotlin"

// fallback is the placeholder type emitted for unmapped source types.
const fallback = "Any"

// types maps source types to Kotlin non-nullable types. The nullable
// table is kept separately: Kotlin optionality is a structural marker
// on the type, not a wrapper.
var types = map[string]string{
	gen.SourceString:        "String",
	gen.SourceText:          "String",
	gen.SourceInteger:       "Int",
	gen.SourceLong:          "Long",
	gen.SourceShort:         "Short",
	gen.SourceFloat:         "Float",
	gen.SourceDouble:        "Double",
	gen.SourceBigDecimal:    "BigDecimal",
	gen.SourceBoolean:       "Boolean",
	gen.SourceUUID:          "UUID",
	gen.SourceInstant:       "Instant",
	gen.SourceLocalDate:     "LocalDate",
	gen.SourceLocalDateTime: "LocalDateTime",
	gen.SourceLocalTime:     "LocalTime",
	gen.SourceBytes:         "ByteArray",
}

var nullableTypes = map[string]string{
	gen.SourceString:        "String?",
	gen.SourceText:          "String?",
	gen.SourceInteger:       "Int?",
	gen.SourceLong:          "Long?",
	gen.SourceShort:         "Short?",
	gen.SourceFloat:         "Float?",
	gen.SourceDouble:        "Double?",
	gen.SourceBigDecimal:    "BigDecimal?",
	gen.SourceBoolean:       "Boolean?",
	gen.SourceUUID:          "UUID?",
	gen.SourceInstant:       "Instant?",
	gen.SourceLocalDate:     "LocalDate?",
	gen.SourceLocalDateTime: "LocalDateTime?",
	gen.SourceLocalTime:     "LocalTime?",
	gen.SourceBytes:         "ByteArray?",
}

// imports maps source types to the Java module each mapped type needs.
// Built-ins map to nothing.
var imports = map[string]string{
	gen.SourceBigDecimal:    "java.math.BigDecimal",
	gen.SourceUUID:          "java.util.UUID",
	gen.SourceInstant:       "java.time.Instant",
	gen.SourceLocalDate:     "java.time.LocalDate",
	gen.SourceLocalDateTime: "java.time.LocalDateTime",
	gen.SourceLocalTime:     "java.time.LocalTime",
}

// defaults maps non-nullable Kotlin types to a safe zero-value literal
// for constructors and test fixtures. Nullable types default to null.
var defaults = map[string]string{
	"String":        `""`,
	"Int":           "0",
	"Long":          "0L",
	"Short":         "0",
	"Float":         "0.0f",
	"Double":        "0.0",
	"BigDecimal":    "BigDecimal.ZERO",
	"Boolean":       "false",
	"UUID":          "UUID.randomUUID()",
	"Instant":       "Instant.now()",
	"LocalDate":     "LocalDate.now()",
	"LocalDateTime": "LocalDateTime.now()",
	"LocalTime":     "LocalTime.now()",
	"ByteArray":     "ByteArray(0)",
	fallback:        "Any()",
}

// keywords are Kotlin hard and soft keywords that cannot name a property
// without escaping.
var keywords = naming.KeywordSet(
	"as", "break", "class", "continue", "do", "else", "false", "for",
	"fun", "if", "in", "interface", "is", "null", "object", "package",
	"return", "super", "this", "throw", "true", "try", "typealias",
	"typeof", "val", "var", "when", "while",
)

// Mapper implements gen.TypeMapper for the Kotlin ecosystem.
type Mapper struct{}

// Target returns the target identifier.
func (Mapper) Target() string { return Name }

// Map returns the Kotlin type for a source type. Unmapped types degrade
// to the fallback.
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
	return "Any()"
}

// Import returns the Java module needed for the mapped type.
func (Mapper) Import(source string, _ bool) string {
	return imports[source]
}

// PrimaryKeyType returns the identifier type of generated entities.
func (Mapper) PrimaryKeyType() string { return "Long" }

// ListType returns the ordered-collection type.
func (Mapper) ListType(elem string) string { return "List<" + elem + ">" }

// CollectionType returns the navigation-collection type of relation
// fields.
func (Mapper) CollectionType(elem string) string { return "MutableSet<" + elem + ">" }

// EscapeIdentifier suffixes identifiers colliding with Kotlin keywords.
func (Mapper) EscapeIdentifier(name string) string {
	return naming.EscapeKeyword(name, keywords)
}
