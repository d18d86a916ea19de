// Package naming provides the pure string transformations shared by the
// schema model and every target generator: case conversion, pluralization,
// navigation-property derivation and reserved-word escaping.
//
// All functions are total. Empty input is returned unchanged, never an
// error; downstream generators rely on this permissive behavior.
package naming

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
	upper    = cases.Upper(language.English)
)

// ruleset returns the inflection ruleset used for singularization,
// extended with common initialisms so that derived identifiers keep
// their conventional casing (UserID, APIURL).
func ruleset() *inflect.Ruleset {
	r := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "DTO", "EOF",
		"GUID", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "JWT", "OTP",
		"RAM", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO", "TCP", "TLS",
		"TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM",
		"XML", "XSS",
	} {
		acronyms[w] = struct{}{}
		r.AddAcronym(w)
	}
	return r
}

// isSeparator reports if the rune is a word separator consumed by the
// case conversions.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// Pascal converts a separator-delimited or camelCase name to PascalCase.
//
//	user_info  => UserInfo
//	full-admin => FullAdmin
//	api_url    => APIURL
func Pascal(s string) string {
	if s == "" {
		return s
	}
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		if u := upper.String(w); isAcronym(u) {
			words[i] = u
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, "")
}

// Camel converts a separator-delimited or PascalCase name to camelCase.
// Word boundaries of the input are preserved; only the leading word is
// lowered ("HTTPCode" => "httpCode").
func Camel(s string) string {
	if s == "" {
		return s
	}
	return lowerFirstWord(Pascal(s))
}

// Snake converts a name to snake_case. Acronym runs stay together
// ("HTTPCode" => "http_code", "UserIDs" => "user_ids").
func Snake(s string) string {
	return delimit(s, '_')
}

// Kebab converts a name to kebab-case.
func Kebab(s string) string {
	return delimit(s, '-')
}

// Plural returns the plural form of a name following the generator's
// fixed rules: a trailing "y" preceded by a consonant becomes "ies",
// names ending in s, x, z, ch or sh take "es", anything else takes "s".
func Plural(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "y") && len(s) > 1 && !isVowel(rune(lower[len(lower)-2])):
		return s[:len(s)-1] + "ies"
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "z"), strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return s + "es"
	default:
		return s + "s"
	}
}

// Singular returns the singular form of a table name, used to derive
// entity names ("categories" => "category").
func Singular(s string) string {
	if s == "" {
		return s
	}
	return rules.Singularize(s)
}

// PropertyName derives a navigation-property name from a foreign-key
// column by stripping a trailing "_id" (case-insensitive). Names without
// the suffix are returned unchanged.
func PropertyName(column string) string {
	if len(column) > 3 && strings.EqualFold(column[len(column)-3:], "_id") {
		return column[:len(column)-3]
	}
	return column
}

// auditFields is the fixed set of framework-managed columns excluded
// from business-field generation. It is a constant of the generator,
// never derived from the schema.
var auditFields = map[string]struct{}{
	"id":         {},
	"active":     {},
	"created_at": {},
	"updated_at": {},
	"deleted_at": {},
	"created_by": {},
	"updated_by": {},
	"deleted_by": {},
}

// IsAuditField reports whether the column belongs to the fixed audit set.
// The match is case-insensitive.
func IsAuditField(column string) bool {
	_, ok := auditFields[strings.ToLower(column)]
	return ok
}

// AuditFields returns the audit column names in a stable order.
func AuditFields() []string {
	return []string{
		"id", "active",
		"created_at", "updated_at", "deleted_at",
		"created_by", "updated_by", "deleted_by",
	}
}

// EscapeKeyword suffixes the name with an underscore when it collides
// with a reserved word of the target ecosystem. Each target supplies its
// own set; the lookup is case-insensitive.
func EscapeKeyword(name string, keywords map[string]struct{}) string {
	if name == "" {
		return name
	}
	if _, ok := keywords[strings.ToLower(name)]; ok {
		return name + "_"
	}
	return name
}

// KeywordSet builds a lowercase membership set from a reserved-word list.
func KeywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

func isAcronym(w string) bool {
	_, ok := acronyms[w]
	return ok
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// capitalize uppercases the first rune and keeps the rest untouched, so
// internal capital boundaries of camelCase input survive the conversion.
func capitalize(w string) string {
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// lowerFirstWord lowers the leading word of a PascalCase name. A leading
// acronym run is lowered as a unit, leaving the next word intact
// ("HTTPCode" => "httpCode", "UserID" => "userID").
func lowerFirstWord(s string) string {
	r := []rune(s)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	// The last upper rune of a run followed by a lower rune starts the
	// next word ("HTTPCode": the "C" belongs to "Code").
	if n > 1 && n < len(r) {
		n--
	}
	if n == 0 {
		n = 1
	}
	for i := 0; i < n && i < len(r); i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}

// delimit rewrites a name with the given separator at word boundaries.
// An uppercase rune opens a new word when the previous rune is lower, or
// when it ends an acronym run followed by a lowercase rune. A trailing
// "s" after an acronym does not split ("UserIDs" => "user_ids").
func delimit(s string, sep rune) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	r := []rune(s)
	for i := 0; i < len(r); i++ {
		c := r[i]
		if isSeparator(c) {
			b.WriteRune(sep)
			continue
		}
		if i > 0 && unicode.IsUpper(c) {
			switch {
			case unicode.IsLower(r[i-1]):
				b.WriteRune(sep)
			case i+1 < len(r) && unicode.IsLower(r[i+1]) && !trailingPluralS(r, i+1):
				b.WriteRune(sep)
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}

// trailingPluralS reports if the runes from position i form a single
// final "s", the plural marker of an acronym run.
func trailingPluralS(r []rune, i int) bool {
	return i == len(r)-1 && r[i] == 's'
}
