package gen

import (
	"fmt"
	"sort"
	"sync"
)

// Canonical source types delivered by the DDL parser. Each target keeps
// an exhaustive mapping table for this set; anything outside it degrades
// to the target's fallback type.
const (
	SourceString        = "String"
	SourceText          = "Text"
	SourceInteger       = "Integer"
	SourceLong          = "Long"
	SourceShort         = "Short"
	SourceFloat         = "Float"
	SourceDouble        = "Double"
	SourceBigDecimal    = "BigDecimal"
	SourceBoolean       = "Boolean"
	SourceUUID          = "UUID"
	SourceInstant       = "Instant"
	SourceLocalDate     = "LocalDate"
	SourceLocalDateTime = "LocalDateTime"
	SourceLocalTime     = "LocalTime"
	SourceBytes         = "Bytes"
)

// SourceTypes returns the canonical source-type set in a stable order.
func SourceTypes() []string {
	return []string{
		SourceString, SourceText, SourceInteger, SourceLong, SourceShort,
		SourceFloat, SourceDouble, SourceBigDecimal, SourceBoolean,
		SourceUUID, SourceInstant, SourceLocalDate, SourceLocalDateTime,
		SourceLocalTime, SourceBytes,
	}
}

// TypeMapper maps symbolic source types onto one target ecosystem.
// Implementations keep separate nullable and non-nullable tables because
// optionality is represented structurally differently per ecosystem
// (nullable marker, pointer type, union type), and every function is
// total: unmapped source types return the fallback, never an error.
type TypeMapper interface {
	// Target returns the target-ecosystem identifier.
	Target() string

	// Map returns the target type for a source type. For nullable
	// columns the target's optional representation is returned.
	Map(source string, nullable bool) string

	// Known reports if the source type is present in the mapping table.
	// Unknown types map to Fallback.
	Known(source string) bool

	// Fallback returns the documented placeholder type emitted for
	// unmapped source types.
	Fallback() string

	// Default returns a safe zero-value literal for a mapped type, used
	// in generated constructors and test fixtures.
	Default(mapped string) string

	// Import returns the import/using/require path needed for the
	// mapped type, or "" for built-ins.
	Import(source string, nullable bool) string

	// PrimaryKeyType returns the fixed identifier type of the target.
	PrimaryKeyType() string

	// ListType returns the ordered-collection type for an element type.
	ListType(elem string) string

	// CollectionType returns the navigation-collection type used for
	// generated relation fields.
	CollectionType(elem string) string

	// EscapeIdentifier resolves collisions with the target's reserved
	// words by suffixing, never by failing.
	EscapeIdentifier(name string) string
}

// TargetGenerator renders the per-table artifacts of one target
// ecosystem. Implementations are stateless per call; the same plan must
// always render byte-identical files.
type TargetGenerator interface {
	// Target returns the target-ecosystem identifier.
	Target() string
	// Mapper returns the target's type mapper.
	Mapper() TypeMapper
	ArtifactGenerator
}

// ArtifactGenerator renders the six per-table artifact kinds. Each
// method returns the files for one table, in emit order.
type ArtifactGenerator interface {
	// GenEntity renders the persistence entity.
	GenEntity(p *EntityPlan) (*File, error)
	// GenDTO renders the request/response transfer objects.
	GenDTO(p *EntityPlan) (*File, error)
	// GenRepository renders the data-access layer.
	GenRepository(p *EntityPlan) (*File, error)
	// GenService renders the service layer.
	GenService(p *EntityPlan) (*File, error)
	// GenController renders the HTTP controller.
	GenController(p *EntityPlan) (*File, error)
	// GenTest renders the entity test scaffold.
	GenTest(p *EntityPlan) (*File, error)
}

// ProjectGenerator is an optional capability: targets implementing it
// contribute project-level files once per run (entrypoint, build
// manifest stubs). Detected by type assertion.
type ProjectGenerator interface {
	GenProject(g *Graph) ([]*File, error)
}

// registry holds the registered target generators, keyed by identifier.
// Population happens from each target package's init; resolution is a
// plain map lookup, no reflection.
var registry = struct {
	sync.RWMutex
	targets map[string]TargetGenerator
}{targets: make(map[string]TargetGenerator)}

// Register makes a target generator available under its identifier.
// Registering two generators for one identifier panics: it is a
// programming error, caught at startup.
func Register(tg TargetGenerator) {
	registry.Lock()
	defer registry.Unlock()
	name := tg.Target()
	if _, dup := registry.targets[name]; dup {
		panic(fmt.Sprintf("apigen: target %q registered twice", name))
	}
	registry.targets[name] = tg
}

// LookupTarget returns the generator registered for the identifier.
func LookupTarget(name string) (TargetGenerator, error) {
	registry.RLock()
	defer registry.RUnlock()
	tg, ok := registry.targets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return tg, nil
}

// Targets returns the registered target identifiers, sorted.
func Targets() []string {
	registry.RLock()
	defer registry.RUnlock()
	names := make([]string, 0, len(registry.targets))
	for name := range registry.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
