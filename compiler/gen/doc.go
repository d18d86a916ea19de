// Package gen is the core of the source generation engine: it turns the
// immutable schema model delivered by the external DDL parser into an
// ordered file map for one target ecosystem.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	load.SchemaModel (parser output)
//	        ↓
//	   Graph (immutable, derived names, relationship index)
//	        ↓
//	   EntityPlan (per table: fields, relations, indexes, mapped types)
//	        ↓
//	   TargetGenerator (per-ecosystem renderers)
//	        ↓
//	   FileMap + Report + Diagnostics
//
// # Key Types
//
//   - Graph: all tables with the relationship index, built once per request
//   - Table: one entity table with derived EntityName and ModuleName
//   - Relationship / ManyToMany: relations inferred from foreign-key topology
//   - TypeMapper: per-target source-type mapping contract
//   - TargetGenerator: per-target artifact renderers (entity, DTO,
//     repository, service, controller, test)
//   - Assembler: orchestration, parallel fan-out, deterministic merge
//
// Targets register themselves by identifier (see Register); the kotlin,
// dotnet and golang packages each provide one implementation.
//
// # Failure semantics
//
// The resolution and mapping layer is total: dangling foreign keys,
// unmatched junction sides and unmapped source types never abort a run.
// The run degrades instead (relation skipped, fallback type emitted)
// and every degraded condition is surfaced as a Diagnostic next to the
// file map instead of being swallowed.
package gen
