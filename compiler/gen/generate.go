package gen

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Pack is an optional cross-cutting generator contributing its own
// independently-pathed files, gated by a feature switch.
type Pack interface {
	// Feature returns the feature flag gating the pack.
	Feature() Feature
	// Generate returns the pack's file map for the given config.
	Generate(c *Config) (*FileMap, error)
}

// Report is the side-channel counters exposed to the packaging layer.
type Report struct {
	// RunID identifies one generation request in logs.
	RunID string
	// Entities is the number of entity tables processed.
	Entities int
	// Files is the number of files in the merged map.
	Files int
}

// Result is the complete output of one generation request.
type Result struct {
	// Files is the ordered path→content map.
	Files *FileMap
	// Report carries the processing counters.
	Report Report
	// Diagnostics lists every degraded condition of the run, in
	// processing order.
	Diagnostics []Diagnostic
	// Snapshot holds the encoded graph when the snapshot feature is
	// enabled, nil otherwise.
	Snapshot []byte
}

// Assembler orchestrates a generation request: it plans every entity
// table, fans the renderers out across workers and recombines the
// results in declaration order so output stays byte-for-byte
// reproducible.
type Assembler struct {
	graph   *Graph
	target  TargetGenerator
	packs   []Pack
	workers int
}

// NewAssembler creates an assembler for the graph's configured target.
func NewAssembler(g *Graph) (*Assembler, error) {
	if g == nil || g.Config == nil {
		return nil, NewConfigError("Graph", nil, "graph with config required")
	}
	target, err := LookupTarget(g.Config.Target)
	if err != nil {
		return nil, err
	}
	return &Assembler{
		graph:   g,
		target:  target,
		workers: g.Config.Workers,
	}, nil
}

// WithPacks adds feature packs. A pack only runs when its feature is
// enabled in the config.
func (a *Assembler) WithPacks(packs ...Pack) *Assembler {
	a.packs = append(a.packs, packs...)
	return a
}

// WithWorkers sets the number of parallel workers.
func (a *Assembler) WithWorkers(n int) *Assembler {
	if n > 0 {
		a.workers = n
	}
	return a
}

// Assemble runs the request. Planning is sequential: the relationship
// index and the diagnostics list are settled before any renderer runs.
// Only the per-table rendering fans out, one task per table.
func (a *Assembler) Assemble(ctx context.Context) (*Result, error) {
	tables := a.graph.EntityTables()
	diags := a.graph.Diagnostics()

	plans := make([]*EntityPlan, len(tables))
	for i, t := range tables {
		plan, planDiags := NewPlan(a.graph, t, a.target.Mapper())
		plans[i] = plan
		diags = append(diags, planDiags...)
	}

	workers := a.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	slots := make([][]*File, len(plans))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(workers)
	for i, plan := range plans {
		i, plan := i, plan
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := renderTable(a.target, plan)
			if err != nil {
				return fmt.Errorf("apigen: render %s: %w", plan.Table.Name, err)
			}
			slots[i] = files
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}

	// Recombine in declaration order before merging anything else.
	files := NewFileMap()
	for _, slot := range slots {
		for _, f := range slot {
			if !files.Add(f) {
				diags = append(diags, Diagnostic{Kind: DiagPathCollision, Detail: f.Path})
			}
		}
	}

	if pg, ok := a.target.(ProjectGenerator); ok {
		projectFiles, err := pg.GenProject(a.graph)
		if err != nil {
			return nil, fmt.Errorf("apigen: render project files: %w", err)
		}
		for _, f := range projectFiles {
			if !files.Add(f) {
				diags = append(diags, Diagnostic{Kind: DiagPathCollision, Detail: f.Path})
			}
		}
	}

	for _, pack := range a.packs {
		enabled, err := a.graph.Config.FeatureEnabled(pack.Feature().Name)
		if err != nil {
			return nil, err
		}
		if !enabled {
			continue
		}
		packFiles, err := pack.Generate(a.graph.Config)
		if err != nil {
			return nil, fmt.Errorf("apigen: pack %s: %w", pack.Feature().Name, err)
		}
		diags = append(diags, files.Merge(packFiles)...)
	}

	result := &Result{
		Files: files,
		Report: Report{
			RunID:    uuid.NewString(),
			Entities: len(tables),
			Files:    files.Len(),
		},
		Diagnostics: diags,
	}
	if enabled, _ := a.graph.Config.FeatureEnabled(FeatureSnapshot.Name); enabled {
		snap, err := a.graph.EncodeSnapshot()
		if err != nil {
			return nil, err
		}
		result.Snapshot = snap
	}
	return result, nil
}

// renderTable invokes the six artifact renderers for one plan and
// returns the files in the fixed artifact order.
func renderTable(target TargetGenerator, plan *EntityPlan) ([]*File, error) {
	renderers := []func(*EntityPlan) (*File, error){
		target.GenEntity,
		target.GenDTO,
		target.GenRepository,
		target.GenService,
		target.GenController,
		target.GenTest,
	}
	files := make([]*File, 0, len(renderers))
	for _, render := range renderers {
		f, err := render(plan)
		if err != nil {
			return nil, err
		}
		if f != nil {
			files = append(files, f)
		}
	}
	return files, nil
}
