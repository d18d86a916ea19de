// apigen reads a database schema export and a project configuration and
// writes a generated API project to disk.
// Run: go run ./cmd/apigen -schema schema.json -config apigen.yml -out ./out
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/JNZader/apigen-sub011/compiler/gen"
	_ "github.com/JNZader/apigen-sub011/compiler/gen/dotnet"
	_ "github.com/JNZader/apigen-sub011/compiler/gen/golang"
	_ "github.com/JNZader/apigen-sub011/compiler/gen/kotlin"
	"github.com/JNZader/apigen-sub011/compiler/gen/packs"
	"github.com/JNZader/apigen-sub011/compiler/load"
)

func main() {
	var (
		schemaPath = flag.String("schema", "", "path to the schema export (JSON)")
		configPath = flag.String("config", "", "path to the project configuration (YAML)")
		outDir     = flag.String("out", ".", "output directory")
		watch      = flag.Bool("watch", false, "regenerate when the schema or config changes")
		workers    = flag.Int("workers", 0, "parallel render workers (0 = number of CPUs)")
		quiet      = flag.Bool("quiet", false, "suppress per-run diagnostics")
	)
	flag.Parse()

	if *schemaPath == "" || *configPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.SetFlags(0)
	log.SetPrefix("apigen: ")

	if err := run(*schemaPath, *configPath, *outDir, *workers, *watch, *quiet); err != nil {
		log.Fatal(err)
	}
}

func run(schemaPath, configPath, outDir string, workers int, watch, quiet bool) error {
	if err := generate(schemaPath, configPath, outDir, workers, quiet); err != nil {
		if !watch {
			return err
		}
		// In watch mode a broken input is recoverable: report and wait
		// for the next edit.
		log.Printf("generate: %v", err)
	}
	if !watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories: editors often replace files on save,
	// which drops a watch placed on the file itself.
	for _, dir := range watchDirs(schemaPath, configPath) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	log.Printf("watching %s and %s", schemaPath, configPath)

	inputs := map[string]bool{
		filepath.Clean(schemaPath): true,
		filepath.Clean(configPath): true,
	}
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !inputs[filepath.Clean(ev.Name)] {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Printf("%s changed, regenerating", ev.Name)
			if err := generate(schemaPath, configPath, outDir, workers, quiet); err != nil {
				log.Printf("generate: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

func watchDirs(paths ...string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// generate runs one full request: load, resolve, assemble, write.
func generate(schemaPath, configPath, outDir string, workers int, quiet bool) error {
	model, err := load.ReadSchema(schemaPath)
	if err != nil {
		return err
	}
	project, err := load.ReadProject(configPath)
	if err != nil {
		return err
	}
	if err := project.Validate(gen.Targets()); err != nil {
		return err
	}
	config, err := gen.ConfigFromProject(project)
	if err != nil {
		return err
	}
	if workers > 0 {
		config.Workers = workers
	}

	graph, err := gen.NewGraph(config, model)
	if err != nil {
		return err
	}
	assembler, err := gen.NewAssembler(graph)
	if err != nil {
		return err
	}
	result, err := assembler.WithPacks(packs.All()...).Assemble(context.Background())
	if err != nil {
		return err
	}

	for _, f := range result.Files.Files() {
		target := filepath.Join(outDir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(target, []byte(f.Content), 0o644); err != nil {
			return err
		}
	}

	log.Printf("run %s: %d entities, %d files written to %s",
		result.Report.RunID, result.Report.Entities, result.Report.Files, outDir)
	if !quiet {
		for _, d := range result.Diagnostics {
			log.Printf("warning: %s", d)
		}
	}
	return nil
}
