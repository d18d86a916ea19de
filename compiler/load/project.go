package load

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Project is the per-request configuration surface consumed from outside
// the core: which target ecosystem to emit, the base namespace, and the
// optional feature-pack switches.
type Project struct {
	// Name of the generated project, used for module/solution naming.
	Name string `yaml:"name"`
	// Target selects the target ecosystem ("kotlin", "dotnet", "go").
	Target string `yaml:"target"`
	// Namespace is the base package/namespace of the generated sources,
	// e.g. "com.example.shop" or "github.com/example/shop".
	Namespace string `yaml:"namespace"`
	// Features enables optional feature packs by name.
	Features map[string]bool `yaml:"features,omitempty"`
	// Providers lists OAuth providers for the social-login pack.
	Providers []string `yaml:"providers,omitempty"`
	// StorageBackend selects the file-storage pack backend ("local", "s3").
	StorageBackend string `yaml:"storage_backend,omitempty"`
	// ResetTokenTTL is the password-reset token lifetime in minutes.
	ResetTokenTTL int `yaml:"reset_token_ttl,omitempty"`
}

// Validate checks the configuration the way the orchestration layer does
// before handing it to the core. The core itself never validates.
func (p *Project) Validate(knownTargets []string) error {
	if strings.TrimSpace(p.Namespace) == "" {
		return fmt.Errorf("load: project namespace cannot be blank")
	}
	if p.Target == "" {
		return fmt.Errorf("load: project target cannot be blank")
	}
	for _, t := range knownTargets {
		if t == p.Target {
			return nil
		}
	}
	return fmt.Errorf("load: unknown target %q (known: %s)", p.Target, strings.Join(knownTargets, ", "))
}

// FeatureEnabled reports if the named feature switch is on.
func (p *Project) FeatureEnabled(name string) bool {
	return p.Features[name]
}

// ReadProject reads a project configuration from a YAML file.
func ReadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read project config: %w", err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("load: decode project config: %w", err)
	}
	return &p, nil
}
