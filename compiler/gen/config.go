package gen

import (
	"github.com/JNZader/apigen-sub011/compiler/load"
)

// Config is the per-request generation configuration. It is assembled by
// the orchestration layer (validated there, not here) and read-only for
// the lifetime of a request.
type Config struct {
	// Target is the target-ecosystem identifier ("kotlin", "dotnet", "go").
	Target string
	// Project is the generated project name.
	Project string
	// Namespace is the base package/namespace of the generated sources.
	Namespace string
	// Features holds the enabled feature packs.
	Features []Feature
	// Providers lists OAuth providers for the social-login pack.
	Providers []string
	// StorageBackend selects the file-storage pack backend.
	StorageBackend string
	// ResetTokenTTL is the password-reset token lifetime in minutes.
	ResetTokenTTL int
	// Workers limits the per-table fan-out. Zero means GOMAXPROCS.
	Workers int
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the target-ecosystem identifier.
func WithTarget(target string) Option {
	return func(c *Config) error {
		if target == "" {
			return NewConfigError("Target", nil, "target cannot be empty")
		}
		c.Target = target
		return nil
	}
}

// WithProject sets the generated project name.
func WithProject(name string) Option {
	return func(c *Config) error {
		c.Project = name
		return nil
	}
}

// WithNamespace sets the base package/namespace of the generated sources.
// For example: "com.example.shop" or "github.com/example/shop".
func WithNamespace(ns string) Option {
	return func(c *Config) error {
		if ns == "" {
			return NewConfigError("Namespace", nil, "namespace cannot be empty")
		}
		c.Namespace = ns
		return nil
	}
}

// WithFeatures enables specific feature packs.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithProviders sets the OAuth providers for the social-login pack.
func WithProviders(providers ...string) Option {
	return func(c *Config) error {
		c.Providers = append(c.Providers, providers...)
		return nil
	}
}

// WithStorageBackend selects the file-storage pack backend.
// Supported backends: "local", "s3".
func WithStorageBackend(backend string) Option {
	return func(c *Config) error {
		switch backend {
		case "local", "s3":
			c.StorageBackend = backend
			return nil
		default:
			return NewConfigError("StorageBackend", backend, "unsupported backend; use local or s3")
		}
	}
}

// WithResetTokenTTL sets the password-reset token lifetime in minutes.
func WithResetTokenTTL(minutes int) Option {
	return func(c *Config) error {
		if minutes < 0 {
			return NewConfigError("ResetTokenTTL", minutes, "lifetime cannot be negative")
		}
		c.ResetTokenTTL = minutes
		return nil
	}
}

// WithWorkers limits the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n > 0 {
			c.Workers = n
		}
		return nil
	}
}

// Apply applies options to the config. It returns the first error
// encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// ConfigFromProject converts an externally validated project
// configuration into a generation config.
func ConfigFromProject(p *load.Project) (*Config, error) {
	if p == nil {
		return nil, NewConfigError("Project", nil, "project configuration cannot be nil")
	}
	opts := []Option{
		WithTarget(p.Target),
		WithProject(p.Name),
		WithNamespace(p.Namespace),
	}
	for _, f := range AllFeatures {
		if p.FeatureEnabled(f.Name) {
			opts = append(opts, WithFeatures(f))
		}
	}
	if len(p.Providers) > 0 {
		opts = append(opts, WithProviders(p.Providers...))
	}
	if p.StorageBackend != "" {
		opts = append(opts, WithStorageBackend(p.StorageBackend))
	}
	if p.ResetTokenTTL > 0 {
		opts = append(opts, WithResetTokenTTL(p.ResetTokenTTL))
	}
	return NewConfig(opts...)
}
