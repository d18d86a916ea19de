package gen

import "fmt"

// FeatureStage describes the maturity of a feature pack.
type FeatureStage uint8

// Feature stages.
const (
	Experimental FeatureStage = iota
	Alpha
	Beta
	Stable
)

// Feature is an optional, independently-pathed capability gated by a
// configuration switch. Packs contribute their own files to the project
// file map under a disjoint path namespace.
type Feature struct {
	// Name of the feature switch.
	Name string
	// Stage of the feature.
	Stage FeatureStage
	// Default values indicate if the feature is enabled by default.
	Default bool
	// A brief description of the feature.
	Description string
}

var (
	// FeatureSocialLogin wires OAuth social-login providers into the
	// generated project.
	FeatureSocialLogin = Feature{
		Name:        "social-login",
		Stage:       Beta,
		Description: "SocialLogin generates OAuth client wiring for the configured providers",
	}

	// FeatureMail generates transactional mail support.
	FeatureMail = Feature{
		Name:        "mail",
		Stage:       Stable,
		Description: "Mail generates the mail sender abstraction and message templates",
	}

	// FeatureFileStorage generates the file-storage abstraction for the
	// configured backend.
	FeatureFileStorage = Feature{
		Name:        "file-storage",
		Stage:       Beta,
		Description: "FileStorage generates upload/download support for the selected backend",
	}

	// FeaturePasswordReset generates the password-reset token flow.
	FeaturePasswordReset = Feature{
		Name:        "password-reset",
		Stage:       Stable,
		Description: "PasswordReset generates the reset-token issue and redeem flow",
	}

	// FeatureSnapshot stores a deterministic snapshot of the resolved
	// graph so callers can diff two runs cheaply.
	FeatureSnapshot = Feature{
		Name:        "snapshot",
		Stage:       Experimental,
		Description: "Snapshot encodes the resolved graph and relationship index for run comparison",
	}

	// AllFeatures holds every feature the engine knows about.
	AllFeatures = []Feature{
		FeatureSocialLogin,
		FeatureMail,
		FeatureFileStorage,
		FeaturePasswordReset,
		FeatureSnapshot,
	}
)

// FeatureEnabled reports if the named feature is enabled in the config.
// An unknown name is an error; a known, unlisted feature reports its
// default value.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	for _, f := range c.Features {
		if f.Name == name {
			return true, nil
		}
	}
	for _, f := range AllFeatures {
		if f.Name == name {
			return f.Default, nil
		}
	}
	return false, fmt.Errorf("apigen: unknown feature %q", name)
}
