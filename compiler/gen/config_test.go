package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JNZader/apigen-sub011/compiler/load"
)

func TestNewConfigOptions(t *testing.T) {
	c, err := NewConfig(
		WithTarget("kotlin"),
		WithProject("shop"),
		WithNamespace("com.example.shop"),
		WithFeatures(FeatureMail, FeatureSnapshot),
		WithProviders("google", "github"),
		WithStorageBackend("s3"),
		WithResetTokenTTL(15),
		WithWorkers(4),
	)
	require.NoError(t, err)
	assert.Equal(t, "kotlin", c.Target)
	assert.Equal(t, "shop", c.Project)
	assert.Equal(t, "com.example.shop", c.Namespace)
	assert.Equal(t, []string{"google", "github"}, c.Providers)
	assert.Equal(t, "s3", c.StorageBackend)
	assert.Equal(t, 15, c.ResetTokenTTL)
	assert.Equal(t, 4, c.Workers)
}

func TestConfigOptionValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"empty target", WithTarget("")},
		{"empty namespace", WithNamespace("")},
		{"unknown backend", WithStorageBackend("ftp")},
		{"negative ttl", WithResetTokenTTL(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opt)
			assert.ErrorIs(t, err, ErrMissingConfig)
		})
	}
}

func TestFeatureEnabled(t *testing.T) {
	c := MustNewConfig(
		WithTarget("kotlin"),
		WithNamespace("com.example.shop"),
		WithFeatures(FeatureMail),
	)

	enabled, err := c.FeatureEnabled("mail")
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = c.FeatureEnabled("social-login")
	require.NoError(t, err)
	assert.False(t, enabled)

	_, err = c.FeatureEnabled("time-travel")
	assert.Error(t, err)
}

func TestConfigFromProject(t *testing.T) {
	c, err := ConfigFromProject(&load.Project{
		Name:      "shop",
		Target:    "dotnet",
		Namespace: "Example.Shop",
		Features: map[string]bool{
			"mail":           true,
			"password-reset": true,
		},
		ResetTokenTTL: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, "dotnet", c.Target)
	assert.Equal(t, "Example.Shop", c.Namespace)
	assert.Equal(t, 45, c.ResetTokenTTL)

	names := make([]string, 0, len(c.Features))
	for _, f := range c.Features {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"mail", "password-reset"}, names)

	_, err = ConfigFromProject(nil)
	assert.ErrorIs(t, err, ErrMissingConfig)
}
