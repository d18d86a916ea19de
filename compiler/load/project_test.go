package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadProject(t *testing.T) {
	p, err := ReadProject("testdata/project.yml")
	require.NoError(t, err)

	assert.Equal(t, "shop", p.Name)
	assert.Equal(t, "kotlin", p.Target)
	assert.Equal(t, "com.example.shop", p.Namespace)
	assert.Equal(t, []string{"google", "github"}, p.Providers)
	assert.Equal(t, "local", p.StorageBackend)
	assert.Equal(t, 30, p.ResetTokenTTL)

	assert.True(t, p.FeatureEnabled("mail"))
	assert.True(t, p.FeatureEnabled("social-login"))
	assert.False(t, p.FeatureEnabled("password-reset"))
	assert.False(t, p.FeatureEnabled("snapshot"))
}

func TestProjectValidate(t *testing.T) {
	known := []string{"kotlin", "dotnet", "go"}
	tests := []struct {
		name    string
		project Project
		wantErr string
	}{
		{
			name:    "valid",
			project: Project{Target: "go", Namespace: "github.com/example/shop"},
		},
		{
			name:    "blank namespace",
			project: Project{Target: "go", Namespace: "  "},
			wantErr: "namespace",
		},
		{
			name:    "blank target",
			project: Project{Namespace: "com.example.shop"},
			wantErr: "target",
		},
		{
			name:    "unknown target",
			project: Project{Target: "rust", Namespace: "com.example.shop"},
			wantErr: "unknown target",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate(known)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
