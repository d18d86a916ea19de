package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JNZader/apigen-sub011/compiler/load"
)

func TestEncodeSnapshotIsDeterministic(t *testing.T) {
	a, err := NewGraph(testConfig(t), shopModel())
	require.NoError(t, err)
	b, err := NewGraph(testConfig(t), shopModel())
	require.NoError(t, err)

	encA, err := a.EncodeSnapshot()
	require.NoError(t, err)
	encB, err := b.EncodeSnapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, encA)
	assert.Equal(t, encA, encB)
}

func TestEncodeSnapshotReflectsSchemaChanges(t *testing.T) {
	base, err := NewGraph(testConfig(t), shopModel())
	require.NoError(t, err)

	changed := shopModel()
	changed.Tables[1].Columns = append(changed.Tables[1].Columns, &load.Column{
		Name: "sku", Type: SourceString, Unique: true,
	})
	other, err := NewGraph(testConfig(t), changed)
	require.NoError(t, err)

	encBase, err := base.EncodeSnapshot()
	require.NoError(t, err)
	encOther, err := other.EncodeSnapshot()
	require.NoError(t, err)
	assert.NotEqual(t, encBase, encOther)
}
