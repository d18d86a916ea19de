package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JNZader/apigen-sub011/compiler/gen"
)

func TestMapperMap(t *testing.T) {
	m := Mapper{}
	tests := []struct {
		source   string
		nullable bool
		want     string
	}{
		{gen.SourceString, false, "String"},
		{gen.SourceString, true, "String?"},
		{gen.SourceBigDecimal, false, "BigDecimal"},
		{gen.SourceUUID, true, "UUID?"},
		{gen.SourceBytes, false, "ByteArray"},
		{gen.SourceInstant, true, "Instant?"},
		{"Geometry", false, "Any"},
		{"Geometry", true, "Any?"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Map(tt.source, tt.nullable))
		})
	}
}

func TestMapperDefaults(t *testing.T) {
	m := Mapper{}
	assert.Equal(t, `""`, m.Default("String"))
	assert.Equal(t, "0L", m.Default("Long"))
	assert.Equal(t, "BigDecimal.ZERO", m.Default("BigDecimal"))
	assert.Equal(t, "null", m.Default("String?"))
	assert.Equal(t, "null", m.Default("Instant?"))
	assert.Equal(t, "Any()", m.Default("Whatever"))
}

func TestMapperImports(t *testing.T) {
	m := Mapper{}
	assert.Equal(t, "java.math.BigDecimal", m.Import(gen.SourceBigDecimal, false))
	assert.Equal(t, "java.time.Instant", m.Import(gen.SourceInstant, true))
	assert.Empty(t, m.Import(gen.SourceString, false))
}

func TestMapperEscapeIdentifier(t *testing.T) {
	m := Mapper{}
	assert.Equal(t, "object_", m.EscapeIdentifier("object"))
	assert.Equal(t, "when_", m.EscapeIdentifier("when"))
	assert.Equal(t, "name", m.EscapeIdentifier("name"))
}

func TestMapperCollections(t *testing.T) {
	m := Mapper{}
	assert.Equal(t, "Long", m.PrimaryKeyType())
	assert.Equal(t, "List<Product>", m.ListType("Product"))
	assert.Equal(t, "MutableSet<Tag>", m.CollectionType("Tag"))
}
