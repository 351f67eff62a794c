package jsonformat

import (
	"testing"

	"github.com/vellum-lang/vellum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Identifier(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "json", Format{}.Format())
}

func TestStringImport_BindsObject(t *testing.T) {
	t.Parallel()
	doc := vellum.NewDocument()
	doc.LoadFormat(Format{})
	require.NoError(t, doc.StringImport("main", "json", `{"name":"@formata/stof","tags":["data","docs"]}`, "Import"))

	v, ok := doc.Binding("Import")
	require.True(t, ok)
	imported, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "@formata/stof", imported["name"])
	assert.Equal(t, []any{"data", "docs"}, imported["tags"])
}

func TestStringImport_RootMerge(t *testing.T) {
	t.Parallel()
	doc := vellum.NewDocument()
	doc.LoadFormat(Format{})
	require.NoError(t, doc.StringImport("main", "json", `{"name":"@formata/stof","license":"Apache-2.0"}`, ""))

	license, ok := doc.Binding("license")
	require.True(t, ok)
	assert.Equal(t, "Apache-2.0", license)
}

func TestStringImport_InvalidJSON(t *testing.T) {
	t.Parallel()
	doc := vellum.NewDocument()
	doc.LoadFormat(Format{})
	err := doc.StringImport("main", "json", `{"name":`, "Import")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJSON)
	_, ok := doc.Binding("Import")
	assert.False(t, ok)
}
