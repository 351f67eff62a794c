package yamlformat

import (
	"testing"

	"github.com/vellum-lang/vellum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Identifiers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "yaml", New("").Format())
	assert.Equal(t, "yaml", New("yaml").Format())
	assert.Equal(t, "yml", New("yml").Format())
}

func TestStringImport_BindsMapping(t *testing.T) {
	t.Parallel()
	doc := vellum.NewDocument()
	doc.LoadFormat(New("yaml"))
	require.NoError(t, doc.StringImport("main", "yaml", "name: vellum\nversion: 1\n", "Config"))

	v, ok := doc.Binding("Config")
	require.True(t, ok)
	imported, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "vellum", imported["name"])
	assert.Equal(t, 1, imported["version"])
}

func TestStringImport_BothExtensions(t *testing.T) {
	t.Parallel()
	doc := vellum.NewDocument()
	doc.LoadFormat(New("yaml"))
	doc.LoadFormat(New("yml"))
	require.NoError(t, doc.StringImport("main", "yml", "ok: true\n", "Short"))

	v, ok := doc.Binding("Short")
	require.True(t, ok)
	imported, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, imported["ok"])
}

func TestStringImport_InvalidYAML(t *testing.T) {
	t.Parallel()
	doc := vellum.NewDocument()
	doc.LoadFormat(New("yaml"))
	err := doc.StringImport("main", "yaml", "key: [unclosed", "Config")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
	_, ok := doc.Binding("Config")
	assert.False(t, ok)
}
