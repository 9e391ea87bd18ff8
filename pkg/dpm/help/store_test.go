package help

import (
	"testing"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CoarseEntriesForEveryCategory(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	for _, c := range domain.Categories() {
		text, ok := store.Lookup(domain.GranularityCoarse, string(c))
		assert.True(t, ok, "missing coarse help for %s", c)
		assert.NotEmpty(t, text)
	}
	assert.NotEmpty(t, store.Overview())
}

func TestLookup_NotFound(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	text, ok := store.Lookup(domain.GranularityFine, "singleton")
	assert.False(t, ok)
	assert.Empty(t, text)

	_, ok = store.Lookup(domain.GranularityCoarse, "factory-method")
	assert.False(t, ok, "pattern names are fine-grained only")

	_, ok = store.Lookup(domain.Granularity("medium"), "creational")
	assert.False(t, ok)
}

func TestParse_RejectsDuplicateFineKeys(t *testing.T) {
	_, err := Parse([]byte(`
fine:
  adapter: one
  adapter: two
`))
	require.Error(t, err)
}

func TestParse_RejectsUnknownCoarseKey(t *testing.T) {
	_, err := Parse([]byte(`
coarse:
  concurrency: not a category
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestParse_RejectsUnknownSection(t *testing.T) {
	_, err := Parse([]byte(`
medium:
  creational: text
`))
	require.Error(t, err)
}

func TestParse_TrimsText(t *testing.T) {
	store, err := Parse([]byte(`
overview: "  top  "
fine:
  proxy: |
    guards access
`))
	require.NoError(t, err)

	text, ok := store.Lookup(domain.GranularityFine, "proxy")
	require.True(t, ok)
	assert.Equal(t, "guards access", text)
	assert.Equal(t, "top", store.Overview())
	assert.Equal(t, []string{"proxy"}, store.Topics(domain.GranularityFine))
}
