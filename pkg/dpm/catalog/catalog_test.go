package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/help"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Taxonomy(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{
		"factory-method", "abstract-factory", "builder", "prototype",
	}, c.PatternNames(domain.CategoryCreational))

	assert.Equal(t, []string{
		"adapter", "bridge", "composite", "decorator", "facade", "flyweight", "proxy",
	}, c.PatternNames(domain.CategoryStructural))

	assert.Equal(t, []string{
		"chain-of-responsibility", "command", "interpreter", "iterator", "mediator",
		"memento", "observer", "state", "strategy", "template-method", "visitor",
	}, c.PatternNames(domain.CategoryBehavioral))

	assert.Len(t, c.Names(), 22)
}

func TestDefault_EveryPatternIsComplete(t *testing.T) {
	c := Default()

	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			p, ok := c.Lookup(name)
			require.True(t, ok)

			assert.NotEmpty(t, p.Title)
			assert.NotEmpty(t, p.Description)
			assert.NotEmpty(t, p.Example, "missing examples/%s.txt", name)
			assert.True(t, strings.HasPrefix(p.FlowChart(), "%% "+p.Title+"\ngraph TD\n"))
			require.NotNil(t, p.Demo)

			var first, second bytes.Buffer
			p.Demo(&first)
			p.Demo(&second)
			assert.NotEmpty(t, first.String())
			assert.Equal(t, first.String(), second.String(), "demo output must be deterministic")
		})
	}
}

func TestDefault_EveryPatternHasFineHelp(t *testing.T) {
	store, err := help.Load()
	require.NoError(t, err)

	c := Default()
	for _, name := range c.Names() {
		_, ok := store.Lookup(domain.GranularityFine, name)
		assert.True(t, ok, "missing fine help for %s", name)
	}
	assert.ElementsMatch(t, c.Names(), store.Topics(domain.GranularityFine))
}

func TestPatterns_ReturnsCopy(t *testing.T) {
	c := Default()
	patterns := c.Patterns(domain.CategoryCreational)
	patterns[0].Name = "changed"

	assert.Equal(t, "factory-method", c.Patterns(domain.CategoryCreational)[0].Name)
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		patterns []Pattern
	}{
		{
			name: "duplicate across categories",
			patterns: []Pattern{
				{Name: "adapter", Category: domain.CategoryStructural},
				{Name: "adapter", Category: domain.CategoryBehavioral},
			},
		},
		{
			name:     "help is reserved",
			patterns: []Pattern{{Name: "help", Category: domain.CategoryCreational}},
		},
		{
			name:     "empty name",
			patterns: []Pattern{{Category: domain.CategoryCreational}},
		},
		{
			name:     "unknown category",
			patterns: []Pattern{{Name: "singleton", Category: "misc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.patterns...)
			assert.Error(t, err)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Default().Get("singleton")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownPattern, errors.Cause(err))
}
