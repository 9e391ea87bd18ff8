// Package catalog is the table of design patterns offered by the menus.
//
// Every pattern is plain data: a name, its category, a markdown description,
// the participant edges of its flow chart, example source text and a runnable
// demonstration. The menus are generic over this table.
package catalog

import (
	"embed"
	"slices"
	"strings"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/demo"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/flowchart"
	"github.com/pkg/errors"
)

var ErrUnknownPattern = errors.New("unknown pattern")

//go:embed examples/*.txt
var examples embed.FS

// Pattern describes one design pattern and everything the leaf menu can show for it
type Pattern struct {
	Name        string
	Category    domain.Category
	Title       string
	Description string
	Flow        []flowchart.Edge
	Example     string
	Demo        demo.Func
}

// FlowChart renders the pattern's participants as a Mermaid flowchart
func (p Pattern) FlowChart() string {
	return flowchart.Render(p.Title, p.Flow)
}

// Catalog holds patterns grouped by category, in insertion order
type Catalog struct {
	byCategory map[domain.Category][]Pattern
	byName     map[string]Pattern
}

// New builds a catalog. Pattern names must be unique across all categories
// and must not collide with the "help" menu entry.
func New(patterns ...Pattern) (*Catalog, error) {
	c := &Catalog{
		byCategory: make(map[domain.Category][]Pattern),
		byName:     make(map[string]Pattern),
	}

	for _, p := range patterns {
		if p.Name == "" || p.Name == domain.HelpChoice {
			return nil, errors.Errorf("invalid pattern name %q", p.Name)
		}
		if _, ok := domain.ParseCategory(string(p.Category)); !ok {
			return nil, errors.Errorf("pattern %q has unknown category %q", p.Name, p.Category)
		}
		if _, exists := c.byName[p.Name]; exists {
			return nil, errors.Errorf("duplicate pattern name %q", p.Name)
		}
		c.byName[p.Name] = p
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
	}

	return c, nil
}

// Default is the full catalog shipped with the menu
func Default() *Catalog {
	var patterns []Pattern
	patterns = append(patterns, creational()...)
	patterns = append(patterns, structural()...)
	patterns = append(patterns, behavioral()...)

	c, err := New(patterns...)
	if err != nil {
		panic(err)
	}
	return c
}

// Patterns returns the patterns of a category in menu order
func (c *Catalog) Patterns(category domain.Category) []Pattern {
	return slices.Clone(c.byCategory[category])
}

// PatternNames returns the names of a category's patterns in menu order
func (c *Catalog) PatternNames(category domain.Category) []string {
	var names []string
	for _, p := range c.Patterns(category) {
		names = append(names, p.Name)
	}
	return names
}

// Lookup finds a pattern by name in any category
func (c *Catalog) Lookup(name string) (Pattern, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Get is Lookup returning ErrUnknownPattern for missing names
func (c *Catalog) Get(name string) (Pattern, error) {
	p, ok := c.byName[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return p, nil
}

// Names returns every pattern name, categories in menu order
func (c *Catalog) Names() []string {
	var names []string
	for _, category := range domain.Categories() {
		names = append(names, c.PatternNames(category)...)
	}
	return names
}

func example(name string) string {
	data, err := examples.ReadFile("examples/" + name + ".txt")
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\n")
}
