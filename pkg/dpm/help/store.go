// Package help provides the read-only help texts shown from the menus.
//
// Entries come in two granularities: coarse entries are keyed by category
// name, fine entries by pattern name. Pattern names share one flat namespace
// across all categories.
package help

import (
	"bytes"
	_ "embed"
	"strings"

	"github.com/go-go-golems/design-pattern-menu/pkg/dpm/domain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed help.yaml
var defaultContent []byte

// Store is immutable once built and safe to share
type Store struct {
	overview string
	entries  map[domain.Granularity]map[string]string
}

type document struct {
	Overview string            `yaml:"overview"`
	Coarse   map[string]string `yaml:"coarse"`
	Fine     map[string]string `yaml:"fine"`
}

// Load builds the store from the embedded help content
func Load() (*Store, error) {
	return Parse(defaultContent)
}

// Parse builds a store from YAML content.
// Duplicate keys and coarse keys that are not category names are rejected.
func Parse(data []byte) (*Store, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse help content")
	}

	for key := range doc.Coarse {
		if _, ok := domain.ParseCategory(key); !ok {
			return nil, errors.Errorf("coarse help key %q is not a category", key)
		}
	}

	return &Store{
		overview: strings.TrimSpace(doc.Overview),
		entries: map[domain.Granularity]map[string]string{
			domain.GranularityCoarse: trimAll(doc.Coarse),
			domain.GranularityFine:   trimAll(doc.Fine),
		},
	}, nil
}

// Lookup returns the text for topic at the given granularity.
// The second return value is false when no entry exists.
func (s *Store) Lookup(g domain.Granularity, topic string) (string, bool) {
	text, ok := s.entries[g][topic]
	return text, ok
}

// Overview is the top-level help, not tied to any category
func (s *Store) Overview() string {
	return s.overview
}

// Topics lists the keys present at a granularity, in no particular order
func (s *Store) Topics(g domain.Granularity) []string {
	topics := make([]string, 0, len(s.entries[g]))
	for topic := range s.entries[g] {
		topics = append(topics, topic)
	}
	return topics
}

func trimAll(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = strings.TrimSpace(v)
	}
	return out
}
