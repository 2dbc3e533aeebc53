// Package catalog loads a directory of named ".bt" tree sources
// described by a YAML manifest, the way the host project's
// directory-of-specs commands (mcrew -s, mservice -s) load a
// directory of named machine specs: one manifest file lists the
// entries, each entry's own file holds the actual source.
package catalog

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/btreelite/bht/core"
)

// Entry is one manifest row: an id other code refers to the tree by,
// the path (relative to the manifest's directory) of the ".bt" file
// that holds it, a short doc string, and free-form tags for filtering.
type Entry struct {
	ID   string   `yaml:"id"`
	Path string   `yaml:"path"`
	Doc  string   `yaml:"doc,omitempty"`
	Tags []string `yaml:"tags,omitempty"`
}

// Catalog is a loaded manifest: entries in manifest order, plus the
// parsed TreeSource for each one, keyed by Entry.ID.
type Catalog struct {
	entries []Entry
	sources map[string]core.TreeSource
}

// Load reads manifestPath (a YAML list of Entry), then reads and
// parses the ".bt" file named by each entry's Path, resolved relative
// to manifestPath's directory.
func Load(manifestPath string) (*Catalog, error) {
	raw, err := ioutil.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading manifest: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("catalog: parsing manifest: %w", err)
	}

	dir := filepath.Dir(manifestPath)
	sources := make(map[string]core.TreeSource, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog: entry with path %q has no id", e.Path)
		}
		if _, dup := sources[e.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate entry id %q", e.ID)
		}
		text, err := ioutil.ReadFile(filepath.Join(dir, e.Path))
		if err != nil {
			return nil, fmt.Errorf("catalog: reading %q: %w", e.Path, err)
		}
		src, err := core.ParseSource(string(text))
		if err != nil {
			return nil, fmt.Errorf("catalog: parsing %q: %w", e.Path, err)
		}
		sources[e.ID] = src
	}

	return &Catalog{entries: entries, sources: sources}, nil
}

// Entries returns the manifest rows in the order they appeared.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Source returns the parsed TreeSource for id, if the manifest
// carried an entry with that id.
func (c *Catalog) Source(id string) (core.TreeSource, bool) {
	src, ok := c.sources[id]
	return src, ok
}

// LoadTree loads id's TreeSource against registry, returning a
// runtime container ready for core.TickNode. It's a convenience
// wrapper around Source and core.Load for callers that don't need the
// intermediate TreeSource.
func (c *Catalog) LoadTree(id string, registry *core.Registry) (*core.BehaviorNodeContainer, error) {
	src, ok := c.Source(id)
	if !ok {
		return nil, fmt.Errorf("catalog: no entry with id %q", id)
	}
	return core.Load(src, registry)
}

// WithTag returns the ids of every entry carrying tag, in manifest
// order. Useful for test helpers that want "every tree tagged
// smoke" rather than a hardcoded list.
func (c *Catalog) WithTag(tag string) []string {
	var ids []string
	for _, e := range c.entries {
		for _, t := range e.Tags {
			if t == tag {
				ids = append(ids, e.ID)
				break
			}
		}
	}
	return ids
}
