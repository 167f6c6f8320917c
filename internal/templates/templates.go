// Package templates provides the text templates used by bob generators.
//
// Default templates are embedded in the binary. A project may shadow any of
// them by placing a file with the same key under its templates directory,
// e.g. "templates/model/has_many.tpl".
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

//go:embed model/*.tpl
var defaultTemplates embed.FS

// Template sources reported by List.
const (
	SourceEmbedded = "embedded"
	SourceOverride = "override"
)

// Entry describes an available template.
type Entry struct {
	Key    string // "model/model.tpl"
	Source string // SourceEmbedded or SourceOverride
}

// Store loads templates by key, preferring project overrides.
type Store struct {
	embedded  fs.FS
	overrides fs.FS
}

// NewStore creates a Store over the embedded defaults.
// overrides may be nil.
func NewStore(overrides fs.FS) *Store {
	return &Store{
		embedded:  defaultTemplates,
		overrides: overrides,
	}
}

// Load returns the content of the template stored under key.
func (s *Store) Load(key string) (string, error) {
	if s.overrides != nil {
		content, err := fs.ReadFile(s.overrides, key)
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read template override %s: %w", key, err)
		}
	}

	content, err := fs.ReadFile(s.embedded, key)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", key, err)
	}
	return string(content), nil
}

// List returns every available template key sorted by key.
func (s *Store) List() ([]Entry, error) {
	found := make(map[string]string)

	embedded, err := doublestar.Glob(s.embedded, "**/*.tpl")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}
	for _, key := range embedded {
		found[key] = SourceEmbedded
	}

	if s.overrides != nil {
		overrides, err := doublestar.Glob(s.overrides, "**/*.tpl")
		if err != nil {
			return nil, fmt.Errorf("failed to list template overrides: %w", err)
		}
		for _, key := range overrides {
			found[key] = SourceOverride
		}
	}

	entries := make([]Entry, 0, len(found))
	for key, source := range found {
		entries = append(entries, Entry{Key: key, Source: source})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}
