package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/bob/internal/ports/secondary"
)

// ModelKind is the artifact type reported for generated models.
const ModelKind = "Model"

// TemplateStore loads template bodies by logical key, e.g. "model/model.tpl".
type TemplateStore interface {
	Load(key string) (string, error)
}

// ModelContext holds the values substituted into the model template.
type ModelContext struct {
	Class      string
	Lower      string
	Timestamps string
	Relations  string
	Rules      *string // nil when no rule descriptors were given
}

// Markers returns the marker set for the model template.
// #RULES# is present only when Rules is set.
func (c *ModelContext) Markers() Markers {
	m := Markers{
		MarkerClass:      c.Class,
		MarkerLower:      c.Lower,
		MarkerTimestamps: c.Timestamps,
		MarkerRelations:  c.Relations,
	}
	if c.Rules != nil {
		m[MarkerRules] = *c.Rules
	}
	return m
}

// ModelGenerator renders Eloquent models from templates.
type ModelGenerator struct {
	store     TemplateStore
	inflector *Inflector
	paths     Paths
	logger    *slog.Logger
}

// NewModelGenerator creates a new ModelGenerator.
func NewModelGenerator(store TemplateStore, paths Paths, logger *slog.Logger) *ModelGenerator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if paths.Extension == "" {
		paths.Extension = ".php"
	}
	return &ModelGenerator{
		store:     store,
		inflector: NewInflector(),
		paths:     paths,
		logger:    logger,
	}
}

// Inflector returns the inflector used for names and markers.
func (g *ModelGenerator) Inflector() *Inflector {
	return g.inflector
}

// ClassName returns the fully prefixed class name for t.
func (g *ModelGenerator) ClassName(t *Target) string {
	prefix := ""
	if !t.DefaultBundle {
		prefix = g.inflector.Classify(t.Bundle) + "_"
	}
	return prefix + t.ClassPrefix + t.Class
}

// ModelPath returns the output path for t.
func (g *ModelGenerator) ModelPath(t *Target) string {
	return t.BundlePath + "models/" + t.ClassPath + t.Lower + g.paths.Extension
}

// BuildContext renders every descriptor and assembles the model context.
func (g *ModelGenerator) BuildContext(t *Target, descriptors []Descriptor, timestamps string) (*ModelContext, error) {
	var relations, rules strings.Builder
	cache := make(map[string]string)

	for _, d := range descriptors {
		key := d.Kind.TemplateKey()
		tmpl, ok := cache[key]
		if !ok {
			var err error
			tmpl, err = g.store.Load(key)
			if err != nil {
				return nil, fmt.Errorf("failed to load template %s: %w", key, err)
			}
			cache[key] = tmpl
		}

		fragment := ReplaceMarkers(d.Markers(g.inflector), tmpl)
		if d.Kind.IsRelationship() {
			relations.WriteString(fragment)
		} else {
			rules.WriteString(fragment)
		}
		g.logger.Debug("rendered descriptor", "descriptor", d.Raw, "kind", d.Kind.String())
	}

	c := &ModelContext{
		Class:      g.ClassName(t),
		Lower:      t.Lower,
		Timestamps: timestamps,
		Relations:  relations.String(),
	}

	if rules.Len() > 0 {
		tmpl, err := g.store.Load(TemplateRules)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", TemplateRules, err)
		}
		wrapped := ReplaceMarkers(Markers{MarkerRule: rules.String()}, tmpl)
		c.Rules = &wrapped
	}

	return c, nil
}

// Generate renders the model source for t.
// args are the raw descriptors following the model name.
func (g *ModelGenerator) Generate(t *Target, args []string, settings SettingsSource) (*GeneratedFile, error) {
	descriptors := ParseDescriptors(args)

	c, err := g.BuildContext(t, descriptors, ResolveTimestamps(settings))
	if err != nil {
		return nil, err
	}

	tmpl, err := g.store.Load(TemplateModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", TemplateModel, err)
	}

	markers := c.Markers()
	// Without rule descriptors #RULES# is replaced with nothing.
	if _, ok := markers[MarkerRules]; !ok {
		markers[MarkerRules] = ""
	}

	return &GeneratedFile{
		Kind:    ModelKind,
		Name:    c.Class,
		Path:    g.ModelPath(t),
		Content: ReplaceMarkers(markers, tmpl),
	}, nil
}

// Target parses a model name argument with the generator's paths.
func (g *ModelGenerator) Target(name string) (*Target, error) {
	return ParseTarget(name, g.paths, g.inflector)
}

// Run performs a full model generation for the name argument and hands the
// result to w. No template is loaded when name is empty.
func (g *ModelGenerator) Run(ctx context.Context, name string, args []string, settings SettingsSource, w secondary.FileWriter) ([]secondary.WriteResult, error) {
	t, err := g.Target(name)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("generating model",
		"bundle", t.Bundle,
		"class", t.Class,
		"descriptors", len(args),
	)

	file, err := g.Generate(t, args, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to generate model %s: %w", t.Class, err)
	}

	w.CreateFile(file.Kind, file.Name, file.Path, file.Content)

	results, err := w.Write(ctx)
	if err != nil {
		return results, fmt.Errorf("failed to write model %s: %w", file.Name, err)
	}
	return results, nil
}
