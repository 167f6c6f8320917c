package templates

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bob/internal/scaffold"
)

var modelTemplateKeys = []string{
	scaffold.TemplateModel,
	scaffold.TemplateHasMany,
	scaffold.TemplateBelongsTo,
	scaffold.TemplateHasOne,
	scaffold.TemplateHasAndBelongsToMany,
	scaffold.TemplateRule,
	scaffold.TemplateRules,
}

func TestStore_EmbeddedTemplates(t *testing.T) {
	store := NewStore(nil)

	for _, key := range modelTemplateKeys {
		t.Run(key, func(t *testing.T) {
			content, err := store.Load(key)
			require.NoError(t, err)
			assert.NotEmpty(t, content)
		})
	}
}

func TestStore_EmbeddedMarkers(t *testing.T) {
	store := NewStore(nil)

	expected := map[string][]string{
		scaffold.TemplateModel:               {"#CLASS#", "#TIMESTAMPS#", "#RULES#", "#RELATIONS#"},
		scaffold.TemplateHasMany:             {"#PLURAL#", "#WORD#"},
		scaffold.TemplateBelongsTo:           {"#SINGULAR#", "#WORD#"},
		scaffold.TemplateHasOne:              {"#SINGULAR#", "#WORD#"},
		scaffold.TemplateHasAndBelongsToMany: {"#PLURAL#", "#WORD#"},
		scaffold.TemplateRule:                {"#FIELD#", "#OPTIONS#"},
		scaffold.TemplateRules:               {"#RULE#"},
	}

	for key, markers := range expected {
		content, err := store.Load(key)
		require.NoError(t, err)
		for _, marker := range markers {
			assert.Contains(t, content, marker, "%s should reference %s", key, marker)
		}
	}
}

func TestStore_OverrideWins(t *testing.T) {
	overrides := fstest.MapFS{
		"model/rule.tpl": {Data: []byte("custom #FIELD#")},
	}
	store := NewStore(overrides)

	content, err := store.Load(scaffold.TemplateRule)
	require.NoError(t, err)
	assert.Equal(t, "custom #FIELD#", content)

	// Keys without an override fall back to the embedded copy.
	content, err = store.Load(scaffold.TemplateRules)
	require.NoError(t, err)
	assert.Contains(t, content, "#RULE#")
}

func TestStore_UnknownKey(t *testing.T) {
	_, err := NewStore(fstest.MapFS{}).Load("model/missing.tpl")
	assert.Error(t, err)
}

func TestStore_List(t *testing.T) {
	overrides := fstest.MapFS{
		"model/has_many.tpl": {Data: []byte("x")},
		"model/scope.tpl":    {Data: []byte("y")},
		"README.md":          {Data: []byte("ignored")},
	}

	entries, err := NewStore(overrides).List()
	require.NoError(t, err)

	sources := make(map[string]string)
	for _, e := range entries {
		sources[e.Key] = e.Source
	}

	assert.Len(t, entries, len(modelTemplateKeys)+1)
	assert.Equal(t, SourceOverride, sources[scaffold.TemplateHasMany])
	assert.Equal(t, SourceOverride, sources["model/scope.tpl"])
	assert.Equal(t, SourceEmbedded, sources[scaffold.TemplateModel])
	assert.NotContains(t, sources, "README.md")

	for i := 1; i < len(entries); i++ {
		assert.True(t, strings.Compare(entries[i-1].Key, entries[i].Key) < 0)
	}
}

func TestRenderEmbeddedModel(t *testing.T) {
	store := NewStore(nil)
	g := scaffold.NewModelGenerator(store, scaffold.Paths{Application: "application/", Bundles: "bundles/"}, nil)

	target, err := scaffold.ParseTarget("user", scaffold.Paths{Application: "application/"}, g.Inflector())
	require.NoError(t, err)

	file, err := g.Generate(target, []string{"has_many:posts", "email:required:email"}, nil)
	require.NoError(t, err)

	want := "<?php\n\nclass User extends Eloquent\n{\n\n" +
		"\tpublic static $rules = array(\n" +
		"\t\t'email' => 'required:email',\n" +
		"\t);\n\n" +
		"\tpublic function posts()\n\t{\n\t\treturn $this->has_many('Post');\n\t}\n\n" +
		"}\n"
	assert.Equal(t, want, file.Content)
}
