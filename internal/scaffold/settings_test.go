package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapSettings map[string]bool

func (m mapSettings) Bool(key string) bool { return m[key] }

func TestResolveTimestamps(t *testing.T) {
	tests := []struct {
		name     string
		settings SettingsSource
		want     string
	}{
		{"timestamps", mapSettings{"timestamps": true}, TimestampsSnippet},
		{"short alias", mapSettings{"t": true}, TimestampsSnippet},
		{"both", mapSettings{"timestamps": true, "t": true}, TimestampsSnippet},
		{"disabled", mapSettings{"timestamps": false}, ""},
		{"unset", mapSettings{}, ""},
		{"nil source", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTimestamps(tt.settings))
		})
	}
}

func TestTimestampsSnippet(t *testing.T) {
	assert.Equal(t, "\tpublic static $timestamps = true;\n\n", TimestampsSnippet)
}
