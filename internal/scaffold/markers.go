package scaffold

import (
	"sort"
	"strings"
)

// Markers maps placeholder tokens such as "#CLASS#" to replacement text.
type Markers map[string]string

// Marker tokens substituted into model templates.
const (
	MarkerClass      = "#CLASS#"
	MarkerLower      = "#LOWER#"
	MarkerTimestamps = "#TIMESTAMPS#"
	MarkerRelations  = "#RELATIONS#"
	MarkerRules      = "#RULES#"
	MarkerRule       = "#RULE#"
	MarkerSingular   = "#SINGULAR#"
	MarkerPlural     = "#PLURAL#"
	MarkerWord       = "#WORD#"
	MarkerWords      = "#WORDS#"
	MarkerField      = "#FIELD#"
	MarkerOptions    = "#OPTIONS#"
)

// ReplaceMarkers substitutes every marker in tmpl in a single pass.
// Replacement text is never rescanned, so a value containing another
// marker is emitted literally. Tokens with no entry pass through unchanged.
func ReplaceMarkers(markers Markers, tmpl string) string {
	if len(markers) == 0 || tmpl == "" {
		return tmpl
	}

	// Longest key first so an overlapping shorter key never shadows it.
	keys := make([]string, 0, len(markers))
	for k := range markers {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, markers[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

