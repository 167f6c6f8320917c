package scaffold

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Inflector provides the word transforms used by generated markers.
type Inflector struct {
	rules *inflect.Ruleset
}

// NewInflector creates an Inflector with the default English rules.
//
// Words that are already singular but end in "s" ("address", "status",
// "alias", "bus") keep their final letter.
func NewInflector() *Inflector {
	rules := inflect.NewDefaultRuleset()
	rules.AddSingular("ss", "ss")
	rules.AddSingular("status", "status")
	rules.AddSingular("alias", "alias")
	rules.AddSingular("bus", "bus")
	return &Inflector{rules: rules}
}

// Singular returns the singular form of word.
func (i *Inflector) Singular(word string) string {
	if word == "" {
		return word
	}
	return i.rules.Singularize(word)
}

// Plural returns the plural form of word.
func (i *Inflector) Plural(word string) string {
	if word == "" {
		return word
	}
	return i.rules.Pluralize(word)
}

// Classify converts a word to class case.
// Words separated by "_", "-" or spaces are title-cased and joined with "_":
// "blog_post" -> "Blog_Post".
func (i *Inflector) Classify(word string) string {
	words := strings.FieldsFunc(word, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	caser := cases.Title(language.Und)
	for n, w := range words {
		words[n] = caser.String(w)
	}
	return strings.Join(words, "_")
}
