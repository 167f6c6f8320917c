package scaffold

import "strings"

// RelationKind classifies a descriptor's first segment.
type RelationKind int

const (
	// KindRule marks a validation rule rather than a relationship.
	KindRule RelationKind = iota
	KindHasMany
	KindBelongsTo
	KindHasOne
	KindHasAndBelongsToMany
)

// relationAliases maps every accepted keyword to its kind.
var relationAliases = map[string]RelationKind{
	"has_many":                KindHasMany,
	"hm":                      KindHasMany,
	"belongs_to":              KindBelongsTo,
	"bt":                      KindBelongsTo,
	"has_one":                 KindHasOne,
	"ho":                      KindHasOne,
	"has_and_belongs_to_many": KindHasAndBelongsToMany,
	"hbm":                     KindHasAndBelongsToMany,
}

// Template keys consumed by the model generator.
const (
	TemplateModel               = "model/model.tpl"
	TemplateHasMany             = "model/has_many.tpl"
	TemplateBelongsTo           = "model/belongs_to.tpl"
	TemplateHasOne              = "model/has_one.tpl"
	TemplateHasAndBelongsToMany = "model/has_and_belongs_to_many.tpl"
	TemplateRule                = "model/rule.tpl"
	TemplateRules               = "model/rules.tpl"
)

// ParseRelationKind classifies a lowercase keyword. Unknown keywords are rules.
func ParseRelationKind(s string) RelationKind {
	if kind, ok := relationAliases[s]; ok {
		return kind
	}
	return KindRule
}

// IsRelationship reports whether k is an ORM association.
func (k RelationKind) IsRelationship() bool {
	return k != KindRule
}

// TemplateKey returns the template rendered for descriptors of this kind.
func (k RelationKind) TemplateKey() string {
	switch k {
	case KindHasMany:
		return TemplateHasMany
	case KindBelongsTo:
		return TemplateBelongsTo
	case KindHasOne:
		return TemplateHasOne
	case KindHasAndBelongsToMany:
		return TemplateHasAndBelongsToMany
	default:
		return TemplateRule
	}
}

func (k RelationKind) String() string {
	switch k {
	case KindHasMany:
		return "has_many"
	case KindBelongsTo:
		return "belongs_to"
	case KindHasOne:
		return "has_one"
	case KindHasAndBelongsToMany:
		return "has_and_belongs_to_many"
	default:
		return "rule"
	}
}

// Descriptor is a parsed "kind:argument[:argument...]" command line argument.
type Descriptor struct {
	Raw   string
	Kind  RelationKind
	Parts []string // lowercased colon-separated segments, len >= 2
}

// Target returns the relationship target, the second segment.
func (d Descriptor) Target() string {
	return d.Parts[1]
}

// Field returns the rule field name, the first segment.
func (d Descriptor) Field() string {
	return d.Parts[0]
}

// Options returns every segment after the first, rejoined with ":".
func (d Descriptor) Options() string {
	return strings.Join(d.Parts[1:], ":")
}

// Markers returns the marker set for the descriptor's template.
func (d Descriptor) Markers(inf *Inflector) Markers {
	if !d.Kind.IsRelationship() {
		return Markers{
			MarkerField:   d.Field(),
			MarkerOptions: d.Options(),
		}
	}

	singular := inf.Singular(d.Target())
	plural := inf.Plural(d.Target())
	return Markers{
		MarkerSingular: strings.ToLower(singular),
		MarkerPlural:   strings.ToLower(plural),
		MarkerWord:     inf.Classify(singular),
		MarkerWords:    inf.Classify(plural),
	}
}

// ParseDescriptors parses the arguments that follow the model name.
// Arguments without a ":" are skipped. Any number of segments is accepted:
// relationships read only the second, rules keep all but the first.
func ParseDescriptors(args []string) []Descriptor {
	var descriptors []Descriptor
	for _, arg := range args {
		if !strings.Contains(arg, ":") {
			continue
		}

		parts := strings.Split(strings.ToLower(arg), ":")
		descriptors = append(descriptors, Descriptor{
			Raw:   arg,
			Kind:  ParseRelationKind(parts[0]),
			Parts: parts,
		})
	}
	return descriptors
}
