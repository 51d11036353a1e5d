package models

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind names one of the categorized entity types.
type Kind string

const (
	KindTranslation Kind = "translation"
	KindCommunity   Kind = "community"
	KindHeritage    Kind = "heritage"
	KindEvent       Kind = "event"
	KindResource    Kind = "resource"
)

// Option is a category value with its human-facing label.
type Option struct {
	Value string
	Label string
}

// Form-entry categories. Stored records may carry other tags (seeded
// heritage and event records do); those are accepted by the stores and
// labeled by CategoryLabel's fallback.
var (
	TranslationCategories = []Option{
		{"greetings", "Greetings"},
		{"emergency", "Emergency"},
		{"healthcare", "Healthcare"},
		{"government", "Government Services"},
		{"employment", "Employment"},
		{"housing", "Housing"},
		{"education", "Education"},
		{"transportation", "Transportation"},
		{"shopping", "Shopping"},
		{"conversation", "Basic Conversation"},
	}

	CommunityCategories = []Option{
		{"cultural_centers", "Cultural Centers"},
		{"religious", "Religious Organizations"},
		{"organizations", "Community Organizations"},
		{"businesses", "Ukrainian Businesses"},
		{"media", "Media"},
		{"sports", "Sports & Recreation"},
	}

	HeritageCategories = []Option{
		{"history", "History"},
		{"culture", "Culture"},
		{"architecture", "Architecture"},
		{"people", "Notable People"},
		{"traditions", "Traditions"},
		{"language", "Language"},
	}

	EventCategories = []Option{
		{"cultural", "Cultural"},
		{"educational", "Educational"},
		{"religious", "Religious"},
		{"social", "Social"},
		{"business", "Business"},
		{"sports", "Sports"},
	}

	ResourceCategories = []Option{
		{"government", "Government Services"},
		{"healthcare", "Healthcare"},
		{"education", "Education"},
		{"employment", "Employment"},
		{"housing", "Housing"},
		{"legal", "Legal Services"},
		{"financial", "Financial Services"},
		{"transportation", "Transportation"},
	}
)

// Difficulty levels shared by translations and lessons.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

var DifficultyLevels = []Option{
	{DifficultyBeginner, "Beginner"},
	{DifficultyIntermediate, "Intermediate"},
	{DifficultyAdvanced, "Advanced"},
}

// Categories returns the form-entry enumeration for kind, or nil for an
// unknown kind.
func Categories(kind Kind) []Option {
	switch kind {
	case KindTranslation:
		return TranslationCategories
	case KindCommunity:
		return CommunityCategories
	case KindHeritage:
		return HeritageCategories
	case KindEvent:
		return EventCategories
	case KindResource:
		return ResourceCategories
	}
	return nil
}

// Values returns the stored values of opts in declaration order.
func Values(opts []Option) []string {
	return lo.Map(opts, func(o Option, _ int) string { return o.Value })
}

// IsCategory reports whether value is in kind's form-entry enumeration.
func IsCategory(kind Kind, value string) bool {
	return lo.ContainsBy(Categories(kind), func(o Option) bool { return o.Value == value })
}

// CategoryLabel returns the label for value. Values outside the
// enumeration ("urban_heritage") are title-cased ("Urban Heritage").
func CategoryLabel(kind Kind, value string) string {
	if o, ok := lo.Find(Categories(kind), func(o Option) bool { return o.Value == value }); ok {
		return o.Label
	}
	return titleCase(value)
}

// DifficultyLabel returns the label for a difficulty or lesson level.
func DifficultyLabel(value string) string {
	if o, ok := lo.Find(DifficultyLevels, func(o Option) bool { return o.Value == value }); ok {
		return o.Label
	}
	return titleCase(value)
}

// Casers carry state and are not shared between goroutines.
func titleCase(value string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(value, "_", " "))
}

// LabelOptions pairs each stored value with its label, for filter
// dropdowns built from distinct stored tags.
func LabelOptions(kind Kind, values []string) []Option {
	return lo.Map(values, func(v string, _ int) Option {
		return Option{Value: v, Label: CategoryLabel(kind, v)}
	})
}
