// Package dataset defines the language, heuristics and vendor tables the
// classifier is built from, and loads them from their YAML definitions.
package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LanguageType categorizes a language entry.
type LanguageType string

// Language type constants, matching the "type" field of languages.yml.
const (
	TypeData        LanguageType = "data"
	TypeProgramming LanguageType = "programming"
	TypeMarkup      LanguageType = "markup"
	TypeProse       LanguageType = "prose"
)

// Language is a single language definition from languages.yml.
type Language struct {
	// Type of language: data, programming, markup, or prose.
	Type LanguageType `yaml:"type" msgpack:"type"`

	// AceMode is the Ace editor mode used for syntax highlighting.
	AceMode string `yaml:"ace_mode" msgpack:"ace_mode"`

	// TmScope is the TextMate scope for the language.
	TmScope string `yaml:"tm_scope" msgpack:"tm_scope"`

	// LanguageID is the unique numeric identifier for the language.
	LanguageID int64 `yaml:"language_id" msgpack:"language_id"`

	// Extensions lists associated file extensions (each begins with ".").
	Extensions []string `yaml:"extensions,omitempty" msgpack:"extensions,omitempty"`

	// Filenames lists exact filenames associated with the language.
	Filenames []string `yaml:"filenames,omitempty" msgpack:"filenames,omitempty"`

	// Aliases lists additional names for the language.
	Aliases []string `yaml:"aliases,omitempty" msgpack:"aliases,omitempty"`

	// Interpreters lists programs that execute the language.
	Interpreters []string `yaml:"interpreters,omitempty" msgpack:"interpreters,omitempty"`

	// Color is the CSS color associated with the language ("#RRGGBB").
	Color string `yaml:"color,omitempty" msgpack:"color,omitempty"`

	// CodemirrorMode is the CodeMirror 5 mode for editing.
	CodemirrorMode string `yaml:"codemirror_mode,omitempty" msgpack:"codemirror_mode,omitempty"`

	// CodemirrorMimeType is the MIME media-type used by CodeMirror 5.
	CodemirrorMimeType string `yaml:"codemirror_mime_type,omitempty" msgpack:"codemirror_mime_type,omitempty"`

	// Group names the parent language for grouping purposes.
	Group string `yaml:"group,omitempty" msgpack:"group,omitempty"`

	// FSName is a filesystem-safe name for the language.
	FSName string `yaml:"fs_name,omitempty" msgpack:"fs_name,omitempty"`

	// Wrap enables soft line-wrapping.
	Wrap bool `yaml:"wrap,omitempty" msgpack:"wrap,omitempty"`
}

// Languages maps language names to their definitions.
type Languages map[string]*Language

// StringList is a list of strings that unmarshals from either a single
// YAML scalar or a sequence. heuristics.yml uses both forms
// interchangeably for language, pattern and negative_pattern fields.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*s = StringList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*s = StringList(many)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings at line %d", node.Line)
	}
}

// HeuristicRule is a single disambiguation rule from heuristics.yml.
// A rule with an And list is a composite: all sub-rules must hold and the
// rule's own pattern fields are ignored. A rule with no conditions at all
// matches unconditionally and serves as a block's terminal fallback.
type HeuristicRule struct {
	// Language names the language(s) returned when this rule matches.
	Language StringList `yaml:"language,omitempty" msgpack:"language,omitempty"`

	// Pattern lists positive regex alternatives; at least one must match.
	Pattern StringList `yaml:"pattern,omitempty" msgpack:"pattern,omitempty"`

	// NegativePattern lists regex alternatives that must all fail.
	NegativePattern StringList `yaml:"negative_pattern,omitempty" msgpack:"negative_pattern,omitempty"`

	// NamedPattern references a shared pattern in NamedPatterns.
	NamedPattern string `yaml:"named_pattern,omitempty" msgpack:"named_pattern,omitempty"`

	// And lists sub-rules that must all match.
	And []HeuristicRule `yaml:"and,omitempty" msgpack:"and,omitempty"`
}

// Disambiguation associates a set of extensions with an ordered rule
// list. Rule order is significant: the first matching rule wins.
type Disambiguation struct {
	Extensions []string        `yaml:"extensions" msgpack:"extensions"`
	Rules      []HeuristicRule `yaml:"rules" msgpack:"rules"`
}

// Heuristics is the root structure of heuristics.yml.
type Heuristics struct {
	// Disambiguations lists blocks in declaration order.
	Disambiguations []Disambiguation `yaml:"disambiguations" msgpack:"disambiguations"`

	// NamedPatterns maps a name to reusable regex alternatives.
	NamedPatterns map[string]StringList `yaml:"named_patterns" msgpack:"named_patterns"`
}
