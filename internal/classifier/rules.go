package classifier

import "github.com/drshade/linguist/internal/dataset"

// rule is one disambiguation rule, compiled into one of two variants:
// a leaf with pattern conditions, or a composite whose sub-rules must
// all match. Splitting the variants at the type level makes the
// "composite ignores its own pattern fields" contract structural
// instead of conventional.
type rule interface {
	// match reports whether content satisfies the rule. Pattern strings
	// are compiled lazily through the index's cache; a malformed pattern
	// or an unresolved named pattern aborts evaluation with an error.
	match(ix *Index, content string) (bool, error)

	// languages returns the language names this rule classifies as.
	languages() []string
}

// leafRule holds the pattern conditions of a single rule. A leaf with
// no conditions at all matches unconditionally; blocks use that as a
// terminal fallback.
type leafRule struct {
	langs            []string
	patterns         []string
	negativePatterns []string
	namedPattern     string
}

func (r *leafRule) languages() []string { return r.langs }

func (r *leafRule) match(ix *Index, content string) (bool, error) {
	if r.namedPattern != "" {
		alternatives, found := ix.namedPatterns[r.namedPattern]
		if !found {
			return false, &MissingNamedPatternError{Name: r.namedPattern}
		}
		matched, err := ix.matchAny(alternatives, content)
		if err != nil || !matched {
			return false, err
		}
	}

	if len(r.patterns) > 0 {
		matched, err := ix.matchAny(r.patterns, content)
		if err != nil || !matched {
			return false, err
		}
	}

	if len(r.negativePatterns) > 0 {
		matched, err := ix.matchAny(r.negativePatterns, content)
		if err != nil || matched {
			return false, err
		}
	}

	return true, nil
}

// andRule is a composite: every sub-rule must match.
type andRule struct {
	langs []string
	rules []rule
}

func (r *andRule) languages() []string { return r.langs }

func (r *andRule) match(ix *Index, content string) (bool, error) {
	for _, sub := range r.rules {
		matched, err := sub.match(ix, content)
		if err != nil || !matched {
			return false, err
		}
	}
	return true, nil
}

// compileRule converts a dataset rule into its tagged form. Regexes are
// not compiled here: pattern validity is checked lazily on first use.
func compileRule(hr dataset.HeuristicRule) rule {
	if len(hr.And) > 0 {
		sub := make([]rule, 0, len(hr.And))
		for _, s := range hr.And {
			sub = append(sub, compileRule(s))
		}
		return &andRule{langs: hr.Language, rules: sub}
	}
	return &leafRule{
		langs:            hr.Language,
		patterns:         hr.Pattern,
		negativePatterns: hr.NegativePattern,
		namedPattern:     hr.NamedPattern,
	}
}

// matchAny reports whether content matches at least one of the pattern
// alternatives. Matching is an unanchored search, not a full match.
func (ix *Index) matchAny(patterns []string, content string) (bool, error) {
	for _, pattern := range patterns {
		re, err := ix.patterns.GetOrCompile(pattern)
		if err != nil {
			return false, &InvalidRegexError{Pattern: pattern, Message: err.Error()}
		}
		if re.MatchString(content) {
			return true, nil
		}
	}
	return false, nil
}
