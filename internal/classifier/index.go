// Package classifier implements the language classification engine:
// lookup indices over the language dataset, candidate-extension
// extraction, the heuristic rule interpreter, and the vendored-path
// matcher.
package classifier

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/drshade/linguist/internal/dataset"
	"github.com/drshade/linguist/pkg/regexcache"
)

// patternCacheSize bounds the number of memoized compiled heuristic
// patterns. The full heuristics table compiles to well under this.
const patternCacheSize = 1024

// block is a disambiguation block with its rules in compiled form.
type block struct {
	rules []rule
}

// Index holds the read-only lookup structures derived from a dataset.
// Build one with NewIndex (or share the lazily-built Default) and reuse
// it for the life of the process; it is safe for concurrent use and is
// never mutated after construction.
type Index struct {
	languages       dataset.Languages
	byFilename      map[string][]string
	byExtension     map[string][]string
	disambiguations map[string][]*block
	namedPatterns   map[string]dataset.StringList
	vendor          []*regexp.Regexp
	patterns        *regexcache.Cache
}

// NewIndex derives the lookup indices from p in one pass over each
// table. Construction cannot fail on well-formed input: a vendor
// pattern that does not compile is logged and skipped, so vendor
// matching degrades instead of aborting.
func NewIndex(p dataset.Provider) *Index {
	ix := &Index{
		languages:       p.Languages(),
		byFilename:      make(map[string][]string),
		byExtension:     make(map[string][]string),
		disambiguations: make(map[string][]*block),
		namedPatterns:   make(map[string]dataset.StringList),
		patterns:        regexcache.New(regexcache.Options{MaxSize: patternCacheSize}),
	}

	for name, lang := range ix.languages {
		for _, filename := range lang.Filenames {
			ix.byFilename[filename] = append(ix.byFilename[filename], name)
		}
		for _, ext := range lang.Extensions {
			ix.byExtension[ext] = append(ix.byExtension[ext], name)
		}
	}

	// Map iteration order is random; keep lookups deterministic.
	for _, names := range ix.byFilename {
		sort.Strings(names)
	}
	for _, names := range ix.byExtension {
		sort.Strings(names)
	}

	heuristics := p.Heuristics()
	if heuristics != nil {
		for name, alternatives := range heuristics.NamedPatterns {
			ix.namedPatterns[name] = alternatives
		}
		for _, d := range heuristics.Disambiguations {
			b := &block{rules: make([]rule, 0, len(d.Rules))}
			for _, hr := range d.Rules {
				b.rules = append(b.rules, compileRule(hr))
			}
			for _, ext := range d.Extensions {
				ix.disambiguations[ext] = append(ix.disambiguations[ext], b)
			}
		}
	}

	for _, pattern := range p.VendorPatterns() {
		re, err := regexp.Compile(pattern)
		if err != nil {
			log.Warn("skipping malformed vendor pattern", "pattern", pattern, "error", err)
			continue
		}
		ix.vendor = append(ix.vendor, re)
	}

	return ix
}

var defaultIndex = sync.OnceValue(func() *Index {
	d, err := dataset.Default()
	if err != nil {
		// The embedded definitions ship with the binary; failing to
		// parse them is a build defect, not an input error.
		panic("classifier: embedded dataset is invalid: " + err.Error())
	}
	return NewIndex(d)
})

// Default returns the process-wide index over the embedded dataset,
// building it on first use. Concurrent first callers are safe: exactly
// one build executes and all callers observe the completed result.
func Default() *Index {
	return defaultIndex()
}
