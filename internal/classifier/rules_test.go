package classifier

import (
	"testing"

	"github.com/drshade/linguist/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider builds a minimal dataset for exercising the rule engine
// in isolation from the embedded definitions.
type stubProvider struct {
	langs  dataset.Languages
	heur   dataset.Heuristics
	vendor []string
}

func (p *stubProvider) Languages() dataset.Languages    { return p.langs }
func (p *stubProvider) Heuristics() *dataset.Heuristics { return &p.heur }
func (p *stubProvider) VendorPatterns() []string        { return p.vendor }

func stubLanguages(names ...string) dataset.Languages {
	langs := make(dataset.Languages, len(names))
	for i, name := range names {
		langs[name] = &dataset.Language{
			Type:       dataset.TypeProgramming,
			AceMode:    "text",
			TmScope:    "none",
			LanguageID: int64(i + 1),
		}
	}
	return langs
}

func blockFor(ext string, rules ...dataset.HeuristicRule) dataset.Heuristics {
	return dataset.Heuristics{
		Disambiguations: []dataset.Disambiguation{
			{Extensions: []string{ext}, Rules: rules},
		},
	}
}

func TestRules_AndComposition(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("Both"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language: dataset.StringList{"Both"},
			And: []dataset.HeuristicRule{
				{Pattern: dataset.StringList{"alpha"}},
				{Pattern: dataset.StringList{"beta"}},
			},
		}),
	})

	// A matches but B does not: the composite must fail.
	matches, err := ix.Disambiguate("f.x", "alpha only")
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = ix.Disambiguate("f.x", "alpha and beta")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Both", matches[0].Name)
}

func TestRules_AndIgnoresSiblingFields(t *testing.T) {
	// The composite carries its own pattern field, which must not be
	// consulted when And is present.
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("L"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language: dataset.StringList{"L"},
			Pattern:  dataset.StringList{"never-present"},
			And: []dataset.HeuristicRule{
				{Pattern: dataset.StringList{"hello"}},
			},
		}),
	})

	matches, err := ix.Disambiguate("f.x", "hello world")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "L", matches[0].Name)
}

func TestRules_UnconditionalFallback(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("First", "Fallback"),
		heur: blockFor(".x",
			dataset.HeuristicRule{Language: dataset.StringList{"First"}, Pattern: dataset.StringList{"nope"}},
			dataset.HeuristicRule{Language: dataset.StringList{"Fallback"}},
		),
	})

	matches, err := ix.Disambiguate("f.x", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Fallback", matches[0].Name)
}

func TestRules_NegativePattern(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("NoFoo"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language:        dataset.StringList{"NoFoo"},
			NegativePattern: dataset.StringList{"foo"},
		}),
	})

	matches, err := ix.Disambiguate("f.x", "contains foo somewhere")
	require.NoError(t, err)
	assert.Empty(t, matches)

	matches, err = ix.Disambiguate("f.x", "clean content")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "NoFoo", matches[0].Name)
}

func TestRules_MissingNamedPattern(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("L"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language:     dataset.StringList{"L"},
			NamedPattern: "does-not-exist",
		}),
	})

	_, err := ix.Disambiguate("f.x", "anything")
	require.Error(t, err)

	var missing *MissingNamedPatternError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "does-not-exist", missing.Name)
}

func TestRules_InvalidRegex(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("L"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language: dataset.StringList{"L"},
			Pattern:  dataset.StringList{"(unclosed"},
		}),
	})

	_, err := ix.Disambiguate("f.x", "anything")
	require.Error(t, err)

	var invalid *InvalidRegexError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "(unclosed", invalid.Pattern)
	assert.NotEmpty(t, invalid.Message)
}

func TestRules_MultiLanguageRule(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("A", "B"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language: dataset.StringList{"A", "B"},
		}),
	})

	matches, err := ix.Disambiguate("f.x", "")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "A", matches[0].Name)
	assert.Equal(t, "B", matches[1].Name)
}

func TestRules_UnknownLanguageNameSkipped(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("Known"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language: dataset.StringList{"Known", "Unknown"},
		}),
	})

	matches, err := ix.Disambiguate("f.x", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Known", matches[0].Name)
}

func TestRules_NamedPatternAlternatives(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("L"),
		heur: dataset.Heuristics{
			Disambiguations: []dataset.Disambiguation{
				{
					Extensions: []string{".x"},
					Rules: []dataset.HeuristicRule{
						{Language: dataset.StringList{"L"}, NamedPattern: "shared"},
					},
				},
			},
			NamedPatterns: map[string]dataset.StringList{
				"shared": {"first-alt", "second-alt"},
			},
		},
	})

	matches, err := ix.Disambiguate("f.x", "has second-alt in it")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	matches, err = ix.Disambiguate("f.x", "neither alternative")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDisambiguate_NoCrossExtensionFallback(t *testing.T) {
	// ".x" (the most specific candidate) owns a block whose rules all
	// fail; ".y.x" owns a block that would match everything. The ".y.x"
	// block must NOT be consulted once ".x" was found and exhausted.
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("Narrow", "Broad"),
		heur: dataset.Heuristics{
			Disambiguations: []dataset.Disambiguation{
				{
					Extensions: []string{".x"},
					Rules: []dataset.HeuristicRule{
						{Language: dataset.StringList{"Narrow"}, Pattern: dataset.StringList{"never"}},
					},
				},
				{
					Extensions: []string{".y.x"},
					Rules: []dataset.HeuristicRule{
						{Language: dataset.StringList{"Broad"}},
					},
				},
			},
		},
	})

	matches, err := ix.Disambiguate("f.y.x", "content")
	require.NoError(t, err)
	assert.Empty(t, matches, "exhausting the first matching block must not fall back to another extension")
}

func TestDisambiguate_FirstBlockOnly(t *testing.T) {
	// Two blocks register ".x". Only the first is consulted; when its
	// rules all fail, the second block's unconditional rule must not
	// produce a match.
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("First", "Second"),
		heur: dataset.Heuristics{
			Disambiguations: []dataset.Disambiguation{
				{
					Extensions: []string{".x"},
					Rules: []dataset.HeuristicRule{
						{Language: dataset.StringList{"First"}, Pattern: dataset.StringList{"never"}},
					},
				},
				{
					Extensions: []string{".x"},
					Rules: []dataset.HeuristicRule{
						{Language: dataset.StringList{"Second"}},
					},
				},
			},
		},
	})

	matches, err := ix.Disambiguate("f.x", "content")
	require.NoError(t, err)
	assert.Empty(t, matches, "a later block for the same extension must not be consulted")
}

func TestDisambiguate_NoFilenameComponent(t *testing.T) {
	ix := NewIndex(&stubProvider{
		langs: stubLanguages("L"),
		heur: blockFor(".x", dataset.HeuristicRule{
			Language: dataset.StringList{"L"},
		}),
	})

	for _, path := range []string{"", "/", "dir/", ".", ".."} {
		matches, err := ix.Disambiguate(path, "content")
		require.NoError(t, err, "path %q", path)
		assert.Empty(t, matches, "path %q", path)
	}

	// Non-UTF-8 paths still fail, unlike the missing-filename case.
	_, err := ix.Disambiguate("dir/\xff.x", "content")
	var invalid *InvalidPathError
	require.ErrorAs(t, err, &invalid)
}
