package classifier

import (
	"errors"
	"unicode/utf8"

	"github.com/drshade/linguist/internal/dataset"
)

// Match pairs a language name with its definition. The classifier
// returns every candidate rather than picking a winner; callers layer
// their own priority or defaulting on top.
type Match struct {
	Name     string
	Language *dataset.Language
}

// ByExtension returns the languages registered for any candidate
// extension of the path's filename, most specific extension first,
// de-duplicated by language name. An unregistered extension is not an
// error: the result is simply empty.
func (ix *Index) ByExtension(path string) ([]Match, error) {
	filename, err := filenameFromPath(path)
	if err != nil {
		return nil, err
	}

	var matches []Match
	seen := make(map[string]bool)
	for _, ext := range ExtractExtensions(filename) {
		for _, name := range ix.byExtension[ext] {
			if seen[name] {
				continue
			}
			seen[name] = true
			matches = append(matches, Match{Name: name, Language: ix.languages[name]})
		}
	}
	return matches, nil
}

// ByFilename returns the languages whose filename list contains the
// path's final component exactly. The comparison is case-sensitive.
func (ix *Index) ByFilename(path string) ([]Match, error) {
	filename, err := filenameFromPath(path)
	if err != nil {
		return nil, err
	}

	names := ix.byFilename[filename]
	matches := make([]Match, 0, len(names))
	for _, name := range names {
		matches = append(matches, Match{Name: name, Language: ix.languages[name]})
	}
	return matches, nil
}

// Disambiguate classifies the file by content. Candidate extensions are
// tried from most specific to most general; only the first extension
// with any registered disambiguation block is consulted. Within that
// block set, rules run in declared order and the first match decides.
// If the consulted rules all fail the result is empty: there is no
// fallback to a less specific extension's block, nor to a later block
// registered for the same extension.
//
// A path with no extension, no filename component at all, or whose
// extensions have no registered block, yields an empty result and no
// error.
func (ix *Index) Disambiguate(path, content string) ([]Match, error) {
	filename, err := filenameFromPath(path)
	if errors.Is(err, ErrNoFilename) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	for _, ext := range ExtractExtensions(filename) {
		blocks := ix.disambiguations[ext]
		if len(blocks) == 0 {
			continue
		}

		// Only the first block registered for the extension is
		// consulted, matched or not.
		for _, r := range blocks[0].rules {
			matched, err := r.match(ix, content)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}

			langs := r.languages()
			matches := make([]Match, 0, len(langs))
			for _, name := range langs {
				if def, found := ix.languages[name]; found {
					matches = append(matches, Match{Name: name, Language: def})
				}
			}
			return matches, nil
		}

		// The extension had a registered block but no rule matched.
		// Deliberately do not retry less specific extensions.
		return nil, nil
	}

	return nil, nil
}

// IsVendored reports whether the full path matches any vendor pattern.
// It operates on the raw path string rather than the filename, so an
// empty path is well-defined and simply not vendored.
func (ix *Index) IsVendored(path string) (bool, error) {
	if !utf8.ValidString(path) {
		return false, &InvalidPathError{Path: path}
	}
	if path == "" {
		return false, nil
	}

	for _, re := range ix.vendor {
		if re.MatchString(path) {
			return true, nil
		}
	}
	return false, nil
}

// ByExtension classifies path by extension using the default index.
func ByExtension(path string) ([]Match, error) {
	return Default().ByExtension(path)
}

// ByFilename classifies path by exact filename using the default index.
func ByFilename(path string) ([]Match, error) {
	return Default().ByFilename(path)
}

// Disambiguate classifies path by content using the default index.
func Disambiguate(path, content string) ([]Match, error) {
	return Default().Disambiguate(path, content)
}

// IsVendored reports vendor status of path using the default index.
func IsVendored(path string) (bool, error) {
	return Default().IsVendored(path)
}
