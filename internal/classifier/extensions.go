package classifier

import (
	"strings"
	"unicode/utf8"
)

// ExtractExtensions returns every candidate extension of filename, from
// the shortest suffix to the longest. An extension starts at a "." and
// runs to the end of the filename, so "complex.a.b.c" yields
// [".c", ".b.c", ".a.b.c"] and a filename without a dot yields nil.
//
// A filename that is only a dot-prefixed name (".gitignore") yields one
// extension equal to the whole filename; such files belong to the
// filename-match path, which callers should consult first.
func ExtractExtensions(filename string) []string {
	var dots []int
	for i := 0; i < len(filename); i++ {
		if filename[i] == '.' {
			dots = append(dots, i)
		}
	}
	if len(dots) == 0 {
		return nil
	}

	exts := make([]string, 0, len(dots))
	for i := len(dots) - 1; i >= 0; i-- {
		exts = append(exts, filename[dots[i]:])
	}
	return exts
}

// filenameFromPath reduces a path to its final filename component.
func filenameFromPath(path string) (string, error) {
	if !utf8.ValidString(path) {
		return "", &InvalidPathError{Path: path}
	}

	// Trim trailing separators, then take everything after the last one.
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "", ErrNoFilename
	}
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return "", ErrNoFilename
	}
	return trimmed, nil
}
