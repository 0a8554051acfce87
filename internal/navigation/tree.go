// Package navigation validates a manifest's navigation tree and resolves
// its leaf paths against a document store.
package navigation

import (
	"github.com/mintkit/mintlint/internal/manifest"
)

// Validate walks the navigation tree depth-first and returns every leaf
// path in encounter order. The returned paths are unique: a path seen
// twice anywhere in the tree fails with DuplicatePageError, since two
// sidebar entries for one document would make routing ambiguous. A group
// with an empty pages sequence fails with EmptyGroupError.
func Validate(groups []manifest.Group) ([]string, error) {
	w := &walker{seen: make(map[string]string)}
	for _, g := range groups {
		if err := w.group(g, ""); err != nil {
			return nil, err
		}
	}
	return w.order, nil
}

type walker struct {
	order []string
	seen  map[string]string // leaf path -> trail of first occurrence
}

func (w *walker) group(g manifest.Group, trail string) error {
	here := g.Group
	if trail != "" {
		here = trail + " > " + g.Group
	}

	if len(g.Pages) == 0 {
		return &EmptyGroupError{Title: g.Group}
	}

	for _, p := range g.Pages {
		if !p.IsLeaf() {
			if err := w.group(*p.Group, here); err != nil {
				return err
			}
			continue
		}

		if first, ok := w.seen[p.Path]; ok {
			return &DuplicatePageError{Path: p.Path, First: first, Second: here}
		}
		w.seen[p.Path] = here
		w.order = append(w.order, p.Path)
	}

	return nil
}

// ResolvePaths returns the leaf paths for which exists reports false,
// preserving input order. Missing paths are findings, not failures: the
// caller decides whether they are fatal.
func ResolvePaths(leafPaths []string, exists func(string) bool) []string {
	var missing []string
	for _, p := range leafPaths {
		if !exists(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
