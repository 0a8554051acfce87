// Package resolver provides the filesystem implementation of the
// document-existence check used when auditing a manifest.
package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mintkit/mintlint/internal/domain"
)

// Ensure FS implements domain.Resolver
var _ domain.Resolver = (*FS)(nil)

// Extensions tried when resolving a leaf path, in order. Manifest paths
// carry no extension, so "guides/intro" matches guides/intro.mdx or
// guides/intro.md; the bare path is tried last for assets referenced
// directly.
var candidateExtensions = []string{".mdx", ".md", ""}

// FS resolves leaf paths against a documentation directory
type FS struct {
	root string
}

// New creates a filesystem resolver rooted at the given directory
func New(root string) *FS {
	if root == "" {
		root = "."
	}
	return &FS{root: root}
}

// Root returns the documentation root directory
func (r *FS) Root() string {
	return r.root
}

// Exists reports whether the leaf path maps to a document under the root
func (r *FS) Exists(path string) bool {
	rel := filepath.FromSlash(strings.TrimPrefix(path, "/"))
	rel = filepath.Clean(rel)

	// Paths that climb out of the docs root never resolve
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	for _, ext := range candidateExtensions {
		info, err := os.Stat(filepath.Join(r.root, rel+ext))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
