// Package output renders audit reports in human and machine formats.
package output

// Report summarizes a manifest audit: the validated navigation tree's
// leaf paths in sidebar order, plus any paths that did not resolve to a
// document. Missing paths are warnings, not validation failures.
type Report struct {
	Manifest string   `json:"manifest" yaml:"manifest"`
	Groups   int      `json:"groups" yaml:"groups"`
	Anchors  int      `json:"anchors" yaml:"anchors"`
	Pages    []string `json:"pages" yaml:"pages"`
	Missing  []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Valid    bool     `json:"valid" yaml:"valid"`
}

// PageCount returns the number of leaf pages in the navigation tree
func (r *Report) PageCount() int {
	return len(r.Pages)
}

// HasMissing reports whether any leaf path failed to resolve
func (r *Report) HasMissing() bool {
	return len(r.Missing) > 0
}
