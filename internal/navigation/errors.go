package navigation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the navigation package
var (
	// ErrDuplicatePage indicates the same leaf path appears twice in the tree
	ErrDuplicatePage = errors.New("duplicate page in navigation tree")

	// ErrEmptyGroup indicates a group has no pages
	ErrEmptyGroup = errors.New("navigation group has no pages")
)

// DuplicatePageError reports a leaf path referenced at two positions in
// the navigation tree. First and Second are group trails, e.g.
// "Docs > Platform".
type DuplicatePageError struct {
	Path   string
	First  string
	Second string
}

func (e *DuplicatePageError) Error() string {
	return fmt.Sprintf("duplicate page %q: first at %s, again at %s", e.Path, e.First, e.Second)
}

func (e *DuplicatePageError) Unwrap() error {
	return ErrDuplicatePage
}

// EmptyGroupError reports a group with an empty pages sequence
type EmptyGroupError struct {
	Title string
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("group %q has no pages", e.Title)
}

func (e *EmptyGroupError) Unwrap() error {
	return ErrEmptyGroup
}
