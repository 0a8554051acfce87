package navigation

import (
	"testing"

	"github.com/mintkit/mintlint/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nav(groups ...manifest.Group) []manifest.Group {
	return groups
}

func group(title string, pages ...manifest.Page) manifest.Group {
	return manifest.Group{Group: title, Pages: pages}
}

func TestValidate_CollectsLeavesInOrder(t *testing.T) {
	tree := nav(group("G",
		manifest.LeafPage("a"),
		manifest.LeafPage("b"),
		manifest.GroupPage(group("H", manifest.LeafPage("c"))),
	))

	paths, err := Validate(tree)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, paths)
}

func TestValidate_DepthFirstOrder(t *testing.T) {
	tree := nav(
		group("Docs",
			manifest.LeafPage("intro"),
			manifest.GroupPage(group("Platform",
				manifest.LeafPage("platform/overview"),
				manifest.GroupPage(group("Stores", manifest.LeafPage("platform/stores/vector"))),
			)),
			manifest.LeafPage("faq"),
		),
		group("API", manifest.LeafPage("api/reference")),
	)

	paths, err := Validate(tree)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"intro",
		"platform/overview",
		"platform/stores/vector",
		"faq",
		"api/reference",
	}, paths)
}

func TestValidate_DuplicatePage(t *testing.T) {
	tree := nav(group("G", manifest.LeafPage("a"), manifest.LeafPage("a")))

	paths, err := Validate(tree)

	assert.Nil(t, paths)
	assert.ErrorIs(t, err, ErrDuplicatePage)

	var dup *DuplicatePageError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.Path)
	assert.Equal(t, "G", dup.First)
	assert.Equal(t, "G", dup.Second)
}

func TestValidate_DuplicateAcrossGroups(t *testing.T) {
	tree := nav(
		group("Docs", manifest.LeafPage("shared")),
		group("API", manifest.GroupPage(group("Reference", manifest.LeafPage("shared")))),
	)

	_, err := Validate(tree)

	var dup *DuplicatePageError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "shared", dup.Path)
	assert.Equal(t, "Docs", dup.First)
	assert.Equal(t, "API > Reference", dup.Second)
	assert.Contains(t, err.Error(), `"shared"`)
}

func TestValidate_EmptyGroup(t *testing.T) {
	tree := nav(group("G", manifest.LeafPage("a"), manifest.GroupPage(group("Empty"))))

	paths, err := Validate(tree)

	assert.Nil(t, paths)
	assert.ErrorIs(t, err, ErrEmptyGroup)

	var empty *EmptyGroupError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "Empty", empty.Title)
	assert.Contains(t, err.Error(), `"Empty"`)
}

func TestResolvePaths(t *testing.T) {
	exists := func(p string) bool {
		return p != "missing-1" && p != "missing-2"
	}

	missing := ResolvePaths([]string{"a", "missing-1", "b", "missing-2"}, exists)

	assert.Equal(t, []string{"missing-1", "missing-2"}, missing)
}

func TestResolvePaths_AllExist(t *testing.T) {
	exists := func(string) bool { return true }

	missing := ResolvePaths([]string{"a", "b", "c"}, exists)

	assert.Empty(t, missing)
}
