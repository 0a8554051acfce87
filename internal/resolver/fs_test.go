package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("# doc"), 0644))
}

func TestFS_Exists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "quickstart.md")
	writeFile(t, root, "guides/intro.mdx")
	writeFile(t, root, "assets/diagram.png")

	r := New(root)

	assert.True(t, r.Exists("quickstart"))
	assert.True(t, r.Exists("guides/intro"))
	assert.True(t, r.Exists("/guides/intro"))
	assert.True(t, r.Exists("assets/diagram.png"))
	assert.False(t, r.Exists("guides/missing"))
	assert.False(t, r.Exists("nope"))
}

func TestFS_Exists_DirectoryIsNotADocument(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "guides"), 0755))

	r := New(root)

	assert.False(t, r.Exists("guides"))
}

func TestFS_Exists_RejectsEscapingPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Dir(root), "secret.md")

	r := New(root)

	assert.False(t, r.Exists("../secret"))
	assert.False(t, r.Exists("a/../../secret"))
}

func TestNew_EmptyRoot(t *testing.T) {
	r := New("")
	assert.Equal(t, ".", r.Root())
}
