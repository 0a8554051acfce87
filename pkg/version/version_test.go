package version_test

import (
	"runtime"
	"testing"

	"github.com/mintkit/mintlint/pkg/version"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := version.Get()

	assert.Equal(t, version.Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestString(t *testing.T) {
	s := version.Full()

	assert.Contains(t, s, "mintlint")
	assert.Contains(t, s, version.Version)
}

func TestShort(t *testing.T) {
	assert.Equal(t, version.Version, version.Short())
}
