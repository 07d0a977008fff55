package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_ListsAllDependencies(t *testing.T) {
	dir := t.TempDir()
	m := Build("my-app", DefaultToggles())

	path, err := Write(dir, m)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	pkg, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "my-app", pkg.Name)
	assert.Equal(t, "0.1.0", pkg.Version)
	assert.True(t, pkg.Private)
	assert.Equal(t, m.Files.List(), pkg.Bread.Files)

	for _, dep := range m.Dev.List() {
		assert.Equal(t, LatestTag, pkg.DevDependencies[dep], "dev dependency %s", dep)
	}
	for _, dep := range m.Prod.List() {
		assert.Equal(t, LatestTag, pkg.Dependencies[dep], "dependency %s", dep)
	}
	assert.Len(t, pkg.DevDependencies, m.Dev.Len())
	assert.Len(t, pkg.Dependencies, m.Prod.Len())
}

func TestMarshal_Format(t *testing.T) {
	data, err := Build("my-app", DefaultToggles()).Marshal()
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "{\n  \"name\": \"my-app\""))
	assert.True(t, strings.HasSuffix(s, "}\n"))
	// Scoped names must not be HTML-escaped.
	assert.Contains(t, s, `"@babel/core": "latest"`)
	assert.NotContains(t, s, `&`)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRead_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}
