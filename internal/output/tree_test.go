package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderFileTree("my-app", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	tree := RenderFileTree("my-app", map[string]string{
		"package.json":                  "Package manifest",
		"src/index.ts":                  "Entry point",
		"build/rollup/rollup.config.js": "",
		"babel.config.js":               "",
	})

	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	require.NotEmpty(t, lines)

	assert.Equal(t, "my-app/", lines[0])
	assert.Contains(t, lines[1], "build/")
	assert.Contains(t, lines[2], "rollup/")
	assert.Contains(t, lines[3], "rollup.config.js")
	assert.Contains(t, lines[4], "src/")
	assert.Contains(t, lines[5], "index.ts")
	assert.Contains(t, lines[6], "babel.config.js")
	assert.Contains(t, lines[7], "package.json")
	assert.True(t, strings.HasPrefix(lines[7], treeLast))
}

func TestRenderFileTree_AlignsDescriptions(t *testing.T) {
	tree := RenderFileTree("app", map[string]string{
		"a.js":      "first",
		"longer.js": "second",
	})

	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, strings.Index(lines[1], "first"), strings.Index(lines[2], "second"))
}

func TestFormatBullet(t *testing.T) {
	assert.Contains(t, FormatBullet(StyleError, "name cannot start with a period"),
		"  *  name cannot start with a period")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("done"), "done")
}
