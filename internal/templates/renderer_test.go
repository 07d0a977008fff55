package templates

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() TemplateData {
	return TemplateData{
		Name:       "my-app",
		Title:      "My App",
		Version:    "0.1.0",
		EntryFile:  "src/index.ts",
		RunCommand: "yarn run",
		TypeScript: true,
		Rollup:     true,
	}
}

func TestRenderLayer_TargetPaths(t *testing.T) {
	tests := []struct {
		layer     string
		wantFiles []string
	}{
		{LayerBase, []string{"README.md", ".gitignore", "babel.config.js", "jest.config.js"}},
		{LayerJavaScript, []string{"src/index.js"}},
		{LayerTypeScript, []string{"src/index.ts", "tsconfig.json", "tslint.json"}},
		{LayerRollup, []string{"build/rollup/rollup.config.js"}},
		{LayerWebpack, []string{"build/webpack/webpack.config.js"}},
	}

	r := NewRenderer(testData())
	for _, tt := range tests {
		t.Run(tt.layer, func(t *testing.T) {
			files, err := r.RenderLayer(tt.layer)
			require.NoError(t, err)

			var got []string
			for _, f := range files {
				got = append(got, f.TargetPath)
			}
			assert.ElementsMatch(t, tt.wantFiles, got)
		})
	}
}

func TestRenderLayer_Unknown(t *testing.T) {
	_, err := NewRenderer(testData()).RenderLayer("missing")
	assert.Error(t, err)
}

func TestRenderLayers_LaterLayerOverrides(t *testing.T) {
	fsys := fstest.MapFS{
		"one/a.txt": {Data: []byte("one")},
		"one/b.txt": {Data: []byte("b")},
		"two/a.txt": {Data: []byte("two")},
	}

	files, err := newRenderer(testData(), fsys).RenderLayers([]string{"one", "two"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].TargetPath)
	assert.Equal(t, "two", string(files[0].Content))
}

func TestRenderFile(t *testing.T) {
	r := NewRenderer(testData())

	out, err := r.RenderFile("x", []byte("{{.Name}}@{{.Version}}"))
	require.NoError(t, err)
	assert.Equal(t, "my-app@0.1.0", string(out))
}

func TestRenderFile_Errors(t *testing.T) {
	r := NewRenderer(testData())

	_, err := r.RenderFile("bad-syntax", []byte("{{.Name"))
	assert.Error(t, err)

	_, err = r.RenderFile("bad-field", []byte("{{.Missing}}"))
	assert.Error(t, err)
}

func TestRenderLayer_StripsSuffixAndSubstitutes(t *testing.T) {
	r := NewRenderer(testData())

	files, err := r.RenderLayer(LayerRollup)
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "build/rollup/rollup.config.js", f.TargetPath)
	assert.Equal(t, "rollup/build/rollup/rollup.config.js.tmpl", f.SourcePath)

	content := string(f.Content)
	assert.Contains(t, content, "input: 'src/index.ts'")
	assert.Contains(t, content, "dist/my-app.cjs.js")
	assert.Contains(t, content, "rollup-plugin-typescript")
	assert.NotContains(t, content, "{{")
}

func TestRenderLayer_VerbatimFiles(t *testing.T) {
	r := NewRenderer(testData())

	files, err := r.RenderLayer(LayerTypeScript)
	require.NoError(t, err)

	for _, f := range files {
		if f.TargetPath == "tsconfig.json" {
			assert.Contains(t, string(f.Content), `"outDir": "dist"`)
			return
		}
	}
	t.Fatal("tsconfig.json not rendered")
}

func TestRenderLayer_JavaScriptMode(t *testing.T) {
	data := testData()
	data.TypeScript = false
	data.EntryFile = "src/index.js"
	data.Webpack = true

	files, err := NewRenderer(data).RenderLayers([]string{LayerBase, LayerJavaScript, LayerWebpack})
	require.NoError(t, err)

	byPath := make(map[string]string)
	for _, f := range files {
		byPath[f.TargetPath] = string(f.Content)
	}

	webpack := byPath["build/webpack/webpack.config.js"]
	assert.NotContains(t, webpack, "ts-loader")
	assert.Contains(t, webpack, "src/index.js")

	jest := byPath["jest.config.js"]
	assert.NotContains(t, jest, "'ts'")

	readme := byPath["README.md"]
	assert.True(t, strings.HasPrefix(readme, "# My App"))
	assert.Contains(t, readme, "yarn run build:webpack")
	assert.NotContains(t, readme, "lint")
}
