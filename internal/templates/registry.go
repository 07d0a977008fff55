package templates

import (
	"path"
	"strings"

	"github.com/breadjs/create-bread-app/internal/manifest"
)

// Layer names, applied in this order.
const (
	LayerBase       = "base"
	LayerJavaScript = "javascript"
	LayerTypeScript = "typescript"
	LayerRollup     = "rollup"
	LayerWebpack    = "webpack"
)

// Layers returns the layers a toggle set selects. The base layer and exactly
// one language layer are always present; each bundler adds its own layer.
func Layers(t manifest.Toggles) []string {
	layers := []string{LayerBase}
	if t.TypeScript {
		layers = append(layers, LayerTypeScript)
	} else {
		layers = append(layers, LayerJavaScript)
	}
	if t.Rollup {
		layers = append(layers, LayerRollup)
	}
	if t.Webpack {
		layers = append(layers, LayerWebpack)
	}
	return layers
}

// EntryFile returns the entry point for the language mode.
func EntryFile(typeScript bool) string {
	if typeScript {
		return "src/index.ts"
	}
	return "src/index.js"
}

var descriptions = map[string]string{
	manifest.FileName: "Package manifest",
	"README.md":       "Project readme",
	".gitignore":      "Git ignore rules",
	"babel.config.js": "Babel configuration",
	"jest.config.js":  "Jest configuration",
	"tsconfig.json":   "TypeScript configuration",
	"tslint.json":     "TSLint rules",
	"src/index.ts":    "Entry point",
	"src/index.js":    "Entry point",
}

// Describe returns a short description of a generated file, or "".
func Describe(file string) string {
	file = strings.TrimSuffix(path.Clean(file), templateSuffix)
	if desc, ok := descriptions[file]; ok {
		return desc
	}
	switch {
	case strings.HasPrefix(file, manifest.RollupDir+"/"):
		return "Rollup configuration"
	case strings.HasPrefix(file, manifest.WebpackDir+"/"):
		return "Webpack configuration"
	}
	return ""
}
