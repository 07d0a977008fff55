package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed all:layers
var layerFS embed.FS

// templateSuffix marks files rendered through text/template. Other files are
// copied verbatim.
const templateSuffix = ".tmpl"

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data TemplateData
	fsys fs.FS
}

// NewRenderer creates a renderer over the embedded layers.
func NewRenderer(data TemplateData) *Renderer {
	return newRenderer(data, embeddedLayers())
}

func newRenderer(data TemplateData, fsys fs.FS) *Renderer {
	return &Renderer{data: data, fsys: fsys}
}

func embeddedLayers() fs.FS {
	sub, err := fs.Sub(layerFS, "layers")
	if err != nil {
		// layers is embedded at build time.
		panic(err)
	}
	return sub
}

// RenderFile renders a single template and returns the content.
func (r *Renderer) RenderFile(name string, content []byte) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// TemplateFile represents a file to be generated from a layer.
type TemplateFile struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the output path relative to the project root.
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

// RenderLayer renders every file of a layer.
func (r *Renderer) RenderLayer(layer string) ([]TemplateFile, error) {
	var files []TemplateFile

	err := fs.WalkDir(r.fsys, layer, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(r.fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}

		target := strings.TrimPrefix(p, layer+"/")
		if strings.HasSuffix(target, templateSuffix) {
			target = strings.TrimSuffix(target, templateSuffix)
			content, err = r.RenderFile(p, content)
			if err != nil {
				return err
			}
		}

		files = append(files, TemplateFile{
			SourcePath: p,
			TargetPath: target,
			Content:    content,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking layer %s: %w", layer, err)
	}

	return files, nil
}

// RenderLayers renders layers in order. A later layer overrides a file of
// an earlier one with the same target path.
func (r *Renderer) RenderLayers(layers []string) ([]TemplateFile, error) {
	var files []TemplateFile
	index := make(map[string]int)

	for _, layer := range layers {
		layerFiles, err := r.RenderLayer(layer)
		if err != nil {
			return nil, err
		}
		for _, f := range layerFiles {
			if i, ok := index[f.TargetPath]; ok {
				files[i] = f
				continue
			}
			index[f.TargetPath] = len(files)
			files = append(files, f)
		}
	}

	return files, nil
}
