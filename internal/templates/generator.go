package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	oerrors "github.com/breadjs/create-bread-app/internal/errors"
	"github.com/breadjs/create-bread-app/internal/manifest"
	"github.com/breadjs/create-bread-app/internal/output"
)

// Generator writes a new project from the manifest and template layers.
type Generator struct {
	opts GenerateOptions
}

// NewGenerator creates a new generator with the given options.
func NewGenerator(opts GenerateOptions) *Generator {
	return &Generator{opts: opts}
}

// Generate creates the target directory, writes package.json and renders the
// selected layers into it. If the directory was created by this call it is
// removed again on failure, together with any parents created for it.
func (g *Generator) Generate() (result *GenerateResult, err error) {
	if g.opts.Manifest == nil {
		return nil, errors.New("generate: manifest is required")
	}

	createdRoot, err := g.prepareTargetDir()
	if err != nil {
		return nil, err
	}
	created := createdRoot != ""

	defer func() {
		if err != nil && created {
			if rmErr := os.RemoveAll(createdRoot); rmErr != nil {
				output.Warn("could not clean up target directory", "dir", createdRoot, "error", rmErr)
			}
		}
	}()

	if _, err := manifest.Write(g.opts.TargetDir, g.opts.Manifest); err != nil {
		return nil, oerrors.NewFilesystemError("writing manifest", g.opts.TargetDir, err)
	}
	createdFiles := []string{manifest.FileName}

	layers := Layers(g.opts.Toggles)
	data := g.templateData()

	output.Debug("rendering template",
		"layers", strings.Join(layers, ","),
		"name", data.Name,
		"target", g.opts.TargetDir)

	fsys := g.opts.FS
	if fsys == nil {
		fsys = embeddedLayers()
	}

	files, err := newRenderer(data, fsys).RenderLayers(layers)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, filepath.FromSlash(f.TargetPath))

		parentDir := filepath.Dir(targetPath)
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			return nil, oerrors.NewFilesystemError("creating directory", parentDir, err)
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			return nil, oerrors.NewFilesystemError("writing file", targetPath, err)
		}

		output.Debug("created file", "path", f.TargetPath)
		createdFiles = append(createdFiles, f.TargetPath)
	}

	sort.Strings(createdFiles)

	return &GenerateResult{
		Files:      createdFiles,
		Layers:     layers,
		TargetDir:  g.opts.TargetDir,
		CreatedDir: created,
	}, nil
}

// prepareTargetDir makes sure the target is an empty (or forced) directory.
// When it has to create the directory it returns the topmost directory it
// created, so cleanup also removes missing parents it made along the way.
func (g *Generator) prepareTargetDir() (string, error) {
	dir := g.opts.TargetDir

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		root, err := topmostMissing(dir)
		if err != nil {
			return "", oerrors.NewFilesystemError("checking target directory", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", oerrors.NewFilesystemError("creating project directory", dir, err)
		}
		return root, nil
	}
	if err != nil {
		return "", oerrors.NewFilesystemError("checking target directory", dir, err)
	}

	if !info.IsDir() {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", dir), dir,
			"Choose a different project name.")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", oerrors.NewFilesystemError("reading target directory", dir, err)
	}

	if len(entries) > 0 && !g.opts.Force {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("directory %s is not empty", dir), dir,
			"Choose a different project name, empty the directory, or use --force to write into it anyway.")
	}

	return "", nil
}

// topmostMissing walks up from a missing dir and returns the highest
// ancestor that does not exist yet.
func topmostMissing(dir string) (string, error) {
	root := filepath.Clean(dir)
	for {
		parent := filepath.Dir(root)
		if parent == root {
			return root, nil
		}
		_, err := os.Stat(parent)
		if err == nil {
			return root, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		root = parent
	}
}

func (g *Generator) templateData() TemplateData {
	m := g.opts.Manifest
	runCommand := g.opts.RunCommand
	if runCommand == "" {
		runCommand = "npm run"
	}
	return TemplateData{
		Name:       m.Name,
		Title:      Title(m.Name),
		Version:    m.Version,
		EntryFile:  EntryFile(g.opts.Toggles.TypeScript),
		RunCommand: runCommand,
		TypeScript: g.opts.Toggles.TypeScript,
		Rollup:     g.opts.Toggles.Rollup,
		Webpack:    g.opts.Toggles.Webpack,
	}
}

var wordSeparators = strings.NewReplacer("-", " ", "_", " ", ".", " ")

// Title turns a package name into a heading: "@acme/my-app" -> "My App".
func Title(name string) string {
	name = path.Base(name)
	return cases.Title(language.English).String(wordSeparators.Replace(name))
}
