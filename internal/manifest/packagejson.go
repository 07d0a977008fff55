package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the manifest file inside a project.
const FileName = "package.json"

// LatestTag is the version range written for every dependency.
const LatestTag = "latest"

// PackageJSON is the serialized form of a Manifest.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Bread           BreadConfig       `json:"bread"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// BreadConfig is the "bread" section of package.json.
type BreadConfig struct {
	Files []string `json:"files"`
}

// PackageJSON converts m to its serialized form.
func (m *Manifest) PackageJSON() PackageJSON {
	return PackageJSON{
		Name:            m.Name,
		Version:         m.Version,
		Private:         m.Private,
		Scripts:         m.Scripts,
		Bread:           BreadConfig{Files: m.Files.List()},
		Dependencies:    versionMap(m.Prod),
		DevDependencies: versionMap(m.Dev),
	}
}

// Marshal renders m as indented JSON with a trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.PackageJSON()); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return buf.Bytes(), nil
}

// Write writes m to dir/package.json and returns the file path.
func Write(dir string, m *Manifest) (string, error) {
	data, err := m.Marshal()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Read loads a package.json written by Write.
func Read(path string) (*PackageJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}

func versionMap(s *DepSet) map[string]string {
	if s.Len() == 0 {
		return nil
	}
	out := make(map[string]string, s.Len())
	for _, name := range s.List() {
		out[name] = LatestTag
	}
	return out
}
