package templates

import (
	"fmt"
	"path/filepath"

	"github.com/kotlin-frc/kfrc/internal/manifest"
	"github.com/kotlin-frc/kfrc/internal/materializer"
	"github.com/spf13/afero"
)

// ExportResult lists what Export wrote, relative to the export directory.
type ExportResult struct {
	Dir      string
	Manifest string
	Files    []string
}

// Export writes every builtin template into <root>/.kfrc together with an
// override manifest pointing at them, so a project can edit its copies. An
// existing manifest is only replaced when force is set.
func Export(fs afero.Fs, root string, force bool) (*ExportResult, error) {
	dir := ProjectDir(root)
	manifestPath := ManifestPath(root)

	exists, err := afero.Exists(fs, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", manifestPath, err)
	}
	if exists && !force {
		return nil, fmt.Errorf("%s already exists; use --force to replace it", manifestPath)
	}

	m := materializer.New(fs)
	result := &ExportResult{Dir: dir, Manifest: manifest.FileName}
	overrides := &manifest.OverrideManifest{
		Version:   manifest.CurrentVersion,
		Templates: make(map[string]string, len(ids)),
	}

	for _, id := range All() {
		text, ok := Builtin.Template(id, root)
		if !ok {
			return nil, fmt.Errorf("builtin template %s is missing", id)
		}
		rel := "templates/" + id.File()
		if err := m.WriteFile(filepath.Join(dir, filepath.FromSlash(rel)), text); err != nil {
			return nil, err
		}
		overrides.Templates[id.String()] = rel
		result.Files = append(result.Files, rel)
	}

	data, err := manifest.Marshal(overrides)
	if err != nil {
		return nil, err
	}
	if err := m.WriteFile(manifestPath, string(data)); err != nil {
		return nil, err
	}
	return result, nil
}
