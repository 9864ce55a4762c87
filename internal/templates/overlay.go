package templates

import (
	"path/filepath"

	"github.com/apex/log"
	"github.com/kotlin-frc/kfrc/internal/branding"
	"github.com/kotlin-frc/kfrc/internal/manifest"
	"github.com/spf13/afero"
)

// ProjectDir returns the per-project settings directory (<root>/.kfrc).
func ProjectDir(root string) string {
	return filepath.Join(root, branding.HomeDir())
}

// ManifestPath returns the override manifest path for a project root.
func ManifestPath(root string) string {
	return filepath.Join(ProjectDir(root), manifest.FileName)
}

// Overlay serves project-local overrides listed in <root>/.kfrc/templates.yaml
// and defers everything else to Next.
//
// A listed override whose file cannot be read is reported as missing rather
// than silently replaced by the builtin. An unreadable or invalid manifest
// disables overrides for the project.
type Overlay struct {
	fs   afero.Fs
	next Provider
}

// NewOverlay returns an Overlay reading from fs. A nil next means Builtin.
func NewOverlay(fs afero.Fs, next Provider) *Overlay {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if next == nil {
		next = Builtin
	}
	return &Overlay{fs: fs, next: next}
}

// Template implements Provider.
func (o *Overlay) Template(id ID, root string) (string, bool) {
	p, ok := o.Source(id, root)
	if !ok {
		return o.next.Template(id, root)
	}

	data, err := afero.ReadFile(o.fs, p)
	if err != nil {
		log.WithError(err).Warnf("Override for template %s is not readable: %s", id, p)
		return "", false
	}
	log.Debugf("Using project override for template %s: %s", id, p)
	return string(data), true
}

// Source returns the override file path for id when the project's manifest
// lists one.
func (o *Overlay) Source(id ID, root string) (string, bool) {
	m := o.load(root)
	rel, ok := m.Lookup(id.String())
	if !ok {
		return "", false
	}
	return filepath.Join(ProjectDir(root), filepath.FromSlash(rel)), true
}

func (o *Overlay) load(root string) *manifest.OverrideManifest {
	p := ManifestPath(root)
	exists, err := afero.Exists(o.fs, p)
	if err != nil || !exists {
		return nil
	}

	m, err := manifest.Load(o.fs, p)
	if err != nil {
		log.WithError(err).Warn("Ignoring project template overrides")
		return nil
	}
	return m
}
