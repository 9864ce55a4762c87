package manifest

// FileName is the override manifest file name inside the project's .kfrc directory.
const FileName = "templates.yaml"

// CurrentVersion is the only manifest format version understood.
const CurrentVersion = 1

// OverrideManifest lists project-local template overrides.
type OverrideManifest struct {
	Version int `yaml:"version" json:"version"`
	// Templates maps a template identifier (e.g. "robot-container") to a
	// file path relative to the directory holding the manifest.
	Templates map[string]string `yaml:"templates" json:"templates"`
}

// Lookup returns the override path for a template identifier.
func (m *OverrideManifest) Lookup(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	p, ok := m.Templates[id]
	return p, ok
}
