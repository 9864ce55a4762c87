package materializer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kotlin-frc/kfrc/internal/platform"
	"github.com/spf13/afero"
)

// Permission constants for generated output.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

const tempPattern = ".kfrc-tmp-*"

// Materializer writes directories and files to a filesystem.
type Materializer struct {
	fs afero.Fs
}

// New returns a Materializer writing to fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Materializer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Materializer{fs: fs}
}

// Fs returns the underlying filesystem.
func (m *Materializer) Fs() afero.Fs {
	return m.fs
}

// EnsureDir creates path and all missing ancestors. An existing directory is
// not an error.
func (m *Materializer) EnsureDir(path string) error {
	if err := m.fs.MkdirAll(path, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// WriteFile creates or overwrites the file at path with content. Parent
// directories are created as needed. The content is written to a temp file in
// the same directory and renamed into place, so an interrupted write never
// leaves a truncated file behind.
func (m *Materializer) WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := m.EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := afero.TempFile(m.fs, dir, tempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = m.fs.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}

	// Temp files are created 0600.
	if err := platform.Chmod(m.fs, tmpPath, FilePerm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	if err := m.fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	success = true
	return nil
}
