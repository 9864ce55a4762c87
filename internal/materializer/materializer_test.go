package materializer

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := New(fs)

	dir := "/project/src/main/kotlin/frc/robot/commands"
	require.NoError(t, m.EnsureDir(dir))
	require.NoError(t, m.EnsureDir(dir))

	info, err := fs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := afero.ReadDir(fs, "/project/src/main/kotlin/frc/robot")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "commands", entries[0].Name())
}

func TestWriteFileCreatesParents(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := New(fs)

	path := "/project/src/main/kotlin/frc/robot/Main.kt"
	require.NoError(t, m.WriteFile(path, "package frc.robot\n"))

	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "package frc.robot\n", string(got))
}

func TestWriteFileOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := New(fs)

	path := "/project/build.gradle"
	require.NoError(t, m.WriteFile(path, "old content that is longer than the new one"))
	require.NoError(t, m.WriteFile(path, "new"))

	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
	assertNoTempFiles(t, fs, "/project")
}

func TestWriteFileEmptyContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := New(fs)

	require.NoError(t, m.WriteFile("/project/empty.kt", ""))
	exists, err := afero.Exists(fs, "/project/empty.kt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWriteFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	m := New(nil)

	path := filepath.Join(dir, "src", "Robot.kt")
	require.NoError(t, m.WriteFile(path, "class Robot"))

	info, err := m.Fs().Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, FilePerm, info.Mode().Perm())
	}
	assertNoTempFiles(t, m.Fs(), filepath.Join(dir, "src"))
}

func TestWriteFileReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	m := New(afero.NewReadOnlyFs(base))

	err := m.WriteFile("/project/Main.kt", "x")
	require.Error(t, err)

	exists, _ := afero.Exists(base, "/project/Main.kt")
	assert.False(t, exists)
}

func assertNoTempFiles(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".kfrc-tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
