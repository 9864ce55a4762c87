package platform

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"
)

func TestChmod(t *testing.T) {
	fs := afero.NewOsFs()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.txt")
	if err := afero.WriteFile(fs, path, []byte("test"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(fs, path, 0644); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := fs.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0644 {
			t.Errorf("permissions = %o, want %o", perm, 0644)
		}
	}
}

func TestChmodMemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/robot/Main.kt", []byte("fun main() {}"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(fs, "/robot/Main.kt", 0644); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := fs.Stat("/robot/Main.kt")
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0644 {
			t.Errorf("permissions = %o, want %o", perm, 0644)
		}
	}
}
