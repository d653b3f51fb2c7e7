package runtimepath

import (
	"strings"
	"testing"
)

func TestDirPrefersXDGRuntimeDir(t *testing.T) {
	want := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", want)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	path, err := SocketPath()
	if err != nil {
		t.Fatalf("SocketPath: %v", err)
	}
	if !strings.HasSuffix(path, "sidepan.sock") {
		t.Errorf("SocketPath() = %q, want sidepan.sock suffix", path)
	}
}
