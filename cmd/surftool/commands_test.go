package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/projective/internal/config"
	"github.com/Faultbox/projective/pkg/meshio"
)

func TestCmdList(t *testing.T) {
	var out bytes.Buffer
	if err := cmdList(&out); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"boy", "crosscap", "plane", "torus"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("list output missing %q:\n%s", name, out.String())
		}
	}
}

func TestCmdInfo(t *testing.T) {
	var out bytes.Buffer
	if err := cmdInfo(&out, []string{"-u", "8", "-v", "6", "-closure", "closed", "torus"}); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "Triangles: 96") {
		t.Errorf("info output missing triangle count:\n%s", s)
	}
	if !strings.Contains(s, "Grid:      8x6") {
		t.Errorf("info output missing grid:\n%s", s)
	}
}

func TestCmdInfoAll(t *testing.T) {
	var out bytes.Buffer
	if err := cmdInfo(&out, []string{"-u", "4", "-v", "4", "all"}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), "Surface:"); got != 4 {
		t.Errorf("info all printed %d surfaces, want 4", got)
	}
}

func TestCmdInfoErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"klein"},
		{"-shading", "phong", "torus"},
	}
	for _, args := range tests {
		if err := cmdInfo(&bytes.Buffer{}, args); err == nil {
			t.Errorf("cmdInfo(%v) expected error", args)
		}
	}
}

func TestCmdExportRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "torus.bin")
	var out bytes.Buffer
	err := cmdExport(&out, []string{"-u", "5", "-v", "4", "-layout", "interleaved", "-closure", "closed", "torus", path})
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	buf, err := meshio.ReadRaw(f)
	if err != nil {
		t.Fatalf("ReadRaw() error = %v", err)
	}
	if got, want := len(buf.Data), 48*5*4; got != want {
		t.Errorf("len(Data) = %d, want %d", got, want)
	}
}

func TestCmdExportOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane.obj")
	if err := cmdExport(&bytes.Buffer{}, []string{"-u", "3", "-v", "3", "plane", path}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "o plane") {
		t.Errorf("obj missing object name")
	}
}

func TestCmdExportUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torus.stl")
	if err := cmdExport(&bytes.Buffer{}, []string{"torus", path}); err == nil {
		t.Error("expected error for .stl")
	}
}

func TestCmdConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cmdConfig(&bytes.Buffer{}, []string{path}); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Surface.Name != config.Default().Surface.Name {
		t.Errorf("Surface.Name = %q", cfg.Surface.Name)
	}
}
