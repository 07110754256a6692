package chroot

import (
	"testing"

	"github.com/spf13/afero"
)

func TestNewEmptyRoot(t *testing.T) {
	if _, err := New(afero.NewMemMapFs(), ""); err == nil {
		t.Errorf("New() with empty root expected error, got nil")
	}
}

func TestNewCreatesRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	c, err := New(fs, "/out")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	ok, err := afero.DirExists(fs, "/out")
	if err != nil || !ok {
		t.Errorf("New() did not create root directory: ok=%v err=%v", ok, err)
	}
	if c.Root != "/out" {
		t.Errorf("Root = %q, want /out", c.Root)
	}
}

func TestCarveFileRejectsTraversal(t *testing.T) {
	fs := afero.NewMemMapFs()
	c, err := New(fs, "/out")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	data := []byte("hello world")
	tests := []struct {
		name     string
		filename string
	}{
		{"dotdot traversal", "../escape.bin"},
		{"nested dotdot", "sub/../../escape.bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c.CarveFile(tt.filename, data, 0, len(data)) {
				t.Errorf("CarveFile(%q) succeeded, want rejection", tt.filename)
			}
		})
	}
}

func TestCarveFileWritesWithinRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	c, err := New(fs, "/out")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	data := []byte("0123456789")
	if !c.CarveFile("carved.bin", data, 2, 5) {
		t.Fatalf("CarveFile() failed")
	}

	got, err := afero.ReadFile(fs, "/out/carved.bin")
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if string(got) != "23456" {
		t.Errorf("carved content = %q, want %q", got, "23456")
	}
}

func TestCarveFileBoundsCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	c, err := New(fs, "/out")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	data := []byte("short")

	tests := []struct {
		name        string
		start, size int
	}{
		{"negative start", -1, 1},
		{"negative size", 0, -1},
		{"past end", 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c.CarveFile("x.bin", data, tt.start, tt.size) {
				t.Errorf("CarveFile() succeeded with out-of-bounds start=%d size=%d", tt.start, tt.size)
			}
		})
	}
}

func TestCreateDirectoryGeneratesUniqueName(t *testing.T) {
	fs := afero.NewMemMapFs()
	c, err := New(fs, "/out")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if !c.CreateDirectory("") {
		t.Fatalf("CreateDirectory(\"\") failed")
	}
}

func TestUniqueName(t *testing.T) {
	if got, want := UniqueName("eth0_partition", 3), "eth0_partition.3"; got != want {
		t.Errorf("UniqueName() = %q, want %q", got, want)
	}
}
