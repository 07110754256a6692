package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSingleFileDryRun(t *testing.T) {
	measure := func(buffer []byte, offset int) (int, bool) { return 4, true }
	fn := singleFile("out.bin", measure)

	res := fn([]byte("0123456789"), 2, "")
	if !res.Success || !res.HasSize || res.Size != 4 {
		t.Fatalf("dry run result = %+v", res)
	}
}

func TestSingleFileMeasureFailure(t *testing.T) {
	measure := func(buffer []byte, offset int) (int, bool) { return 0, false }
	fn := singleFile("out.bin", measure)

	res := fn([]byte("0123456789"), 0, "")
	if res.Success {
		t.Fatalf("expected failure when measure() reports !ok, got %+v", res)
	}
}

func TestSingleFileRealCarve(t *testing.T) {
	measure := func(buffer []byte, offset int) (int, bool) { return 5, true }
	fn := singleFile("carved.bin", measure)

	dir := t.TempDir()
	buffer := []byte("0123456789")
	res := fn(buffer, 2, dir)
	if !res.Success {
		t.Fatalf("real carve failed: %+v", res)
	}

	got, err := os.ReadFile(filepath.Join(dir, "carved.bin"))
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if string(got) != "23456" {
		t.Errorf("carved content = %q, want %q", got, "23456")
	}
}
