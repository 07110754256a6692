package binscan

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func trxBuffer(totalSize uint32) []byte {
	buf := make([]byte, totalSize)
	binary.LittleEndian.PutUint32(buf[0:4], 0x30524448) // "HDR0"
	binary.LittleEndian.PutUint32(buf[4:8], totalSize)
	return buf
}

func TestInitIncludeExclude(t *testing.T) {
	t.Run("include restricts the catalog", func(t *testing.T) {
		cfg, err := Init(InitOptions{Include: []string{"trx"}})
		if err != nil {
			t.Fatalf("Init() unexpected error: %v", err)
		}
		entries := cfg.Entries()
		if len(entries) != 1 || entries[0].Name != "trx" {
			t.Errorf("Entries() = %+v, want only trx", entries)
		}
	})

	t.Run("unknown include name is a config error", func(t *testing.T) {
		if _, err := Init(InitOptions{Include: []string{"not-a-real-signature"}}); err == nil {
			t.Errorf("Init() expected error for unknown signature name, got nil")
		}
	})
}

func TestScanFindsTRX(t *testing.T) {
	cfg, err := Init(InitOptions{Include: []string{"trx"}})
	if err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	results, err := Scan(context.Background(), cfg, trxBuffer(1024))
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "trx" {
		t.Fatalf("Scan() results = %+v, want a single trx hit", results)
	}
}

func TestScanFileMemoryMapsAndScans(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "firmware.bin")
	if err := os.WriteFile(path, trxBuffer(512), 0o644); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	cfg, err := Init(InitOptions{Include: []string{"trx"}})
	if err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	results, err := ScanFile(context.Background(), cfg, path)
	if err != nil {
		t.Fatalf("ScanFile() unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Name != "trx" {
		t.Fatalf("ScanFile() results = %+v, want a single trx hit", results)
	}
}

func TestBinwalkNew(t *testing.T) {
	b := New()
	results, err := b.Scan(context.Background(), trxBuffer(256))
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	found := false
	for _, r := range results {
		if r.Name == "trx" {
			found = true
		}
	}
	if !found {
		t.Errorf("Scan() results = %+v, want a trx hit among them", results)
	}
}

func TestExtractDeclinedForWholeBufferTRX(t *testing.T) {
	cfg, err := Init(InitOptions{Include: []string{"trx"}})
	if err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	buffer := trxBuffer(256)
	results, err := Scan(context.Background(), cfg, buffer)
	if err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Scan() results = %+v, want one hit", results)
	}

	res, err := Extract(context.Background(), cfg, results[0], buffer, t.TempDir())
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}
	if res.Success {
		t.Errorf("Extract() = %+v, want a no-op result for a declined, no-extractor signature", res)
	}
}

func TestExtractUnknownSignature(t *testing.T) {
	cfg, err := Init(InitOptions{Include: []string{"trx"}})
	if err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	_, err = Extract(context.Background(), cfg, SignatureResult{Name: "not-registered"}, nil, t.TempDir())
	if err == nil {
		t.Errorf("Extract() expected error for unknown signature name, got nil")
	}
}

func TestScanAllRunsEveryTarget(t *testing.T) {
	cfg, err := Init(InitOptions{Include: []string{"trx"}})
	if err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	targets := []Target{
		{Name: "a", Buffer: trxBuffer(128)},
		{Name: "b", Buffer: []byte("no signature here at all")},
	}
	outcomes := ScanAll(context.Background(), cfg, targets)
	if len(outcomes) != 2 {
		t.Fatalf("len(outcomes) = %d, want 2", len(outcomes))
	}

	byName := map[string]ScanOutcome{}
	for _, o := range outcomes {
		byName[o.Target.Name] = o
	}

	if len(byName["a"].Results) != 1 || byName["a"].Results[0].Name != "trx" {
		t.Errorf("outcome for target a = %+v, want one trx hit", byName["a"])
	}
	if len(byName["b"].Results) != 0 {
		t.Errorf("outcome for target b = %+v, want no hits", byName["b"])
	}
}

func TestScanAllReadsFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "firmware.bin")
	if err := os.WriteFile(path, trxBuffer(64), 0o644); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	cfg, err := Init(InitOptions{Include: []string{"trx"}})
	if err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	outcomes := ScanAll(context.Background(), cfg, []Target{{Name: "f", Path: path}})
	if len(outcomes) != 1 || outcomes[0].Err != nil {
		t.Fatalf("ScanAll() outcome = %+v", outcomes[0])
	}
	if len(outcomes[0].Results) != 1 || outcomes[0].Results[0].Name != "trx" {
		t.Errorf("ScanAll() results = %+v, want one trx hit", outcomes[0].Results)
	}
}
