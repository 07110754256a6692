package extract

import (
	"encoding/binary"
	"os"
	"testing"
)

func mbrTestEntry(status, osType byte, lbaStart, lbaSize uint32) []byte {
	b := make([]byte, 16)
	b[0] = status
	b[4] = osType
	binary.LittleEndian.PutUint32(b[8:12], lbaStart)
	binary.LittleEndian.PutUint32(b[12:16], lbaSize)
	return b
}

func buildMBRImage(totalSize int) []byte {
	buf := make([]byte, totalSize)
	pos := 446
	copy(buf[pos:], mbrTestEntry(0x80, 0x83, 0, 1)) // at offset 0, excluded from partitions
	pos += 16
	copy(buf[pos:], mbrTestEntry(0x80, 0x83, 1, 3)) // 512..2048
	return buf
}

func TestMBRDryRun(t *testing.T) {
	buf := buildMBRImage(2048)
	res := MBR(buf, 0, "")
	if !res.Success || res.Size != 2048 {
		t.Fatalf("MBR() dry run = %+v, want Success with Size 2048", res)
	}
}

func TestMBRRealCarve(t *testing.T) {
	buf := buildMBRImage(2048)
	dir := t.TempDir()

	res := MBR(buf, 0, dir)
	if !res.Success {
		t.Fatalf("MBR() real carve failed: %+v", res)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1 carved partition file", len(entries))
	}
	if entries[0].Name() != "Linux_partition.0" {
		t.Errorf("carved file name = %q, want Linux_partition.0", entries[0].Name())
	}
}

func TestMBRInvalidHeader(t *testing.T) {
	res := MBR(make([]byte, 10), 0, "")
	if res.Success {
		t.Errorf("MBR() succeeded on a truncated header, want failure")
	}
}
