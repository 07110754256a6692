package structures

import (
	"encoding/binary"
	"testing"
)

func mbrEntry(status byte, osType byte, lbaStart, lbaSize uint32) []byte {
	b := make([]byte, 16)
	b[0] = status
	// chs_start (3 bytes) left zero
	b[4] = osType
	// chs_end (3 bytes) left zero
	binary.LittleEndian.PutUint32(b[8:12], lbaStart)
	binary.LittleEndian.PutUint32(b[12:16], lbaSize)
	return b
}

func buildMBR(totalSize int, entries ...[]byte) []byte {
	buf := make([]byte, totalSize)
	pos := mbrPartitionTableOffset
	for _, e := range entries {
		copy(buf[pos:], e)
		pos += 16
	}
	return buf
}

func TestParseMBR(t *testing.T) {
	t.Run("valid table with one real partition", func(t *testing.T) {
		data := buildMBR(2048,
			mbrEntry(0x80, 0x83, 0, 1), // occupies offset 0, excluded from Partitions
			mbrEntry(0x80, 0x83, 1, 3), // 512..2048
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
		)

		header, err := ParseMBR(data)
		if err != nil {
			t.Fatalf("ParseMBR() unexpected error: %v", err)
		}
		if len(header.Partitions) != 1 {
			t.Fatalf("len(Partitions) = %d, want 1", len(header.Partitions))
		}
		p := header.Partitions[0]
		if p.Start != 512 || p.Size != 1536 || p.Name != "Linux" {
			t.Errorf("Partitions[0] = %+v, want {512 1536 Linux}", p)
		}
		if header.ImageSize != 2048 {
			t.Errorf("ImageSize = %d, want 2048", header.ImageSize)
		}
	})

	t.Run("too small for partition table", func(t *testing.T) {
		if _, err := ParseMBR(make([]byte, 100)); err == nil {
			t.Errorf("ParseMBR() expected error for truncated buffer, got nil")
		}
	})

	t.Run("no valid partitions", func(t *testing.T) {
		data := buildMBR(2048,
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
		)
		if _, err := ParseMBR(data); err == nil {
			t.Errorf("ParseMBR() expected error for all-zero table, got nil")
		}
	})

	t.Run("rejected status byte", func(t *testing.T) {
		data := buildMBR(2048,
			mbrEntry(0x7F, 0x83, 1, 3), // invalid status, should be skipped
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
		)
		if _, err := ParseMBR(data); err == nil {
			t.Errorf("ParseMBR() expected error when only entry has a bad status byte")
		}
	})

	t.Run("partition extends past buffer is dropped", func(t *testing.T) {
		data := buildMBR(600,
			mbrEntry(0x80, 0x83, 1, 10), // end way past 600 bytes
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
			mbrEntry(0, 0, 0, 0),
		)
		if _, err := ParseMBR(data); err == nil {
			t.Errorf("ParseMBR() expected error when the only partition overruns the buffer")
		}
	})
}
