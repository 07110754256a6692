package structures

import (
	"encoding/binary"
	"testing"
)

func buildLZMAHeader(properties byte, dictSize uint32, uncompressedSize uint64) []byte {
	b := make([]byte, 13)
	b[0] = properties
	binary.LittleEndian.PutUint32(b[1:5], dictSize)
	binary.LittleEndian.PutUint64(b[5:13], uncompressedSize)
	return b
}

func TestParseLZMAHeader(t *testing.T) {
	t.Run("valid header with known size", func(t *testing.T) {
		data := buildLZMAHeader(0x5D, 0x00800000, 12345)

		header, err := ParseLZMAHeader(data)
		if err != nil {
			t.Fatalf("ParseLZMAHeader() unexpected error: %v", err)
		}
		if header.Properties != 0x5D || header.DictionarySize != 0x00800000 {
			t.Errorf("header = %+v, want properties 0x5D, dictionary size 0x800000", header)
		}
		if !header.HasUncompressedSize || header.UncompressedSize != 12345 {
			t.Errorf("header = %+v, want HasUncompressedSize true, UncompressedSize 12345", header)
		}
	})

	t.Run("unknown uncompressed size sentinel", func(t *testing.T) {
		data := buildLZMAHeader(0x5D, 0x00010000, unknownLZMASize)

		header, err := ParseLZMAHeader(data)
		if err != nil {
			t.Fatalf("ParseLZMAHeader() unexpected error: %v", err)
		}
		if header.HasUncompressedSize {
			t.Errorf("HasUncompressedSize = true, want false for the all-ones sentinel")
		}
	})

	t.Run("too small for header", func(t *testing.T) {
		if _, err := ParseLZMAHeader(make([]byte, 5)); err == nil {
			t.Errorf("ParseLZMAHeader() expected error for truncated buffer, got nil")
		}
	})

	t.Run("unrecognized properties byte", func(t *testing.T) {
		data := buildLZMAHeader(0x00, 0x00800000, 1)
		if _, err := ParseLZMAHeader(data); err == nil {
			t.Errorf("ParseLZMAHeader() expected error for unrecognized properties byte, got nil")
		}
	})

	t.Run("unrecognized dictionary size", func(t *testing.T) {
		data := buildLZMAHeader(0x5D, 0x00000123, 1)
		if _, err := ParseLZMAHeader(data); err == nil {
			t.Errorf("ParseLZMAHeader() expected error for unrecognized dictionary size, got nil")
		}
	})
}
