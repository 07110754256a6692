package structures

import (
	"encoding/binary"
	"testing"
)

func pngChunk(chunkType string, data []byte) []byte {
	b := make([]byte, 0, pngChunkHeaderSize+len(data)+pngCRCSize)
	lenField := make([]byte, 4)
	binary.BigEndian.PutUint32(lenField, uint32(len(data)))
	b = append(b, lenField...)
	b = append(b, []byte(chunkType)...)
	b = append(b, data...)
	b = append(b, 0, 0, 0, 0) // CRC, unvalidated
	return b
}

func TestParsePNG(t *testing.T) {
	t.Run("well formed image", func(t *testing.T) {
		buf := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
		buf = append(buf, pngChunk("IHDR", make([]byte, 13))...)
		buf = append(buf, pngChunk("IDAT", []byte("x"))...)
		buf = append(buf, pngChunk("IEND", nil)...)

		img, err := ParsePNG(buf)
		if err != nil {
			t.Fatalf("ParsePNG() unexpected error: %v", err)
		}
		if img.TotalSize != len(buf) {
			t.Errorf("TotalSize = %d, want %d", img.TotalSize, len(buf))
		}
		if img.ChunkCount != 3 {
			t.Errorf("ChunkCount = %d, want 3", img.ChunkCount)
		}
	})

	t.Run("missing IEND is truncated", func(t *testing.T) {
		buf := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
		buf = append(buf, pngChunk("IHDR", make([]byte, 13))...)
		if _, err := ParsePNG(buf); err == nil {
			t.Errorf("ParsePNG() expected error for image missing IEND, got nil")
		}
	})

	t.Run("too short for signature", func(t *testing.T) {
		if _, err := ParsePNG([]byte{1, 2, 3}); err == nil {
			t.Errorf("ParsePNG() expected error for short buffer, got nil")
		}
	})

	t.Run("chunk overruns buffer", func(t *testing.T) {
		buf := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
		bad := pngChunk("IHDR", make([]byte, 13))
		binary.BigEndian.PutUint32(bad[0:4], 9999) // claim a huge length
		buf = append(buf, bad...)
		if _, err := ParsePNG(buf); err == nil {
			t.Errorf("ParsePNG() expected error for oversized chunk length, got nil")
		}
	})
}
