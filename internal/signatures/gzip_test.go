package signatures

import (
	"bytes"
	"testing"

	kgzip "github.com/klauspost/compress/gzip"

	"github.com/shirou/binscan/internal/sig"
)

func TestGzipParser(t *testing.T) {
	t.Run("well formed member decodes to high confidence", func(t *testing.T) {
		var buf bytes.Buffer
		w := kgzip.NewWriter(&buf)
		if _, err := w.Write([]byte("hello world, this is gzip test content")); err != nil {
			t.Fatalf("gzip.Write() unexpected error: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("gzip.Close() unexpected error: %v", err)
		}

		res, parseErr := gzipParser(buf.Bytes(), 0)
		if parseErr != nil {
			t.Fatalf("gzipParser() unexpected error: %v", parseErr)
		}
		if res.Confidence != sig.ConfidenceHigh {
			t.Errorf("Confidence = %v, want ConfidenceHigh", res.Confidence)
		}
	})

	t.Run("header only is medium confidence", func(t *testing.T) {
		header := []byte{0x1F, 0x8B, 0x08, 0x00, 0, 0, 0, 0, 0, 0xFF}
		garbage := append(header, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xFF, 0xFF}...)

		res, parseErr := gzipParser(garbage, 0)
		if parseErr != nil {
			t.Fatalf("gzipParser() unexpected error: %v", parseErr)
		}
		if res.Confidence != sig.ConfidenceMedium {
			t.Errorf("Confidence = %v, want ConfidenceMedium", res.Confidence)
		}
	})

	t.Run("unrecognized compression method rejected", func(t *testing.T) {
		buf := []byte{0x1F, 0x8B, 0x09, 0x00}
		if _, parseErr := gzipParser(buf, 0); parseErr == nil {
			t.Errorf("gzipParser() expected error for unknown compression method, got nil")
		}
	})

	t.Run("buffer too small rejected", func(t *testing.T) {
		if _, parseErr := gzipParser([]byte{0x1F, 0x8B}, 0); parseErr == nil {
			t.Errorf("gzipParser() expected error for truncated header, got nil")
		}
	})

	t.Run("offset into larger buffer", func(t *testing.T) {
		var buf bytes.Buffer
		buf.Write([]byte("prefix junk"))
		w := kgzip.NewWriter(&buf)
		w.Write([]byte("payload"))
		w.Close()

		res, parseErr := gzipParser(buf.Bytes(), len("prefix junk"))
		if parseErr != nil {
			t.Fatalf("gzipParser() unexpected error: %v", parseErr)
		}
		if res.Offset != len("prefix junk") {
			t.Errorf("Offset = %d, want %d", res.Offset, len("prefix junk"))
		}
	})
}
