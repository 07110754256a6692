package signatures

import (
	"encoding/binary"
	"testing"

	"github.com/shirou/binscan/internal/sig"
)

func TestTrxParser(t *testing.T) {
	buf := make([]byte, 28)
	binary.LittleEndian.PutUint32(buf[0:4], 0x30524448)
	binary.LittleEndian.PutUint32(buf[4:8], 28)

	res, err := trxParser(buf, 0)
	if err != nil {
		t.Fatalf("trxParser() unexpected error: %v", err)
	}
	if res.Confidence != sig.ConfidenceHigh {
		t.Errorf("Confidence = %v, want ConfidenceHigh", res.Confidence)
	}
	if !res.ExtractionDeclined {
		t.Errorf("ExtractionDeclined = false, want true for a whole-buffer TRX at offset 0")
	}
}

func TestTrxParserNotWholeBuffer(t *testing.T) {
	buf := make([]byte, 256)
	binary.LittleEndian.PutUint32(buf[0:4], 0x30524448)
	binary.LittleEndian.PutUint32(buf[4:8], 28)

	res, err := trxParser(buf, 0)
	if err != nil {
		t.Fatalf("trxParser() unexpected error: %v", err)
	}
	if res.ExtractionDeclined {
		t.Errorf("ExtractionDeclined = true, want false when the TRX doesn't span the whole buffer")
	}
	if res.Size != 28 {
		t.Errorf("Size = %d, want 28", res.Size)
	}
}
