package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

// RIFF is a parsed RIFF container header (WAVE, AVI, WEBP, ...).
type RIFF struct {
	TotalSize int
	FormType  string
}

// ParseRIFF parses the 12-byte RIFF container header: 4-byte "RIFF" magic,
// little-endian payload size, and 4-byte form type.
func ParseRIFF(data []byte) (RIFF, *sig.StructureError) {
	const headerSize = 12
	if len(data) < headerSize {
		return RIFF{}, sig.StructErrf("buffer too small for RIFF header")
	}
	if string(data[0:4]) != "RIFF" {
		return RIFF{}, sig.StructErrf("missing RIFF magic")
	}
	payload := binary.LittleEndian.Uint32(data[4:8])
	total := 8 + int(payload)
	if total > len(data) || total < headerSize {
		return RIFF{}, sig.StructErrf("RIFF payload size out of range")
	}
	return RIFF{TotalSize: total, FormType: string(data[8:12])}, nil
}

// BMP is a parsed BMP bitmap file header.
type BMP struct {
	TotalSize int
}

// ParseBMP parses the 14-byte BMP file header ("BM" magic + little-endian
// file size). BMP carries no extractor in this catalog; it exists purely
// for always-displayed identification, the same role RIFF plays for WAVE.
func ParseBMP(data []byte) (BMP, *sig.StructureError) {
	const headerSize = 14
	if len(data) < headerSize {
		return BMP{}, sig.StructErrf("buffer too small for BMP header")
	}
	if data[0] != 'B' || data[1] != 'M' {
		return BMP{}, sig.StructErrf("missing BM magic")
	}
	size := binary.LittleEndian.Uint32(data[2:6])
	if int(size) > len(data) || size < headerSize {
		return BMP{}, sig.StructErrf("BMP size out of range")
	}
	return BMP{TotalSize: int(size)}, nil
}
