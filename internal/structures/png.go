package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

const pngChunkHeaderSize = 8 // 4-byte length + 4-byte chunk type
const pngCRCSize = 4

// PNGImage is the result of walking a PNG's chunk stream.
type PNGImage struct {
	TotalSize  int
	ChunkCount int
}

// ParsePNG walks length-prefixed PNG chunks starting immediately after the
// 8-byte file signature until an IEND chunk (plus its trailing CRC), and
// returns the total byte span of the image.
func ParsePNG(data []byte) (PNGImage, *sig.StructureError) {
	const sigLen = 8
	if len(data) < sigLen {
		return PNGImage{}, sig.StructErrf("too short for PNG signature")
	}

	pos := sigLen
	chunks := 0
	for {
		if pos+pngChunkHeaderSize > len(data) {
			return PNGImage{}, sig.StructErrf("truncated chunk header at %d", pos)
		}
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		chunkType := string(data[pos+4 : pos+8])
		if length < 0 {
			return PNGImage{}, sig.StructErrf("negative chunk length at %d", pos)
		}

		chunkEnd := pos + pngChunkHeaderSize + length + pngCRCSize
		if chunkEnd > len(data) || chunkEnd < pos {
			return PNGImage{}, sig.StructErrf("chunk extends past buffer at %d", pos)
		}
		chunks++

		if chunkType == "IEND" {
			return PNGImage{TotalSize: chunkEnd, ChunkCount: chunks}, nil
		}
		pos = chunkEnd
	}
}
