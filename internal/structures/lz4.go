package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

const lz4LegacyMagic = 0x184C2102

// LZ4 is the result of walking a legacy-framed LZ4 stream.
type LZ4 struct {
	TotalSize  int
	BlockCount int
}

// ParseLZ4 parses a legacy LZ4 frame: 4-byte magic, then 4-byte block size
// headers (high bit set means the block is stored uncompressed) until a
// zero-size terminator block.
func ParseLZ4(data []byte) (LZ4, *sig.StructureError) {
	if len(data) < 8 {
		return LZ4{}, sig.StructErrf("buffer too small for lz4 frame")
	}
	if binary.LittleEndian.Uint32(data[0:4]) != lz4LegacyMagic {
		return LZ4{}, sig.StructErrf("bad lz4 magic")
	}

	pos := 4
	blocks := 0
	for {
		if pos+4 > len(data) {
			return LZ4{}, sig.StructErrf("truncated lz4 block header")
		}
		raw := binary.LittleEndian.Uint32(data[pos : pos+4])
		size := int(raw &^ (1 << 31))
		pos += 4

		if size == 0 {
			return LZ4{TotalSize: pos, BlockCount: blocks}, nil
		}

		next := pos + size
		if err := binutil.Step(len(data), next, pos-1); err != nil {
			return LZ4{}, sig.StructErrf("%v", err)
		}
		pos = next
		blocks++
	}
}
