package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var lzopMagic = []byte{0x89, 'L', 'Z', 'O', 0x00, 0x0D, 0x0A, 0x1A, 0x0A}

const lzopMinBlockCount = 2

// LZOP is the result of walking an lzop-compressed file.
type LZOP struct {
	TotalSize  int
	BlockCount int
}

// ParseLZOP parses the lzop file header (magic, version fields, method,
// flags) and then walks block headers until a zero-length EOF marker
// block. At least lzopMinBlockCount (two) valid blocks are required; fewer
// is a parse error.
func ParseLZOP(data []byte) (LZOP, *sig.StructureError) {
	if len(data) < len(lzopMagic)+16 {
		return LZOP{}, sig.StructErrf("buffer too small for lzop header")
	}
	for i, b := range lzopMagic {
		if data[i] != b {
			return LZOP{}, sig.StructErrf("bad lzop magic")
		}
	}

	pos := len(lzopMagic)
	pos += 2 // version
	pos += 2 // lib version
	version := binary.BigEndian.Uint16(data[len(lzopMagic) : len(lzopMagic)+2])
	if version >= 0x0940 {
		pos += 2 // version needed to extract
	}
	pos += 1 // method
	pos += 1 // level
	flagsOff := pos
	if flagsOff+4 > len(data) {
		return LZOP{}, sig.StructErrf("truncated lzop header")
	}
	flags := binary.BigEndian.Uint32(data[flagsOff : flagsOff+4])
	pos += 4

	hasFilter := flags&0x800 != 0
	if hasFilter {
		pos += 4
	}
	pos += 4 // mode
	pos += 4 // mtime low
	pos += 4 // mtime high (or gmtdiff for older versions; approximated)
	if pos >= len(data) {
		return LZOP{}, sig.StructErrf("truncated lzop header")
	}
	nameLen := int(data[pos])
	pos++
	pos += nameLen
	pos += 4 // header checksum
	if pos > len(data) {
		return LZOP{}, sig.StructErrf("truncated lzop header")
	}

	blocks := 0
	for {
		if pos+4 > len(data) {
			return LZOP{}, sig.StructErrf("truncated block header")
		}
		uncompressedSize := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4
		if uncompressedSize == 0 {
			if blocks < lzopMinBlockCount {
				return LZOP{}, sig.StructErrf("too few lzop blocks")
			}
			return LZOP{TotalSize: pos, BlockCount: blocks}, nil
		}

		if pos+4 > len(data) {
			return LZOP{}, sig.StructErrf("truncated block header")
		}
		compressedSize := binary.BigEndian.Uint32(data[pos : pos+4])
		pos += 4

		pos += 4 // uncompressed checksum
		if compressedSize != uncompressedSize {
			pos += 4 // compressed checksum
		}

		next := pos + int(compressedSize)
		if err := binutil.Step(len(data), next, pos-1); err != nil {
			return LZOP{}, sig.StructErrf("%v", err)
		}
		pos = next
		blocks++
	}
}
