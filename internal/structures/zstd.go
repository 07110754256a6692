package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

const zstdMagic = 0xFD2FB528

// Zstd is the parsed result of walking a zstd frame.
type Zstd struct {
	TotalSize int
}

// ParseZstd parses a zstd frame: fixed magic + frame header descriptor,
// optional window/dictionary-ID/content-size fields selected by descriptor
// bits, then a sequence of block headers until a last-block marker, and an
// optional trailing 4-byte content checksum.
func ParseZstd(data []byte) (Zstd, *sig.StructureError) {
	if len(data) < 6 {
		return Zstd{}, sig.StructErrf("buffer too small for zstd frame")
	}
	if binary.LittleEndian.Uint32(data[0:4]) != zstdMagic {
		return Zstd{}, sig.StructErrf("bad zstd magic")
	}

	pos := 4
	fhd := data[pos]
	pos++

	dictIDFlag := fhd & 0x03
	contentChecksum := fhd&0x04 != 0
	singleSegment := fhd&0x20 != 0
	fcsFlag := (fhd >> 6) & 0x03

	if !singleSegment {
		pos++ // window descriptor
	}

	dictIDSizes := [4]int{0, 1, 2, 4}
	pos += dictIDSizes[dictIDFlag]

	fcsSizes := [4]int{0, 2, 4, 8}
	fcsSize := fcsSizes[fcsFlag]
	if fcsFlag == 0 && singleSegment {
		fcsSize = 1
	}
	pos += fcsSize
	if pos > len(data) {
		return Zstd{}, sig.StructErrf("truncated frame header")
	}

	for {
		if pos+3 > len(data) {
			return Zstd{}, sig.StructErrf("truncated block header")
		}
		b := uint32(data[pos]) | uint32(data[pos+1])<<8 | uint32(data[pos+2])<<16
		lastBlock := b&0x01 != 0
		blockType := (b >> 1) & 0x03
		blockSize := int(b >> 3)
		pos += 3

		if blockType == 1 {
			pos += 1 // RLE block: one byte payload
		} else {
			pos += blockSize
		}
		if pos > len(data) {
			return Zstd{}, sig.StructErrf("block extends past buffer")
		}
		if lastBlock {
			break
		}
	}

	if contentChecksum {
		if pos+4 > len(data) {
			return Zstd{}, sig.StructErrf("truncated content checksum")
		}
		pos += 4
	}

	return Zstd{TotalSize: pos}, nil
}
