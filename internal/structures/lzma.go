package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

// LZMAProperties lists the classic LZMA-alone header property bytes this
// parser recognizes (each encodes an lc/lp/pb triple; 0x5D is the
// overwhelmingly common default).
var LZMAProperties = []byte{0x5D, 0x6E, 0x6D, 0x6C}

// LZMADictionarySizes lists the power-of-two dictionary sizes the
// LZMA-alone header is expected to carry.
var LZMADictionarySizes = []uint32{
	0x10000000,
	0x20000000,
	0x01000000,
	0x02000000,
	0x04000000,
	0x00800000,
	0x00400000,
	0x00200000,
	0x00100000,
	0x00080000,
	0x00020000,
	0x00010000,
}

const lzmaHeaderSize = 13

// unknownLZMASize is the all-ones sentinel a classic LZMA-alone header uses
// for "uncompressed size not recorded" (streamed compressors write this
// when they don't know the final size up front).
const unknownLZMASize = 0xFFFFFFFFFFFFFFFF

// LZMA is the parsed 13-byte LZMA-alone header: 1 property byte, a 4-byte
// little-endian dictionary size, and an 8-byte little-endian uncompressed
// size (HasUncompressedSize is false when the stream omits it).
type LZMA struct {
	Properties          byte
	DictionarySize      uint32
	UncompressedSize    uint64
	HasUncompressedSize bool
}

// ParseLZMAHeader validates data's leading 13 bytes against the set of
// property bytes and dictionary sizes real LZMA-alone streams use.
func ParseLZMAHeader(data []byte) (LZMA, *sig.StructureError) {
	if len(data) < lzmaHeaderSize {
		return LZMA{}, sig.StructErrf("buffer too small for lzma header")
	}

	properties := data[0]
	if !byteIn(properties, LZMAProperties) {
		return LZMA{}, sig.StructErrf("unrecognized lzma properties byte %#02x", properties)
	}

	dictSize := binary.LittleEndian.Uint32(data[1:5])
	if !uint32In(dictSize, LZMADictionarySizes) {
		return LZMA{}, sig.StructErrf("unrecognized lzma dictionary size %#x", dictSize)
	}

	uncompressedSize := binary.LittleEndian.Uint64(data[5:13])

	return LZMA{
		Properties:          properties,
		DictionarySize:      dictSize,
		UncompressedSize:    uncompressedSize,
		HasUncompressedSize: uncompressedSize != unknownLZMASize,
	}, nil
}

func byteIn(b byte, set []byte) bool {
	for _, v := range set {
		if v == b {
			return true
		}
	}
	return false
}

func uint32In(v uint32, set []uint32) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
