package structures

import (
	"bytes"
	"encoding/binary"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var sevenZipMagic = []byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}

const sevenZipSignatureHeaderSize = 32

// SevenZip is the result of validating a 7-zip archive's signature header
// and the CRC-protected "next header" it points to.
type SevenZip struct {
	TotalSize int
}

// ParseSevenZip validates the 32-byte signature header and the CRC32 of the
// next-header region it describes.
func ParseSevenZip(data []byte) (SevenZip, *sig.StructureError) {
	if len(data) < sevenZipSignatureHeaderSize {
		return SevenZip{}, sig.StructErrf("buffer too small for 7z signature header")
	}
	if !bytes.Equal(data[0:6], sevenZipMagic) {
		return SevenZip{}, sig.StructErrf("bad 7z magic")
	}

	startHeaderCRC := binary.LittleEndian.Uint32(data[8:12])
	startHeader := data[12:32]
	if binutil.CRC32(startHeader) != startHeaderCRC {
		return SevenZip{}, sig.StructErrf("start header CRC mismatch")
	}

	nextHeaderOffset := binary.LittleEndian.Uint64(data[12:20])
	nextHeaderSize := binary.LittleEndian.Uint64(data[20:28])
	nextHeaderCRC := binary.LittleEndian.Uint32(data[28:32])

	nextStart := sevenZipSignatureHeaderSize + int(nextHeaderOffset)
	nextEnd := nextStart + int(nextHeaderSize)
	if nextStart < sevenZipSignatureHeaderSize || nextEnd > len(data) || nextEnd < nextStart {
		return SevenZip{}, sig.StructErrf("next header out of bounds")
	}
	if binutil.CRC32(data[nextStart:nextEnd]) != nextHeaderCRC {
		return SevenZip{}, sig.StructErrf("next header CRC mismatch")
	}

	return SevenZip{TotalSize: nextEnd}, nil
}
