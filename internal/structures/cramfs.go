package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

const (
	cramfsMagicOffset   = 0
	cramfsChecksumOffset = 32
	cramfsNameOffset    = 48
	cramfsNameSize      = 16
)

// CramFS is the parsed superblock of a CramFS image.
type CramFS struct {
	Size         int
	FileCount    int
	Name         string
	ChecksumOK   bool
	BigEndian    bool
}

// ParseCramFS parses a CramFS superblock. Endianness is detected from which
// byte order makes the magic field read as the expected constant. The
// header checksum field is zeroed and a CRC32 recomputed over the declared
// image size; on mismatch the caller (the validator) downgrades confidence
// to MEDIUM but still reports success.
func ParseCramFS(data []byte) (CramFS, *sig.StructureError) {
	const minHeader = 64
	if len(data) < minHeader {
		return CramFS{}, sig.StructErrf("buffer too small for cramfs superblock")
	}

	be := binary.BigEndian.Uint32(data[0:4])
	le := binary.LittleEndian.Uint32(data[0:4])
	const cramfsMagic = 0x28CD3D45

	var endian binary.ByteOrder
	var bigEndian bool
	switch cramfsMagic {
	case be:
		endian, bigEndian = binary.BigEndian, true
	case le:
		endian, bigEndian = binary.LittleEndian, false
	default:
		return CramFS{}, sig.StructErrf("bad cramfs magic")
	}

	size := int(endian.Uint32(data[4:8]))
	if size <= 0 || size > len(data) {
		return CramFS{}, sig.StructErrf("cramfs size %d out of range", size)
	}

	fileCount := int(endian.Uint32(data[40:44]))
	name := binutil.CStringMax(data[cramfsNameOffset:cramfsNameOffset+cramfsNameSize], cramfsNameSize)

	storedChecksum := endian.Uint32(data[cramfsChecksumOffset : cramfsChecksumOffset+4])
	image := make([]byte, size)
	copy(image, data[:size])
	for i := 0; i < 4; i++ {
		image[cramfsChecksumOffset+i] = 0
	}
	computed := binutil.CRC32(image)

	return CramFS{
		Size:       size,
		FileCount:  fileCount,
		Name:       name,
		ChecksumOK: computed == storedChecksum,
		BigEndian:  bigEndian,
	}, nil
}
