package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var romfsMagic = []byte("-rom1fs-")

// RomFS is a parsed RomFS volume header.
type RomFS struct {
	FullSize   int
	VolumeName string
}

// ParseRomFS validates the "-rom1fs-" magic, reads the big-endian
// full_size field, and extracts the NUL-terminated volume name that follows
// the fixed header fields.
func ParseRomFS(data []byte) (RomFS, *sig.StructureError) {
	const fixedHeaderSize = 16 // 8-byte magic + 4-byte full_size + 4-byte checksum
	if len(data) < fixedHeaderSize+1 {
		return RomFS{}, sig.StructErrf("buffer too small for romfs header")
	}
	if string(data[0:8]) != string(romfsMagic) {
		return RomFS{}, sig.StructErrf("missing romfs magic")
	}

	fullSize := int(binary.BigEndian.Uint32(data[8:12]))
	if fullSize <= fixedHeaderSize || fullSize > len(data) {
		return RomFS{}, sig.StructErrf("romfs full_size out of range")
	}

	name := binutil.CString(data[fixedHeaderSize:fullSize])
	return RomFS{FullSize: fullSize, VolumeName: name}, nil
}
