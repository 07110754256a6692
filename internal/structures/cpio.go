package structures

import (
	"strconv"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

const (
	cpioMagic       = "070701" // newc
	cpioMagicCRC    = "070702" // crc variant
	cpioHeaderSize  = 110
	cpioTrailerName = "TRAILER!!!"
)

// CPIO is the result of walking a newc/crc-format cpio archive.
type CPIO struct {
	TotalSize  int
	EntryCount int
}

// ParseCPIO walks fixed 110-byte ASCII-hex headers, each followed by a
// 4-byte-aligned file name and (after further 4-byte alignment) file data,
// until the TRAILER!!! sentinel entry.
func ParseCPIO(data []byte) (CPIO, *sig.StructureError) {
	pos := 0
	entries := 0
	for {
		if pos+cpioHeaderSize > len(data) {
			return CPIO{}, sig.StructErrf("truncated cpio header at %d", pos)
		}
		header := data[pos : pos+cpioHeaderSize]
		magic := string(header[0:6])
		if magic != cpioMagic && magic != cpioMagicCRC {
			return CPIO{}, sig.StructErrf("bad cpio magic at %d", pos)
		}

		namesize, err := hexField(header, 94, 8)
		if err != nil {
			return CPIO{}, sig.StructErrf("bad namesize: %v", err)
		}
		filesize, err := hexField(header, 54, 8)
		if err != nil {
			return CPIO{}, sig.StructErrf("bad filesize: %v", err)
		}

		nameStart := pos + cpioHeaderSize
		if nameStart+namesize > len(data) {
			return CPIO{}, sig.StructErrf("truncated name at %d", pos)
		}
		name := binutil.CString(data[nameStart : nameStart+namesize])

		dataStart := align4(nameStart + namesize)
		dataEnd := dataStart + filesize
		if err := binutil.Step(len(data), dataEnd, pos); err != nil {
			return CPIO{}, sig.StructErrf("%v", err)
		}

		entries++
		next := align4(dataEnd)

		if name == cpioTrailerName {
			if entries == 1 {
				return CPIO{}, sig.StructErrf("cpio archive has no entries before trailer")
			}
			return CPIO{TotalSize: next, EntryCount: entries}, nil
		}
		pos = next
	}
}

func align4(v int) int {
	if v%4 == 0 {
		return v
	}
	return v + (4 - v%4)
}

func hexField(header []byte, offset, length int) (int, error) {
	if offset+length > len(header) {
		return 0, sig.StructErrf("field out of range")
	}
	v, err := strconv.ParseUint(string(header[offset:offset+length]), 16, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
