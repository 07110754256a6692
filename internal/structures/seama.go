package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

const seamaMagicBE = 0x5EA3A417

// Seama is a parsed SEAMA firmware header.
type Seama struct {
	TotalSize int
	BigEndian bool
}

// ParseSeama validates the SEAMA magic (accepted in either byte order) and
// reads the header_size/data_size pair that follows.
func ParseSeama(data []byte) (Seama, *sig.StructureError) {
	const minHeader = 12
	if len(data) < minHeader {
		return Seama{}, sig.StructErrf("buffer too small for seama header")
	}

	var order binary.ByteOrder
	var bigEndian bool
	switch {
	case binary.BigEndian.Uint32(data[0:4]) == seamaMagicBE:
		order, bigEndian = binary.BigEndian, true
	case binary.LittleEndian.Uint32(data[0:4]) == seamaMagicBE:
		order, bigEndian = binary.LittleEndian, false
	default:
		return Seama{}, sig.StructErrf("bad seama magic")
	}

	headerSize := int(order.Uint16(data[4:6]))
	dataSize := int(order.Uint32(data[8:12]))
	total := headerSize + dataSize
	if total <= 0 || total > len(data) {
		return Seama{}, sig.StructErrf("seama size out of range")
	}
	return Seama{TotalSize: total, BigEndian: bigEndian}, nil
}
