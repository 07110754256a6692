package structures

import (
	"bytes"
	"encoding/binary"

	"github.com/coregx/ahocorasick"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
)

var xzStreamHeaderMagic = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
var xzFooterMagic = []byte{'Y', 'Z'}

const xzStreamHeaderSize = 12
const xzStreamFooterSize = 12

// XZ is the result of locating and validating an xz stream footer.
type XZ struct {
	TotalSize int
}

// ParseXZ validates the 12-byte stream header (including its CRC32 over the
// flags byte) and then greps forward for the "YZ" footer magic on a 4-byte
// boundary, validating the footer's own CRC32 over its preceding 6 bytes.
func ParseXZ(data []byte) (XZ, *sig.StructureError) {
	if len(data) < xzStreamHeaderSize {
		return XZ{}, sig.StructErrf("buffer too small for xz stream header")
	}
	if !bytes.Equal(data[0:6], xzStreamHeaderMagic) {
		return XZ{}, sig.StructErrf("bad xz magic")
	}
	headerCRC := binary.LittleEndian.Uint32(data[8:12])
	if binutil.CRC32(data[6:8]) != headerCRC {
		return XZ{}, sig.StructErrf("xz stream header CRC mismatch")
	}

	automaton, err := ahocorasick.NewAutomaton([][]byte{xzFooterMagic})
	if err != nil {
		return XZ{}, sig.StructErrf("automaton build: %v", err)
	}

	for _, m := range automaton.Match(data[xzStreamHeaderSize:]) {
		footerStart := xzStreamHeaderSize + m.Start - 10
		if footerStart < 0 || footerStart%4 != 0 {
			continue
		}
		if footerStart+xzStreamFooterSize > len(data) {
			continue
		}
		footer := data[footerStart : footerStart+xzStreamFooterSize]
		crc := binary.LittleEndian.Uint32(footer[0:4])
		if binutil.CRC32(footer[4:10]) != crc {
			continue
		}
		if !bytes.Equal(footer[10:12], xzFooterMagic) {
			continue
		}
		return XZ{TotalSize: footerStart + xzStreamFooterSize}, nil
	}

	return XZ{}, sig.StructErrf("no valid xz footer found")
}
