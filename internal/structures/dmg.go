package structures

import (
	"bytes"
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

const (
	dmgFooterSize    = 0x200
	dmgFooterVersion = 4
)

var dmgMagic = []byte("koly")

// DMGFooter is the parsed koly trailer of an Apple Disk Image.
type DMGFooter struct {
	TotalSize  int // footer offset + footer size
	DataOffset uint64
	XMLOffset  uint64
	XMLLength  uint64
}

// ParseDMGFooter validates the koly footer located at footerOffset in data.
// Only standalone DMGs are recognized: a footer whose DataOffset is
// non-zero indicates the image is embedded in a larger container and is
// intentionally rejected. The XML property-list region pointed to by
// XMLOffset must begin with "<?xml".
func ParseDMGFooter(data []byte, footerOffset int) (DMGFooter, *sig.StructureError) {
	if footerOffset < 0 || footerOffset+dmgFooterSize > len(data) {
		return DMGFooter{}, sig.StructErrf("footer out of bounds")
	}
	footer := data[footerOffset : footerOffset+dmgFooterSize]
	if !bytes.Equal(footer[0:4], dmgMagic) {
		return DMGFooter{}, sig.StructErrf("bad koly magic")
	}
	version := binary.BigEndian.Uint32(footer[4:8])
	headerSize := binary.BigEndian.Uint32(footer[8:12])
	if version != dmgFooterVersion || headerSize != dmgFooterSize {
		return DMGFooter{}, sig.StructErrf("unexpected koly version/size")
	}

	dataOffset := binary.BigEndian.Uint64(footer[24:32])
	xmlOffset := binary.BigEndian.Uint64(footer[216:224])
	xmlLength := binary.BigEndian.Uint64(footer[224:232])

	if dataOffset != 0 {
		return DMGFooter{}, sig.StructErrf("embedded DMG (non-zero data offset) not recognized")
	}

	xmlStart := int(xmlOffset)
	if xmlStart < 0 || xmlStart+5 > len(data) {
		return DMGFooter{}, sig.StructErrf("xml plist out of bounds")
	}
	if !bytes.Equal(data[xmlStart:xmlStart+5], []byte("<?xml")) {
		return DMGFooter{}, sig.StructErrf("xml plist magic missing")
	}

	return DMGFooter{
		TotalSize:  footerOffset + dmgFooterSize,
		DataOffset: dataOffset,
		XMLOffset:  xmlOffset,
		XMLLength:  xmlLength,
	}, nil
}
