package structures

import (
	"encoding/binary"

	"github.com/shirou/binscan/internal/sig"
)

const (
	jpegMarkerPrefix = 0xFF
	jpegSOI          = 0xD8
	jpegEOI          = 0xD9
	jpegSOS          = 0xDA
)

// jpegStandaloneMarkers carry no length field and no payload.
var jpegStandaloneMarkers = map[byte]bool{
	0x01: true, // TEM
}

func jpegIsRST(m byte) bool { return m >= 0xD0 && m <= 0xD7 }

// JPEGImage is the result of walking a JPEG's marker-segment stream.
type JPEGImage struct {
	TotalSize int
}

// ParseJPEG walks JPEG marker segments starting at the SOI marker. Most
// markers are length-prefixed; SOS (start-of-scan) switches into raw
// entropy-coded data, which is scanned byte-by-byte for the next marker
// (skipping stuffed 0xFF00 bytes and restart markers) until EOI.
func ParseJPEG(data []byte) (JPEGImage, *sig.StructureError) {
	if len(data) < 2 || data[0] != jpegMarkerPrefix || data[1] != jpegSOI {
		return JPEGImage{}, sig.StructErrf("missing SOI marker")
	}

	pos := 2
	for {
		if pos+1 >= len(data) {
			return JPEGImage{}, sig.StructErrf("truncated marker at %d", pos)
		}
		if data[pos] != jpegMarkerPrefix {
			return JPEGImage{}, sig.StructErrf("expected marker at %d", pos)
		}
		marker := data[pos+1]
		pos += 2

		if marker == jpegEOI {
			return JPEGImage{TotalSize: pos}, nil
		}
		if jpegStandaloneMarkers[marker] || jpegIsRST(marker) {
			continue
		}

		if pos+2 > len(data) {
			return JPEGImage{}, sig.StructErrf("truncated segment length at %d", pos)
		}
		length := int(binary.BigEndian.Uint16(data[pos : pos+2]))
		if length < 2 || pos+length > len(data) {
			return JPEGImage{}, sig.StructErrf("bad segment length at %d", pos)
		}
		segEnd := pos + length

		if marker == jpegSOS {
			// Entropy-coded data follows; scan for the next real marker.
			i := segEnd
			for i+1 < len(data) {
				if data[i] == jpegMarkerPrefix && data[i+1] != 0x00 && !jpegIsRST(data[i+1]) {
					break
				}
				i++
			}
			pos = i
			continue
		}
		pos = segEnd
	}
}
