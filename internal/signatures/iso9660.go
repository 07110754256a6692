package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "iso9660",
		MagicOffset: 32768 + 1,
		Magic:       [][]byte{[]byte("CD001")},
		Description: "ISO 9660 CD-ROM filesystem",
		Parser:      iso9660Parser,
	})
}

func iso9660Parser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	const magicOffset = 32768 + 1
	if offset < magicOffset {
		return sig.Result{}, sig.Errf("hit offset precedes magic_offset")
	}
	start := offset - magicOffset
	img, err := structures.ParseISO9660(buffer[start:], 32768)
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             start,
		Description:        withSize("ISO 9660 CD-ROM filesystem", img.ImageSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               img.ImageSize,
		ExtractionDeclined: start == 0 && img.ImageSize == len(buffer),
	}, nil
}
