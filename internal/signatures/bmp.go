package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:          "bmp",
		Magic:         [][]byte{[]byte("BM")},
		AlwaysDisplay: true,
		Description:   "BMP image",
		Parser:        bmpParser,
	})
}

func bmpParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	bmp, err := structures.ParseBMP(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("BMP image", bmp.TotalSize),
		Confidence:         sig.ConfidenceMedium,
		Size:               bmp.TotalSize,
		ExtractionDeclined: offset == 0 && bmp.TotalSize == len(buffer),
	}, nil
}
