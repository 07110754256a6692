package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "xz",
		Magic:       [][]byte{{0xFD, '7', 'z', 'X', 'Z', 0x00}},
		Description: "xz compressed data",
		Parser:      xzParser,
		Extractor:   extract.External("xz", []string{"-d", "-k"}, "decompressed.bin"),
	})
}

func xzParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	x, err := structures.ParseXZ(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("xz compressed data", x.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               x.TotalSize,
		ExtractionDeclined: offset == 0 && x.TotalSize == len(buffer),
	}, nil
}
