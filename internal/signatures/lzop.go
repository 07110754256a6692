package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "lzop",
		Magic:       [][]byte{{0x89, 'L', 'Z', 'O', 0x00, 0x0D, 0x0A, 0x1A, 0x0A}},
		Description: "lzop compressed data",
		Parser:      lzopParser,
		Extractor:   extract.External("lzop", []string{"-d", "-k"}, "decompressed.bin"),
	})
}

func lzopParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	l, err := structures.ParseLZOP(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("lzop compressed data", l.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               l.TotalSize,
		ExtractionDeclined: offset == 0 && l.TotalSize == len(buffer),
	}, nil
}
