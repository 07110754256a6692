package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "lz4",
		Magic:       [][]byte{{0x02, 0x21, 0x4C, 0x18}},
		Description: "LZ4 (legacy frame) compressed data",
		Parser:      lz4Parser,
		Extractor:   extract.External("lz4", []string{"-d", "-k"}, "decompressed.bin"),
	})
}

func lz4Parser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	l, err := structures.ParseLZ4(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("LZ4 (legacy frame) compressed data", l.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               l.TotalSize,
		ExtractionDeclined: offset == 0 && l.TotalSize == len(buffer),
	}, nil
}
