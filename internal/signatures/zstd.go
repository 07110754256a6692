package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "zstd",
		Magic:       [][]byte{{0x28, 0xB5, 0x2F, 0xFD}},
		Description: "Zstandard compressed data",
		Parser:      zstdParser,
		Extractor:   extract.External("zstd", []string{"-d", "-k"}, "decompressed.bin"),
	})
}

func zstdParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	z, err := structures.ParseZstd(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("Zstandard compressed data", z.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               z.TotalSize,
		ExtractionDeclined: offset == 0 && z.TotalSize == len(buffer),
	}, nil
}
