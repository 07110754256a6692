package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "androidsparse",
		Magic:       [][]byte{{0x3A, 0xFF, 0x26, 0xED}},
		Description: "Android sparse image",
		Parser:      androidSparseParser,
		Extractor: &sig.Extractor{
			Internal: extract.AndroidSparse,
		},
	})
}

func androidSparseParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	a, err := structures.ParseAndroidSparse(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("Android sparse image", a.TotalSize),
		Confidence:  sig.ConfidenceHigh,
		Size:        a.TotalSize,
	}, nil
}
