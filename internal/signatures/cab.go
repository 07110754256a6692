package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "cab",
		Magic:       [][]byte{[]byte("MSCF")},
		Description: "Microsoft Cabinet archive",
		Parser:      cabParser,
		Extractor:   extract.External("cabextract", []string{"-q"}),
	})
}

func cabParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	c, err := structures.ParseCab(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("Microsoft Cabinet archive", c.TotalSize),
		Confidence:         sig.ConfidenceMedium,
		Size:               c.TotalSize,
		ExtractionDeclined: offset == 0 && c.TotalSize == len(buffer),
	}, nil
}
