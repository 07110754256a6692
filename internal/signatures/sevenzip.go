package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "sevenzip",
		Magic:       [][]byte{{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C}},
		Description: "7-zip archive",
		Parser:      sevenzipParser,
		Extractor:   extract.External("7z", []string{"x", "-y"}),
	})
}

func sevenzipParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	z, err := structures.ParseSevenZip(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("7-zip archive", z.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               z.TotalSize,
		ExtractionDeclined: offset == 0 && z.TotalSize == len(buffer),
	}, nil
}
