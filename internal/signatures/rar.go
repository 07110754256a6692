package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "rar",
		Magic:       [][]byte{{'R', 'a', 'r', '!', 0x1A, 0x07, 0x00}, {'R', 'a', 'r', '!', 0x1A, 0x07, 0x01, 0x00}},
		Description: "RAR archive",
		Parser:      rarParser,
		Extractor:   extract.External("unrar", []string{"x", "-y"}),
	})
}

func rarParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	version := 4
	if offset+8 <= len(buffer) && buffer[offset+6] == 0x01 {
		version = 5
	}
	r, err := structures.ParseRAR(buffer[offset:], version)
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("RAR archive", r.TotalSize),
		Confidence:         sig.ConfidenceMedium,
		Size:               r.TotalSize,
		ExtractionDeclined: offset == 0 && r.TotalSize == len(buffer),
	}, nil
}
