package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "cpio",
		Magic:       [][]byte{[]byte("070701"), []byte("070702")},
		Description: "cpio archive",
		Parser:      cpioParser,
		Extractor:   extract.External("cpio", []string{"-id"}),
	})
}

func cpioParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	archive, err := structures.ParseCPIO(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("cpio archive", archive.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               archive.TotalSize,
		ExtractionDeclined: offset == 0 && archive.TotalSize == len(buffer),
	}, nil
}
