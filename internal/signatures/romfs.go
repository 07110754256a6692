package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "romfs",
		Magic:       [][]byte{[]byte("-rom1fs-")},
		Description: "RomFS filesystem",
		Parser:      romfsParser,
		Extractor:   &sig.Extractor{Internal: extract.RomFS},
	})
}

func romfsParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	ext := &sig.Extractor{Internal: extract.RomFS}
	size, ok := dryRun(ext, buffer, offset)
	if !ok {
		return sig.Result{}, sig.Errf("romfs dry run failed")
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("RomFS filesystem", size),
		Confidence:         sig.ConfidenceHigh,
		Size:               size,
		ExtractionDeclined: offset == 0 && size == len(buffer),
	}, nil
}
