package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "mbr",
		Magic:       [][]byte{{0x55, 0xAA}},
		MagicOffset: 0x01FE,
		Description: "DOS Master Boot Record",
		Parser:      mbrParser,
		Extractor:   &sig.Extractor{Internal: extract.MBR},
	})
}

func mbrParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset < 0x01FE {
		return sig.Result{}, sig.Errf("hit offset precedes magic_offset")
	}
	start := offset - 0x01FE

	ext := &sig.Extractor{Internal: extract.MBR}
	size, ok := dryRun(ext, buffer, start)
	if !ok {
		return sig.Result{}, sig.Errf("mbr dry run failed")
	}

	return sig.Result{
		Offset:             start,
		Description:        withSize("DOS Master Boot Record", size),
		Confidence:         sig.ConfidenceMedium,
		Size:               size,
		ExtractionDeclined: start == 0 && size == len(buffer),
	}, nil
}
