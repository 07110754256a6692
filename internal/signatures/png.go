package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "png",
		Magic:       [][]byte{{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}},
		Description: "PNG image",
		Parser:      pngParser,
		Extractor:   &sig.Extractor{Internal: extract.PNG},
	})
}

func pngParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	ext := &sig.Extractor{Internal: extract.PNG}
	size, ok := dryRun(ext, buffer, offset)
	if !ok {
		return sig.Result{}, sig.Errf("png dry run failed")
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("PNG image", size),
		Confidence:         sig.ConfidenceHigh,
		Size:               size,
		ExtractionDeclined: offset == 0 && size == len(buffer),
	}, nil
}
