package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "jpeg",
		Magic:       [][]byte{{0xFF, 0xD8, 0xFF}},
		Description: "JPEG image",
		Parser:      jpegParser,
		Extractor:   &sig.Extractor{Internal: extract.JPEG},
	})
}

func jpegParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	ext := &sig.Extractor{Internal: extract.JPEG}
	size, ok := dryRun(ext, buffer, offset)
	if !ok {
		return sig.Result{}, sig.Errf("jpeg dry run failed")
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("JPEG image", size),
		Confidence:         sig.ConfidenceHigh,
		Size:               size,
		ExtractionDeclined: offset == 0 && size == len(buffer),
	}, nil
}
