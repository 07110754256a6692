package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "svg",
		Magic:       [][]byte{[]byte("<svg ")},
		Description: "SVG image",
		Parser:      svgParser,
		Extractor:   &sig.Extractor{Internal: extract.SVG, DoNotRecurse: true},
	})
}

func svgParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	ext := &sig.Extractor{Internal: extract.SVG}
	size, ok := dryRun(ext, buffer, offset)
	if !ok {
		return sig.Result{}, sig.Errf("svg dry run failed")
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("SVG image", size),
		Confidence:         sig.ConfidenceMedium,
		Size:               size,
		ExtractionDeclined: offset == 0 && size == len(buffer),
	}, nil
}
