package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "riff",
		Magic:       [][]byte{[]byte("RIFF")},
		Description: "RIFF container",
		Parser:      riffParser,
	})
}

func riffParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	r, err := structures.ParseRIFF(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}

	name := "RIFF data"
	switch r.FormType {
	case "WAVE":
		name = "WAVE audio"
	case "AVI ":
		name = "AVI video"
	case "WEBP":
		name = "WebP image"
	}

	return sig.Result{
		Offset:             offset,
		Description:        withSize(name, r.TotalSize),
		Confidence:         sig.ConfidenceMedium,
		Size:               r.TotalSize,
		ExtractionDeclined: offset == 0 && r.TotalSize == len(buffer),
	}, nil
}
