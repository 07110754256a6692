package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "arcadyan_lzma",
		Magic:       [][]byte{{0x19, 0x38, 0x15, 0x07, 0x1A, 0x3D, 0x10, 0x1C}},
		Description: "Arcadyan obfuscated LZMA stream",
		Parser:      arcadyanParser,
		Extractor:   &sig.Extractor{Internal: extract.Arcadyan},
	})
}

func arcadyanParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	ext := &sig.Extractor{Internal: extract.Arcadyan}
	size, ok := dryRun(ext, buffer, offset)
	if !ok {
		return sig.Result{}, sig.Errf("arcadyan dry run failed")
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("Arcadyan obfuscated LZMA stream", size),
		Confidence:  sig.ConfidenceMedium,
		Size:        size,
	}, nil
}
