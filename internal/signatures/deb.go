package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "deb",
		Magic:       [][]byte{[]byte("!<arch>\ndebian-binary")},
		Description: "Debian package",
		Parser:      debParser,
		Extractor:   extract.External("ar", []string{"x"}),
	})
}

func debParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	d, err := structures.ParseDeb(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: "Debian package",
		Confidence:  sig.ConfidenceMedium,
		Size:        d.FileSize,
	}, nil
}
