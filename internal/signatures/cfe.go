package signatures

import "github.com/shirou/binscan/internal/sig"

func init() {
	sig.Register(sig.Signature{
		Name:        "cfe",
		MagicOffset: 0,
		Magic:       [][]byte{[]byte("CFE1")},
		Description: "Broadcom CFE bootloader",
		Parser:      cfeParser,
	})
}

// cfeParser has no structure to validate beyond the magic bytes
// themselves; this signature is LOW confidence because of it.
func cfeParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	return sig.Result{
		Offset:      offset,
		Description: "Broadcom CFE bootloader",
		Confidence:  sig.ConfidenceLow,
	}, nil
}
