package signatures

import "github.com/shirou/binscan/internal/sig"

func init() {
	sig.Register(sig.Signature{
		Name:        "ecos",
		Magic:       [][]byte{{0xDE, 0xAD, 0xBE, 0xEF}, {0xEF, 0xBE, 0xAD, 0xDE}},
		Description: "eCos exception handler table",
		Parser:      ecosParser,
	})
}

// ecosParser has no structure to validate beyond the magic sequence. Both
// byte orders of the magic are accepted; which one matched is not reported.
func ecosParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	return sig.Result{
		Offset:      offset,
		Description: "eCos exception handler table",
		Confidence:  sig.ConfidenceLow,
	}, nil
}
