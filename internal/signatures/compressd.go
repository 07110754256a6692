package signatures

import "github.com/shirou/binscan/internal/sig"

func init() {
	sig.Register(sig.Signature{
		Name:        "compressd",
		Short:       true,
		Magic:       [][]byte{{0x1F, 0x9D}},
		Description: "compress'd data",
		Parser:      compressdParser,
	})
}

func compressdParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset+3 > len(buffer) {
		return sig.Result{}, sig.Errf("buffer too small for compress'd header")
	}
	bits := buffer[offset+2] & 0x1F
	if bits < 9 || bits > 16 {
		return sig.Result{}, sig.Errf("invalid compress'd max-bits field")
	}
	return sig.Result{
		Offset:      offset,
		Description: "compress'd data",
		Confidence:  sig.ConfidenceLow,
	}, nil
}
