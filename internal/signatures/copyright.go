package signatures

import "github.com/shirou/binscan/internal/sig"

func init() {
	sig.Register(sig.Signature{
		Name:        "copyright",
		Magic:       [][]byte{[]byte("copyright"), []byte("Copyright")},
		Description: "copyright string",
		Parser:      copyrightParser,
	})
}

func copyrightParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	end := offset
	for end < len(buffer) && buffer[end] >= 0x20 && buffer[end] < 0x7F {
		end++
	}
	if end <= offset {
		return sig.Result{}, sig.Errf("empty copyright string")
	}
	return sig.Result{
		Offset:      offset,
		Description: "copyright string: \"" + string(buffer[offset:end]) + "\"",
		Confidence:  sig.ConfidenceLow,
	}, nil
}
