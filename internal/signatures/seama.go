package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "seama",
		Magic:       [][]byte{{0x5E, 0xA3, 0xA4, 0x17}, {0x17, 0xA4, 0xA3, 0x5E}},
		Description: "Seama firmware header",
		Parser:      seamaParser,
	})
}

func seamaParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	s, err := structures.ParseSeama(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("Seama firmware header", s.TotalSize),
		Confidence:  sig.ConfidenceLow,
		Size:        s.TotalSize,
	}, nil
}
