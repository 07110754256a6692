package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "srec",
		Magic:       [][]byte{[]byte("S0")},
		Description: "Motorola S-record",
		Parser:      srecParser,
	})
}

func srecParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	s, err := structures.ParseSRec(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("Motorola S-record", s.TotalSize),
		Confidence:  sig.ConfidenceMedium,
		Size:        s.TotalSize,
	}, nil
}
