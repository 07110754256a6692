package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "dlob",
		Magic:       [][]byte{{'D', 'L', 'O', 'B'}},
		Description: "DLOB firmware header",
		Parser:      dlobParser,
	})
}

func dlobParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	d, err := structures.ParseDLOB(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("DLOB firmware header", d.Size),
		Confidence:  sig.ConfidenceLow,
		Size:        d.Size,
	}, nil
}
