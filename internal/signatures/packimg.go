package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "packimg",
		Magic:       [][]byte{[]byte("--PaCkImGs--")},
		Description: "PackImg firmware header",
		Parser:      packimgParser,
	})
}

func packimgParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	p, err := structures.ParsePackImg(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("PackImg firmware header", p.TotalSize),
		Confidence:  sig.ConfidenceLow,
		Size:        p.TotalSize,
	}, nil
}
