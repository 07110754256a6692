package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "trx",
		Magic:       [][]byte{{'H', 'D', 'R', '0'}},
		Description: "TRX firmware header",
		Parser:      trxParser,
	})
}

func trxParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	t, err := structures.ParseTRX(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("TRX firmware header", t.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               t.TotalSize,
		ExtractionDeclined: offset == 0 && t.TotalSize == len(buffer),
	}, nil
}
