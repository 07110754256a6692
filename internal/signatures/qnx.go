package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "qnx",
		Magic:       [][]byte{{0xEB, 0x7E, 0xFF, 0x00}},
		Description: "QNX image file system",
		Parser:      qnxParser,
	})
}

func qnxParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	q, err := structures.ParseQNX(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: withSize("QNX image file system", q.TotalSize),
		Confidence:  sig.ConfidenceMedium,
		Size:        q.TotalSize,
	}, nil
}
