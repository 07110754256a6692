package signatures

import (
	"fmt"

	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "chk",
		Magic:       [][]byte{{0x2A, 0x23, 0x24, 0x5E}},
		Description: "Broadcom CHK firmware image",
		Parser:      chkParser,
	})
}

func chkParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	c, err := structures.ParseCHK(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	desc := fmt.Sprintf("Broadcom CHK firmware image, board id field 0x%08x", c.BoardID)
	return sig.Result{
		Offset:             offset,
		Description:        withSize(desc, c.TotalSize),
		Confidence:         sig.ConfidenceMedium,
		Size:               c.TotalSize,
		ExtractionDeclined: offset == 0 && c.TotalSize == len(buffer),
	}, nil
}
