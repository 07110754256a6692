package signatures

import (
	"fmt"

	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "yaffs",
		Short:       true,
		Magic:       [][]byte{{0x03, 0x00, 0x00, 0x00}},
		Description: "YAFFS filesystem",
		Parser:      yaffsParser,
	})
}

// yaffsParser has no fixed header; geometry is inferred by brute force, so
// it is only attempted at buffer offset 0 to avoid a combinatorial re-scan
// of every byte position.
func yaffsParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset != 0 {
		return sig.Result{}, sig.Errf("yaffs geometry inference only attempted at offset 0")
	}
	y, err := structures.ParseYAFFS(buffer)
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      0,
		Description: fmt.Sprintf("YAFFS filesystem, page size %d, spare size %d", y.PageSize, y.SpareSize),
		Confidence:  sig.ConfidenceLow,
	}, nil
}
