package signatures

import (
	"fmt"

	"github.com/shirou/binscan/internal/binutil"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "uimage",
		Magic:       [][]byte{{0x27, 0x05, 0x19, 0x56}},
		Description: "U-Boot legacy image",
		Parser:      uimageParser,
	})
}

func uimageParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	u, err := structures.ParseUImage(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	desc := fmt.Sprintf("U-Boot legacy image, name %q, os %s, arch %s, type %s, created %s",
		u.Name, u.OS, u.Arch, u.Type, binutil.EpochToString(u.Timestamp))
	return sig.Result{
		Offset:      offset,
		Description: withSize(desc, u.TotalSize),
		Confidence:  sig.ConfidenceHigh,
		Size:        u.TotalSize,
	}, nil
}
