package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "dtb",
		Magic:       [][]byte{{0xD0, 0x0D, 0xFE, 0xED}},
		Description: "Flattened device tree",
		Parser:      dtbParser,
	})
}

func dtbParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	d, err := structures.ParseDTB(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             offset,
		Description:        withSize("Flattened device tree, version", d.TotalSize),
		Confidence:         sig.ConfidenceMedium,
		Size:               d.TotalSize,
		ExtractionDeclined: offset == 0 && d.TotalSize == len(buffer),
	}, nil
}
