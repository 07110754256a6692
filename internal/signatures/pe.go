package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "pe",
		Short:       true,
		Magic:       [][]byte{{'M', 'Z'}},
		Description: "PE/COFF executable",
		Parser:      peParser,
	})
}

func peParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset != 0 {
		return sig.Result{}, sig.Errf("MZ only meaningful at offset 0")
	}
	pe, err := structures.ParsePE(buffer)
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             0,
		Description:        "PE/COFF executable for " + pe.MachineName,
		Confidence:         sig.ConfidenceMedium,
		Size:               0,
		ExtractionDeclined: true,
	}, nil
}
