package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "elf",
		Short:       true,
		Magic:       [][]byte{{0x7F, 'E', 'L', 'F'}},
		Description: "ELF binary",
		Parser:      elfParser,
	})
}

func elfParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset != 0 {
		return sig.Result{}, sig.Errf("ELF magic only meaningful at offset 0")
	}
	e, err := structures.ParseELF(buffer)
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	desc := "ELF " + e.Class + " " + e.Type + " for " + e.Machine + " (" + e.DataEncoding + ")"
	return sig.Result{
		Offset:             0,
		Description:        desc,
		Confidence:         sig.ConfidenceMedium,
		Size:               0,
		ExtractionDeclined: true,
	}, nil
}
