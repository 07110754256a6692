package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "pchrom",
		MagicOffset: 16,
		Magic:       [][]byte{{0x5A, 0xA5, 0xF0, 0x0F}},
		Description: "Intel flash descriptor region (PCH ROM)",
		Parser:      pchromParser,
	})
}

func pchromParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	const magicOffset = 16
	if offset < magicOffset {
		return sig.Result{}, sig.Errf("hit offset precedes magic_offset")
	}
	start := offset - magicOffset
	p, err := structures.ParsePCHROM(buffer[start:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      start,
		Description: withSize("Intel flash descriptor region", p.TotalSize),
		Confidence:  sig.ConfidenceLow,
		Size:        p.TotalSize,
	}, nil
}
