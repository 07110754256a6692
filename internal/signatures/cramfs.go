package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "cramfs",
		Magic:       [][]byte{{0x45, 0x3D, 0xCD, 0x28}, {0x28, 0xCD, 0x3D, 0x45}},
		Description: "CramFS filesystem",
		Parser:      cramfsParser,
	})
}

func cramfsParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	fs, err := structures.ParseCramFS(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}

	// A CRC mismatch still counts as a successful identification, just at
	// a lower confidence; see DESIGN.md.
	confidence := sig.ConfidenceHigh
	if !fs.ChecksumOK {
		confidence = sig.ConfidenceMedium
	}

	return sig.Result{
		Offset:             offset,
		Description:        withSize("CramFS filesystem", fs.Size),
		Confidence:         confidence,
		Size:               fs.Size,
		ExtractionDeclined: offset == 0 && fs.Size == len(buffer),
	}, nil
}
