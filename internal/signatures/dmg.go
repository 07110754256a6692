package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "dmg",
		Magic:       [][]byte{[]byte("koly")},
		Description: "Apple Disk Image (DMG)",
		Parser:      dmgParser,
	})
}

// dmgParser's magic match lands on the "koly" footer, not the artifact
// start. Only standalone images (footer.DataOffset == 0) are recognized;
// the artifact is reported as spanning from offset 0 since a standalone
// DMG's start coincides with the start of the file that contains it.
func dmgParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	footer, err := structures.ParseDMGFooter(buffer, offset)
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}

	return sig.Result{
		Offset:             0,
		Description:        withSize("Apple Disk Image (DMG), standalone", footer.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               footer.TotalSize,
		ExtractionDeclined: true,
	}, nil
}
