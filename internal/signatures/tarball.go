package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "tarball",
		MagicOffset: 257,
		Magic:       [][]byte{[]byte("ustar")},
		Description: "POSIX tar archive",
		Parser:      tarballParser,
	})
}

func tarballParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	const magicOffset = 257
	if offset < magicOffset {
		return sig.Result{}, sig.Errf("hit offset precedes magic_offset")
	}
	start := offset - magicOffset
	t, err := structures.ParseTarball(buffer[start:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:             start,
		Description:        withSize("POSIX tar archive", t.TotalSize),
		Confidence:         sig.ConfidenceHigh,
		Size:               t.TotalSize,
		ExtractionDeclined: start == 0 && t.TotalSize == len(buffer),
	}, nil
}
