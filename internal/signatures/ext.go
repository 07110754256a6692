package signatures

import (
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "ext",
		MagicOffset: 1024 + 56,
		Magic:       [][]byte{{0x53, 0xEF}},
		Description: "Linux ext2/3/4 filesystem",
		Parser:      extParser,
	})
}

func extParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	const magicOffset = 1024 + 56
	if offset < magicOffset {
		return sig.Result{}, sig.Errf("hit offset precedes magic_offset")
	}
	start := offset - magicOffset
	e, err := structures.ParseExt(buffer[start:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	size := e.BlocksCount * (1024 << e.LogBlockSize)
	if size <= 0 || start+size > len(buffer) {
		return sig.Result{}, sig.Errf("ext image size out of range")
	}
	desc := "Linux ext2/3/4 filesystem, created on " + structures.ExtCreatorOSName(e.CreatorOS)
	return sig.Result{
		Offset:             start,
		Description:        withSize(desc, size),
		Confidence:         sig.ConfidenceMedium,
		Size:               size,
		ExtractionDeclined: start == 0 && size == len(buffer),
	}, nil
}
