package signatures

import (
	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "bzip2",
		Magic:       [][]byte{[]byte("BZh")},
		Description: "bzip2 compressed data",
		Parser:      bzip2Parser,
		Extractor:   extract.External("bzip2", []string{"-d", "-k"}, "decompressed.bin"),
	})
}

func bzip2Parser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset+4 > len(buffer) {
		return sig.Result{}, sig.Errf("buffer too small for bzip2 header")
	}
	level := buffer[offset+3]
	if level < '1' || level > '9' {
		return sig.Result{}, sig.Errf("invalid bzip2 block size digit")
	}
	return sig.Result{
		Offset:      offset,
		Description: "bzip2 compressed data, block size " + string(level) + "00k",
		Confidence:  sig.ConfidenceMedium,
	}, nil
}
