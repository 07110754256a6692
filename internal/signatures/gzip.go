package signatures

import (
	"bytes"
	"io"

	kgzip "github.com/klauspost/compress/gzip"

	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
)

var gzipCompressionMethods = map[byte]string{8: "deflate"}

func init() {
	sig.Register(sig.Signature{
		Name:        "gzip",
		Magic:       [][]byte{{0x1F, 0x8B}},
		Description: "gzip compressed data",
		Parser:      gzipParser,
		Extractor:   extract.External("gzip", []string{"-d", "-k"}, "decompressed.bin"),
	})
}

// gzipParser validates the header's compression-method byte, then attempts
// to actually stream-decode a bounded prefix of the member: a header that
// merely looks right but whose deflate stream is garbage is downgraded to
// MEDIUM rather than rejected outright, since a gzip member can be
// truncated mid-buffer and still be a real hit.
func gzipParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset+3 > len(buffer) {
		return sig.Result{}, sig.Errf("buffer too small for gzip header")
	}
	method, ok := gzipCompressionMethods[buffer[offset+2]]
	if !ok {
		return sig.Result{}, sig.Errf("unrecognized gzip compression method")
	}

	confidence := sig.ConfidenceMedium
	if r, err := kgzip.NewReader(bytes.NewReader(buffer[offset:])); err == nil {
		defer r.Close()
		probe := make([]byte, 4096)
		if _, err := io.ReadFull(r, probe); err == nil || err == io.ErrUnexpectedEOF || err == io.EOF {
			confidence = sig.ConfidenceHigh
		}
	}

	return sig.Result{
		Offset:      offset,
		Description: "gzip compressed data, method " + method,
		Confidence:  confidence,
	}, nil
}
