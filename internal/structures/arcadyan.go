package structures

import "github.com/shirou/binscan/internal/sig"

const arcadyanHeaderSize = 16

var arcadyanXORKey = []byte{0x6F, 0x76, 0x65, 0x72, 0x6C, 0x6F, 0x72, 0x64}

// Arcadyan is the de-obfuscated header of an Arcadyan-obfuscated LZMA
// stream.
type Arcadyan struct {
	Deobfuscated []byte
}

// Deobfuscate XORs the fixed-size header against a repeating key table and
// returns the result for the extractor to sanity-check as an LZMA stream
// start (properties byte in range, dictionary size sane).
func Deobfuscate(data []byte) (Arcadyan, *sig.StructureError) {
	if len(data) < arcadyanHeaderSize {
		return Arcadyan{}, sig.StructErrf("buffer too small for arcadyan header")
	}
	out := make([]byte, arcadyanHeaderSize)
	for i := 0; i < arcadyanHeaderSize; i++ {
		out[i] = data[i] ^ arcadyanXORKey[i%len(arcadyanXORKey)]
	}
	return Arcadyan{Deobfuscated: out}, nil
}

// LooksLikeLZMAStart reports whether the de-obfuscated bytes begin with a
// plausible LZMA stream: a properties byte in [0, 224] and a sane
// dictionary size.
func LooksLikeLZMAStart(header []byte) bool {
	if len(header) < 5 {
		return false
	}
	if header[0] > 224 {
		return false
	}
	dictSize := uint32(header[1]) | uint32(header[2])<<8 | uint32(header[3])<<16 | uint32(header[4])<<24
	return dictSize <= 1<<30
}
