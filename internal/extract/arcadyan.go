package extract

import (
	"github.com/shirou/binscan/internal/structures"
	"github.com/shirou/binscan/internal/sig"
)

// Arcadyan de-obfuscates the fixed-size header in memory to confirm it
// validates as a plausible LZMA stream start, then (on a real run) carves
// the still-obfuscated original bytes; de-obfuscating the payload itself is
// left to the external LZMA decompressor.
func Arcadyan(buffer []byte, offset int, outputDir string) sig.ExtractionResult {
	measure := func(buffer []byte, offset int) (int, bool) {
		if offset >= len(buffer) {
			return 0, false
		}
		deob, err := structures.Deobfuscate(buffer[offset:])
		if err != nil || !structures.LooksLikeLZMAStart(deob.Deobfuscated) {
			return 0, false
		}
		return len(buffer) - offset, true
	}
	return singleFile("firmware.lzma.obfuscated", measure)(buffer, offset, outputDir)
}
