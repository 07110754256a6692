package signatures

import (
	"fmt"

	"github.com/shirou/binscan/internal/extract"
	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "lzma",
		Magic:       lzmaMagic(),
		Description: "LZMA compressed data",
		Parser:      lzmaParser,
		Extractor:   extract.External("unlzma", []string{"-k"}, "decompressed.bin"),
	})
}

// lzmaMagic builds one 5-byte pattern (property + little-endian dictionary
// size) per combination of recognized property byte and dictionary size.
// Searching for every concrete combination, rather than a shorter generic
// prefix, keeps false-positive pressure down at the cost of a larger
// pattern set.
func lzmaMagic() [][]byte {
	var patterns [][]byte
	for _, property := range structures.LZMAProperties {
		for _, dictSize := range structures.LZMADictionarySizes {
			magic := []byte{
				property,
				byte(dictSize),
				byte(dictSize >> 8),
				byte(dictSize >> 16),
				byte(dictSize >> 24),
			}
			patterns = append(patterns, magic)
		}
	}
	return patterns
}

// lzmaParser validates the LZMA-alone header fields at offset. Unlike most
// compressed-stream signatures, confidence here caps at MEDIUM: the
// original validator's high-confidence path requires a dry-run LZMA
// decompression, and no LZMA decoder is wired into this build, so a
// structurally valid header is as far as this parser can confirm.
func lzmaParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	header, err := structures.ParseLZMAHeader(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}

	description := fmt.Sprintf("LZMA compressed data, properties: %#02x, dictionary size: %d bytes",
		header.Properties, header.DictionarySize)
	if header.HasUncompressedSize {
		description = fmt.Sprintf("%s, uncompressed size: %d bytes", description, header.UncompressedSize)
	}

	return sig.Result{
		Offset:      offset,
		Description: description,
		Confidence:  sig.ConfidenceMedium,
	}, nil
}
