package extract

import "github.com/shirou/binscan/internal/sig"

// External builds a catalog entry for a third-party decompressor/unpacker.
// The core never invokes command itself; it only records enough for an
// outer driver to do so against carved bytes.
func External(command string, args []string, expectedOutputs ...string) *sig.Extractor {
	return &sig.Extractor{
		External: &sig.ExternalExtractor{
			Command:         command,
			Args:            args,
			ExpectedOutputs: expectedOutputs,
		},
	}
}
