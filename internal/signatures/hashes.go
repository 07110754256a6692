package signatures

import "github.com/shirou/binscan/internal/sig"

// Well-known constant lookup tables are distinctive enough on their own
// that their presence, at any offset, is worth flagging even though they
// carry no size or extraction semantics.
func init() {
	sig.Register(sig.Signature{
		Name:          "crc32_table",
		AlwaysDisplay: true,
		Magic:         [][]byte{{0x00, 0x00, 0x00, 0x00, 0x77, 0x07, 0x30, 0x96}},
		Description:   "CRC32 polynomial lookup table",
		Parser:        hashTableParser("CRC32 polynomial lookup table"),
	})
	sig.Register(sig.Signature{
		Name:          "sha256_table",
		AlwaysDisplay: true,
		Magic:         [][]byte{{0x6a, 0x09, 0xe6, 0x67, 0xbb, 0x67, 0xae, 0x85}},
		Description:   "SHA256 initial hash value constants",
		Parser:        hashTableParser("SHA256 initial hash value constants"),
	})
}

func hashTableParser(description string) sig.Parser {
	return func(buffer []byte, offset int) (sig.Result, *sig.Error) {
		return sig.Result{
			Offset:      offset,
			Description: description,
			Confidence:  sig.ConfidenceLow,
		}, nil
	}
}
