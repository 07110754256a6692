package structures

import "github.com/shirou/binscan/internal/sig"

const opensslSaltedPrefixLen = 8
const opensslSaltLen = 8

// OpenSSLSalted is the parsed "Salted__" + 8-byte salt prefix OpenSSL's
// enc command prepends to password-based encrypted output.
type OpenSSLSalted struct {
	Salt [opensslSaltLen]byte
}

// ParseOpenSSLSalted validates the fixed "Salted__" prefix and extracts the
// following 8-byte salt. There is no further structure to validate, which
// is why this signature is graded LOW confidence.
func ParseOpenSSLSalted(data []byte) (OpenSSLSalted, *sig.StructureError) {
	if len(data) < opensslSaltedPrefixLen+opensslSaltLen {
		return OpenSSLSalted{}, sig.StructErrf("buffer too small for Salted__ header")
	}
	if string(data[:opensslSaltedPrefixLen]) != "Salted__" {
		return OpenSSLSalted{}, sig.StructErrf("missing Salted__ prefix")
	}
	var out OpenSSLSalted
	copy(out.Salt[:], data[opensslSaltedPrefixLen:opensslSaltedPrefixLen+opensslSaltLen])
	return out, nil
}
