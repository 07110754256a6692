package signatures

import (
	"fmt"

	"github.com/shirou/binscan/internal/sig"
	"github.com/shirou/binscan/internal/structures"
)

func init() {
	sig.Register(sig.Signature{
		Name:        "openssl",
		Short:       true,
		Magic:       [][]byte{[]byte("Salted__")},
		Description: "OpenSSL salted encrypted data",
		Parser:      opensslParser,
	})
}

func opensslParser(buffer []byte, offset int) (sig.Result, *sig.Error) {
	if offset > len(buffer) {
		return sig.Result{}, sig.Errf("offset out of range")
	}
	o, err := structures.ParseOpenSSLSalted(buffer[offset:])
	if err != nil {
		return sig.Result{}, sig.Errf("%v", err)
	}
	return sig.Result{
		Offset:      offset,
		Description: fmt.Sprintf("OpenSSL salted encrypted data, salt: %x", o.Salt),
		Confidence:  sig.ConfidenceLow,
	}, nil
}
