package structures

import (
	"bytes"
	"strconv"

	"github.com/shirou/binscan/internal/sig"
)

var debArMagic = []byte("!<arch>\n")
var debFirstMember = []byte("debian-binary")

// Deb is a parsed Debian package (ar archive whose first member is
// "debian-binary").
type Deb struct {
	FileSize int
}

// ParseDeb validates the ar archive magic and that the first archive member
// is named "debian-binary", then reads that member's size field.
func ParseDeb(data []byte) (Deb, *sig.StructureError) {
	const arHeaderSize = 60
	if len(data) < len(debArMagic)+arHeaderSize {
		return Deb{}, sig.StructErrf("buffer too small for ar+deb header")
	}
	if !bytes.Equal(data[:len(debArMagic)], debArMagic) {
		return Deb{}, sig.StructErrf("missing ar magic")
	}

	member := data[len(debArMagic) : len(debArMagic)+arHeaderSize]
	name := bytes.TrimRight(member[0:16], " ")
	if !bytes.Equal(name, debFirstMember) {
		return Deb{}, sig.StructErrf("first ar member is not debian-binary")
	}

	sizeField := bytes.TrimSpace(member[48:58])
	size, err := strconv.Atoi(string(sizeField))
	if err != nil {
		return Deb{}, sig.StructErrf("bad ar member size field: %v", err)
	}
	return Deb{FileSize: size}, nil
}
